package txguard

import (
	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pkg/errors"
)

// generation marks the lifetime of one transaction attempt. The runner
// expires it before finishing (and before every retry restart), so handles
// and streams leaked out of a unit of work refuse to touch the backend.
type generation struct {
	expired bool
}

func (g *generation) expire() {
	g.expired = true
}

// session is the shared state behind every handle: the borrowed connection
// and the generation it is valid for.
type session struct {
	conn backend.Conn
	gen  *generation
}

func newSession(conn backend.Conn) *session {
	return &session{conn: conn, gen: &generation{}}
}

func (s *session) check() error {
	if s.gen.expired {
		return ErrFinishedTx
	}
	return nil
}

// classify intercepts the retryable conflict kind; everything else goes
// through Translate.
func (s *session) classify(err error) error {
	var be *backend.Error
	if errors.As(err, &be) && be.Kind == backend.TransactionConflict {
		return errors.Wrap(errConflict, be.Message)
	}
	return Translate(err)
}

// NoTx runs operations directly on the connection, outside any backend
// transaction. Writing is allowed; server-side cursors are not.
type NoTx struct {
	s *session
}

func (t *NoTx) sess() *session { return t.s }
func (*NoTx) allowsWriting()   {}

// ReadTx runs inside a read-only backend transaction. Writing does not
// typecheck; cursors are allowed.
type ReadTx struct {
	s *session
}

func (t *ReadTx) sess() *session { return t.s }
func (*ReadTx) allowsCursors()   {}

// WriteTx runs inside a writable backend transaction. Both writing and
// cursors are allowed.
type WriteTx struct {
	s *session
}

func (t *WriteTx) sess() *session { return t.s }
func (*WriteTx) allowsWriting()   {}
func (*WriteTx) allowsCursors()   {}

// Querier is satisfied by every handle. It gates the operations legal at
// any locking level. The marker methods are unexported, so handles cannot
// be forged outside this package.
type Querier interface {
	sess() *session
}

// Writer is satisfied only by handles whose level permits writes.
type Writer interface {
	Querier
	allowsWriting()
}

// CursorReader is satisfied only by handles whose level permits
// server-side cursors.
type CursorReader interface {
	Querier
	allowsCursors()
}

var (
	_ Writer       = (*NoTx)(nil)
	_ Writer       = (*WriteTx)(nil)
	_ CursorReader = (*ReadTx)(nil)
	_ CursorReader = (*WriteTx)(nil)
	_ Querier      = (*ReadTx)(nil)
)
