// Package txguard is a statically checked transaction layer on top of a
// relational database connection. The locking level of a unit of work is
// encoded in the type of its handle (NoTx, ReadTx, WriteTx), so an
// operation the level forbids does not compile instead of failing at
// runtime. The runner drives the begin/commit/rollback protocol and
// transparently re-executes the unit of work on serialization conflicts.
//
// The layer talks to the database through the backend.Conn contract; see
// the pgxconn package for the PostgreSQL implementation.
package txguard

import (
	"context"

	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pkg/logger"
)

// Isolation levels re-exported for callers of RunRead and RunWrite.
type Isolation = backend.Isolation

const (
	ReadCommitted  = backend.ReadCommitted
	RepeatableRead = backend.RepeatableRead
	Serializable   = backend.Serializable
)

type options struct {
	log         logger.Logger
	maxAttempts int
}

type Option func(*options)

// WithLogger attaches a logger; conflict restarts are reported at debug
// level.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMaxAttempts bounds the conflict retry loop. The default contract is
// unbounded retry: conflicts are assumed transient and eventually resolve.
// Setting a bound is a deliberate deviation from that contract; exhausting
// it surfaces ErrTooManyConflicts.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

func buildOptions(opts []Option) options {
	o := options{log: logger.NewStub()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// RunWithoutLocking executes work directly on the connection. No backend
// transaction is opened and no begin/finish calls are ever issued, so
// there is nothing to retry or log and no options to take.
func RunWithoutLocking[R any](
	ctx context.Context,
	conn backend.Conn,
	work func(tx *NoTx) (R, error),
) (R, error) {
	s := newSession(conn)
	defer s.gen.expire()

	r, err := work(&NoTx{s: s})
	if err != nil {
		if isConflict(err) {
			panic("txguard: transaction conflict outside a transaction")
		}
		var zero R
		return zero, err
	}
	return r, nil
}

// RunRead executes work inside a read-only backend transaction at the
// given isolation level. Serialization conflicts restart the whole unit
// of work; see RunWrite for the retry contract.
func RunRead[R any](
	ctx context.Context,
	conn backend.Conn,
	iso Isolation,
	work func(tx *ReadTx) (R, error),
	opts ...Option,
) (R, error) {
	mode := backend.TxMode{Isolation: iso}
	return runTx(ctx, conn, mode, buildOptions(opts), func(s *session) (R, error) {
		return work(&ReadTx{s: s})
	})
}

// RunWrite executes work inside a writable backend transaction at the
// given isolation level.
//
// When the backend reports a serialization conflict, the transaction is
// rolled back and the whole unit of work re-executed, by default without
// a bound or backoff: the caller observes exactly one commit or one
// non-conflict error, never the conflict itself. Side effects of aborted
// attempts are discarded by the rollback, so the work must be safe to run
// any number of times. A unit of work that swallows the conflict error
// internally is indistinguishable from a successful one.
func RunWrite[R any](
	ctx context.Context,
	conn backend.Conn,
	iso Isolation,
	work func(tx *WriteTx) (R, error),
	opts ...Option,
) (R, error) {
	mode := backend.TxMode{Isolation: iso, Writable: true}
	return runTx(ctx, conn, mode, buildOptions(opts), func(s *session) (R, error) {
		return work(&WriteTx{s: s})
	})
}

func runTx[R any](
	ctx context.Context,
	conn backend.Conn,
	mode backend.TxMode,
	o options,
	work func(s *session) (R, error),
) (R, error) {
	var zero R

	for attempt := 1; ; attempt++ {
		if err := conn.Begin(ctx, mode); err != nil {
			return zero, Translate(err)
		}

		s := newSession(conn)
		r, err := work(s)
		s.gen.expire()

		switch {
		case err == nil:
			err = conn.Finish(ctx, true)
			if err == nil {
				return r, nil
			}
			if !isConflictKind(err) {
				return zero, Translate(err)
			}
			// a conflict reported by the commit aborts the transaction
			// server-side; restart like a conflict from the unit of work

		case isConflict(err):
			if err := conn.Finish(ctx, false); err != nil {
				return zero, Translate(err)
			}

		default:
			if rbErr := conn.Finish(ctx, false); rbErr != nil {
				o.log.Warnf("rollback after failed unit of work: %s", rbErr)
			}
			return zero, err
		}

		if o.maxAttempts > 0 && attempt >= o.maxAttempts {
			return zero, ErrTooManyConflicts
		}
		o.log.Debugf("transaction conflict, restarting unit of work (attempt %d)", attempt)
	}
}
