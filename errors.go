package txguard

import (
	"fmt"

	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pkg/errors"
)

type ErrorKind int

const (
	// CannotConnect means the connection could not be established.
	CannotConnect ErrorKind = iota

	// ConnectionLost means the connection died while the unit of work
	// was talking to the backend.
	ConnectionLost

	// UnexpectedResultStructure means a result's shape (column count)
	// does not match what the decoder expects.
	UnexpectedResultStructure

	// ResultParsingError means a row could not be decoded.
	ResultParsingError
)

func (k ErrorKind) String() string {
	switch k {
	case CannotConnect:
		return "cannot connect"
	case ConnectionLost:
		return "connection lost"
	case UnexpectedResultStructure:
		return "unexpected result structure"
	case ResultParsingError:
		return "result parsing error"
	default:
		return "unknown"
	}
}

// Error is a transaction-layer failure. Any Error surfaced to the caller
// guarantees the enclosing transaction was rolled back or never committed.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

var (
	// ErrFinishedTx reports use of a handle or a result stream after its
	// owning transaction finished. That is a programming error: streams
	// must be consumed inside the unit of work that produced them.
	ErrFinishedTx = errors.Error("transaction already finished")

	// ErrTooManyConflicts is returned only when WithMaxAttempts is set
	// and the attempt limit is exhausted.
	ErrTooManyConflicts = errors.Error("transaction conflict retry limit exhausted")
)

// errConflict marks a retryable serialization failure on its way from an
// operation back to the runner. It never crosses the public surface.
var errConflict = errors.Error("transaction serialization conflict")

func isConflict(err error) bool {
	return errors.Is(err, errConflict)
}

// isConflictKind spots a backend-level serialization conflict that has not
// been intercepted yet, e.g. one reported by the commit itself.
func isConflictKind(err error) bool {
	var be *backend.Error
	return errors.As(err, &be) && be.Kind == backend.TransactionConflict
}

// Translate maps backend failures onto the public taxonomy. Errors outside
// the backend taxonomy pass through untouched. A TransactionConflict must
// never reach translation: the runner intercepts it, so observing one here
// means the invariant is broken.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var be *backend.Error
	if !errors.As(err, &be) {
		return err
	}

	switch be.Kind {
	case backend.CannotConnect:
		return &Error{Kind: CannotConnect, Message: be.Message, cause: be}
	case backend.ConnectionLost:
		return &Error{Kind: ConnectionLost, Message: be.Message, cause: be}
	case backend.UnexpectedResultStructure:
		return &Error{Kind: UnexpectedResultStructure, Message: be.Message, cause: be}
	case backend.TransactionConflict:
		panic("txguard: transaction conflict escaped its retry scope")
	default:
		return err
	}
}
