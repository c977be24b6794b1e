package backend

import "fmt"

type ErrorKind int

const (
	// CannotConnect means the connection could not be established.
	CannotConnect ErrorKind = iota

	// ConnectionLost means the connection died mid-operation.
	ConnectionLost

	// UnexpectedResultStructure means the result shape does not match
	// what the statement promised.
	UnexpectedResultStructure

	// TransactionConflict is a retryable serialization failure. It never
	// reaches callers of the transaction layer: the runner intercepts it
	// and re-executes the unit of work.
	TransactionConflict
)

func (k ErrorKind) String() string {
	switch k {
	case CannotConnect:
		return "cannot connect"
	case ConnectionLost:
		return "connection lost"
	case UnexpectedResultStructure:
		return "unexpected result structure"
	case TransactionConflict:
		return "transaction conflict"
	default:
		return "unknown"
	}
}

// Error is a driver failure that fits the backend taxonomy.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError attaches a cause, reachable via errors.Unwrap.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
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
