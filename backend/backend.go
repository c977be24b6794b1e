// Package backend defines the contract between the transaction layer and a
// concrete database driver. The transaction layer depends only on this
// package; drivers (e.g. pgxconn) implement it.
package backend

import "context"

// Statement is a single SQL statement with its positional arguments.
// Encoding the arguments onto the wire is the driver's concern.
type Statement struct {
	SQL  string
	Args []any
}

type Isolation int

const (
	ReadCommitted Isolation = iota
	RepeatableRead
	Serializable
)

func (i Isolation) String() string {
	switch i {
	case ReadCommitted:
		return "READ COMMITTED"
	case RepeatableRead:
		return "REPEATABLE READ"
	case Serializable:
		return "SERIALIZABLE"
	default:
		return "UNKNOWN"
	}
}

// TxMode describes how a backend transaction is opened.
type TxMode struct {
	Isolation Isolation
	Writable  bool
}

// RawRow is one undecoded row as returned by the driver,
// one wire-encoded value per column.
type RawRow = [][]byte

// RowSource is a pull-based supplier of raw rows. Next returns false when
// the source is exhausted. A single call performs at most one round trip
// to the server.
type RowSource interface {
	Next(ctx context.Context) (RawRow, bool, error)
}

// Conn is the driver capability consumed by the transaction layer. It is
// bound to exactly one connection; the layer borrows it for the duration
// of a unit of work and never shares it between concurrent flows.
//
// Failures are reported as *Error where they fit the taxonomy; drivers may
// surface statement errors outside the taxonomy verbatim.
type Conn interface {
	// Exec runs a statement and discards its result.
	Exec(ctx context.Context, stmt Statement) error

	// ExecAffected runs a statement and reports how many rows it affected.
	ExecAffected(ctx context.Context, stmt Statement) (int64, error)

	// ExecStream runs a query and returns its column count together with a
	// source over the already materialized result set.
	ExecStream(ctx context.Context, stmt Statement) (int, RowSource, error)

	// ExecStreamWithCursor runs a query behind a server-side cursor and
	// returns its column count together with a source that fetches in
	// batches as it is advanced. Only valid inside a transaction.
	ExecStreamWithCursor(ctx context.Context, stmt Statement) (int, RowSource, error)

	// Begin opens a backend transaction.
	Begin(ctx context.Context, mode TxMode) error

	// Finish closes the open transaction, committing or rolling back.
	Finish(ctx context.Context, commit bool) error
}
