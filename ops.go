package txguard

import (
	"context"
	"fmt"

	"github.com/nikmy/txguard/backend"
)

// Exec runs a statement for effect, discarding its result. Available on
// any handle that allows writing.
func Exec(ctx context.Context, tx Writer, stmt backend.Statement) error {
	s := tx.sess()
	if err := s.check(); err != nil {
		return err
	}
	return s.classify(s.conn.Exec(ctx, stmt))
}

// ExecCount runs a statement and reports how many rows it affected.
func ExecCount(ctx context.Context, tx Writer, stmt backend.Statement) (int64, error) {
	s := tx.sess()
	if err := s.check(); err != nil {
		return 0, err
	}

	n, err := s.conn.ExecAffected(ctx, stmt)
	if err != nil {
		return 0, s.classify(err)
	}
	return n, nil
}

// Query runs a read and returns a stream over the materialized result set.
// Available at every locking level. The stream is only valid until the
// owning transaction finishes.
func Query[T any](ctx context.Context, tx Querier, stmt backend.Statement, dec Decoder[T]) (*Stream[T], error) {
	return openStream(ctx, tx.sess(), stmt, dec, backend.Conn.ExecStream)
}

// QueryCursor runs a read behind a server-side cursor, fetching in batches
// as the stream is advanced. Memory stays bounded for arbitrarily large
// result sets. Requires a handle whose level permits cursors.
func QueryCursor[T any](ctx context.Context, tx CursorReader, stmt backend.Statement, dec Decoder[T]) (*Stream[T], error) {
	return openStream(ctx, tx.sess(), stmt, dec, backend.Conn.ExecStreamWithCursor)
}

func openStream[T any](
	ctx context.Context,
	s *session,
	stmt backend.Statement,
	dec Decoder[T],
	run func(backend.Conn, context.Context, backend.Statement) (int, backend.RowSource, error),
) (*Stream[T], error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	width, rows, err := run(s.conn, ctx, stmt)
	if err != nil {
		return nil, s.classify(err)
	}
	if width != dec.Width() {
		return nil, &Error{
			Kind:    UnexpectedResultStructure,
			Message: fmt.Sprintf("result has %d columns, decoder expects %d", width, dec.Width()),
		}
	}

	return &Stream[T]{sess: s, src: rows, dec: dec}, nil
}
