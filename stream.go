package txguard

import (
	"context"
	"fmt"

	"github.com/nikmy/txguard/backend"
)

// Stream is a lazy, forward-only, single-consumer sequence of decoded
// rows. It is owned by the transaction that produced it: once that
// transaction finishes (commit, rollback or retry restart), Next fails
// fast with ErrFinishedTx before any backend call is made.
type Stream[T any] struct {
	sess *session
	src  backend.RowSource
	dec  Decoder[T]

	row  T
	err  error
	done bool
}

// Next advances the stream, performing at most one backend fetch. It
// returns false at end of stream or on failure; distinguish the two with
// Err.
func (s *Stream[T]) Next(ctx context.Context) bool {
	if s.done || s.err != nil {
		return false
	}
	if err := s.sess.check(); err != nil {
		s.err = err
		return false
	}

	raw, ok, err := s.src.Next(ctx)
	if err != nil {
		s.err = s.sess.classify(err)
		return false
	}
	if !ok {
		s.done = true
		return false
	}

	if len(raw) != s.dec.Width() {
		s.err = &Error{
			Kind:    UnexpectedResultStructure,
			Message: fmt.Sprintf("row has %d columns, decoder expects %d", len(raw), s.dec.Width()),
		}
		return false
	}

	row, err := s.dec.DecodeRow(raw)
	if err != nil {
		s.err = &Error{Kind: ResultParsingError, Message: err.Error(), cause: err}
		return false
	}

	s.row = row
	return true
}

// Row returns the row the last successful Next produced.
func (s *Stream[T]) Row() T {
	return s.row
}

// Err returns the failure that terminated the stream, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Collect drains the stream into a slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	var out []T
	for s.Next(ctx) {
		out = append(out, s.Row())
	}
	return out, s.Err()
}
