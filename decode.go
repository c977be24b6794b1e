package txguard

import "github.com/nikmy/txguard/backend"

// Decoder turns raw rows of a fixed column width into values of T. The
// pgxconn package provides column scanners for building decode functions.
type Decoder[T any] struct {
	width  int
	decode func(row backend.RawRow) (T, error)
}

// NewDecoder builds a Decoder from a column width and a decode function.
// The stream checks every row against width before decode is called, so
// the function may index row freely up to width.
func NewDecoder[T any](width int, decode func(row backend.RawRow) (T, error)) Decoder[T] {
	return Decoder[T]{width: width, decode: decode}
}

func (d Decoder[T]) Width() int {
	return d.width
}

func (d Decoder[T]) DecodeRow(row backend.RawRow) (T, error) {
	return d.decode(row)
}
