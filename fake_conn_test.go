package txguard

import (
	"context"

	"github.com/nikmy/txguard/backend"
)

// fakeConn scripts backend behavior and records the protocol traffic the
// runner generates.
type fakeConn struct {
	begins   []backend.TxMode
	finishes []bool
	execs    []string
	fetches  int

	// first conflictsLeft Exec/ExecAffected calls fail with a conflict
	conflictsLeft int

	// first finishConflicts commits fail with a conflict
	finishConflicts int

	affected  int64
	execErr   error // one-shot
	beginErr  error
	finishErr error // one-shot

	width     int
	rows      [][][]byte
	sourceErr error
}

func (f *fakeConn) opErr() error {
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return backend.NewError(backend.TransactionConflict, "could not serialize access")
	}
	if f.execErr != nil {
		err := f.execErr
		f.execErr = nil
		return err
	}
	return nil
}

func (f *fakeConn) Exec(_ context.Context, stmt backend.Statement) error {
	f.execs = append(f.execs, stmt.SQL)
	return f.opErr()
}

func (f *fakeConn) ExecAffected(_ context.Context, stmt backend.Statement) (int64, error) {
	f.execs = append(f.execs, stmt.SQL)
	if err := f.opErr(); err != nil {
		return 0, err
	}
	return f.affected, nil
}

func (f *fakeConn) ExecStream(_ context.Context, stmt backend.Statement) (int, backend.RowSource, error) {
	f.execs = append(f.execs, stmt.SQL)
	return f.width, &fakeSource{conn: f, rows: f.rows, err: f.sourceErr}, nil
}

func (f *fakeConn) ExecStreamWithCursor(_ context.Context, stmt backend.Statement) (int, backend.RowSource, error) {
	f.execs = append(f.execs, stmt.SQL)
	return f.width, &fakeSource{conn: f, rows: f.rows, err: f.sourceErr}, nil
}

func (f *fakeConn) Begin(_ context.Context, mode backend.TxMode) error {
	f.begins = append(f.begins, mode)
	return f.beginErr
}

func (f *fakeConn) Finish(_ context.Context, commit bool) error {
	f.finishes = append(f.finishes, commit)
	if commit && f.finishConflicts > 0 {
		f.finishConflicts--
		return backend.NewError(backend.TransactionConflict, "could not serialize access")
	}
	if f.finishErr != nil {
		err := f.finishErr
		f.finishErr = nil
		return err
	}
	return nil
}

type fakeSource struct {
	conn *fakeConn
	rows [][][]byte
	idx  int
	err  error
}

func (s *fakeSource) Next(_ context.Context) (backend.RawRow, bool, error) {
	s.conn.fetches++
	if s.err != nil {
		return nil, false, s.err
	}
	if s.idx >= len(s.rows) {
		return nil, false, nil
	}
	row := s.rows[s.idx]
	s.idx++
	return row, true, nil
}
