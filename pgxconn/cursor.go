package pgxconn

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nikmy/txguard/backend"
)

// ExecStreamWithCursor declares a server-side cursor for the statement and
// returns a source that fetches from it in batches. PostgreSQL only allows
// cursors inside a transaction, which the capability model guarantees.
func (c *Conn) ExecStreamWithCursor(ctx context.Context, stmt backend.Statement) (int, backend.RowSource, error) {
	name := cursorName()

	c.log.Debugf("declare cursor %s", name)
	_, err := c.run(ctx, declareSQL(name, stmt.SQL), stmt.Args)
	if err != nil {
		return 0, nil, err
	}

	src := &cursorSource{conn: c, name: name, fetchSize: c.fetchSize}

	// First fetch happens eagerly: the column count is only known from a
	// result, and the contract reports it up front.
	res, err := c.run(ctx, src.fetchSQL(), nil)
	if err != nil {
		src.close(ctx)
		return 0, nil, err
	}
	src.buf = res.Rows
	src.exhausted = len(res.Rows) < src.fetchSize

	return len(res.FieldDescriptions), src, nil
}

func cursorName() string {
	return "txguard_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func declareSQL(name, sql string) string {
	return "DECLARE " + name + " NO SCROLL CURSOR FOR " + sql
}

// cursorSource pulls rows from a declared cursor, one FETCH per exhausted
// batch. The cursor is closed as soon as the server reports the last row.
type cursorSource struct {
	conn      *Conn
	name      string
	fetchSize int

	buf       [][][]byte
	idx       int
	exhausted bool
	closed    bool
}

func (s *cursorSource) fetchSQL() string {
	return "FETCH FORWARD " + strconv.Itoa(s.fetchSize) + " FROM " + s.name
}

func (s *cursorSource) Next(ctx context.Context) (backend.RawRow, bool, error) {
	for {
		if s.idx < len(s.buf) {
			row := s.buf[s.idx]
			s.idx++
			return row, true, nil
		}
		if s.exhausted {
			s.close(ctx)
			return nil, false, nil
		}

		res, err := s.conn.run(ctx, s.fetchSQL(), nil)
		if err != nil {
			return nil, false, err
		}
		s.buf, s.idx = res.Rows, 0
		s.exhausted = len(res.Rows) < s.fetchSize
	}
}

func (s *cursorSource) close(ctx context.Context) {
	if s.closed {
		return
	}
	s.closed = true

	if _, err := s.conn.run(ctx, "CLOSE "+s.name, nil); err != nil {
		s.conn.log.Warnf("close cursor %s: %s", s.name, err)
	}
}
