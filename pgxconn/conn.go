// Package pgxconn implements the backend contract for PostgreSQL on top
// of a single pgconn connection. Pooling is out of scope: the caller
// acquires the connection and lends it to the transaction layer.
package pgxconn

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pkg/logger"
)

type Config struct {
	URL            string        `yaml:"url"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`

	// FetchSize is the batch size for cursor-backed streams.
	FetchSize int `yaml:"fetchSize"`
}

const defaultFetchSize = 256

type Conn struct {
	pg        *pgconn.PgConn
	log       logger.Logger
	fetchSize int
}

var _ backend.Conn = (*Conn)(nil)

func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Conn, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	pg, err := pgconn.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, backend.WrapError(backend.CannotConnect, err.Error(), err)
	}

	return newConn(pg, cfg.FetchSize, log), nil
}

// Wrap adapts an already established pgconn connection.
func Wrap(pg *pgconn.PgConn) *Conn {
	return newConn(pg, 0, nil)
}

func newConn(pg *pgconn.PgConn, fetchSize int, log logger.Logger) *Conn {
	if fetchSize <= 0 {
		fetchSize = defaultFetchSize
	}
	if log == nil {
		log = logger.NewStub()
	}
	return &Conn{pg: pg, log: log.With("pgxconn"), fetchSize: fetchSize}
}

func (c *Conn) Close(ctx context.Context) error {
	return c.pg.Close(ctx)
}

func (c *Conn) Exec(ctx context.Context, stmt backend.Statement) error {
	_, err := c.run(ctx, stmt.SQL, stmt.Args)
	return err
}

func (c *Conn) ExecAffected(ctx context.Context, stmt backend.Statement) (int64, error) {
	res, err := c.run(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return 0, err
	}
	return res.CommandTag.RowsAffected(), nil
}

func (c *Conn) ExecStream(ctx context.Context, stmt backend.Statement) (int, backend.RowSource, error) {
	res, err := c.run(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return 0, nil, err
	}
	return len(res.FieldDescriptions), &bufferedSource{rows: res.Rows}, nil
}

func (c *Conn) Begin(ctx context.Context, mode backend.TxMode) error {
	var b strings.Builder
	b.WriteString("BEGIN ISOLATION LEVEL ")
	b.WriteString(mode.Isolation.String())
	if mode.Writable {
		b.WriteString(" READ WRITE")
	} else {
		b.WriteString(" READ ONLY")
	}

	c.log.Debugf("begin: %s", b.String())
	_, err := c.run(ctx, b.String(), nil)
	return err
}

func (c *Conn) Finish(ctx context.Context, commit bool) error {
	sql := "ROLLBACK"
	if commit {
		sql = "COMMIT"
	}

	c.log.Debugf("finish: %s", sql)
	_, err := c.run(ctx, sql, nil)
	return err
}

// run executes a single statement over the extended protocol, buffering
// the whole result. Failures are classified into the backend taxonomy.
func (c *Conn) run(ctx context.Context, sql string, args []any) (*pgconn.Result, error) {
	values, err := encodeParams(args)
	if err != nil {
		return nil, err
	}

	res := c.pg.ExecParams(ctx, sql, values, nil, nil, nil).Read()
	if res.Err != nil {
		return nil, c.classify(res.Err)
	}
	return res, nil
}

// bufferedSource serves an already materialized result set; Next never
// goes back to the server.
type bufferedSource struct {
	rows [][][]byte
	idx  int
}

func (s *bufferedSource) Next(_ context.Context) (backend.RawRow, bool, error) {
	if s.idx >= len(s.rows) {
		return nil, false, nil
	}
	row := s.rows[s.idx]
	s.idx++
	return row, true, nil
}
