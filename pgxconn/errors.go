package pgxconn

import (
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pkg/errors"
)

// SQLSTATE codes the transaction layer cares about.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeAdminShutdown        = "57P01"
	codeCrashShutdown        = "57P02"
	codeCannotConnectNow     = "57P03"
)

func (c *Conn) classify(err error) error {
	return classifyError(err, c.pg.IsClosed())
}

// classifyError maps driver failures onto the backend taxonomy. Server
// errors outside the taxonomy (constraint violations, bad SQL and the
// like) pass through as *pgconn.PgError.
func classifyError(err error, closed bool) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected:
			return backend.WrapError(backend.TransactionConflict, pgErr.Message, err)
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == codeAdminShutdown,
			pgErr.Code == codeCrashShutdown,
			pgErr.Code == codeCannotConnectNow:
			return backend.WrapError(backend.ConnectionLost, pgErr.Message, err)
		default:
			return err
		}
	}

	var netErr net.Error
	if closed || pgconn.Timeout(err) || errors.As(err, &netErr) {
		return backend.WrapError(backend.ConnectionLost, err.Error(), err)
	}

	return err
}
