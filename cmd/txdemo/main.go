package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/txguard"
	"github.com/nikmy/txguard/backend"
	"github.com/nikmy/txguard/pgxconn"
	"github.com/nikmy/txguard/pkg/errors"
	"github.com/nikmy/txguard/pkg/logger"
)

type entry struct {
	id    int64
	title string
}

var entryDecoder = txguard.NewDecoder(2, func(row backend.RawRow) (entry, error) {
	id, err := pgxconn.Int64(row[0])
	if err != nil {
		return entry{}, errors.WrapFail(err, "decode id")
	}

	title, err := pgxconn.String(row[1])
	if err != nil {
		return entry{}, errors.WrapFail(err, "decode title")
	}

	return entry{id: id, title: title}, nil
})

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := pgxconn.Connect(ctx, cfg.Postgres, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to postgres"))
	}
	defer func() { _ = conn.Close(context.Background()) }()

	inserted, err := txguard.RunWrite(ctx, conn, txguard.Serializable,
		func(tx *txguard.WriteTx) (int64, error) {
			err := txguard.Exec(ctx, tx, backend.Statement{
				SQL: `CREATE TABLE IF NOT EXISTS txguard_demo (id bigserial PRIMARY KEY, title text NOT NULL)`,
			})
			if err != nil {
				return 0, err
			}

			return txguard.ExecCount(ctx, tx, backend.Statement{
				SQL:  `INSERT INTO txguard_demo (title) VALUES ($1), ($2)`,
				Args: []any{"first", "second"},
			})
		},
		txguard.WithLogger(log),
	)
	if err != nil {
		log.Panic(errors.WrapFail(err, "run write txn"))
	}
	log.Infof("inserted %d rows", inserted)

	entries, err := txguard.RunRead(ctx, conn, txguard.RepeatableRead,
		func(tx *txguard.ReadTx) ([]entry, error) {
			stream, err := txguard.QueryCursor(ctx, tx, backend.Statement{
				SQL: `SELECT id, title FROM txguard_demo ORDER BY id`,
			}, entryDecoder)
			if err != nil {
				return nil, err
			}
			return txguard.Collect(ctx, stream)
		},
		txguard.WithLogger(log),
	)
	if err != nil {
		log.Panic(errors.WrapFail(err, "run read txn"))
	}
	for _, e := range entries {
		log.Infof("entry %d: %s", e.id, e.title)
	}

	cleaned, err := txguard.RunWithoutLocking(ctx, conn,
		func(tx *txguard.NoTx) (int64, error) {
			return txguard.ExecCount(ctx, tx, backend.Statement{SQL: `DELETE FROM txguard_demo`})
		})
	if err != nil {
		log.Panic(errors.WrapFail(err, "clean up demo table"))
	}
	log.Infof("cleaned up %d rows", cleaned)
}
