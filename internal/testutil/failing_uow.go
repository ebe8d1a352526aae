package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apsystem/apsview/internal/db"
)

// FailingUoW runs callbacks in a real transaction but makes the Nth write
// inside it return Err. Reads are never counted. Use it to check that a
// multi-write use case leaves nothing behind when a late write fails.
type FailingUoW struct {
	DB          *sql.DB
	FailOnWrite int
	Err         error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingTx{DBTX: tx, failOn: u.FailOnWrite, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
