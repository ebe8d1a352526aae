package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apsystem/apsview/internal/db"
)

// SQLiteSettingRepo stores UI parameters as name/value pairs.
type SQLiteSettingRepo struct {
	db db.DBTX
}

func NewSQLiteSettingRepo(conn db.DBTX) *SQLiteSettingRepo {
	return &SQLiteSettingRepo{db: conn}
}

// GetSetting returns the stored value for key, or "" when it was never set.
func (r *SQLiteSettingRepo) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT parameter_value FROM ui_settings WHERE parameter_name = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettingRepo) SetSetting(ctx context.Context, key, value string) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO ui_settings
		(parameter_name, parameter_value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(parameter_name) DO UPDATE SET
			parameter_value = excluded.parameter_value,
			updated_at = excluded.updated_at`,
		key, value, now, now)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
