package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent and re-run on every
// open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_models (
		seq_no            INTEGER PRIMARY KEY,
		select_flag       INTEGER NOT NULL DEFAULT 0,
		optimization_type INTEGER NOT NULL DEFAULT 0,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		remark            TEXT NOT NULL DEFAULT '',
		selected          TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS lots (
		lot_id     TEXT PRIMARY KEY,
		product    TEXT NOT NULL DEFAULT '',
		priority   INTEGER NOT NULL DEFAULT 0,
		due_date   TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS lot_operations (
		lot_id          TEXT NOT NULL REFERENCES lots(lot_id) ON DELETE CASCADE,
		step            TEXT NOT NULL,
		machine_group   TEXT NOT NULL DEFAULT '',
		duration        INTEGER NOT NULL DEFAULT 0,
		sequence        INTEGER NOT NULL DEFAULT 0,
		step_status     INTEGER NOT NULL DEFAULT 0,
		plan_machine_id TEXT NOT NULL DEFAULT '',
		plan_check_in   TEXT NOT NULL DEFAULT '',
		plan_check_out  TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (lot_id, step)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lot_operations_lot ON lot_operations(lot_id, sequence)`,

	`CREATE TABLE IF NOT EXISTS schedule_jobs (
		schedule_id       TEXT PRIMARY KEY,
		create_date       TEXT NOT NULL,
		create_user       TEXT NOT NULL DEFAULT '',
		plan_summary      TEXT NOT NULL DEFAULT '',
		optimization_type INTEGER NOT NULL DEFAULT 0,
		lot_plan_raw      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_jobs_created ON schedule_jobs(create_date)`,

	`CREATE TABLE IF NOT EXISTS schedule_step_results (
		schedule_id TEXT NOT NULL REFERENCES schedule_jobs(schedule_id) ON DELETE CASCADE,
		lot_id      TEXT NOT NULL,
		product     TEXT NOT NULL DEFAULT '',
		priority    INTEGER NOT NULL DEFAULT 0,
		step_idx    INTEGER NOT NULL DEFAULT 0,
		step        TEXT NOT NULL,
		machine     TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		booking     INTEGER NOT NULL DEFAULT 0 CHECK(booking IN (0, 1, 2)),
		PRIMARY KEY (schedule_id, lot_id, step)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_step_results_machine ON schedule_step_results(schedule_id, machine)`,

	`CREATE TABLE IF NOT EXISTS ui_settings (
		parameter_name  TEXT PRIMARY KEY,
		parameter_value TEXT NOT NULL DEFAULT '',
		remark          TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
}
