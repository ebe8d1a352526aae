package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/domain"
)

// SQLiteLotRepo implements LotRepo using a SQLite database.
type SQLiteLotRepo struct {
	db db.DBTX
}

func NewSQLiteLotRepo(conn db.DBTX) *SQLiteLotRepo {
	return &SQLiteLotRepo{db: conn}
}

// List returns every lot ordered by lot id, each with its operations.
func (r *SQLiteLotRepo) List(ctx context.Context) ([]*domain.Lot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT lot_id, product, priority, due_date
		FROM lots ORDER BY lot_id`)
	if err != nil {
		return nil, fmt.Errorf("listing lots: %w", err)
	}

	var lots []*domain.Lot
	byID := make(map[string]*domain.Lot)
	for rows.Next() {
		var l domain.Lot
		if err := rows.Scan(&l.LotID, &l.Product, &l.Priority, &l.DueDate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning lot: %w", err)
		}
		lots = append(lots, &l)
		byID[l.LotID] = &l
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating lots: %w", err)
	}
	rows.Close()

	ops, err := r.db.QueryContext(ctx, `SELECT lot_id, step, machine_group, duration, sequence,
		step_status, plan_machine_id, plan_check_in, plan_check_out
		FROM lot_operations ORDER BY lot_id, sequence`)
	if err != nil {
		return nil, fmt.Errorf("listing lot operations: %w", err)
	}
	defer ops.Close()
	for ops.Next() {
		lotID, op, err := scanOperation(ops)
		if err != nil {
			return nil, err
		}
		if l, ok := byID[lotID]; ok {
			l.Operations = append(l.Operations, op)
		}
	}
	return lots, ops.Err()
}

func (r *SQLiteLotRepo) GetByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	var l domain.Lot
	err := r.db.QueryRowContext(ctx, `SELECT lot_id, product, priority, due_date
		FROM lots WHERE lot_id = ?`, lotID).Scan(&l.LotID, &l.Product, &l.Priority, &l.DueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lot %s: %w", lotID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning lot: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT lot_id, step, machine_group, duration, sequence,
		step_status, plan_machine_id, plan_check_in, plan_check_out
		FROM lot_operations WHERE lot_id = ? ORDER BY sequence`, lotID)
	if err != nil {
		return nil, fmt.Errorf("listing operations of lot %s: %w", lotID, err)
	}
	defer rows.Close()
	for rows.Next() {
		_, op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		l.Operations = append(l.Operations, op)
	}
	return &l, rows.Err()
}

// Upsert writes the lot and replaces its operations.
func (r *SQLiteLotRepo) Upsert(ctx context.Context, lot *domain.Lot) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO lots (lot_id, product, priority, due_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(lot_id) DO UPDATE SET
			product = excluded.product,
			priority = excluded.priority,
			due_date = excluded.due_date,
			updated_at = excluded.updated_at`,
		lot.LotID, lot.Product, lot.Priority, lot.DueDate, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting lot %s: %w", lot.LotID, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM lot_operations WHERE lot_id = ?`, lot.LotID); err != nil {
		return fmt.Errorf("clearing operations of lot %s: %w", lot.LotID, err)
	}
	for _, op := range lot.Operations {
		_, err := r.db.ExecContext(ctx, `INSERT INTO lot_operations (lot_id, step, machine_group,
			duration, sequence, step_status, plan_machine_id, plan_check_in, plan_check_out)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lot.LotID, op.Step, op.MachineGroup, op.Duration, op.Sequence, op.StepStatus,
			op.PlanMachineID, op.PlanCheckIn, op.PlanCheckOut)
		if err != nil {
			return fmt.Errorf("inserting operation %s/%s: %w", lot.LotID, op.Step, err)
		}
	}
	return nil
}

func (r *SQLiteLotRepo) UpdatePriority(ctx context.Context, lotID string, priority int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE lots SET priority = ?, updated_at = ? WHERE lot_id = ?`,
		priority, nowUTC(), lotID)
	if err != nil {
		return fmt.Errorf("updating priority of lot %s: %w", lotID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking priority update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("lot %s: %w", lotID, ErrNotFound)
	}
	return nil
}

func scanOperation(rows *sql.Rows) (string, domain.Operation, error) {
	var lotID string
	var op domain.Operation
	err := rows.Scan(&lotID, &op.Step, &op.MachineGroup, &op.Duration, &op.Sequence,
		&op.StepStatus, &op.PlanMachineID, &op.PlanCheckIn, &op.PlanCheckOut)
	if err != nil {
		return "", op, fmt.Errorf("scanning lot operation: %w", err)
	}
	return lotID, op, nil
}
