package repository

import (
	"context"
	"fmt"

	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/domain"
)

// SQLitePlanModelRepo implements PlanModelRepo using a SQLite database.
type SQLitePlanModelRepo struct {
	db db.DBTX
}

func NewSQLitePlanModelRepo(conn db.DBTX) *SQLitePlanModelRepo {
	return &SQLitePlanModelRepo{db: conn}
}

// List returns all plan models ordered by sequence number.
func (r *SQLitePlanModelRepo) List(ctx context.Context) ([]domain.PlanModel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT seq_no, select_flag, optimization_type,
		name, description, remark, selected
		FROM plan_models ORDER BY seq_no`)
	if err != nil {
		return nil, fmt.Errorf("listing plan models: %w", err)
	}
	defer rows.Close()

	var models []domain.PlanModel
	for rows.Next() {
		var m domain.PlanModel
		if err := rows.Scan(&m.SeqNo, &m.Select, &m.OptimizationType,
			&m.Name, &m.Description, &m.Remark, &m.Selected); err != nil {
			return nil, fmt.Errorf("scanning plan model: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

// ReplaceAll swaps the stored collection for models. Run it inside a unit of
// work when the delete and inserts must be atomic.
func (r *SQLitePlanModelRepo) ReplaceAll(ctx context.Context, models []domain.PlanModel) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_models`); err != nil {
		return fmt.Errorf("clearing plan models: %w", err)
	}
	for _, m := range models {
		_, err := r.db.ExecContext(ctx, `INSERT INTO plan_models (seq_no, select_flag,
			optimization_type, name, description, remark, selected)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.SeqNo, m.Select, m.OptimizationType, m.Name, m.Description, m.Remark, m.Selected)
		if err != nil {
			return fmt.Errorf("inserting plan model %d: %w", m.SeqNo, err)
		}
	}
	return nil
}
