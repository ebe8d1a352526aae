package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const scheduleColumns = `schedule_id, create_date, create_user, plan_summary,
	optimization_type, lot_plan_raw`

func (r *SQLiteScheduleRepo) Create(ctx context.Context, job *domain.ScheduleJob) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO schedule_jobs (`+scheduleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		job.ScheduleID, job.CreateDate, job.CreateUser, job.PlanSummary,
		job.OptimizationType, job.LotPlanRaw)
	if err != nil {
		return fmt.Errorf("inserting schedule %s: %w", job.ScheduleID, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*domain.ScheduleJob, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+`
		FROM schedule_jobs WHERE schedule_id = ?`, scheduleID)
	job, err := scanSchedule(row)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
	}
	return job, err
}

// Latest returns the most recently created schedule.
func (r *SQLiteScheduleRepo) Latest(ctx context.Context) (*domain.ScheduleJob, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+`
		FROM schedule_jobs ORDER BY create_date DESC, schedule_id DESC LIMIT 1`)
	job, err := scanSchedule(row)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("latest schedule: %w", ErrNotFound)
	}
	return job, err
}

// List returns schedule references, newest first.
func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]domain.ScheduleInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT schedule_id, create_date
		FROM schedule_jobs ORDER BY create_date DESC, schedule_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var infos []domain.ScheduleInfo
	for rows.Next() {
		var info domain.ScheduleInfo
		if err := rows.Scan(&info.ScheduleID, &info.CreateDate); err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (r *SQLiteScheduleRepo) AddStepResults(ctx context.Context, steps []domain.StepResult) error {
	for _, s := range steps {
		_, err := r.db.ExecContext(ctx, `INSERT INTO schedule_step_results (schedule_id, lot_id,
			product, priority, step_idx, step, machine, start_time, end_time, booking)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ScheduleID, s.LotID, s.Product, s.Priority, s.StepIdx, s.Step, s.Machine,
			formatTime(s.Start), formatTime(s.End), int(s.Booking))
		if err != nil {
			return fmt.Errorf("inserting step result %s/%s: %w", s.LotID, s.Step, err)
		}
	}
	return nil
}

// ListStepResults returns the steps of one schedule ordered by lot and step index.
func (r *SQLiteScheduleRepo) ListStepResults(ctx context.Context, scheduleID string) ([]domain.StepResult, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT schedule_id, lot_id, product, priority, step_idx,
		step, machine, start_time, end_time, booking
		FROM schedule_step_results WHERE schedule_id = ?
		ORDER BY lot_id, step_idx`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing step results: %w", err)
	}
	defer rows.Close()

	var steps []domain.StepResult
	for rows.Next() {
		var s domain.StepResult
		var start, end string
		var booking int
		if err := rows.Scan(&s.ScheduleID, &s.LotID, &s.Product, &s.Priority, &s.StepIdx,
			&s.Step, &s.Machine, &start, &end, &booking); err != nil {
			return nil, fmt.Errorf("scanning step result: %w", err)
		}
		s.Start = parseTime(start)
		s.End = parseTime(end)
		s.Booking = domain.BookingStatus(booking)
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

func scanSchedule(row *sql.Row) (*domain.ScheduleJob, error) {
	var job domain.ScheduleJob
	err := row.Scan(&job.ScheduleID, &job.CreateDate, &job.CreateUser, &job.PlanSummary,
		&job.OptimizationType, &job.LotPlanRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	return &job, nil
}
