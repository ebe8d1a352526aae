package repository

import (
	"context"

	"github.com/apsystem/apsview/internal/domain"
)

type PlanModelRepo interface {
	List(ctx context.Context) ([]domain.PlanModel, error)
	ReplaceAll(ctx context.Context, models []domain.PlanModel) error
}

type LotRepo interface {
	List(ctx context.Context) ([]*domain.Lot, error)
	GetByID(ctx context.Context, lotID string) (*domain.Lot, error)
	Upsert(ctx context.Context, lot *domain.Lot) error
	UpdatePriority(ctx context.Context, lotID string, priority int) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, job *domain.ScheduleJob) error
	GetByID(ctx context.Context, scheduleID string) (*domain.ScheduleJob, error)
	Latest(ctx context.Context) (*domain.ScheduleJob, error)
	List(ctx context.Context) ([]domain.ScheduleInfo, error)
	AddStepResults(ctx context.Context, steps []domain.StepResult) error
	ListStepResults(ctx context.Context, scheduleID string) ([]domain.StepResult, error)
}

type SettingRepo interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
