package service

import (
	"context"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/importer"
)

// ScheduleJobService loads planning inputs and creates schedule jobs.
type ScheduleJobService interface {
	LoadLots(ctx context.Context) ([]*domain.Lot, error)
	LoadModels(ctx context.Context) ([]domain.PlanModel, error)
	ListSchedules(ctx context.Context) ([]domain.ScheduleInfo, error)
	SaveLotPriorities(ctx context.Context, lots []domain.Lot) error
	CreateScheduleJob(ctx context.Context, req CreateScheduleJobRequest) (*domain.ScheduleInfo, error)
}

// ResultService reads schedule results. An empty schedule id selects the
// most recently created schedule.
type ResultService interface {
	StepResults(ctx context.Context, scheduleID string) (*StepResultSet, error)
	LotResults(ctx context.Context, scheduleID string) (*LotResultReport, error)
	MachineUsage(ctx context.Context, scheduleID string) (*MachineUsageReport, error)
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

// CreateScheduleJobRequest carries the edited lots and chosen models.
type CreateScheduleJobRequest struct {
	Lots    []domain.Lot
	Models  []domain.PlanModel
	User    string
	Summary string
}

type StepResultSet struct {
	ScheduleID string
	Steps      []domain.StepResult
}

type LotResultReport struct {
	ScheduleID string
	Lots       []domain.LotPlanResult
	Stats      domain.PlanStatistics
}

type MachineUsageReport struct {
	ScheduleID string
	Machines   []domain.MachineUsage
}

type ImportResult struct {
	ModelCount    int
	LotCount      int
	ScheduleCount int
	StepCount     int
}
