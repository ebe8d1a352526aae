package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrNoModels = errors.New("no plan model selected")
	ErrNoLots   = errors.New("no lots to schedule")
)

type scheduleJobService struct {
	models    repository.PlanModelRepo
	lots      repository.LotRepo
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewScheduleJobService(
	models repository.PlanModelRepo,
	lots repository.LotRepo,
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleJobService {
	return &scheduleJobService{
		models:    models,
		lots:      lots,
		schedules: schedules,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *scheduleJobService) LoadLots(ctx context.Context) ([]*domain.Lot, error) {
	lots, err := s.lots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lots: %w", err)
	}
	return lots, nil
}

func (s *scheduleJobService) LoadModels(ctx context.Context) ([]domain.PlanModel, error) {
	models, err := s.models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plan models: %w", err)
	}
	return models, nil
}

func (s *scheduleJobService) ListSchedules(ctx context.Context) ([]domain.ScheduleInfo, error) {
	infos, err := s.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedules: %w", err)
	}
	return infos, nil
}

// SaveLotPriorities writes the priority of every lot in one transaction.
func (s *scheduleJobService) SaveLotPriorities(ctx context.Context, lots []domain.Lot) (err error) {
	defer observe(ctx, s.observer, "save-lot-priorities", time.Now(), map[string]any{"lot_count": len(lots)}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return savePriorities(ctx, repository.NewSQLiteLotRepo(tx), lots)
	})
}

// CreateScheduleJob persists the lot priorities and records a new schedule
// job in a single transaction.
func (s *scheduleJobService) CreateScheduleJob(ctx context.Context, req CreateScheduleJobRequest) (info *domain.ScheduleInfo, err error) {
	fields := map[string]any{
		"lot_count":   len(req.Lots),
		"model_count": len(req.Models),
	}
	defer observe(ctx, s.observer, "create-schedule-job", time.Now(), fields, &err)

	if len(req.Models) == 0 {
		return nil, ErrNoModels
	}
	if len(req.Lots) == 0 {
		return nil, ErrNoLots
	}

	raw, err := json.Marshal(req.Lots)
	if err != nil {
		return nil, fmt.Errorf("encoding lot plan: %w", err)
	}

	summary := req.Summary
	if summary == "" {
		summary = defaultSummary(req)
	}

	job := &domain.ScheduleJob{
		ScheduleInfo: domain.ScheduleInfo{
			ScheduleID: NewScheduleID(),
			CreateDate: s.now().UTC().Format(time.RFC3339),
		},
		CreateUser:       req.User,
		PlanSummary:      summary,
		OptimizationType: req.Models[0].OptimizationType,
		LotPlanRaw:       string(raw),
	}
	fields["schedule_id"] = job.ScheduleID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := savePriorities(ctx, repository.NewSQLiteLotRepo(tx), req.Lots); err != nil {
			return err
		}
		if err := repository.NewSQLiteScheduleRepo(tx).Create(ctx, job); err != nil {
			return fmt.Errorf("creating schedule job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job.ScheduleInfo, nil
}

// NewScheduleID returns an id of the form SCH_XXXXXXXX.
func NewScheduleID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "SCH_" + strings.ToUpper(id[:8])
}

func savePriorities(ctx context.Context, repo repository.LotRepo, lots []domain.Lot) error {
	for _, l := range lots {
		if err := repo.UpdatePriority(ctx, l.LotID, l.Priority); err != nil {
			return fmt.Errorf("saving priority: %w", err)
		}
	}
	return nil
}

func defaultSummary(req CreateScheduleJobRequest) string {
	names := make([]string, 0, len(req.Models))
	for _, m := range req.Models {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("%d lots; models: %s", len(req.Lots), strings.Join(names, ", "))
}
