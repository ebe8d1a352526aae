package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/importer"
	"github.com/apsystem/apsview/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema validates and stores the schema in one transaction. Plan
// models are replaced wholesale, lots are upserted and schedules must be new.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("import validation failed (%d errors): %w", len(errs), errors.Join(errs...))
	}

	batch := importer.Convert(schema, time.Now())
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if len(batch.PlanModels) > 0 {
			if err := repository.NewSQLitePlanModelRepo(tx).ReplaceAll(ctx, batch.PlanModels); err != nil {
				return err
			}
		}
		lots := repository.NewSQLiteLotRepo(tx)
		for _, l := range batch.Lots {
			if err := lots.Upsert(ctx, l); err != nil {
				return err
			}
		}
		schedules := repository.NewSQLiteScheduleRepo(tx)
		for _, job := range batch.Schedules {
			if err := schedules.Create(ctx, job); err != nil {
				return err
			}
		}
		return schedules.AddStepResults(ctx, batch.Steps)
	})
	if err != nil {
		return nil, fmt.Errorf("storing import: %w", err)
	}

	result = &ImportResult{
		ModelCount:    len(batch.PlanModels),
		LotCount:      len(batch.Lots),
		ScheduleCount: len(batch.Schedules),
		StepCount:     len(batch.Steps),
	}
	fields["lots"] = result.LotCount
	fields["steps"] = result.StepCount
	return result, nil
}
