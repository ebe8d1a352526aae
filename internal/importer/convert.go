package importer

import (
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
)

// Batch is a converted import ready for persistence.
type Batch struct {
	PlanModels []domain.PlanModel
	Lots       []*domain.Lot
	Schedules  []*domain.ScheduleJob
	Steps      []domain.StepResult
}

// Convert transforms a validated ImportSchema into domain objects. Call
// ValidateImportSchema first; Convert assumes the schema is valid. Schedules
// without a CreateDate are stamped with now.
func Convert(schema *ImportSchema, now time.Time) *Batch {
	b := &Batch{
		PlanModels: make([]domain.PlanModel, 0, len(schema.PlanModels)),
		Lots:       make([]*domain.Lot, 0, len(schema.Lots)),
	}

	for _, m := range schema.PlanModels {
		b.PlanModels = append(b.PlanModels, domain.PlanModel{
			SeqNo:            m.SeqNo,
			Select:           m.Select,
			OptimizationType: m.OptimizationType,
			Name:             m.Name,
			Description:      m.Description,
			Remark:           m.Remark,
			Selected:         m.Selected,
		})
	}

	for _, l := range schema.Lots {
		lot := &domain.Lot{
			LotID:    l.LotID,
			Product:  l.Product,
			Priority: l.Priority,
			DueDate:  l.DueDate,
		}
		for i, op := range l.Operations {
			seq := op.Sequence
			if seq == 0 {
				seq = i + 1
			}
			lot.Operations = append(lot.Operations, domain.Operation{
				Step:          op.Step,
				MachineGroup:  op.MachineGroup,
				Duration:      op.Duration,
				Sequence:      seq,
				StepStatus:    op.StepStatus,
				PlanMachineID: op.PlanMachineID,
				PlanCheckIn:   op.PlanCheckIn,
				PlanCheckOut:  op.PlanCheckOut,
			})
		}
		b.Lots = append(b.Lots, lot)
	}

	for _, s := range schema.Schedules {
		created := now.UTC()
		if t := gantt.ParseDate(s.CreateDate); gantt.IsValid(t) {
			created = t.UTC()
		}
		b.Schedules = append(b.Schedules, &domain.ScheduleJob{
			ScheduleInfo: domain.ScheduleInfo{
				ScheduleID: s.ScheduleID,
				CreateDate: created.Format(time.RFC3339),
			},
			CreateUser:       s.CreateUser,
			PlanSummary:      s.PlanSummary,
			OptimizationType: s.OptimizationType,
		})
		for _, r := range s.Results {
			b.Steps = append(b.Steps, domain.StepResult{
				ScheduleID: s.ScheduleID,
				LotID:      r.LotID,
				Product:    r.Product,
				Priority:   r.Priority,
				StepIdx:    r.StepIdx,
				Step:       r.Step,
				Machine:    r.Machine,
				Start:      gantt.ParseDate(r.Start),
				End:        gantt.ParseDate(r.End),
				Booking:    domain.BookingStatus(r.Booking),
			})
		}
	}
	return b
}
