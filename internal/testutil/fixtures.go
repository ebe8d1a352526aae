package testutil

import (
	"fmt"
	"time"

	"github.com/apsystem/apsview/internal/domain"
)

// Lot options
type LotOption func(*domain.Lot)

func WithPriority(p int) LotOption {
	return func(l *domain.Lot) {
		l.Priority = p
	}
}

func WithDueDate(d string) LotOption {
	return func(l *domain.Lot) {
		l.DueDate = d
	}
}

// WithOperations appends one operation per step name, each on machine group
// "MG" with a 60 minute duration.
func WithOperations(steps ...string) LotOption {
	return func(l *domain.Lot) {
		for i, s := range steps {
			l.Operations = append(l.Operations, domain.Operation{
				Step:         s,
				MachineGroup: "MG",
				Duration:     60,
				Sequence:     i + 1,
			})
		}
	}
}

func NewTestLot(lotID, product string, opts ...LotOption) *domain.Lot {
	l := &domain.Lot{
		LotID:    lotID,
		Product:  product,
		Priority: 50,
		DueDate:  "2024-03-10",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Plan model options
type ModelOption func(*domain.PlanModel)

func WithSelected(v string) ModelOption {
	return func(m *domain.PlanModel) {
		m.Selected = v
	}
}

func WithOptimizationType(t int) ModelOption {
	return func(m *domain.PlanModel) {
		m.OptimizationType = t
	}
}

func NewTestModel(seqNo int, name string, opts ...ModelOption) domain.PlanModel {
	m := domain.PlanModel{
		SeqNo:       seqNo,
		Name:        name,
		Description: fmt.Sprintf("%s model", name),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Step result options
type StepOption func(*domain.StepResult)

func WithBooking(b domain.BookingStatus) StepOption {
	return func(s *domain.StepResult) {
		s.Booking = b
	}
}

func WithStepIdx(i int) StepOption {
	return func(s *domain.StepResult) {
		s.StepIdx = i
	}
}

func WithProduct(p string) StepOption {
	return func(s *domain.StepResult) {
		s.Product = p
	}
}

// NewTestStep builds a step result on machine that runs from start for the
// given number of minutes.
func NewTestStep(scheduleID, lotID, step, machine string, start time.Time, minutes int, opts ...StepOption) domain.StepResult {
	s := domain.StepResult{
		ScheduleID: scheduleID,
		LotID:      lotID,
		Product:    "P1",
		Step:       step,
		Machine:    machine,
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestSchedule builds a schedule job created at the given time.
func NewTestSchedule(scheduleID string, created time.Time) *domain.ScheduleJob {
	return &domain.ScheduleJob{
		ScheduleInfo: domain.ScheduleInfo{
			ScheduleID: scheduleID,
			CreateDate: created.UTC().Format(time.RFC3339),
		},
		CreateUser:  "tester",
		PlanSummary: "test plan",
	}
}
