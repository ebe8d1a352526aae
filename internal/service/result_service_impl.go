package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/repository"
)

const (
	onTimeTolerance = time.Minute
	minorDelayLimit = 48 * time.Hour
)

type resultService struct {
	schedules repository.ScheduleRepo
	lots      repository.LotRepo
	observer  UseCaseObserver
}

func NewResultService(
	schedules repository.ScheduleRepo,
	lots repository.LotRepo,
	observers ...UseCaseObserver,
) ResultService {
	return &resultService{
		schedules: schedules,
		lots:      lots,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *resultService) resolve(ctx context.Context, scheduleID string) (string, error) {
	if scheduleID != "" {
		return scheduleID, nil
	}
	latest, err := s.schedules.Latest(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving schedule: %w", err)
	}
	return latest.ScheduleID, nil
}

func (s *resultService) StepResults(ctx context.Context, scheduleID string) (*StepResultSet, error) {
	id, err := s.resolve(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	steps, err := s.schedules.ListStepResults(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading step results: %w", err)
	}
	return &StepResultSet{ScheduleID: id, Steps: steps}, nil
}

// LotResults derives each lot's planned finish and its delay against the due
// date. Lots without a parseable due date carry no delay and are left out of
// the delay counts.
func (s *resultService) LotResults(ctx context.Context, scheduleID string) (report *LotResultReport, err error) {
	fields := map[string]any{"schedule_id": scheduleID}
	defer observe(ctx, s.observer, "lot-results", time.Now(), fields, &err)

	set, err := s.StepResults(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	fields["schedule_id"] = set.ScheduleID

	lots, err := s.lots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lots: %w", err)
	}
	dueDates := make(map[string]string, len(lots))
	for _, l := range lots {
		dueDates[l.LotID] = l.DueDate
	}

	results, stats := AnalyzeLots(set.Steps, dueDates)
	fields["lot_count"] = len(results)
	return &LotResultReport{ScheduleID: set.ScheduleID, Lots: results, Stats: stats}, nil
}

func (s *resultService) MachineUsage(ctx context.Context, scheduleID string) (*MachineUsageReport, error) {
	set, err := s.StepResults(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return &MachineUsageReport{ScheduleID: set.ScheduleID, Machines: MachineUsage(set.Steps)}, nil
}

// AnalyzeLots groups steps by lot and compares each lot's last planned end
// with its due date. Results are ordered by lot id.
func AnalyzeLots(steps []domain.StepResult, dueDates map[string]string) ([]domain.LotPlanResult, domain.PlanStatistics) {
	var stats domain.PlanStatistics
	byLot := make(map[string]*domain.LotPlanResult)
	var order []string

	for _, st := range steps {
		if stats.EarliestStart.IsZero() || st.Start.Before(stats.EarliestStart) {
			stats.EarliestStart = st.Start
		}
		if st.End.After(stats.LatestEnd) {
			stats.LatestEnd = st.End
		}

		r, ok := byLot[st.LotID]
		if !ok {
			r = &domain.LotPlanResult{LotID: st.LotID, Product: st.Product, Priority: st.Priority}
			byLot[st.LotID] = r
			order = append(order, st.LotID)
		}
		if st.End.After(r.PlanDate) {
			r.PlanDate = st.End
		}
	}
	if !stats.EarliestStart.IsZero() {
		stats.TotalDuration = stats.LatestEnd.Sub(stats.EarliestStart)
	}

	sort.Strings(order)
	results := make([]domain.LotPlanResult, 0, len(order))
	for _, id := range order {
		r := byLot[id]
		due := gantt.ParseDate(dueDates[id])
		if gantt.IsValid(due) {
			r.DueDate = due
			r.Delay = r.PlanDate.Sub(due)
			r.DelayText = FormatDelay(r.Delay)
			switch {
			case r.Delay.Abs() < onTimeTolerance:
				stats.OnTimeCount++
			case r.Delay < 0:
				stats.EarlyCount++
			case r.Delay <= minorDelayLimit:
				stats.MinorDelayCount++
			default:
				stats.MajorDelayCount++
			}
		}
		results = append(results, *r)
	}
	stats.BatchCount = len(results)
	return results, stats
}

// FormatDelay renders d as days and hours, "d:hh". Early finishes carry a
// leading minus and anything within a minute of zero is "0:00".
func FormatDelay(d time.Duration) string {
	if d.Abs() < onTimeTolerance {
		return "0:00"
	}
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	days := int(d / (24 * time.Hour))
	hours := int((d % (24 * time.Hour)) / time.Hour)
	return fmt.Sprintf("%s%d:%02d", sign, days, hours)
}

// MachineUsage sums busy minutes per machine over the span of all steps.
// Machines are ordered by name.
func MachineUsage(steps []domain.StepResult) []domain.MachineUsage {
	if len(steps) == 0 {
		return nil
	}
	start, end := steps[0].Start, steps[0].End
	byMachine := make(map[string]*domain.MachineUsage)
	for _, st := range steps {
		if st.Start.Before(start) {
			start = st.Start
		}
		if st.End.After(end) {
			end = st.End
		}
		u, ok := byMachine[st.Machine]
		if !ok {
			u = &domain.MachineUsage{Machine: st.Machine}
			byMachine[st.Machine] = u
		}
		u.StepCount++
		u.BusyMinutes += st.Minutes()
	}

	span := int(end.Sub(start).Minutes())
	usage := make([]domain.MachineUsage, 0, len(byMachine))
	for _, u := range byMachine {
		u.SpanMinutes = span
		if span > 0 {
			u.Utilization = float64(u.BusyMinutes) / float64(span)
		}
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Machine < usage[j].Machine })
	return usage
}
