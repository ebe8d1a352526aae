package importer

import (
	"fmt"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
)

// ValidateImportSchema checks the schema before conversion and returns every
// problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	errs = append(errs, validatePlanModels(schema.PlanModels)...)
	errs = append(errs, validateLots(schema.Lots)...)
	errs = append(errs, validateSchedules(schema.Schedules)...)
	return errs
}

func validatePlanModels(models []PlanModelImport) []error {
	var errs []error
	seen := make(map[int]bool)
	for i, m := range models {
		prefix := fmt.Sprintf("plan_models[%d]", i)
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.Name is required", prefix))
		}
		if seen[m.SeqNo] {
			errs = append(errs, fmt.Errorf("%s: duplicate SeqNo %d", prefix, m.SeqNo))
		}
		seen[m.SeqNo] = true
	}
	return errs
}

func validateLots(lots []LotImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, l := range lots {
		prefix := fmt.Sprintf("lots[%d]", i)
		if l.LotID == "" {
			errs = append(errs, fmt.Errorf("%s.LotId is required", prefix))
		} else if seen[l.LotID] {
			errs = append(errs, fmt.Errorf("%s: duplicate LotId %q", prefix, l.LotID))
		}
		seen[l.LotID] = true

		errs = append(errs, validateOptionalDate(prefix+".DueDate", l.DueDate)...)

		steps := make(map[string]bool)
		for j, op := range l.Operations {
			opPrefix := fmt.Sprintf("%s.Operations[%d]", prefix, j)
			if op.Step == "" {
				errs = append(errs, fmt.Errorf("%s.Step is required", opPrefix))
				continue
			}
			if steps[op.Step] {
				errs = append(errs, fmt.Errorf("%s: duplicate Step %q", opPrefix, op.Step))
			}
			steps[op.Step] = true
			if op.Duration < 0 {
				errs = append(errs, fmt.Errorf("%s.Duration must be >= 0, got %d", opPrefix, op.Duration))
			}
		}
	}
	return errs
}

func validateSchedules(schedules []ScheduleImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, s := range schedules {
		prefix := fmt.Sprintf("schedules[%d]", i)
		if s.ScheduleID == "" {
			errs = append(errs, fmt.Errorf("%s.ScheduleId is required", prefix))
		} else if seen[s.ScheduleID] {
			errs = append(errs, fmt.Errorf("%s: duplicate ScheduleId %q", prefix, s.ScheduleID))
		}
		seen[s.ScheduleID] = true

		errs = append(errs, validateOptionalDate(prefix+".CreateDate", s.CreateDate)...)
		errs = append(errs, validateSteps(prefix, s.Results)...)
	}
	return errs
}

func validateSteps(prefix string, steps []StepImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, r := range steps {
		p := fmt.Sprintf("%s.LotStepResult[%d]", prefix, i)
		if r.LotID == "" {
			errs = append(errs, fmt.Errorf("%s.LotId is required", p))
		}
		if r.Step == "" {
			errs = append(errs, fmt.Errorf("%s.Step is required", p))
		}
		if r.Machine == "" {
			errs = append(errs, fmt.Errorf("%s.Machine is required", p))
		}
		key := r.LotID + "/" + r.Step
		if r.LotID != "" && r.Step != "" {
			if seen[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate step %s", p, key))
			}
			seen[key] = true
		}
		if !domain.BookingStatus(r.Booking).Valid() {
			errs = append(errs, fmt.Errorf("%s.Booking: unknown value %d (expected 0, 1 or 2)", p, r.Booking))
		}

		start := gantt.ParseDate(r.Start)
		end := gantt.ParseDate(r.End)
		if !gantt.IsValid(start) {
			errs = append(errs, fmt.Errorf("%s.Start: invalid date %q", p, r.Start))
		}
		if !gantt.IsValid(end) {
			errs = append(errs, fmt.Errorf("%s.End: invalid date %q", p, r.End))
		}
		if gantt.IsValid(start) && gantt.IsValid(end) && !start.Before(end) {
			errs = append(errs, fmt.Errorf("%s: Start %q must be before End %q", p, r.Start, r.End))
		}
	}
	return errs
}

func validateOptionalDate(field, value string) []error {
	if value == "" {
		return nil
	}
	if !gantt.IsValid(gantt.ParseDate(value)) {
		return []error{fmt.Errorf("%s: invalid date %q", field, value)}
	}
	return nil
}
