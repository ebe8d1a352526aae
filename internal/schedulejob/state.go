// Package schedulejob holds the editing state behind the create-schedule-job
// screen: the candidate plan models, the lot list and the rules that filter
// and bulk-adjust it.
package schedulejob

import (
	"strings"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/rs/zerolog"
)

// PriorityStep is the amount IncreasePriority and DecreasePriority apply to
// each filtered lot.
const PriorityStep = 10

// debugTimeLayout matches an ISO-8601 UTC timestamp with milliseconds.
const debugTimeLayout = "2006-01-02T15:04:05.000Z"

// State is the single owner of the schedule-job collections. Callers read
// through the accessors and mutate only through setters and actions.
// It is not safe for concurrent use.
type State struct {
	models               []domain.PlanModel
	lots                 []*domain.Lot
	productFilter        string
	scheduleID           string
	showScheduleSelector bool
	availableSchedules   []domain.ScheduleInfo
	tempScheduleID       *string
	debugLogs            []string

	console zerolog.Logger
	now     func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithConsole mirrors debug log lines to the given logger.
func WithConsole(l zerolog.Logger) Option {
	return func(s *State) { s.console = l }
}

// WithClock overrides the clock used to stamp debug log lines.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// New returns an empty State.
func New(opts ...Option) *State {
	s := &State{
		console: zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) SetModels(models []domain.PlanModel) { s.models = models }

// SetLots replaces the lot collection. Entries are not validated; a nil entry
// only fails once a non-empty filter is evaluated against it.
func (s *State) SetLots(lots []*domain.Lot) { s.lots = lots }

// SetProductFilter replaces the filter text. The empty string means no filter.
func (s *State) SetProductFilter(filter string) { s.productFilter = filter }

func (s *State) SetScheduleID(id string) { s.scheduleID = id }

func (s *State) SetShowScheduleSelector(show bool) { s.showScheduleSelector = show }

func (s *State) SetAvailableSchedules(schedules []domain.ScheduleInfo) {
	s.availableSchedules = schedules
}

// SetTempScheduleID sets the pending selection in the schedule selector.
// Pass nil to clear it.
func (s *State) SetTempScheduleID(id *string) { s.tempScheduleID = id }

func (s *State) Models() []domain.PlanModel                { return s.models }
func (s *State) Lots() []*domain.Lot                       { return s.lots }
func (s *State) ProductFilter() string                     { return s.productFilter }
func (s *State) ScheduleID() string                        { return s.scheduleID }
func (s *State) ShowScheduleSelector() bool                { return s.showScheduleSelector }
func (s *State) AvailableSchedules() []domain.ScheduleInfo { return s.availableSchedules }
func (s *State) TempScheduleID() *string                   { return s.tempScheduleID }

// DebugLogs returns a copy of the debug log in append order.
func (s *State) DebugLogs() []string {
	out := make([]string, len(s.debugLogs))
	copy(out, s.debugLogs)
	return out
}

// FilteredLots returns the lots whose Product or LotID contains the filter
// text, ignoring case. With an empty filter it returns the lot slice itself.
// The result shares lot pointers with Lots, so edits through it are visible
// in both. It is recomputed on every call.
func (s *State) FilteredLots() []*domain.Lot {
	return FilterLots(s.lots, s.productFilter)
}

// FilterLots is the pure projection behind State.FilteredLots.
func FilterLots(lots []*domain.Lot, filter string) []*domain.Lot {
	if filter == "" {
		return lots
	}
	needle := strings.ToLower(filter)
	var out []*domain.Lot
	for _, lot := range lots {
		if strings.Contains(strings.ToLower(lot.Product), needle) ||
			strings.Contains(strings.ToLower(lot.LotID), needle) {
			out = append(out, lot)
		}
	}
	return out
}

// AddDebugLog appends "[<timestamp>] message" and writes the same line to the
// console logger.
func (s *State) AddDebugLog(message string) {
	line := "[" + s.now().UTC().Format(debugTimeLayout) + "] " + message
	s.debugLogs = append(s.debugLogs, line)
	s.console.Info().Msg(line)
}

func (s *State) ClearDebugLogs() { s.debugLogs = nil }

// IncreasePriority raises the priority of every filtered lot by PriorityStep.
// No upper bound is applied.
func (s *State) IncreasePriority() { s.shiftPriority(PriorityStep) }

// DecreasePriority lowers the priority of every filtered lot by PriorityStep.
// Priorities may go negative.
func (s *State) DecreasePriority() { s.shiftPriority(-PriorityStep) }

func (s *State) shiftPriority(delta int) {
	for _, lot := range s.FilteredLots() {
		lot.Priority += delta
	}
}

// SelectedModels returns the models whose Selected binding is set. Any value
// other than "", "0" and "false" counts as checked; the binding itself is
// left as is.
func (s *State) SelectedModels() []domain.PlanModel {
	var out []domain.PlanModel
	for _, m := range s.models {
		if IsChecked(m.Selected) {
			out = append(out, m)
		}
	}
	return out
}

// IsChecked interprets a checkbox binding value.
func IsChecked(binding string) bool {
	switch strings.ToLower(strings.TrimSpace(binding)) {
	case "", "0", "false":
		return false
	}
	return true
}

// Snapshot copies the current lots by value, skipping nil entries.
func (s *State) Snapshot() []domain.Lot {
	out := make([]domain.Lot, 0, len(s.lots))
	for _, lot := range s.lots {
		if lot != nil {
			out = append(out, *lot)
		}
	}
	return out
}
