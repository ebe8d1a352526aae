package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// ScheduleID is the schedule the result views show. Empty means the
	// most recently created one.
	ScheduleID string

	// Terminal dimensions
	Width  int
	Height int
}

// ScheduleLabel names the active schedule for headers.
func (s *SharedState) ScheduleLabel() string {
	if s.ScheduleID == "" {
		return "latest"
	}
	return s.ScheduleID
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
