package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewLotGantt
	ViewMachineGantt
	ViewMachineUsage
	ViewLotResults
	ViewScheduleJobs
	ViewPlanModels
	ViewCreateScheduleJob
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that sometimes need every key,
// including q, : and esc.
type inputCapturer interface {
	CapturesInput() bool
}
