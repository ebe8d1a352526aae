package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type schedulesLoadedMsg struct {
	schedules []domain.ScheduleInfo
	err       error
}

// scheduleJobsView lists created schedules. Choosing one makes it the
// schedule every result screen shows.
type scheduleJobsView struct {
	state     *SharedState
	schedules []domain.ScheduleInfo
	cursor    int
	loading   bool
	err       error
}

func newScheduleJobsView(state *SharedState) *scheduleJobsView {
	return &scheduleJobsView{state: state, loading: true}
}

func (v *scheduleJobsView) ID() ViewID    { return ViewScheduleJobs }
func (v *scheduleJobsView) Title() string { return "Schedule Jobs" }

func (v *scheduleJobsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "make active")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "use latest")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gantt")),
	}
}

func (v *scheduleJobsView) Init() tea.Cmd { return v.load() }

func (v *scheduleJobsView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		schedules, err := app.Jobs.ListSchedules(context.Background())
		return schedulesLoadedMsg{schedules: schedules, err: err}
	}
}

func (v *scheduleJobsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case schedulesLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.schedules = msg.schedules
		if v.cursor >= len(v.schedules) {
			v.cursor = max(len(v.schedules)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.schedules)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.schedules) {
				v.state.ScheduleID = v.schedules[v.cursor].ScheduleID
				return v, refreshViews()
			}
		case "x":
			v.state.ScheduleID = ""
			return v, refreshViews()
		case "g":
			if v.cursor < len(v.schedules) {
				v.state.ScheduleID = v.schedules[v.cursor].ScheduleID
				return v, tea.Batch(refreshViews(), pushView(newGanttView(v.state, ganttByLot)))
			}
		}
	}
	return v, nil
}

func (v *scheduleJobsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.schedules) == 0 {
		return "\n  " + formatter.Dim("No schedules. Create one from /create-schedule-job.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, s := range v.schedules {
		marker := "  "
		if s.ScheduleID == v.state.ScheduleID {
			marker = formatter.StyleGreen.Render("● ")
		}
		line := fmt.Sprintf("%-14s %s", s.ScheduleID, formatter.Dim(gantt.FormatDate(s.CreateDate)))
		if i == v.cursor {
			b.WriteString(formatter.StyleHeader.Render("▸ ") + marker + formatter.Bold(line) + "\n")
		} else {
			b.WriteString("  " + marker + line + "\n")
		}
	}
	return b.String()
}
