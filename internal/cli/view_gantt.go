package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type ganttGrouping int

const (
	ganttByLot ganttGrouping = iota
	ganttByMachine
)

// stepsLoadedMsg carries the planned steps of a schedule.
type stepsLoadedMsg struct {
	set *service.StepResultSet
	err error
}

// ganttView draws the planned steps of the active schedule as a Gantt
// chart, one row per lot or per machine.
type ganttView struct {
	state    *SharedState
	grouping ganttGrouping
	mode     gantt.Mode
	chart    *gantt.Timeline
	vp       viewport.Model

	scheduleID string
	steps      []domain.StepResult
	loading    bool
	err        error
}

func newGanttView(state *SharedState, grouping ganttGrouping) *ganttView {
	return &ganttView{
		state:    state,
		grouping: grouping,
		mode:     state.App.ganttMode(),
		chart:    gantt.NewTimeline(state.App.ChartColumns),
		vp:       viewport.New(max(state.Width, 20), max(state.ContentHeight()-2, 1)),
		loading:  true,
	}
}

func (v *ganttView) ID() ViewID {
	if v.grouping == ganttByMachine {
		return ViewMachineGantt
	}
	return ViewLotGantt
}

func (v *ganttView) Title() string {
	if v.grouping == ganttByMachine {
		return "Machine Gantt"
	}
	return "Lot Gantt"
}

func (v *ganttView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("h", "d", "w", "m"), key.WithHelp("h/d/w/m", "hour/day/week/month")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "lot/machine")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *ganttView) Init() tea.Cmd {
	return loadStepsCmd(v.state)
}

func loadStepsCmd(state *SharedState) tea.Cmd {
	app, id := state.App, state.ScheduleID
	return func() tea.Msg {
		set, err := app.Results.StepResults(context.Background(), id)
		return stepsLoadedMsg{set: set, err: err}
	}
}

func (v *ganttView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.scheduleID = msg.set.ScheduleID
		v.steps = msg.set.Steps
		if v.grouping == ganttByMachine {
			v.chart.SetItems(gantt.MachineItems(v.steps))
		} else {
			v.chart.SetItems(gantt.LotItems(v.steps))
		}
		gantt.SetScale(v.chart, v.mode)
		v.vp.SetContent(v.chart.View())
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, loadStepsCmd(v.state)

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = max(v.state.ContentHeight()-2, 1)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "h", "d", "w", "m":
			v.zoom(zoomKeys[msg.String()])
			return v, nil
		case "r":
			v.loading = true
			return v, loadStepsCmd(v.state)
		case "tab":
			other := newGanttView(v.state, ganttByMachine)
			if v.grouping == ganttByMachine {
				other = newGanttView(v.state, ganttByLot)
			}
			other.mode = v.mode
			return v, replaceView(other)
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

var zoomKeys = map[string]gantt.Mode{
	"h": gantt.ModeHour,
	"d": gantt.ModeDay,
	"w": gantt.ModeWeek,
	"m": gantt.ModeMonth,
}

func (v *ganttView) zoom(mode gantt.Mode) {
	if gantt.SetScale(v.chart, mode) {
		v.mode = mode
		v.vp.SetContent(v.chart.View())
	}
}

func (v *ganttView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var modes []string
	for _, m := range gantt.Modes {
		if m == v.mode {
			modes = append(modes, formatter.StyleHeader.Render(string(m)))
		} else {
			modes = append(modes, formatter.Dim(string(m)))
		}
	}
	head := fmt.Sprintf("%s %s  %s  %s", formatter.Bold("Schedule"), v.scheduleID,
		strings.Join(modes, formatter.Dim(" · ")),
		formatter.Dim(fmt.Sprintf("%d steps", len(v.steps))))

	if len(v.steps) == 0 {
		return head + "\n\n  " + formatter.Dim("No planned steps.")
	}
	return head + "\n" + v.vp.View()
}
