package cli

import (
	"context"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type machineUsageLoadedMsg struct {
	report *service.MachineUsageReport
	err    error
}

// machineUsageView shows busy time and utilization per machine.
type machineUsageView struct {
	state *SharedState
	pane  reportPane
}

func newMachineUsageView(state *SharedState) *machineUsageView {
	return &machineUsageView{state: state, pane: newReportPane(state)}
}

func (v *machineUsageView) ID() ViewID    { return ViewMachineUsage }
func (v *machineUsageView) Title() string { return "Machine Usage" }
func (v *machineUsageView) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))}
}

func (v *machineUsageView) Init() tea.Cmd { return v.load() }

func (v *machineUsageView) load() tea.Cmd {
	app, id := v.state.App, v.state.ScheduleID
	return func() tea.Msg {
		report, err := app.Results.MachineUsage(context.Background(), id)
		return machineUsageLoadedMsg{report: report, err: err}
	}
}

func (v *machineUsageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case machineUsageLoadedMsg:
		if msg.err != nil {
			v.pane.setContent("", msg.err)
			return v, nil
		}
		v.pane.setContent(formatter.Header("Schedule "+msg.report.ScheduleID)+"\n\n"+
			formatter.FormatMachineUsage(msg.report.Machines), nil)
		return v, nil
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, v.load()
		}
	}
	return v, v.pane.update(v.state, msg)
}

func (v *machineUsageView) View() string { return v.pane.view() }
