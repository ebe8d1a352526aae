package cli

import (
	"context"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type lotResultsLoadedMsg struct {
	report *service.LotResultReport
	err    error
}

// lotResultsView lists each lot's plan date and delay with the schedule
// statistics underneath.
type lotResultsView struct {
	state *SharedState
	pane  reportPane
}

func newLotResultsView(state *SharedState) *lotResultsView {
	return &lotResultsView{state: state, pane: newReportPane(state)}
}

func (v *lotResultsView) ID() ViewID    { return ViewLotResults }
func (v *lotResultsView) Title() string { return "Lot Results" }
func (v *lotResultsView) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))}
}

func (v *lotResultsView) Init() tea.Cmd { return v.load() }

func (v *lotResultsView) load() tea.Cmd {
	app, id := v.state.App, v.state.ScheduleID
	return func() tea.Msg {
		report, err := app.Results.LotResults(context.Background(), id)
		return lotResultsLoadedMsg{report: report, err: err}
	}
}

func (v *lotResultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lotResultsLoadedMsg:
		if msg.err != nil {
			v.pane.setContent("", msg.err)
			return v, nil
		}
		r := msg.report
		v.pane.setContent(formatter.Header("Schedule "+r.ScheduleID)+"\n\n"+
			formatter.FormatLotResults(r.Lots, r.Stats), nil)
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

func (v *lotResultsView) View() string { return v.pane.view() }
