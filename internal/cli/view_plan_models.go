package cli

import (
	"context"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type modelsLoadedMsg struct {
	models []domain.PlanModel
	err    error
}

type planModelsView struct {
	state *SharedState
	pane  reportPane
}

func newPlanModelsView(state *SharedState) *planModelsView {
	return &planModelsView{state: state, pane: newReportPane(state)}
}

func (v *planModelsView) ID() ViewID    { return ViewPlanModels }
func (v *planModelsView) Title() string { return "Plan Models" }
func (v *planModelsView) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))}
}

func (v *planModelsView) Init() tea.Cmd { return v.load() }

func (v *planModelsView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		models, err := app.Jobs.LoadModels(context.Background())
		return modelsLoadedMsg{models: models, err: err}
	}
}

func (v *planModelsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modelsLoadedMsg:
		v.pane.setContent(formatter.FormatModels(msg.models), msg.err)
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

func (v *planModelsView) View() string { return v.pane.view() }
