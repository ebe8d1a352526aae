package cli

import (
	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reportPane is the scrollable body shared by the read-only table views.
type reportPane struct {
	vp      viewport.Model
	loading bool
	err     error
}

func newReportPane(state *SharedState) reportPane {
	return reportPane{
		vp:      viewport.New(max(state.Width, 20), state.ContentHeight()),
		loading: true,
	}
}

func (p *reportPane) setContent(s string, err error) {
	p.loading = false
	p.err = err
	if err == nil {
		p.vp.SetContent(s)
		p.vp.GotoTop()
	}
}

func (p *reportPane) update(state *SharedState, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.vp.Width = msg.Width
		p.vp.Height = state.ContentHeight()
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		p.vp, cmd = p.vp.Update(msg)
		return cmd
	}
	return nil
}

func (p *reportPane) view() string {
	if p.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if p.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+p.err.Error())
	}
	return p.vp.View()
}
