package cli

import (
	"fmt"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/router"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the menu of every routed screen.
type homeView struct {
	state  *SharedState
	routes []router.Route
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	var routes []router.Route
	for _, r := range router.Routes() {
		if r.Name != router.Home {
			routes = append(routes, r)
		}
	}
	return &homeView{state: state, routes: routes}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.routes)-1 {
			v.cursor++
		}
	case "enter":
		return v, pushView(viewForRoute(v.state, v.routes[v.cursor].Name))
	default:
		// Digits jump straight to a screen.
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(v.routes) {
				v.cursor = i
				return v, pushView(viewForRoute(v.state, v.routes[i].Name))
			}
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("APS schedule viewer") + "\n\n")
	for i, r := range v.routes {
		line := fmt.Sprintf("%d  %-22s %s", i+1, r.Title, formatter.Dim(r.Path))
		if i == v.cursor {
			b.WriteString("  " + formatter.StyleHeader.Render("▸ ") + formatter.Bold(line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString("\n  " + formatter.Dim("Active schedule: "+v.state.ScheduleLabel()) + "\n")
	return b.String()
}
