package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/router"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

// barCommands maps each command to its one-line help.
var barCommands = map[string]string{
	"go":       "go <path>       open a screen (see routes)",
	"theme":    "theme [name]    switch theme: light, gray, dark",
	"routes":   "routes          list screen paths",
	"schedule": "schedule [id]   show results of a schedule (no id: latest)",
	"help":     "help            this list",
	"quit":     "quit, q         leave apsview",
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{input: ti, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(c.promptPrefixPlain()) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		c.Blur()
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.input.Reset()
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

func (c *commandBar) promptPrefix() string {
	return formatter.StylePurple.Render("apsview") + " " + formatter.Dim("❯") + " "
}

func (c *commandBar) promptPrefixPlain() string {
	return "apsview > "
}

// executeCommand runs one command line and returns the resulting message.
func (c *commandBar) executeCommand(line string) tea.Cmd {
	parts := strings.Fields(line)
	name, args := strings.ToLower(parts[0]), parts[1:]

	switch name {
	case "q", "quit", "exit":
		return func() tea.Msg { return quitMsg{} }

	case "help":
		return outputCmd(commandHelp())

	case "routes":
		return outputCmd(formatter.FormatRoutes(router.Routes()))

	case "go":
		if len(args) != 1 {
			return outputCmd(formatter.Dim("Usage: go <path>"))
		}
		route, ok := router.Resolve(args[0])
		if !ok {
			return outputCmd(formatter.StyleRed.Render(fmt.Sprintf("Unknown route %q.", args[0])) +
				"\n\n" + formatter.FormatRoutes(router.Routes()))
		}
		return pushView(viewForRoute(c.state, route.Name))

	case "theme":
		mgr := c.state.App.Theme
		if mgr == nil {
			return outputCmd(formatter.Dim("Theme is not available."))
		}
		if len(args) == 1 {
			return setThemeCmd(mgr, args[0])
		}
		value := string(mgr.Current())
		return startWizardCmd(c.state, "Theme", themeForm(&value), func() tea.Cmd {
			return setThemeCmd(mgr, value)
		})

	case "schedule":
		c.state.ScheduleID = ""
		if len(args) == 1 {
			c.state.ScheduleID = args[0]
		}
		return tea.Batch(refreshViews(), pushView(newLotResultsView(c.state)))
	}

	return outputCmd(formatter.StyleRed.Render(fmt.Sprintf("Unknown command %q.", name)) +
		" " + formatter.Dim("Type help for a list."))
}

func commandHelp() string {
	names := make([]string, 0, len(barCommands))
	for n := range barCommands {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(formatter.Header("Commands") + "\n\n")
	for _, n := range names {
		b.WriteString("  " + barCommands[n] + "\n")
	}
	return b.String()
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		c.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		names := make([]string, 0, len(barCommands))
		for n := range barCommands {
			names = append(names, n)
		}
		sort.Strings(names)
		c.input.SetSuggestions(filterSuggestions(names, parts[0]))
		return
	}

	if len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		c.input.SetSuggestions(nil)
		return
	}
	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}

	var args []string
	switch strings.ToLower(parts[0]) {
	case "go":
		for _, r := range router.Routes() {
			args = append(args, r.Path)
		}
	case "theme":
		for _, t := range theme.All {
			args = append(args, string(t))
		}
	}
	// Suggestions complete the whole line, not just the argument.
	full := make([]string, 0, len(args))
	for _, a := range filterSuggestions(args, prefix) {
		full = append(full, parts[0]+" "+a)
	}
	c.input.SetSuggestions(full)
}

// filterSuggestions returns the candidates that start with prefix,
// case-insensitively.
func filterSuggestions(candidates []string, prefix string) []string {
	lp := strings.ToLower(prefix)
	var out []string
	for _, s := range candidates {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			out = append(out, s)
		}
	}
	return out
}
