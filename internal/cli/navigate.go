package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type replaceViewMsg struct {
	view View
}

// cmdOutputMsg carries text output from a command bar command to be shown
// in place of the active view until the next key press.
type cmdOutputMsg struct {
	output string
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a form view completes or is cancelled.
// The appModel pops the form, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
