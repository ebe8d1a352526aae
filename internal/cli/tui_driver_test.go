package cli

import (
	"testing"

	"github.com/apsystem/apsview/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes it and drains Init.
// The theme subscription is released when the test ends.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	t.Cleanup(m.close)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Command types input into the command bar and runs it.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
}

// Go opens the screen at path through the command bar.
func (d *TestDriver) Go(path string) {
	d.T.Helper()
	d.Command("go " + path)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// ActiveViewID returns the ViewID of the top view, or -1 for an empty stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// CreateJobView returns the top view as the schedule-job editor.
func (d *TestDriver) CreateJobView() *createJobView {
	d.T.Helper()
	v, ok := d.ActiveView().(*createJobView)
	if !ok {
		d.T.Fatalf("active view is %T, not *createJobView", d.ActiveView())
	}
	return v
}
