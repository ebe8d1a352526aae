package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_HomeListsRoutes(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	view := d.View()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Contains(t, view, "apsview")
	assert.Contains(t, view, "Lot Gantt")
	assert.Contains(t, view, "/create-schedule-job")
	assert.Contains(t, view, "[latest]")
	assert.Contains(t, view, "[Light]")
}

func TestTUI_HomeEnterOpensSelectedRoute(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressDown()
	d.PressEnter()
	assert.Equal(t, ViewMachineGantt, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_GoCommand_PushesView(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Go("/machine-usage")
	assert.Equal(t, ViewMachineUsage, d.ActiveViewID())
	assert.False(t, d.CmdBarFocused())
	assert.Contains(t, d.View(), "M01")
	assert.Contains(t, d.View(), "Machine Usage")

	d.Go("lot-results")
	assert.Equal(t, ViewLotResults, d.ActiveViewID())
	assert.Equal(t, 3, d.ViewStackLen())
	assert.Contains(t, d.View(), "L002")
}

func TestTUI_GoCommand_UnknownRoute(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Go("/nowhere")
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Contains(t, d.View(), `Unknown route "/nowhere"`)

	// Any key dismisses the output.
	d.PressEsc()
	assert.NotContains(t, d.View(), "Unknown route")
}

func TestTUI_UnknownCommand(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Command("frobnicate")
	assert.Contains(t, d.View(), `Unknown command "frobnicate"`)
}

func TestTUI_QuitCommand(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Command("q")
	assert.True(t, d.Quitting)
}

func TestTUI_QuitKey(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestTUI_ThemeKeyCyclesAndPersists(t *testing.T) {
	t.Cleanup(func() { formatter.ApplyTheme(theme.Light) })
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('t')
	assert.Equal(t, theme.Gray, app.Theme.Current())
	assert.Equal(t, formatter.PaletteFor(theme.Gray).Header, formatter.ColorHeader)
	assert.Contains(t, d.View(), "[Gray]")

	d.PressKey('t')
	d.PressKey('t')
	assert.Equal(t, theme.Light, app.Theme.Current())

	loaded, err := app.Theme.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.Light, loaded)
}

func TestTUI_ThemeCommandWithName(t *testing.T) {
	t.Cleanup(func() { formatter.ApplyTheme(theme.Light) })
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Command("theme dark")
	assert.Equal(t, theme.Dark, app.Theme.Current())
	assert.Contains(t, d.View(), "[Dark]")
}

func TestTUI_ThemeCommandWithoutName_OpensForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("theme")
	assert.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Contains(t, d.View(), "Cancelled.")
}

func TestTUI_ScheduleCommand_SetsActiveSchedule(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("schedule SCH_DEMO0001")
	assert.Equal(t, "SCH_DEMO0001", d.State().ScheduleID)
	assert.Equal(t, ViewLotResults, d.ActiveViewID())
	assert.Contains(t, d.View(), "[SCH_DEMO0001]")
	assert.Contains(t, d.View(), "L001")
}

func TestTUI_CommandBarHistory(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("routes")
	d.PressEsc()
	d.PressKey(':')
	d.PressUp()
	m := d.appModel()
	assert.Equal(t, "routes", m.cmdBar.input.Value())
}

func TestTUI_GanttZoomKeys(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/lot-gantt")

	v, ok := d.ActiveView().(*ganttView)
	require.True(t, ok)
	assert.Equal(t, gantt.ModeDay, v.mode)
	assert.Equal(t, "week", v.chart.Config().ScaleUnit)
	assert.Contains(t, d.View(), "L001")

	d.PressKey('h')
	assert.Equal(t, gantt.ModeHour, v.mode)
	assert.Equal(t, "day", v.chart.Config().ScaleUnit)

	d.PressKey('m')
	assert.Equal(t, gantt.ModeMonth, v.mode)
	assert.Equal(t, "year", v.chart.Config().ScaleUnit)
}

func TestTUI_MachineGantt_Rows(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/machine-gantt")

	view := d.View()
	assert.Equal(t, ViewMachineGantt, d.ActiveViewID())
	assert.Contains(t, view, "M01")
	assert.Contains(t, view, "M02")
	assert.Contains(t, view, "3 steps")
}

func TestTUI_GanttWithoutSchedule_ShowsError(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Go("/lot-gantt")
	assert.Contains(t, d.View(), "Error:")
}

func TestTUI_ScheduleJobs_SelectAndClear(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/schedule-jobs")
	assert.Contains(t, d.View(), "SCH_DEMO0001")

	d.PressEnter()
	assert.Equal(t, "SCH_DEMO0001", d.State().ScheduleID)

	d.PressKey('x')
	assert.Empty(t, d.State().ScheduleID)
}

func TestTUI_PlanModels(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/plan-models")
	assert.Contains(t, d.View(), "Throughput")
}

func TestTUI_CreateJob_FilterAndPriority(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")
	v := d.CreateJobView()
	require.Len(t, v.sj.Lots(), 2)

	d.PressKey('/')
	d.Type("widget")
	assert.Equal(t, "widget", v.sj.ProductFilter())
	require.Len(t, v.sj.FilteredLots(), 1)
	d.PressEnter()

	d.PressKey('+')
	assert.Equal(t, 50, v.sj.FilteredLots()[0].Priority)
	d.PressKey('-')
	d.PressKey('-')
	assert.Equal(t, 30, v.sj.FilteredLots()[0].Priority)

	logs := strings.Join(v.sj.DebugLogs(), "\n")
	assert.Contains(t, logs, "priority +10 on 1 lots")
	assert.Contains(t, logs, "priority -10 on 1 lots")
}

func TestTUI_CreateJob_FilterHintBelowHeader(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")

	d.PressKey('/')
	d.Type("widget")
	d.PressEnter()

	lines := strings.Split(d.View(), "\n")
	idx := -1
	for i, line := range lines {
		if strings.Contains(line, `filter "widget"`) {
			idx = i
			break
		}
	}
	require.Greater(t, idx, 1, "filter hint not rendered")
	assert.NotContains(t, lines[idx], "─")
	assert.Empty(t, strings.Trim(lines[idx-1], " ─"), "hint should follow the header rule")
	assert.Equal(t, "LOTS", strings.TrimSpace(lines[idx-2]))
}

func TestTUI_CreateJob_FilterCapturesKeys(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")
	v := d.CreateJobView()

	d.PressKey('/')
	d.Type("qt")
	assert.False(t, d.Quitting)
	assert.Equal(t, "qt", v.sj.ProductFilter())
	assert.Empty(t, v.sj.FilteredLots())

	// esc clears the filter and stays on the view.
	d.PressEsc()
	assert.Equal(t, ViewCreateScheduleJob, d.ActiveViewID())
	assert.Empty(t, v.sj.ProductFilter())
	assert.Len(t, v.sj.FilteredLots(), 2)
}

func TestTUI_CreateJob_ToggleModel(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")
	v := d.CreateJobView()
	require.Len(t, v.sj.SelectedModels(), 1)

	d.PressKey('2')
	assert.Len(t, v.sj.SelectedModels(), 2)
	assert.Equal(t, "1", v.sj.Models()[1].Selected)

	d.PressKey('1')
	d.PressKey('2')
	assert.Empty(t, v.sj.SelectedModels())
	assert.Equal(t, "", v.sj.Models()[0].Selected)
}

func TestTUI_CreateJob_ScheduleSelector(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")
	v := d.CreateJobView()

	d.PressKey('s')
	require.True(t, v.sj.ShowScheduleSelector())
	require.NotNil(t, v.sj.TempScheduleID())
	assert.Equal(t, "SCH_DEMO0001", *v.sj.TempScheduleID())

	d.PressEsc()
	assert.Equal(t, ViewCreateScheduleJob, d.ActiveViewID())
	assert.False(t, v.sj.ShowScheduleSelector())
	assert.Nil(t, v.sj.TempScheduleID())
	assert.Empty(t, v.sj.ScheduleID())

	d.PressKey('s')
	d.PressEnter()
	assert.Equal(t, "SCH_DEMO0001", v.sj.ScheduleID())
	assert.Equal(t, "SCH_DEMO0001", d.State().ScheduleID)
}

func TestTUI_CreateJob_Create(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)
	d.Go("/create-schedule-job")
	v := d.CreateJobView()

	d.PressKey('+')
	d.PressKey('c')

	id := d.State().ScheduleID
	require.True(t, strings.HasPrefix(id, "SCH_"), id)
	assert.NotEqual(t, "SCH_DEMO0001", id)
	assert.Equal(t, id, v.sj.ScheduleID())
	assert.Contains(t, strings.Join(v.sj.DebugLogs(), "\n"), "created schedule "+id)

	infos, err := app.Jobs.ListSchedules(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	lots, err := app.Jobs.LoadLots(context.Background())
	require.NoError(t, err)
	for _, l := range lots {
		assert.Contains(t, []int{60, 50}, l.Priority, l.LotID)
	}
}

func TestTUI_CreateJob_NoModelsLogsFailure(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/create-schedule-job")
	v := d.CreateJobView()

	d.PressKey('1')
	d.PressKey('c')
	assert.Empty(t, d.State().ScheduleID)
	assert.Contains(t, strings.Join(v.sj.DebugLogs(), "\n"), "create failed")

	d.PressKey('x')
	assert.Empty(t, v.sj.DebugLogs())
}

func TestTUI_CreateJob_SavePriorities(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)
	d.Go("/create-schedule-job")

	d.PressKey('-')
	d.PressKey('w')

	lots, err := app.Jobs.LoadLots(context.Background())
	require.NoError(t, err)
	for _, l := range lots {
		assert.Contains(t, []int{40, 30}, l.Priority, l.LotID)
	}
}

func TestTUI_WindowResize(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 80, d.State().Width)
	assert.Equal(t, 15, d.State().ContentHeight())
	assert.Len(t, strings.Split(d.View(), "\n"), 20)
}

func TestTUI_GanttTabSwitchesGrouping(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))
	d.Go("/lot-gantt")
	d.PressKey('w')
	d.Press(tea.KeyTab)

	assert.Equal(t, ViewMachineGantt, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	v, ok := d.ActiveView().(*ganttView)
	require.True(t, ok)
	assert.Equal(t, gantt.ModeWeek, v.mode)
	assert.Equal(t, "month", v.chart.Config().ScaleUnit)
}
