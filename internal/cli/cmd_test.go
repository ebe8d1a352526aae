package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/repository"
	"github.com/apsystem/apsview/internal/service"
	"github.com/apsystem/apsview/internal/testutil"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureFile = "../importer/testdata/plan.json"

// testApp wires a full App backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	models := repository.NewSQLitePlanModelRepo(database)
	lots := repository.NewSQLiteLotRepo(database)
	schedules := repository.NewSQLiteScheduleRepo(database)

	return &App{
		Jobs:          service.NewScheduleJobService(models, lots, schedules, uow),
		Results:       service.NewResultService(schedules, lots),
		Import:        service.NewImportService(uow),
		Theme:         theme.NewManager(repository.NewSQLiteSettingRepo(database)),
		Console:       zerolog.Nop(),
		User:          "tester",
		GanttMode:     gantt.ModeDay,
		ChartColumns:  48,
		IsInteractive: func() bool { return false },
	}
}

// seededApp returns a testApp with the demo plan imported.
func seededApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	_, err := app.Import.ImportFile(context.Background(), fixtureFile)
	require.NoError(t, err)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "gantt")
}

func TestImportCmd_PrintsCounts(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "import", fixtureFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 models, 2 lots, 1 schedules, 3 steps")
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "import", "does-not-exist.json")
	assert.Error(t, err)
}

func TestLotsCmd_Filter(t *testing.T) {
	app := seededApp(t)

	out, err := executeCmd(t, app, "lots", "--filter", "widget")
	require.NoError(t, err)
	assert.Contains(t, out, "L002")
	assert.NotContains(t, out, "L001")

	out, err = executeCmd(t, app, "lots")
	require.NoError(t, err)
	assert.Contains(t, out, "L001")
	assert.Contains(t, out, "L002")
}

func TestPriorityCmd_Up_PersistsFilteredLots(t *testing.T) {
	app := seededApp(t)

	out, err := executeCmd(t, app, "priority", "up", "-f", "GADGET")
	require.NoError(t, err)
	assert.Contains(t, out, "L001")

	lots, err := app.Jobs.LoadLots(context.Background())
	require.NoError(t, err)
	byID := map[string]int{}
	for _, l := range lots {
		byID[l.LotID] = l.Priority
	}
	assert.Equal(t, 60, byID["L001"])
	assert.Equal(t, 40, byID["L002"])
}

func TestPriorityCmd_Down_AllLots(t *testing.T) {
	app := seededApp(t)

	_, err := executeCmd(t, app, "priority", "down")
	require.NoError(t, err)

	lots, err := app.Jobs.LoadLots(context.Background())
	require.NoError(t, err)
	for _, l := range lots {
		assert.Contains(t, []int{40, 30}, l.Priority, l.LotID)
	}
}

func TestPriorityCmd_NoMatch(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "priority", "up", "-f", "nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No lots match.")
}

func TestPriorityCmd_UnknownDirection(t *testing.T) {
	_, err := executeCmd(t, seededApp(t), "priority", "sideways")
	assert.ErrorContains(t, err, "unknown direction")
}

func TestGanttCmd_ByMachine(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "gantt", "--by", "machine", "--mode", "hour")
	require.NoError(t, err)
	assert.Contains(t, out, "SCH_DEMO0001")
	assert.Contains(t, out, "M01")
	assert.Contains(t, out, "M02")
	assert.Contains(t, out, "█")
}

func TestGanttCmd_ByLotDefaultMode(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "gantt")
	require.NoError(t, err)
	assert.Contains(t, out, "by lot · day")
	assert.Contains(t, out, "L001")
	assert.Contains(t, out, "L002")
}

func TestGanttCmd_UnknownMode(t *testing.T) {
	_, err := executeCmd(t, seededApp(t), "gantt", "--mode", "decade")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestGanttCmd_UnknownGrouping(t *testing.T) {
	_, err := executeCmd(t, seededApp(t), "gantt", "--by", "product")
	assert.ErrorContains(t, err, "unknown grouping")
}

func TestGanttCmd_NoSchedules(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "gantt")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSchedulesCmd_List(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "schedules")
	require.NoError(t, err)
	assert.Contains(t, out, "SCH_DEMO0001")
}

func TestSchedulesCmd_LotResults(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "schedules", "SCH_DEMO0001", "--lots")
	require.NoError(t, err)
	assert.Contains(t, out, "LOT RESULTS SCH_DEMO0001")
	assert.Contains(t, out, "L001")
	assert.Contains(t, out, "Lots: 2")
}

func TestSchedulesCmd_Usage(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "schedules", "--usage")
	require.NoError(t, err)
	assert.Contains(t, out, "MACHINE USAGE SCH_DEMO0001")
	assert.Contains(t, out, "M01")
}

func TestSchedulesCmd_LotsAndUsageExclusive(t *testing.T) {
	_, err := executeCmd(t, seededApp(t), "schedules", "--lots", "--usage")
	assert.Error(t, err)
}

func TestModelsCmd(t *testing.T) {
	out, err := executeCmd(t, seededApp(t), "models")
	require.NoError(t, err)
	assert.Contains(t, out, "DueDate")
	assert.Contains(t, out, "Throughput")
	assert.Contains(t, out, "[x]")
}

func TestThemeCmd_SetThenShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "btnThemeDark, themeDarkBtn")

	out, err = executeCmd(t, app, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "[Dark]")
}

func TestThemeCmd_UnknownFallsBackToLight(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "theme", "dark")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "theme", "neon")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")
	assert.Equal(t, theme.Light, app.Theme.Current())
}

func TestRoutesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "routes")
	require.NoError(t, err)
	for _, path := range []string{"/lot-gantt", "/machine-gantt", "/create-schedule-job"} {
		assert.Contains(t, out, path)
	}
}
