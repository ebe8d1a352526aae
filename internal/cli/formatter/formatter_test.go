package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/router"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_SwapsPalette(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(theme.Light) })

	ApplyTheme(theme.Dark)
	assert.Equal(t, lipgloss.Color("#fe8019"), ColorHeader)
	assert.Equal(t, lipgloss.Color("#928374"), ColorDim)

	ApplyTheme(theme.Gray)
	assert.Equal(t, PaletteFor(theme.Gray).Fg, ColorFg)

	ApplyTheme(theme.Theme("neon"))
	assert.Equal(t, PaletteFor(theme.Light).Header, ColorHeader)
}

func TestPalettes_Distinct(t *testing.T) {
	seen := map[lipgloss.Color]theme.Theme{}
	for _, th := range theme.All {
		fg := PaletteFor(th).Fg
		_, dup := seen[fg]
		assert.False(t, dup, "foreground of %s reused", th)
		seen[fg] = th
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "NUM"}, [][]string{{"xx", "1"}, {"y", "100"}}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "A   NUM", lines[0])
	assert.Equal(t, "xx    1", lines[2])
	assert.Equal(t, "y   100", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderUtilization(t *testing.T) {
	assert.Equal(t, "[██░░]  50%", RenderUtilization(0.5, 4))
	assert.Equal(t, "[████] 100%", RenderUtilization(3, 4))
	assert.Equal(t, "[░░]   0%", RenderUtilization(-1, 0))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestFormatLots(t *testing.T) {
	out := FormatLots([]*domain.Lot{
		{LotID: "L001", Product: "GADGET", Priority: 60, DueDate: "2024-03-02",
			Operations: []domain.Operation{{Step: "CUT"}, {Step: "DRILL"}}},
		{LotID: "L002", Product: "WIDGET", Priority: -10, DueDate: "bogus"},
	})
	assert.Contains(t, out, "L001")
	assert.Contains(t, out, "GADGET")
	assert.Contains(t, out, "-10")
	assert.Contains(t, out, "—")
	assert.Contains(t, FormatLots(nil), "No lots.")
}

func TestFormatModels_Checkbox(t *testing.T) {
	out := FormatModels([]domain.PlanModel{
		{SeqNo: 1, Name: "DueDate", Selected: "1"},
		{SeqNo: 2, Name: "Throughput", Selected: "false"},
	})
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[2], "[x]")
	assert.Contains(t, lines[3], "[ ]")
}

func TestFormatSchedules_MarksActive(t *testing.T) {
	out := FormatSchedules([]domain.ScheduleInfo{
		{ScheduleID: "SCH_A", CreateDate: "2024-03-01T06:00:00Z"},
		{ScheduleID: "SCH_B"},
	}, "SCH_A")
	assert.Contains(t, out, "● SCH_A")
	assert.NotContains(t, out, "● SCH_B")
}

func TestFormatLotResults(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	out := FormatLotResults([]domain.LotPlanResult{
		{LotID: "L001", PlanDate: start, DueDate: start, DelayText: "0:00"},
		{LotID: "L002", PlanDate: start, Delay: 72 * time.Hour, DueDate: start, DelayText: "3:00"},
		{LotID: "L003", PlanDate: start},
	}, domain.PlanStatistics{BatchCount: 3, EarliestStart: start, LatestEnd: start.Add(90 * time.Minute),
		TotalDuration: 90 * time.Minute, OnTimeCount: 1, MajorDelayCount: 1})

	assert.Contains(t, out, "3:00")
	assert.Contains(t, out, "Lots: 3")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "on time 1")
	assert.Contains(t, out, ">2d late 1")
	assert.Contains(t, FormatPlanStatistics(domain.PlanStatistics{}), "No planned lots.")
}

func TestFormatMachineUsage(t *testing.T) {
	out := FormatMachineUsage([]domain.MachineUsage{{Machine: "M01", StepCount: 2, BusyMinutes: 90, Utilization: 0.5}})
	assert.Contains(t, out, "M01")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "50%")
}

func TestFormatRoutes(t *testing.T) {
	out := FormatRoutes(router.Routes())
	assert.Contains(t, out, "/create-schedule-job")
	assert.Contains(t, out, "Machine Gantt")
}

func TestThemeButtons(t *testing.T) {
	out := ThemeButtons(map[string]bool{"themeGrayBtn": true, "btnThemeGray": true})
	assert.Contains(t, out, "[Gray]")
	assert.Contains(t, out, " Light ")
	assert.NotContains(t, out, "[Dark]")
}

func TestActiveButtonIDs(t *testing.T) {
	ids := ActiveButtonIDs(map[string]bool{"btnThemeDark": true, "themeDarkBtn": true, "themeLightBtn": false})
	assert.Equal(t, []string{"btnThemeDark", "themeDarkBtn"}, ids)
}

func TestBookingPill(t *testing.T) {
	assert.Equal(t, "WIP", BookingPill(domain.BookingWIP))
	assert.Equal(t, "FIXED", BookingPill(domain.BookingFixed))
	assert.Equal(t, "PLAN", BookingPill(domain.BookingNormal))
	assert.Equal(t, "?9", BookingPill(9))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc…", Truncate("abcdef", 4))
}
