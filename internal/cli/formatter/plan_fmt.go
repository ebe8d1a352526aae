package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/router"
	"github.com/apsystem/apsview/internal/schedulejob"
)

// FormatLots renders the lot list with priority and routing length.
func FormatLots(lots []*domain.Lot) string {
	if len(lots) == 0 {
		return Dim("No lots.") + "\n"
	}
	rows := make([][]string, 0, len(lots))
	for _, l := range lots {
		due := gantt.FormatDate(l.DueDate)
		if due == "" {
			due = Dim("—")
		}
		rows = append(rows, []string{
			StyleGreen.Render(l.LotID),
			l.Product,
			strconv.Itoa(l.Priority),
			due,
			strconv.Itoa(len(l.Operations)),
		})
	}
	return RenderTable([]string{"LOT", "PRODUCT", "PRIORITY", "DUE", "STEPS"}, rows, 2, 4)
}

// FormatModels renders plan models with their checkbox binding.
func FormatModels(models []domain.PlanModel) string {
	if len(models) == 0 {
		return Dim("No plan models.") + "\n"
	}
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			Checkbox(schedulejob.IsChecked(m.Selected)),
			strconv.Itoa(m.SeqNo),
			Bold(m.Name),
			strconv.Itoa(m.OptimizationType),
			m.Description,
		})
	}
	return RenderTable([]string{"", "SEQ", "NAME", "TYPE", "DESCRIPTION"}, rows, 1, 3)
}

// Checkbox renders a checked or empty box.
func Checkbox(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return Dim("[ ]")
}

// FormatSchedules renders schedule references, marking the active one.
func FormatSchedules(infos []domain.ScheduleInfo, active string) string {
	if len(infos) == 0 {
		return Dim("No schedules.") + "\n"
	}
	rows := make([][]string, 0, len(infos))
	for _, s := range infos {
		marker := "  "
		id := s.ScheduleID
		if s.ScheduleID == active {
			marker = StyleGreen.Render("● ")
			id = StyleGreen.Render(id)
		}
		rows = append(rows, []string{marker + id, gantt.FormatDate(s.CreateDate)})
	}
	return RenderTable([]string{"SCHEDULE", "CREATED"}, rows)
}

// FormatLotResults renders per-lot plan dates and the schedule statistics.
func FormatLotResults(results []domain.LotPlanResult, stats domain.PlanStatistics) string {
	var b strings.Builder
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		due := Dim("—")
		if gantt.IsValid(r.DueDate) {
			due = gantt.FormatTime(r.DueDate)
		}
		rows = append(rows, []string{
			StyleGreen.Render(r.LotID),
			r.Product,
			strconv.Itoa(r.Priority),
			due,
			gantt.FormatTime(r.PlanDate),
			DelayStyled(r),
		})
	}
	b.WriteString(RenderTable([]string{"LOT", "PRODUCT", "PRIORITY", "DUE", "PLAN END", "DELAY"}, rows, 2, 5))
	b.WriteString("\n")
	b.WriteString(FormatPlanStatistics(stats))
	return b.String()
}

// FormatPlanStatistics renders the summary block under the lot results.
func FormatPlanStatistics(stats domain.PlanStatistics) string {
	if stats.BatchCount == 0 {
		return Dim("No planned lots.") + "\n"
	}
	lines := []string{
		fmt.Sprintf("%s %d", Dim("Lots:"), stats.BatchCount),
		fmt.Sprintf("%s %s → %s (%s)", Dim("Span:"),
			gantt.FormatTime(stats.EarliestStart), gantt.FormatTime(stats.LatestEnd),
			FormatMinutes(int(stats.TotalDuration.Minutes()))),
		fmt.Sprintf("%s %s  %s  %s  %s", Dim("Delivery:"),
			StyleGreen.Render(fmt.Sprintf("early %d", stats.EarlyCount)),
			StyleGreen.Render(fmt.Sprintf("on time %d", stats.OnTimeCount)),
			StyleYellow.Render(fmt.Sprintf("≤2d late %d", stats.MinorDelayCount)),
			StyleRed.Render(fmt.Sprintf(">2d late %d", stats.MajorDelayCount))),
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatMachineUsage renders the busy time and load bar of every machine.
func FormatMachineUsage(usage []domain.MachineUsage) string {
	if len(usage) == 0 {
		return Dim("No machine usage.") + "\n"
	}
	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, []string{
			Bold(u.Machine),
			strconv.Itoa(u.StepCount),
			FormatMinutes(u.BusyMinutes),
			RenderUtilization(u.Utilization, 20),
		})
	}
	return RenderTable([]string{"MACHINE", "STEPS", "BUSY", "LOAD"}, rows, 1, 2)
}

// FormatRoutes renders the navigable screens.
func FormatRoutes(routes []router.Route) string {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{StyleBlue.Render(r.Path), string(r.Name), r.Title})
	}
	return RenderTable([]string{"PATH", "NAME", "TITLE"}, rows)
}
