package cli

import "github.com/apsystem/apsview/internal/router"

// viewForRoute builds the view registered for a route name. Unknown names
// fall back to the home view.
func viewForRoute(state *SharedState, name router.Name) View {
	switch name {
	case router.LotGantt:
		return newGanttView(state, ganttByLot)
	case router.MachineGantt:
		return newGanttView(state, ganttByMachine)
	case router.MachineUsage:
		return newMachineUsageView(state)
	case router.LotResults:
		return newLotResultsView(state)
	case router.ScheduleJobs:
		return newScheduleJobsView(state)
	case router.PlanModels:
		return newPlanModelsView(state)
	case router.CreateScheduleJob:
		return newCreateJobView(state)
	}
	return newHomeView(state)
}
