// Package router holds the static table of navigable screens.
package router

import "strings"

// Name identifies a routed view.
type Name string

const (
	Home              Name = "home"
	LotGantt          Name = "lot-gantt"
	MachineGantt      Name = "machine-gantt"
	MachineUsage      Name = "machine-usage"
	LotResults        Name = "lot-results"
	ScheduleJobs      Name = "schedule-jobs"
	PlanModels        Name = "plan-models"
	CreateScheduleJob Name = "create-schedule-job"
)

// Route maps a path to a named view.
type Route struct {
	Path  string
	Name  Name
	Title string
}

var routes = []Route{
	{Path: "/", Name: Home, Title: "Home"},
	{Path: "/lot-gantt", Name: LotGantt, Title: "Lot Gantt"},
	{Path: "/machine-gantt", Name: MachineGantt, Title: "Machine Gantt"},
	{Path: "/machine-usage", Name: MachineUsage, Title: "Machine Usage"},
	{Path: "/lot-results", Name: LotResults, Title: "Lot Results"},
	{Path: "/schedule-jobs", Name: ScheduleJobs, Title: "Schedule Jobs"},
	{Path: "/plan-models", Name: PlanModels, Title: "Plan Models"},
	{Path: "/create-schedule-job", Name: CreateScheduleJob, Title: "Create Schedule Job"},
}

// Routes returns the route table in declaration order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Resolve looks up a path. A missing leading slash is tolerated so that
// "lot-gantt" and "/lot-gantt" resolve alike.
func Resolve(path string) (Route, bool) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// ByName returns the route registered for name.
func ByName(name Name) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
