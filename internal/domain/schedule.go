package domain

import "time"

// ScheduleInfo references a previously created schedule.
type ScheduleInfo struct {
	ScheduleID string
	CreateDate string
}

// ScheduleJob is a persisted schedule job with its creation context.
type ScheduleJob struct {
	ScheduleInfo
	CreateUser       string
	PlanSummary      string
	OptimizationType int
	LotPlanRaw       string
}

type BookingStatus int

const (
	BookingNormal BookingStatus = 0
	BookingWIP    BookingStatus = 1
	BookingFixed  BookingStatus = 2
)

// Valid reports whether b is one of the known booking states.
func (b BookingStatus) Valid() bool {
	return b >= BookingNormal && b <= BookingFixed
}

// StepResult is one planned lot step produced by a schedule run.
type StepResult struct {
	ScheduleID string
	LotID      string
	Product    string
	Priority   int
	StepIdx    int
	Step       string
	Machine    string
	Start      time.Time
	End        time.Time
	Booking    BookingStatus
}

// Minutes returns the planned duration of the step in whole minutes.
func (s StepResult) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// LotPlanResult summarises when a lot finishes relative to its due date.
type LotPlanResult struct {
	LotID     string
	Product   string
	Priority  int
	DueDate   time.Time
	PlanDate  time.Time
	Delay     time.Duration
	DelayText string
}

// PlanStatistics aggregates lot plan results for one schedule.
type PlanStatistics struct {
	BatchCount      int
	EarliestStart   time.Time
	LatestEnd       time.Time
	TotalDuration   time.Duration
	EarlyCount      int
	OnTimeCount     int
	MinorDelayCount int
	MajorDelayCount int
}

// MachineUsage is the load of a single machine across a schedule span.
type MachineUsage struct {
	Machine     string
	StepCount   int
	BusyMinutes int
	SpanMinutes int
	Utilization float64
}
