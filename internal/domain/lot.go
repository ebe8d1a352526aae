package domain

// Lot is a unit of scheduled work. LotID is expected to be unique within a
// collection; nothing in this package enforces it.
type Lot struct {
	LotID      string
	Product    string
	Priority   int
	DueDate    string
	Operations []Operation
}

// Operation is one routing step of a lot as delivered by the scheduling
// back-end. The edit state never looks inside it.
type Operation struct {
	Step          string
	MachineGroup  string
	Duration      int // minutes
	Sequence      int
	StepStatus    int
	PlanMachineID string
	PlanCheckIn   string
	PlanCheckOut  string
}
