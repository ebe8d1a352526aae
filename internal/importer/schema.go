package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a plan data file. Field
// names follow the scheduling back-end's payloads so exports can be loaded
// as they are.
type ImportSchema struct {
	PlanModels []PlanModelImport `json:"plan_models"`
	Lots       []LotImport       `json:"lots"`
	Schedules  []ScheduleImport  `json:"schedules,omitempty"`
}

type PlanModelImport struct {
	SeqNo            int    `json:"SeqNo"`
	Select           int    `json:"Select"`
	OptimizationType int    `json:"optimization_type"`
	Name             string `json:"Name"`
	Description      string `json:"Description"`
	Remark           string `json:"Remark"`
	Selected         string `json:"selected"`
}

type LotImport struct {
	LotID      string            `json:"LotId"`
	Product    string            `json:"Product"`
	Priority   int               `json:"Priority"`
	DueDate    string            `json:"DueDate"`
	Operations []OperationImport `json:"Operations,omitempty"`
}

type OperationImport struct {
	Step          string `json:"Step"`
	MachineGroup  string `json:"MachineGroup"`
	Duration      int    `json:"Duration"`
	Sequence      int    `json:"Sequence"`
	StepStatus    int    `json:"StepStatus"`
	PlanMachineID string `json:"PlanMachineId"`
	PlanCheckIn   string `json:"PlanCheckIn"`
	PlanCheckOut  string `json:"PlanCheckOut"`
}

// ScheduleImport is a finished schedule with its per-step results.
type ScheduleImport struct {
	ScheduleID       string       `json:"ScheduleId"`
	CreateDate       string       `json:"CreateDate"`
	CreateUser       string       `json:"CreateUser"`
	PlanSummary      string       `json:"PlanSummary"`
	OptimizationType int          `json:"optimization_type"`
	Results          []StepImport `json:"LotStepResult"`
}

// StepImport is one row of a schedule's LotStepResult table.
type StepImport struct {
	LotID    string `json:"LotId"`
	Product  string `json:"Product"`
	Priority int    `json:"Priority"`
	StepIdx  int    `json:"StepIdx"`
	Step     string `json:"Step"`
	Machine  string `json:"Machine"`
	Start    string `json:"Start"`
	End      string `json:"End"`
	Booking  int    `json:"Booking"`
}

// LoadImportSchema reads and parses a plan data file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
