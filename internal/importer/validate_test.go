package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		PlanModels: []PlanModelImport{{SeqNo: 1, Name: "DueDate"}},
		Lots:       []LotImport{{LotID: "L001", Product: "GADGET", DueDate: "2024-03-02"}},
	}
}

func errorsContain(errs []error, substr string) bool {
	for _, err := range errs {
		if strings.Contains(err.Error(), substr) {
			return true
		}
	}
	return false
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFile(t *testing.T) {
	schema, err := LoadImportSchema("testdata/plan.json")
	require.NoError(t, err)
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_MissingAndDuplicateIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.PlanModels = append(schema.PlanModels, PlanModelImport{SeqNo: 1})
	schema.Lots = append(schema.Lots, LotImport{LotID: "L001"}, LotImport{})

	errs := ValidateImportSchema(schema)
	assert.True(t, errorsContain(errs, "plan_models[1].Name is required"))
	assert.True(t, errorsContain(errs, "duplicate SeqNo 1"))
	assert.True(t, errorsContain(errs, `duplicate LotId "L001"`))
	assert.True(t, errorsContain(errs, "lots[2].LotId is required"))
}

func TestValidateImportSchema_InvalidDueDate(t *testing.T) {
	schema := validMinimalSchema()
	schema.Lots[0].DueDate = "next tuesday"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "lots[0].DueDate")
}

func TestValidateImportSchema_DuplicateOperationStep(t *testing.T) {
	schema := validMinimalSchema()
	schema.Lots[0].Operations = []OperationImport{{Step: "CUT"}, {Step: "CUT"}, {Step: "", Duration: 5}}

	errs := ValidateImportSchema(schema)
	assert.True(t, errorsContain(errs, `duplicate Step "CUT"`))
	assert.True(t, errorsContain(errs, "Operations[2].Step is required"))
}

func TestValidateImportSchema_StepResults(t *testing.T) {
	schema := validMinimalSchema()
	schema.Schedules = []ScheduleImport{{
		ScheduleID: "SCH_1",
		Results: []StepImport{
			{LotID: "L001", Step: "CUT", Machine: "M01", Start: "2024-03-01T10:00:00Z", End: "2024-03-01T09:00:00Z"},
			{LotID: "L001", Step: "DRILL", Machine: "M01", Start: "garbage", End: "2024-03-01T09:00:00Z", Booking: 5},
			{LotID: "L001", Step: "CUT", Start: "2024-03-01T08:00:00Z", End: "2024-03-01T09:00:00Z"},
		},
	}}

	errs := ValidateImportSchema(schema)
	assert.True(t, errorsContain(errs, "must be before End"))
	assert.True(t, errorsContain(errs, `LotStepResult[1].Start: invalid date "garbage"`))
	assert.True(t, errorsContain(errs, "Booking: unknown value 5"))
	assert.True(t, errorsContain(errs, "LotStepResult[2].Machine is required"))
	assert.True(t, errorsContain(errs, "duplicate step L001/CUT"))
}

func TestValidateImportSchema_DuplicateSchedule(t *testing.T) {
	schema := validMinimalSchema()
	schema.Schedules = []ScheduleImport{{ScheduleID: "SCH_1"}, {ScheduleID: "SCH_1"}, {}}

	errs := ValidateImportSchema(schema)
	assert.True(t, errorsContain(errs, `duplicate ScheduleId "SCH_1"`))
	assert.True(t, errorsContain(errs, "schedules[2].ScheduleId is required"))
}

func TestParseImportSchema_Malformed(t *testing.T) {
	_, err := ParseImportSchema([]byte(`{"lots": [`))
	assert.ErrorContains(t, err, "parsing import file")
}
