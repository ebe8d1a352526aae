package importer

import (
	"testing"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_File(t *testing.T) {
	schema, err := LoadImportSchema("testdata/plan.json")
	require.NoError(t, err)

	b := Convert(schema, time.Now())

	require.Len(t, b.PlanModels, 2)
	assert.Equal(t, "1", b.PlanModels[0].Selected)
	assert.Equal(t, 2, b.PlanModels[1].OptimizationType)

	require.Len(t, b.Lots, 2)
	assert.Equal(t, "L001", b.Lots[0].LotID)
	require.Len(t, b.Lots[0].Operations, 2)
	assert.Equal(t, "DRL", b.Lots[0].Operations[1].MachineGroup)

	require.Len(t, b.Schedules, 1)
	assert.Equal(t, "SCH_DEMO0001", b.Schedules[0].ScheduleID)
	assert.Equal(t, "2024-03-01T06:00:00Z", b.Schedules[0].CreateDate)

	require.Len(t, b.Steps, 3)
	assert.Equal(t, "SCH_DEMO0001", b.Steps[1].ScheduleID)
	assert.Equal(t, domain.BookingFixed, b.Steps[1].Booking)
	assert.Equal(t, 45, b.Steps[1].Minutes())
}

func TestConvert_DefaultsSequenceFromPosition(t *testing.T) {
	schema := &ImportSchema{Lots: []LotImport{{
		LotID:      "L001",
		Operations: []OperationImport{{Step: "A"}, {Step: "B", Sequence: 7}, {Step: "C"}},
	}}}

	b := Convert(schema, time.Now())
	ops := b.Lots[0].Operations
	assert.Equal(t, 1, ops[0].Sequence)
	assert.Equal(t, 7, ops[1].Sequence)
	assert.Equal(t, 3, ops[2].Sequence)
}

func TestConvert_MissingCreateDateUsesNow(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	schema := &ImportSchema{Schedules: []ScheduleImport{{ScheduleID: "SCH_X"}}}

	b := Convert(schema, now)
	require.Len(t, b.Schedules, 1)
	assert.Equal(t, "2024-05-06T07:08:09Z", b.Schedules[0].CreateDate)
}
