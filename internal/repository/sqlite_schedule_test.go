package repository

import (
	"context"
	"testing"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_CreateListLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("SCH_A", base)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("SCH_B", base.Add(time.Hour))))

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "SCH_B", infos[0].ScheduleID)
	assert.Equal(t, "SCH_A", infos[1].ScheduleID)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SCH_B", latest.ScheduleID)
	assert.Equal(t, "tester", latest.CreateUser)
}

func TestScheduleRepo_Latest_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteScheduleRepo(db).Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteScheduleRepo(db).GetByID(context.Background(), "SCH_NONE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_StepResults_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("SCH_A", start)))
	require.NoError(t, repo.AddStepResults(ctx, []domain.StepResult{
		testutil.NewTestStep("SCH_A", "L002", "CUT", "M01", start, 30),
		testutil.NewTestStep("SCH_A", "L001", "DRILL", "M02", start.Add(time.Hour), 45,
			testutil.WithStepIdx(2), testutil.WithBooking(domain.BookingFixed)),
		testutil.NewTestStep("SCH_A", "L001", "CUT", "M01", start, 60, testutil.WithStepIdx(1)),
	}))

	steps, err := repo.ListStepResults(ctx, "SCH_A")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "L001", steps[0].LotID)
	assert.Equal(t, "CUT", steps[0].Step)
	assert.Equal(t, "DRILL", steps[1].Step)
	assert.Equal(t, domain.BookingFixed, steps[1].Booking)
	assert.True(t, steps[1].Start.Equal(start.Add(time.Hour)))
	assert.Equal(t, 45, steps[1].Minutes())
	assert.Equal(t, "L002", steps[2].LotID)

	other, err := repo.ListStepResults(ctx, "SCH_OTHER")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestScheduleRepo_StepResults_RejectsUnknownBooking(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("SCH_A", start)))
	err := repo.AddStepResults(ctx, []domain.StepResult{
		testutil.NewTestStep("SCH_A", "L001", "CUT", "M01", start, 30, testutil.WithBooking(7)),
	})
	assert.Error(t, err)
}
