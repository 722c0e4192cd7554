package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/staff-api/internal/kvstore"
	"github.com/edupanel/staff-api/internal/models"
)

func TestScheduleLoadMissingBlob(t *testing.T) {
	repo := NewScheduleRepository(kvstore.NewMemory(), nil)

	schedules, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}

func TestScheduleLoadCorruptBlob(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, ScheduleKey, "{not json"))

	repo := NewScheduleRepository(store, nil)
	schedules, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestScheduleLoadInvalidShape(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	// Valid JSON but missing the columns array.
	require.NoError(t, store.Set(ctx, ScheduleKey, `{"timeSlots":["08:00"],"teacherSchedules":{}}`))

	repo := NewScheduleRepository(store, nil)
	schedules, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestScheduleSaveLoadRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewScheduleRepository(store, nil)
	ctx := context.Background()

	data := models.ScheduleData{
		TimeSlots: models.TimeSlots,
		Columns:   models.ScheduleColumns,
		TeacherSchedules: map[string]models.TeacherSchedule{
			"1": {
				TeacherID:   "1",
				TeacherName: "Alice",
				Schedule: map[string]models.ScheduleSlot{
					"09:00": {Availability: models.AvailabilityBusy, Comments: "X"},
				},
			},
		},
	}
	require.NoError(t, repo.Save(ctx, data))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, loaded, "1")
	assert.Equal(t, "Alice", loaded["1"].TeacherName)
	assert.Equal(t, "X", loaded["1"].Schedule["09:00"].Comments)
	assert.Equal(t, models.AvailabilityBusy, loaded["1"].Schedule["09:00"].Availability)
}

func TestScheduleUnavailableStore(t *testing.T) {
	repo := NewScheduleRepository(kvstore.Unavailable{}, nil)
	ctx := context.Background()

	assert.False(t, repo.Available())

	schedules, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, schedules)

	err = repo.Save(ctx, models.ScheduleData{})
	require.NoError(t, err)
}
