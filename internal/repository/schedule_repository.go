package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/edupanel/staff-api/internal/kvstore"
	"github.com/edupanel/staff-api/internal/models"
)

// ScheduleKey is the blob key holding the serialized ScheduleData.
const ScheduleKey = "schedule_data"

// ScheduleRepository persists the schedule aggregate as a single JSON blob.
type ScheduleRepository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(store kvstore.Store, logger *zap.Logger) *ScheduleRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleRepository{store: store, logger: logger}
}

// Available reports whether the underlying store is reachable.
func (r *ScheduleRepository) Available() bool {
	return r.store.Available()
}

// Load returns the stored teacher schedules. A missing, corrupt, or
// structurally invalid blob yields an empty map; reconciliation regenerates
// and overwrites it.
func (r *ScheduleRepository) Load(ctx context.Context) (map[string]models.TeacherSchedule, error) {
	if !r.store.Available() {
		return map[string]models.TeacherSchedule{}, nil
	}

	raw, ok, err := r.store.Get(ctx, ScheduleKey)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	if !ok {
		return map[string]models.TeacherSchedule{}, nil
	}

	var stored models.ScheduleData
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || !validShape(stored) {
		r.logger.Warn("invalid schedule blob, rebuilding",
			zap.String("key", ScheduleKey))
		return map[string]models.TeacherSchedule{}, nil
	}
	return stored.TeacherSchedules, nil
}

// Save persists the full schedule aggregate. Write failures propagate.
func (r *ScheduleRepository) Save(ctx context.Context, data models.ScheduleData) error {
	if !r.store.Available() {
		return nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := r.store.Set(ctx, ScheduleKey, string(payload)); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}
	return nil
}

// validShape checks the minimal structure the reconciler relies on.
func validShape(data models.ScheduleData) bool {
	return data.TimeSlots != nil && data.Columns != nil && data.TeacherSchedules != nil
}
