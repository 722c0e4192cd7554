package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edupanel/staff-api/internal/models"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
)

type scheduleRepository interface {
	Available() bool
	Load(ctx context.Context) (map[string]models.TeacherSchedule, error)
	Save(ctx context.Context, data models.ScheduleData) error
}

// ScheduleService keeps the per-teacher slot grid consistent with the roster.
type ScheduleService struct {
	repo    scheduleRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(repo scheduleRepository, metrics *MetricsService, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, metrics: metrics, logger: logger}
}

// Reconcile derives a schedule consistent with the current roster from the
// possibly-stale stored blob: one entry per teacher, existing slot edits
// preserved, defaults fabricated for new teachers, orphans pruned. The result
// is persisted and returned. Calling it twice with the same roster and no
// intervening edits yields identical output.
func (s *ScheduleService) Reconcile(ctx context.Context, teachers []models.Teacher) (models.ScheduleData, error) {
	s.metrics.RecordReconcile()

	if !s.repo.Available() {
		return models.ScheduleData{
			TimeSlots:        []string{},
			Columns:          []models.ScheduleColumn{},
			TeacherSchedules: map[string]models.TeacherSchedule{},
		}, nil
	}

	schedules, err := s.repo.Load(ctx)
	if err != nil {
		return models.ScheduleData{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}

	for _, t := range teachers {
		entry, ok := schedules[t.ID]
		if !ok {
			schedules[t.ID] = fabricateSchedule(t)
			continue
		}
		entry.TeacherName = t.Name
		for label, slot := range entry.Schedule {
			if slot.Availability == models.AvailabilityAvailable || slot.Availability == models.AvailabilityUnavailable {
				slot.Availability, slot.Unavailability = availabilityFor(t.Status)
				entry.Schedule[label] = slot
			}
		}
		schedules[t.ID] = entry
	}

	for id := range schedules {
		if !rosterContains(teachers, id) {
			delete(schedules, id)
		}
	}

	data := models.ScheduleData{
		TimeSlots:        models.TimeSlots,
		Columns:          models.ScheduleColumns,
		TeacherSchedules: schedules,
	}
	if err := s.repo.Save(ctx, data); err != nil {
		return models.ScheduleData{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist schedule")
	}
	return data, nil
}

// UpdateSlot replaces exactly one field of one slot of one teacher's schedule
// and persists the result. An unknown teacher or slot label leaves the input
// unchanged and persists nothing.
func (s *ScheduleService) UpdateSlot(ctx context.Context, data models.ScheduleData, teacherID, slotLabel string, field models.SlotField, value string) (models.ScheduleData, error) {
	entry, ok := data.TeacherSchedules[teacherID]
	if !ok {
		return data, nil
	}
	slot, ok := entry.Schedule[slotLabel]
	if !ok {
		return data, nil
	}

	slot.Set(field, value)
	entry.Schedule[slotLabel] = slot
	data.TeacherSchedules[teacherID] = entry

	if err := s.repo.Save(ctx, data); err != nil {
		return data, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist schedule")
	}
	return data, nil
}

// fabricateSchedule builds a fresh entry with one default slot per canonical
// time-slot label. Availability is forced from the teacher's status only
// here, at fabrication time.
func fabricateSchedule(t models.Teacher) models.TeacherSchedule {
	availability, unavailability := availabilityFor(t.Status)
	slots := make(map[string]models.ScheduleSlot, len(models.TimeSlots))
	for _, label := range models.TimeSlots {
		slots[label] = models.ScheduleSlot{
			Availability:   availability,
			Unavailability: unavailability,
		}
	}
	return models.TeacherSchedule{
		TeacherID:   t.ID,
		TeacherName: t.Name,
		Schedule:    slots,
	}
}

// availabilityFor maps a roster status to the default sentinel pair.
func availabilityFor(status models.TeacherStatus) (availability, unavailability string) {
	switch status {
	case models.StatusOnLeave:
		return models.AvailabilityUnavailable, "On Leave"
	case models.StatusInactive:
		return models.AvailabilityUnavailable, "Inactive"
	default:
		return models.AvailabilityAvailable, ""
	}
}

func rosterContains(teachers []models.Teacher, id string) bool {
	for _, t := range teachers {
		if t.ID == id {
			return true
		}
	}
	return false
}
