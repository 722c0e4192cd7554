package service

import (
	"strings"

	"github.com/edupanel/staff-api/internal/models"
)

// slotHours is the contribution of one counted half-hour slot.
const slotHours = 0.5

// PayoutService derives busy-hour and payout figures from a reconciled
// schedule. Every call recomputes from scratch; nothing is cached.
type PayoutService struct{}

// NewPayoutService constructs a PayoutService.
func NewPayoutService() *PayoutService {
	return &PayoutService{}
}

// Derive computes per-teacher and aggregate payout figures. A slot counts as
// busy when its availability is exactly "busy". A missing hourly rate yields
// a zero payout, never an error.
func (s *PayoutService) Derive(teachers []models.Teacher, data models.ScheduleData) models.PayoutReport {
	report := models.PayoutReport{PerTeacher: make([]models.TeacherPayout, 0, len(teachers))}

	for _, t := range teachers {
		busySlots := []string{}
		if entry, ok := data.TeacherSchedules[t.ID]; ok {
			for _, label := range data.TimeSlots {
				slot, ok := entry.Schedule[label]
				if !ok {
					continue
				}
				switch slot.Availability {
				case models.AvailabilityBusy:
					busySlots = append(busySlots, label)
					report.Totals.BusySlots++
				case models.AvailabilityAvailable:
					report.Totals.AvailableSlots++
				}
			}
		}

		busyHours := float64(len(busySlots)) * slotHours
		payout := busyHours * t.HourlyRate

		report.PerTeacher = append(report.PerTeacher, models.TeacherPayout{
			TeacherID:  t.ID,
			Name:       t.Name,
			BusySlots:  busySlots,
			BusyHours:  busyHours,
			HourlyRate: t.HourlyRate,
			Payout:     payout,
		})
		report.Totals.BusyHours += busyHours
		report.Totals.Payout += payout
	}

	return report
}

// Engagement computes the detail-view variant for one teacher: a slot counts
// when any of scheduled lessons, meetings, or office hours is non-blank.
func (s *PayoutService) Engagement(teacher models.Teacher, data models.ScheduleData) models.TeacherEngagement {
	engaged := 0
	if entry, ok := data.TeacherSchedules[teacher.ID]; ok {
		for _, slot := range entry.Schedule {
			if strings.TrimSpace(slot.ScheduledLessons) != "" ||
				strings.TrimSpace(slot.Meetings) != "" ||
				strings.TrimSpace(slot.OfficeHours) != "" {
				engaged++
			}
		}
	}
	return models.TeacherEngagement{
		TeacherID:    teacher.ID,
		Name:         teacher.Name,
		EngagedSlots: engaged,
		EngagedHours: float64(engaged) * slotHours,
	}
}
