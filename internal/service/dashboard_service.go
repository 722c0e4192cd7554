package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/edupanel/staff-api/internal/models"
)

type rosterLister interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
}

type payoutDeriver interface {
	Derive(teachers []models.Teacher, data models.ScheduleData) models.PayoutReport
}

// DashboardService composes the overview payload from the roster and the
// reconciled schedule.
type DashboardService struct {
	roster    rosterLister
	schedules scheduleReconciler
	payouts   payoutDeriver
	logger    *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(roster rosterLister, schedules scheduleReconciler, payouts payoutDeriver, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{roster: roster, schedules: schedules, payouts: payouts, logger: logger}
}

const leaderboardSize = 3

// Summary recomputes the overview from scratch on every call.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	teachers, err := s.roster.List(ctx, models.TeacherFilter{})
	if err != nil {
		return nil, err
	}
	data, err := s.schedules.Reconcile(ctx, teachers)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalTeachers: len(teachers),
		Totals:        s.payouts.Derive(teachers, data).Totals,
	}

	byDepartment := map[string]int{}
	var ratingSum, experienceSum float64
	for _, t := range teachers {
		switch t.Status {
		case models.StatusActive:
			summary.ActiveTeachers++
		case models.StatusOnLeave:
			summary.OnLeaveTeachers++
		}
		summary.TotalStudents += t.StudentsCount
		ratingSum += t.Rating
		experienceSum += float64(t.Experience)
		byDepartment[t.Department]++
	}
	if len(teachers) > 0 {
		summary.AvgRating = ratingSum / float64(len(teachers))
		summary.AvgExperience = experienceSum / float64(len(teachers))
	}

	summary.Departments = make([]models.DepartmentStat, 0, len(byDepartment))
	for department, count := range byDepartment {
		summary.Departments = append(summary.Departments, models.DepartmentStat{Department: department, Teachers: count})
	}
	sort.Slice(summary.Departments, func(i, j int) bool {
		return summary.Departments[i].Department < summary.Departments[j].Department
	})

	summary.TopPerformers = topN(teachers, leaderboardSize, func(a, b models.Teacher) bool {
		return a.Rating > b.Rating
	})
	summary.RecentlyAdded = topN(teachers, leaderboardSize, func(a, b models.Teacher) bool {
		return a.JoinDate > b.JoinDate
	})

	return summary, nil
}

func topN(teachers []models.Teacher, n int, less func(a, b models.Teacher) bool) []models.Teacher {
	sorted := make([]models.Teacher, len(teachers))
	copy(sorted, teachers)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
