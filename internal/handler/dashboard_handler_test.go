package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/staff-api/internal/models"
	"github.com/edupanel/staff-api/internal/service"
)

type fakeDashboardService struct {
	summary *models.DashboardSummary
	err     error
}

func (f *fakeDashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	return f.summary, f.err
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dashboard := &fakeDashboardService{summary: &models.DashboardSummary{
		TotalTeachers:  3,
		ActiveTeachers: 2,
		Totals:         models.PayoutTotals{BusyHours: 2, Payout: 100},
	}}
	h := NewDashboardHandler(dashboard, &fakeRosterService{}, &fakeScheduleService{}, service.NewPayoutService())
	r := gin.New()
	r.GET("/dashboard", h.Summary)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["totalTeachers"])
	assert.Equal(t, float64(2), data["activeTeachers"])
}

func TestPayoutsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	roster := &fakeRosterService{teachers: []models.Teacher{{ID: "1", Name: "Alice", HourlyRate: 50, Status: models.StatusActive}}}
	schedules := &fakeScheduleService{data: models.ScheduleData{
		TimeSlots: models.TimeSlots,
		TeacherSchedules: map[string]models.TeacherSchedule{
			"1": {TeacherID: "1", TeacherName: "Alice", Schedule: map[string]models.ScheduleSlot{
				"09:00": {Availability: models.AvailabilityBusy},
				"09:30": {Availability: models.AvailabilityBusy},
			}},
		},
	}}
	h := NewDashboardHandler(&fakeDashboardService{}, roster, schedules, service.NewPayoutService())
	r := gin.New()
	r.GET("/payouts", h.Payouts)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payouts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)

	totals, ok := data["totals"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1.0, totals["busyHours"])
	assert.Equal(t, 50.0, totals["payout"])

	perTeacher, ok := data["perTeacher"].([]interface{})
	require.True(t, ok)
	require.Len(t, perTeacher, 1)
}
