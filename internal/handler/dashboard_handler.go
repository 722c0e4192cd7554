package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/staff-api/internal/models"
	"github.com/edupanel/staff-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type payoutService interface {
	Derive(teachers []models.Teacher, data models.ScheduleData) models.PayoutReport
}

// DashboardHandler serves the overview summary and the payout derivation.
type DashboardHandler struct {
	dashboard dashboardService
	roster    rosterService
	schedules scheduleService
	payouts   payoutService
}

// NewDashboardHandler constructs a new DashboardHandler.
func NewDashboardHandler(dashboard dashboardService, roster rosterService, schedules scheduleService, payouts payoutService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, roster: roster, schedules: schedules, payouts: payouts}
}

// Summary godoc
// @Summary Roster and engagement overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Payouts godoc
// @Summary Per-teacher payout derivation
// @Tags Payouts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /payouts [get]
func (h *DashboardHandler) Payouts(c *gin.Context) {
	ctx := c.Request.Context()
	teachers, err := h.roster.List(ctx, models.TeacherFilter{})
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.schedules.Reconcile(ctx, teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.payouts.Derive(teachers, data))
}
