package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/staff-api/internal/models"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
	"github.com/edupanel/staff-api/pkg/response"
)

type scheduleService interface {
	Reconcile(ctx context.Context, teachers []models.Teacher) (models.ScheduleData, error)
	UpdateSlot(ctx context.Context, data models.ScheduleData, teacherID, slotLabel string, field models.SlotField, value string) (models.ScheduleData, error)
}

// ScheduleHandler wires schedule reconciliation and slot edits to HTTP routes.
type ScheduleHandler struct {
	roster    rosterService
	schedules scheduleService
}

// NewScheduleHandler constructs a new ScheduleHandler.
func NewScheduleHandler(roster rosterService, schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{roster: roster, schedules: schedules}
}

// Get godoc
// @Summary Get the reconciled schedule grid
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
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
	response.JSON(c, http.StatusOK, data)
}

// UpdateSlotRequest carries a single slot-field edit.
type UpdateSlotRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateSlot godoc
// @Summary Update one field of one schedule slot
// @Tags Schedule
// @Accept json
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param slot path string true "Time-slot label, e.g. 09:00"
// @Param payload body UpdateSlotRequest true "Field key and new value"
// @Success 200 {object} response.Envelope
// @Router /schedule/{teacherId}/slots/{slot} [put]
func (h *ScheduleHandler) UpdateSlot(c *gin.Context) {
	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid slot payload"))
		return
	}
	if !models.ValidSlotField(req.Field) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown slot field"))
		return
	}

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
	data, err = h.schedules.UpdateSlot(ctx, data, c.Param("teacherId"), c.Param("slot"), models.SlotField(req.Field), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}
