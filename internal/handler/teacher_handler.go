package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/staff-api/internal/models"
	"github.com/edupanel/staff-api/internal/service"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
	"github.com/edupanel/staff-api/pkg/response"
)

type rosterService interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
	Get(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, req service.CreateTeacherRequest) (*models.Teacher, error)
	Patch(ctx context.Context, id string, patch models.TeacherPatch) error
	Delete(ctx context.Context, id string) error
}

type engagementDeriver interface {
	Engagement(teacher models.Teacher, data models.ScheduleData) models.TeacherEngagement
}

// TeacherHandler wires roster operations to HTTP routes.
type TeacherHandler struct {
	roster    rosterService
	schedules scheduleService
	payouts   engagementDeriver
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(roster rosterService, schedules scheduleService, payouts engagementDeriver) *TeacherHandler {
	return &TeacherHandler{roster: roster, schedules: schedules, payouts: payouts}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Param search query string false "Search by name/email/subject"
// @Param department query string false "Filter by department"
// @Param status query string false "Filter by status (active/inactive/on-leave)"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	filter := models.TeacherFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	teachers, err := h.roster.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// Get godoc
// @Summary Get teacher detail
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.roster.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Create godoc
// @Summary Create teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body service.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req service.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}
	teacher, err := h.roster.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// Patch godoc
// @Summary Partially update teacher
// @Tags Teachers
// @Accept json
// @Param id path string true "Teacher ID"
// @Param payload body models.TeacherPatch true "Partial fields"
// @Success 204
// @Router /teachers/{id} [patch]
func (h *TeacherHandler) Patch(c *gin.Context) {
	var patch models.TeacherPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher patch"))
		return
	}
	if err := h.roster.Patch(c.Request.Context(), c.Param("id"), patch); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete teacher and its schedule entry
// @Tags Teachers
// @Param id path string true "Teacher ID"
// @Success 204
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.roster.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Engagement godoc
// @Summary Daily engaged hours for one teacher
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id}/engagement [get]
func (h *TeacherHandler) Engagement(c *gin.Context) {
	ctx := c.Request.Context()
	teacher, err := h.roster.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
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
	response.JSON(c, http.StatusOK, h.payouts.Engagement(*teacher, data))
}
