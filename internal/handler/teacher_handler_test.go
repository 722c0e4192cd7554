package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/staff-api/internal/models"
	"github.com/edupanel/staff-api/internal/service"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
	"github.com/edupanel/staff-api/pkg/response"
)

type fakeRosterService struct {
	teachers []models.Teacher
	listErr  error
	patched  []string
	deleted  []string
}

func (f *fakeRosterService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	matched := make([]models.Teacher, 0, len(f.teachers))
	for _, t := range f.teachers {
		if filter.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeRosterService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	for i := range f.teachers {
		if f.teachers[i].ID == id {
			return &f.teachers[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
}

func (f *fakeRosterService) Create(ctx context.Context, req service.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := models.Teacher{ID: "new-id", Name: req.Name, Email: req.Email, Status: models.StatusActive}
	f.teachers = append(f.teachers, teacher)
	return &teacher, nil
}

func (f *fakeRosterService) Patch(ctx context.Context, id string, patch models.TeacherPatch) error {
	f.patched = append(f.patched, id)
	return nil
}

func (f *fakeRosterService) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeScheduleService struct {
	data        models.ScheduleData
	slotUpdates []string
}

func (f *fakeScheduleService) Reconcile(ctx context.Context, teachers []models.Teacher) (models.ScheduleData, error) {
	return f.data, nil
}

func (f *fakeScheduleService) UpdateSlot(ctx context.Context, data models.ScheduleData, teacherID, slotLabel string, field models.SlotField, value string) (models.ScheduleData, error) {
	f.slotUpdates = append(f.slotUpdates, teacherID+"/"+slotLabel+"/"+string(field)+"="+value)
	return data, nil
}

func teacherTestRouter(roster *fakeRosterService, schedules *fakeScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTeacherHandler(roster, schedules, service.NewPayoutService())
	r := gin.New()
	r.GET("/teachers", h.List)
	r.POST("/teachers", h.Create)
	r.GET("/teachers/:id", h.Get)
	r.PATCH("/teachers/:id", h.Patch)
	r.DELETE("/teachers/:id", h.Delete)
	r.GET("/teachers/:id/engagement", h.Engagement)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestListTeachersEndpoint(t *testing.T) {
	roster := &fakeRosterService{teachers: []models.Teacher{
		{ID: "1", Name: "Alice", Department: "Science", Status: models.StatusActive},
		{ID: "2", Name: "Bob", Department: "Arts", Status: models.StatusActive},
	}}
	router := teacherTestRouter(roster, &fakeScheduleService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)
	teachers, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, teachers, 2)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers?department=Science", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	teachers = decodeEnvelope(t, rec).Data.([]interface{})
	assert.Len(t, teachers, 1)
}

func TestGetTeacherEndpointNotFound(t *testing.T) {
	router := teacherTestRouter(&fakeRosterService{}, &fakeScheduleService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers/404", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, envelope.Error.Code)
}

func TestCreateTeacherEndpoint(t *testing.T) {
	roster := &fakeRosterService{}
	router := teacherTestRouter(roster, &fakeScheduleService{})

	body := `{"name":"Alice","email":"alice@school.edu","subject":"Math","department":"Science","hourlyRate":50}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	created, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "new-id", created["id"])
	assert.Equal(t, "active", created["status"])
}

func TestCreateTeacherEndpointBadJSON(t *testing.T) {
	router := teacherTestRouter(&fakeRosterService{}, &fakeScheduleService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teachers", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestPatchAndDeleteTeacherEndpoints(t *testing.T) {
	roster := &fakeRosterService{teachers: []models.Teacher{{ID: "1", Name: "Alice"}}}
	router := teacherTestRouter(roster, &fakeScheduleService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/teachers/1", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"1"}, roster.patched)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/teachers/1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"1"}, roster.deleted)
}

func TestEngagementEndpoint(t *testing.T) {
	roster := &fakeRosterService{teachers: []models.Teacher{{ID: "1", Name: "Alice"}}}
	schedules := &fakeScheduleService{data: models.ScheduleData{
		TimeSlots: models.TimeSlots,
		TeacherSchedules: map[string]models.TeacherSchedule{
			"1": {TeacherID: "1", TeacherName: "Alice", Schedule: map[string]models.ScheduleSlot{
				"09:00": {ScheduledLessons: "Algebra"},
				"10:00": {Meetings: "Dept sync"},
			}},
		},
	}}
	router := teacherTestRouter(roster, schedules)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers/1/engagement", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	engagement, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), engagement["engagedSlots"])
	assert.Equal(t, 1.0, engagement["engagedHours"])
}
