package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/staff-api/internal/models"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
)

type mockTeacherRepo struct {
	teachers []models.Teacher
	listErr  error
	addErr   error
}

func (m *mockTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.teachers, nil
}

func (m *mockTeacherRepo) Add(ctx context.Context, teacher models.Teacher) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.teachers = append(m.teachers, teacher)
	return nil
}

func (m *mockTeacherRepo) Update(ctx context.Context, id string, patch models.TeacherPatch) error {
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			patch.Apply(&m.teachers[i])
		}
	}
	return nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id string) ([]models.Teacher, error) {
	remaining := make([]models.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	m.teachers = remaining
	return remaining, nil
}

type mockReconciler struct {
	calls [][]models.Teacher
	data  models.ScheduleData
	err   error
}

func (m *mockReconciler) Reconcile(ctx context.Context, teachers []models.Teacher) (models.ScheduleData, error) {
	m.calls = append(m.calls, teachers)
	return m.data, m.err
}

func validCreateRequest() CreateTeacherRequest {
	return CreateTeacherRequest{
		Name:       "Alice Smith",
		Email:      "alice@school.edu",
		Subject:    "Mathematics",
		Department: "Mathematics",
		Experience: 5,
		Rating:     4.5,
		HourlyRate: 50,
	}
}

func TestCreateAssignsIdentity(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewRosterService(repo, &mockReconciler{}, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }

	teacher, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, teacher.ID)
	assert.Equal(t, "2025-03-14", teacher.JoinDate)
	assert.Equal(t, models.StatusActive, teacher.Status)
	require.Len(t, repo.teachers, 1)
	assert.Equal(t, teacher.ID, repo.teachers[0].ID)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewRosterService(repo, &mockReconciler{}, nil, nil)

	cases := map[string]func(*CreateTeacherRequest){
		"missing email": func(r *CreateTeacherRequest) { r.Email = "" },
		"bad email":     func(r *CreateTeacherRequest) { r.Email = "not-an-email" },
		"zero rate":     func(r *CreateTeacherRequest) { r.HourlyRate = 0 },
		"rating > 5":    func(r *CreateTeacherRequest) { r.Rating = 5.5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(&req)
			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
			assert.Empty(t, repo.teachers)
		})
	}
}

func TestGetNotFound(t *testing.T) {
	repo := &mockTeacherRepo{teachers: []models.Teacher{{ID: "1", Name: "Alice"}}}
	svc := NewRosterService(repo, &mockReconciler{}, nil, nil)

	got, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = svc.Get(context.Background(), "404")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestListFilters(t *testing.T) {
	repo := &mockTeacherRepo{teachers: []models.Teacher{
		{ID: "1", Name: "Alice", Department: "Mathematics", Status: models.StatusActive},
		{ID: "2", Name: "Bob", Department: "Physics", Status: models.StatusActive},
		{ID: "3", Name: "Carol", Department: "Mathematics", Status: models.StatusOnLeave},
	}}
	svc := NewRosterService(repo, &mockReconciler{}, nil, nil)
	ctx := context.Background()

	all, err := svc.List(ctx, models.TeacherFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	math, err := svc.List(ctx, models.TeacherFilter{Department: "Mathematics"})
	require.NoError(t, err)
	assert.Len(t, math, 2)

	active, err := svc.List(ctx, models.TeacherFilter{Department: "Mathematics", Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Alice", active[0].Name)
}

func TestPatchUnknownIDIsNoop(t *testing.T) {
	repo := &mockTeacherRepo{teachers: []models.Teacher{{ID: "1", Name: "Alice"}}}
	svc := NewRosterService(repo, &mockReconciler{}, nil, nil)

	name := "Renamed"
	err := svc.Patch(context.Background(), "404", models.TeacherPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice", repo.teachers[0].Name)
}

func TestDeleteCascadesToSchedule(t *testing.T) {
	repo := &mockTeacherRepo{teachers: []models.Teacher{
		{ID: "1", Name: "Alice"},
		{ID: "2", Name: "Bob"},
	}}
	reconciler := &mockReconciler{}
	svc := NewRosterService(repo, reconciler, nil, nil)

	err := svc.Delete(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, reconciler.calls, 1)
	require.Len(t, reconciler.calls[0], 1)
	assert.Equal(t, "2", reconciler.calls[0][0].ID)
}

func TestDeletePropagatesReconcileError(t *testing.T) {
	repo := &mockTeacherRepo{teachers: []models.Teacher{{ID: "1", Name: "Alice"}}}
	reconciler := &mockReconciler{err: errors.New("store write failed")}
	svc := NewRosterService(repo, reconciler, nil, nil)

	err := svc.Delete(context.Background(), "1")
	require.Error(t, err)
}
