package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edupanel/staff-api/internal/models"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Add(ctx context.Context, teacher models.Teacher) error
	Update(ctx context.Context, id string, patch models.TeacherPatch) error
	Delete(ctx context.Context, id string) ([]models.Teacher, error)
}

type scheduleReconciler interface {
	Reconcile(ctx context.Context, teachers []models.Teacher) (models.ScheduleData, error)
}

// CreateTeacherRequest represents payload for creating teachers. The id,
// join date, and initial status are assigned by the service.
type CreateTeacherRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone"`
	Subject         string   `json:"subject" validate:"required"`
	Department      string   `json:"department" validate:"required"`
	Experience      int      `json:"experience" validate:"gte=0"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=5"`
	StudentsCount   int      `json:"studentsCount" validate:"gte=0"`
	HourlyRate      float64  `json:"hourlyRate" validate:"gt=0"`
	Bio             string   `json:"bio"`
	Qualifications  []string `json:"qualifications"`
	Specializations []string `json:"specializations"`
}

// RosterService orchestrates roster mutations and the schedule cascade.
type RosterService struct {
	repo      teacherRepository
	schedules scheduleReconciler
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewRosterService constructs a RosterService.
func NewRosterService(repo teacherRepository, schedules scheduleReconciler, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{repo: repo, schedules: schedules, validator: validate, logger: logger, now: time.Now}
}

// List returns teachers matching the optional filters, in storage order.
func (s *RosterService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	if filter == (models.TeacherFilter{}) {
		return teachers, nil
	}
	filtered := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if filter.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Get returns a teacher by id.
func (s *RosterService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
}

// Create registers a new teacher: id and join date are assigned here and
// never recomputed, and the status always starts active.
func (s *RosterService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher := models.Teacher{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Subject:         req.Subject,
		Department:      req.Department,
		Experience:      req.Experience,
		Status:          models.StatusActive,
		JoinDate:        s.now().UTC().Format("2006-01-02"),
		Location:        req.Location,
		Rating:          req.Rating,
		StudentsCount:   req.StudentsCount,
		HourlyRate:      req.HourlyRate,
		Bio:             req.Bio,
		Qualifications:  req.Qualifications,
		Specializations: req.Specializations,
	}

	if err := s.repo.Add(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return &teacher, nil
}

// Patch shallow-merges the partial fields into the stored record. An unknown
// id is a silent no-op.
func (s *RosterService) Patch(ctx context.Context, id string, patch models.TeacherPatch) error {
	if err := s.validator.Struct(patch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher patch")
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return nil
}

// Delete removes the teacher and cascades to drop its schedule entry by
// reconciling against the surviving roster.
func (s *RosterService) Delete(ctx context.Context, id string) error {
	remaining, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	if s.schedules != nil {
		if _, err := s.schedules.Reconcile(ctx, remaining); err != nil {
			return err
		}
	}
	return nil
}
