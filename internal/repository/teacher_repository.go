package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/edupanel/staff-api/internal/kvstore"
	"github.com/edupanel/staff-api/internal/models"
)

// TeachersKey is the blob key holding the serialized roster array.
const TeachersKey = "teachers_data"

// TeacherRepository owns the roster list persisted as a single JSON blob.
// Every mutation rewrites the whole array.
type TeacherRepository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(store kvstore.Store, logger *zap.Logger) *TeacherRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherRepository{store: store, logger: logger}
}

// List returns all teachers in storage order. The first-ever access seeds the
// default roster and persists it before returning. A corrupt blob is logged
// and replaced by the seed roster; the stored value is overwritten.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	if !r.store.Available() {
		return []models.Teacher{}, nil
	}

	raw, ok, err := r.store.Get(ctx, TeachersKey)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if ok {
		var teachers []models.Teacher
		if err := json.Unmarshal([]byte(raw), &teachers); err == nil && teachers != nil {
			return teachers, nil
		}
		r.logger.Warn("invalid roster blob, falling back to seed defaults",
			zap.String("key", TeachersKey))
	}

	defaults := seedTeachers()
	if err := r.save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// Add appends the teacher and persists the roster. Storage write failures
// propagate untouched.
func (r *TeacherRepository) Add(ctx context.Context, teacher models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	teachers = append(teachers, teacher)
	return r.save(ctx, teachers)
}

// Update shallow-merges the patch into the matching record. An unknown id is
// a silent no-op.
func (r *TeacherRepository) Update(ctx context.Context, id string, patch models.TeacherPatch) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			patch.Apply(&teachers[i])
			break
		}
	}
	return r.save(ctx, teachers)
}

// Delete removes the matching record, if any, and persists the roster. It
// returns the surviving roster so the caller can reconcile the schedule.
func (r *TeacherRepository) Delete(ctx context.Context, id string) ([]models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := teachers[:0]
	for _, t := range teachers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := r.save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (r *TeacherRepository) save(ctx context.Context, teachers []models.Teacher) error {
	if !r.store.Available() {
		return nil
	}
	payload, err := json.Marshal(teachers)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := r.store.Set(ctx, TeachersKey, string(payload)); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}
