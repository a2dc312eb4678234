package repository

import (
	"context"

	"github.com/lshigami/englishhub/internal/model"
	"gorm.io/gorm"
)

type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	FindByID(ctx context.Context, id uint) (*model.Lesson, error)
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

// Create stores the lesson together with its exercises.
func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

// FindByID loads the lesson with its exercises in lesson order.
func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).Preload("Exercises", orderedExercises).First(&lesson, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &lesson, nil
}

func (r *lessonRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := r.db.WithContext(ctx).Model(&model.Lesson{}).Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error
	return found, err
}
