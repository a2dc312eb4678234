package repository

import (
	"context"

	"github.com/lshigami/englishhub/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	// FindByID loads the test with its question bank and prerequisite lessons.
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByLessonID(ctx context.Context, lessonID uint) ([]model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// Create stores the test and its exercises. Lessons must already exist; only
// the join rows are written for them.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Omit("Lessons.*").Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Exercises", orderedExercises).
		Preload("Lessons", orderedLessons).
		First(&test, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &test, nil
}

// FindByLessonID returns the tests a lesson leads to, without their exercises.
func (r *testRepository) FindByLessonID(ctx context.Context, lessonID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Joins("JOIN test_lessons ON test_lessons.test_id = tests.id").
		Where("test_lessons.lesson_id = ?", lessonID).
		Preload("Lessons", orderedLessons).
		Order("tests.id ASC").
		Find(&tests).Error
	return tests, err
}
