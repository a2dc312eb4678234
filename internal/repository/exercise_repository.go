package repository

import (
	"context"

	"github.com/lshigami/englishhub/internal/model"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Exercise, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, translate(err)
	}
	return &exercise, nil
}
