package repository

import (
	"context"

	"github.com/lshigami/englishhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExerciseRecordRepository stores one row per (user, exercise).
type ExerciseRecordRepository interface {
	FindByUserAndLesson(ctx context.Context, userID, lessonID uint) ([]model.UserExerciseRecord, error)
	// Upsert inserts or updates the row. Completion never flips back to false.
	Upsert(ctx context.Context, rec *model.UserExerciseRecord) error
	// LessonCompletionStatus reports, per lesson, whether the learner has
	// completed every exercise. Lessons without exercises count as completed.
	LessonCompletionStatus(ctx context.Context, userID uint, lessonIDs []uint) (map[uint]bool, error)
}

type exerciseRecordRepository struct {
	db *gorm.DB
}

func NewExerciseRecordRepository(db *gorm.DB) ExerciseRecordRepository {
	return &exerciseRecordRepository{db: db}
}

func (r *exerciseRecordRepository) FindByUserAndLesson(ctx context.Context, userID, lessonID uint) ([]model.UserExerciseRecord, error) {
	var records []model.UserExerciseRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("exercise_id ASC").
		Find(&records).Error
	return records, err
}

func (r *exerciseRecordRepository) Upsert(ctx context.Context, rec *model.UserExerciseRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "exercise_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_answer": gorm.Expr("excluded.user_answer"),
			"is_correct":  gorm.Expr("excluded.is_correct"),
			"completed":   gorm.Expr("user_exercise_records.completed OR excluded.completed"),
			"updated_at":  gorm.Expr("excluded.updated_at"),
		}),
	}).Create(rec).Error
}

type lessonCount struct {
	LessonID uint
	Total    int
	Done     int
}

func (r *exerciseRecordRepository) LessonCompletionStatus(ctx context.Context, userID uint, lessonIDs []uint) (map[uint]bool, error) {
	status := make(map[uint]bool, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return status, nil
	}
	var counts []lessonCount
	err := r.db.WithContext(ctx).Model(&model.Exercise{}).
		Select("exercises.lesson_id AS lesson_id, COUNT(exercises.id) AS total, COUNT(user_exercise_records.id) AS done").
		Joins("LEFT JOIN user_exercise_records ON user_exercise_records.exercise_id = exercises.id "+
			"AND user_exercise_records.user_id = ? AND user_exercise_records.completed = ?", userID, true).
		Where("exercises.lesson_id IN ?", lessonIDs).
		Group("exercises.lesson_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, id := range lessonIDs {
		status[id] = true
	}
	for _, c := range counts {
		status[c.LessonID] = c.Done == c.Total
	}
	return status, nil
}
