package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserExerciseRecord holds a learner's latest answer to one exercise. There is
// exactly one row per (user, exercise).
type UserExerciseRecord struct {
	ID         uint                        `gorm:"primarykey" json:"id"`
	UserID     uint                        `json:"user_id" gorm:"not null;uniqueIndex:idx_user_exercise"`
	ExerciseID uint                        `json:"exercise_id" gorm:"not null;uniqueIndex:idx_user_exercise"`
	LessonID   uint                        `json:"lesson_id" gorm:"not null;index"`
	Completed  bool                        `json:"completed" gorm:"not null;default:false"`
	UserAnswer datatypes.JSONSlice[string] `json:"user_answer"`
	IsCorrect  bool                        `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}
