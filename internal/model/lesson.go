package model

import (
	"time"

	"gorm.io/gorm"
)

type Lesson struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Exercises   []Exercise     `json:"exercises,omitempty" gorm:"foreignKey:LessonID"`
	Tests       []Test         `json:"tests,omitempty" gorm:"many2many:test_lessons;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
