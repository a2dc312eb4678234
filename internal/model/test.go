package model

import (
	"slices"
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Name           string         `json:"name" gorm:"not null;uniqueIndex"`
	Description    string         `json:"description,omitempty"`
	TotalQuestions int            `json:"total_questions"`
	PassScore      int            `json:"pass_score" gorm:"not null"` // percentage, 0-100
	Lessons        []Lesson       `json:"lessons,omitempty" gorm:"many2many:test_lessons;"`
	Exercises      []Exercise     `json:"exercises,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// LessonIDs returns the prerequisite lessons of the test in ascending ID order.
func (t *Test) LessonIDs() []uint {
	ids := make([]uint, 0, len(t.Lessons))
	for _, l := range t.Lessons {
		ids = append(ids, l.ID)
	}
	slices.Sort(ids)
	return ids
}
