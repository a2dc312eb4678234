package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExerciseType string

const (
	ExerciseMultipleChoice ExerciseType = "multiple_choice"
	ExerciseTranslate      ExerciseType = "translate"
	ExerciseFillInBlank    ExerciseType = "fill_in_the_blank"
	ExerciseImageTranslate ExerciseType = "image_translate"
)

// IsFreeText reports whether answers of this type are typed by the learner
// rather than picked from a list of options.
func (t ExerciseType) IsFreeText() bool {
	switch t {
	case ExerciseTranslate, ExerciseFillInBlank, ExerciseImageTranslate:
		return true
	}
	return false
}

func (t ExerciseType) Valid() bool {
	return t == ExerciseMultipleChoice || t.IsFreeText()
}

type ExerciseFocus string

const (
	FocusVocabulary ExerciseFocus = "vocabulary"
	FocusGrammar    ExerciseFocus = "grammar"
)

// Exercise is a single gradable question. It belongs either to a lesson or to
// a test's question bank.
type Exercise struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	LessonID    *uint                       `json:"lesson_id,omitempty" gorm:"index"`
	TestID      *uint                       `json:"test_id,omitempty" gorm:"index"`
	OrderIndex  int                         `json:"order_index" gorm:"not null;default:0"`
	Question    string                      `json:"question" gorm:"type:text;not null"`
	Type        ExerciseType                `json:"type" gorm:"not null"`
	Focus       ExerciseFocus               `json:"focus" gorm:"not null;default:'vocabulary'"`
	Options     datatypes.JSONSlice[string] `json:"options,omitempty"`
	Answer      datatypes.JSONSlice[string] `json:"answer"`
	Explanation string                      `json:"explanation,omitempty" gorm:"type:text"`
	ImageURL    *string                     `json:"image_url,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`
}
