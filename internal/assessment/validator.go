package assessment

import (
	"fmt"

	"github.com/lshigami/englishhub/internal/model"
)

// IsCorrect reports whether submitted satisfies the exercise's answer key.
// Every exercise type takes a single answer; anything else is incorrect.
func IsCorrect(submitted AnswerSet, ex *model.Exercise) bool {
	if ex == nil || len(submitted) != 1 {
		return false
	}
	given := submitted[0]

	if ex.Type == model.ExerciseMultipleChoice {
		for _, accepted := range ex.Answer {
			if accepted == given {
				return true
			}
		}
		return false
	}
	if !ex.Type.IsFreeText() {
		return false
	}

	want := normalize(given)
	if want == "" {
		return false
	}
	for _, accepted := range ex.Answer {
		if normalize(accepted) == want {
			return true
		}
	}
	return false
}

// ValidateExercise checks the content invariants an exercise must hold before
// it can be presented or graded.
func ValidateExercise(ex *model.Exercise) error {
	if !ex.Type.Valid() {
		return fmt.Errorf("exercise %d: %w: %q", ex.ID, ErrUnknownExerciseType, ex.Type)
	}
	key := NewAnswerSet(ex.Answer...)
	if key.Empty() {
		return fmt.Errorf("exercise %d: %w", ex.ID, ErrEmptyAnswerKey)
	}
	if ex.Type == model.ExerciseMultipleChoice {
		options := AnswerSet(ex.Options)
		for _, a := range key {
			if !options.Contains(a) {
				return fmt.Errorf("exercise %d: %w: %q", ex.ID, ErrAnswerNotInOptions, a)
			}
		}
	}
	return nil
}

// Feedback is what the learner sees after answering.
type Feedback struct {
	Show           bool     `json:"show"`
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswers []string `json:"correct_answers,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

// FeedbackFor builds feedback for an answer. Multiple choice answers always
// show feedback; free text answers show it only when wrong.
func FeedbackFor(ex *model.Exercise, correct bool) Feedback {
	return Feedback{
		Show:           ex.Type == model.ExerciseMultipleChoice || !correct,
		IsCorrect:      correct,
		CorrectAnswers: []string(ex.Answer),
		Explanation:    ex.Explanation,
	}
}
