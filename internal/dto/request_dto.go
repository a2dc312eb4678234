package dto

import (
	"encoding/json"
	"errors"

	"github.com/lshigami/englishhub/internal/assessment"
)

var errAnswerShape = errors.New("answer must be a string or an array of strings")

// FlexibleAnswer accepts either "dog" or ["dog"] on the wire.
type FlexibleAnswer []string

func (a *FlexibleAnswer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = FlexibleAnswer{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errAnswerShape
	}
	*a = many
	return nil
}

func (a FlexibleAnswer) AnswerSet() assessment.AnswerSet {
	return assessment.NewAnswerSet(a...)
}

// StartSessionRequest starts an exercise session or lists a lesson's tests.
type StartSessionRequest struct {
	UserID uint `json:"user_id" binding:"required"` // Temporary, for non-auth user identification
}

type SubmitAnswerRequest struct {
	Answer FlexibleAnswer `json:"answer"`
}

// SubmitExerciseAnswerRequest records one answer outside any session.
type SubmitExerciseAnswerRequest struct {
	UserID uint           `json:"user_id" binding:"required"`
	Answer FlexibleAnswer `json:"answer"`
}

type StartTestRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Retake bool `json:"retake"`
}

type ChooseTestRequest struct {
	TestID uint `json:"test_id" binding:"required"`
}

type SetTestAnswerRequest struct {
	ExerciseID uint           `json:"exercise_id" binding:"required"`
	Answer     FlexibleAnswer `json:"answer"`
}

// TestAnswerDTO is one answer inside a whole-test submission.
type TestAnswerDTO struct {
	ExerciseID uint           `json:"exercise_id" binding:"required"`
	Answer     FlexibleAnswer `json:"answer"`
}

// TestAttemptSubmitDTO is the request DTO for a user submitting all answers for a test.
type TestAttemptSubmitDTO struct {
	UserID  uint            `json:"user_id" binding:"required"`
	Answers []TestAnswerDTO `json:"answers" binding:"dive"`
}

// AnswerMap folds the submission into one answer set per exercise. Later
// entries for the same exercise win.
func (r TestAttemptSubmitDTO) AnswerMap() map[uint]assessment.AnswerSet {
	out := make(map[uint]assessment.AnswerSet, len(r.Answers))
	for _, a := range r.Answers {
		set := a.Answer.AnswerSet()
		if set.Empty() {
			delete(out, a.ExerciseID)
			continue
		}
		out[a.ExerciseID] = set
	}
	return out
}
