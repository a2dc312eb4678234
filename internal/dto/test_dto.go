package dto

import "time"

type GateDTO struct {
	TestID                  uint  `json:"test_id"`
	Unlocked                bool  `json:"unlocked"`
	FirstIncompleteLessonID *uint `json:"first_incomplete_lesson_id,omitempty"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	TotalQuestions int    `json:"total_questions"`
	PassScore      int    `json:"pass_score"`
	LessonIDs      []uint `json:"lesson_ids"`
	Unlocked       bool   `json:"unlocked"`
	// Status is empty until the first attempt; "passed" once any attempt passed.
	Status string `json:"status,omitempty"`
}

// TestAttemptResponseDTO is one stored attempt.
type TestAttemptResponseDTO struct {
	ID          uint              `json:"id"`
	UserID      uint              `json:"user_id"`
	TestID      uint              `json:"test_id"`
	AttemptNo   int               `json:"attempt_no"`
	Score       int               `json:"score"`
	Status      string            `json:"status"`
	Answers     map[uint][]string `json:"answers"`
	Results     map[uint]bool     `json:"results,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

type TestAttemptHistoryDTO struct {
	TestID   uint                     `json:"test_id"`
	UserID   uint                     `json:"user_id"`
	Status   string                   `json:"status,omitempty"`
	Attempts []TestAttemptResponseDTO `json:"attempts"`
}

// TestSessionResponse renders whichever state the session is in.
type TestSessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    uint   `json:"user_id"`
	State     string `json:"state"`
	LessonID  *uint  `json:"lesson_id,omitempty"`

	// selecting
	Tests []TestSummaryDTO `json:"tests,omitempty"`

	// taking and completed
	Test               *TestSummaryDTO      `json:"test,omitempty"`
	QuestionIndex      int                  `json:"question_index"`
	CompletedQuestions int                  `json:"completed_questions"`
	Question           *ExerciseResponseDTO `json:"question,omitempty"`
	Answers            map[uint][]string    `json:"answers,omitempty"`

	// completed
	Result        *TestAttemptResponseDTO `json:"result,omitempty"`
	AlreadyPassed bool                    `json:"already_passed,omitempty"`
}
