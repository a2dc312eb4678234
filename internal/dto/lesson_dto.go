package dto

// LessonProgressDTO is the learner's standing in one lesson.
type LessonProgressDTO struct {
	LessonID  uint        `json:"lesson_id"`
	UserID    uint        `json:"user_id"`
	Progress  ProgressDTO `json:"progress"`
	NextIndex *int        `json:"next_index,omitempty"`
	Completed bool        `json:"completed"`
}

type ExerciseSessionResponse struct {
	SessionID string               `json:"session_id"`
	UserID    uint                 `json:"user_id"`
	LessonID  uint                 `json:"lesson_id"`
	Phase     string               `json:"phase"`
	Index     int                  `json:"index"`
	Practice  bool                 `json:"practice"`
	Exercise  *ExerciseResponseDTO `json:"exercise,omitempty"`
	Feedback  *FeedbackDTO         `json:"feedback,omitempty"`
	Progress  ProgressDTO          `json:"progress"`
}

// ExerciseAnswerResponse is returned after submitting inside a session.
type ExerciseAnswerResponse struct {
	IsCorrect bool                    `json:"is_correct"`
	Feedback  FeedbackDTO             `json:"feedback"`
	Session   ExerciseSessionResponse `json:"session"`
}

// ExerciseResultDTO is returned by the stateless exercise submission.
type ExerciseResultDTO struct {
	ExerciseID uint        `json:"exercise_id"`
	IsCorrect  bool        `json:"is_correct"`
	Completed  bool        `json:"completed"`
	Feedback   FeedbackDTO `json:"feedback"`
}
