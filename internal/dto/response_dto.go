package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ExerciseResponseDTO is an exercise as shown to a learner, without its answer key.
type ExerciseResponseDTO struct {
	ID         uint     `json:"id"`
	OrderIndex int      `json:"order_index"`
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Focus      string   `json:"focus"`
	Options    []string `json:"options,omitempty"`
	ImageURL   *string  `json:"image_url,omitempty"`
}

type FeedbackDTO struct {
	Show           bool     `json:"show"`
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswers []string `json:"correct_answers,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

type ProgressDTO struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}
