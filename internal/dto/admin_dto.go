package dto

// ExerciseCreateDTO is used within lesson and test creation.
type ExerciseCreateDTO struct {
	Question    string   `json:"question" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=multiple_choice translate fill_in_the_blank image_translate"`
	Focus       string   `json:"focus" binding:"omitempty,oneof=vocabulary grammar"`
	Options     []string `json:"options"`
	Answer      []string `json:"answer" binding:"required,min=1"`
	Explanation string   `json:"explanation"`
	ImageURL    *string  `json:"image_url"`
}

// LessonCreateDTO is for admin to create a lesson with its exercises in order.
type LessonCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Exercises   []ExerciseCreateDTO `json:"exercises" binding:"dive"`
}

// TestCreateDTO is for admin to create a test, its question bank and its prerequisite lessons.
type TestCreateDTO struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description,omitempty"`
	PassScore   *int                `json:"pass_score" binding:"omitempty,min=0,max=100"` // defaults to 70
	LessonIDs   []uint              `json:"lesson_ids"`
	Exercises   []ExerciseCreateDTO `json:"exercises" binding:"required,min=1,dive"`
}

type LessonResponseDTO struct {
	ID          uint                       `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	Exercises   []AdminExerciseResponseDTO `json:"exercises"`
}

// AdminExerciseResponseDTO includes the answer key.
type AdminExerciseResponseDTO struct {
	ID          uint     `json:"id"`
	OrderIndex  int      `json:"order_index"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Focus       string   `json:"focus"`
	Options     []string `json:"options,omitempty"`
	Answer      []string `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type TestResponseDTO struct {
	ID             uint                       `json:"id"`
	Name           string                     `json:"name"`
	Description    string                     `json:"description,omitempty"`
	PassScore      int                        `json:"pass_score"`
	TotalQuestions int                        `json:"total_questions"`
	LessonIDs      []uint                     `json:"lesson_ids"`
	Exercises      []AdminExerciseResponseDTO `json:"exercises"`
}
