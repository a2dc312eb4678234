package assessment_test

import "github.com/lshigami/englishhub/internal/model"

func mc(id uint, options []string, answer ...string) model.Exercise {
	return model.Exercise{
		ID:       id,
		Question: "Pick one",
		Type:     model.ExerciseMultipleChoice,
		Focus:    model.FocusVocabulary,
		Options:  options,
		Answer:   answer,
	}
}

func text(id uint, typ model.ExerciseType, answer ...string) model.Exercise {
	return model.Exercise{
		ID:          id,
		Question:    "Translate",
		Type:        typ,
		Focus:       model.FocusGrammar,
		Answer:      answer,
		Explanation: "see grammar notes",
	}
}

func lessonExercises() []model.Exercise {
	return []model.Exercise{
		mc(1, []string{"cat", "dog", "bird"}, "dog"),
		text(2, model.ExerciseTranslate, "Hello"),
		text(3, model.ExerciseFillInBlank, "is"),
	}
}

func completedRecord(userID, exerciseID uint) model.UserExerciseRecord {
	return model.UserExerciseRecord{UserID: userID, ExerciseID: exerciseID, LessonID: 10, Completed: true, IsCorrect: true}
}
