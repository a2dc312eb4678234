package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/model"
	"github.com/rs/zerolog/log"
)

func toExerciseDTO(ex *model.Exercise) *dto.ExerciseResponseDTO {
	if ex == nil {
		return nil
	}
	var out dto.ExerciseResponseDTO
	if err := copier.Copy(&out, ex); err != nil {
		log.Error().Err(err).Uint("exerciseID", ex.ID).Msg("Failed to copy Exercise model to ExerciseResponseDTO")
	}
	return &out
}

func toAdminExerciseDTOs(exercises []model.Exercise) []dto.AdminExerciseResponseDTO {
	out := make([]dto.AdminExerciseResponseDTO, 0, len(exercises))
	if err := copier.Copy(&out, &exercises); err != nil {
		log.Error().Err(err).Msg("Failed to copy exercises to AdminExerciseResponseDTO")
	}
	return out
}

func toFeedbackDTO(fb assessment.Feedback) dto.FeedbackDTO {
	return dto.FeedbackDTO{
		Show:           fb.Show,
		IsCorrect:      fb.IsCorrect,
		CorrectAnswers: fb.CorrectAnswers,
		Explanation:    fb.Explanation,
	}
}

func toProgressDTO(p assessment.Progress) dto.ProgressDTO {
	return dto.ProgressDTO{Completed: p.Completed, Total: p.Total, Percent: p.Percent}
}

func toExerciseSessionResponse(s *assessment.ExerciseSession) dto.ExerciseSessionResponse {
	v := s.View()
	resp := dto.ExerciseSessionResponse{
		SessionID: v.ID,
		UserID:    v.UserID,
		LessonID:  v.LessonID,
		Phase:     string(v.Phase),
		Index:     v.Index,
		Practice:  v.Practice,
		Exercise:  toExerciseDTO(v.Exercise),
		Progress:  toProgressDTO(v.Progress),
	}
	if v.Feedback != nil {
		fb := toFeedbackDTO(*v.Feedback)
		resp.Feedback = &fb
	}
	return resp
}

func toAttemptDTO(rec model.UserTestRecord, results map[uint]bool) dto.TestAttemptResponseDTO {
	return dto.TestAttemptResponseDTO{
		ID:          rec.ID,
		UserID:      rec.UserID,
		TestID:      rec.TestID,
		AttemptNo:   rec.AttemptNo,
		Score:       rec.Score,
		Status:      string(rec.Status),
		Answers:     rec.Answers.Data(),
		Results:     results,
		SubmittedAt: rec.SubmittedAt,
	}
}

func toTestSummary(test *model.Test, unlocked bool, records []model.UserTestRecord) dto.TestSummaryDTO {
	summary := dto.TestSummaryDTO{
		ID:             test.ID,
		Name:           test.Name,
		Description:    test.Description,
		TotalQuestions: test.TotalQuestions,
		PassScore:      test.PassScore,
		LessonIDs:      test.LessonIDs(),
		Unlocked:       unlocked,
	}
	if summary.TotalQuestions == 0 {
		summary.TotalQuestions = len(test.Exercises)
	}
	if status, ok := assessment.AuthoritativeStatus(records, test.ID); ok {
		summary.Status = string(status)
	}
	return summary
}
