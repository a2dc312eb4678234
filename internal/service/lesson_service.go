package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/model"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/session"
	"github.com/rs/zerolog/log"
)

type ExerciseSessionStore = session.Store[*assessment.ExerciseSession]

// LessonService runs exercise sessions and tracks lesson completion.
type LessonService interface {
	GetProgress(ctx context.Context, userID, lessonID uint) (*dto.LessonProgressDTO, error)
	StartSession(ctx context.Context, userID, lessonID uint) (*dto.ExerciseSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, answer assessment.AnswerSet) (*dto.ExerciseAnswerResponse, error)
	Continue(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error)
	PracticeAgain(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error)
	// SubmitExerciseAnswer records one answer without a session.
	SubmitExerciseAnswer(ctx context.Context, userID, exerciseID uint, answer assessment.AnswerSet) (*dto.ExerciseResultDTO, error)
}

type lessonService struct {
	lessonRepo   repository.LessonRepository
	exerciseRepo repository.ExerciseRepository
	recordRepo   repository.ExerciseRecordRepository
	sessions     ExerciseSessionStore
	locks        *session.Locks
}

func NewLessonService(
	lessonRepo repository.LessonRepository,
	exerciseRepo repository.ExerciseRepository,
	recordRepo repository.ExerciseRecordRepository,
	sessions ExerciseSessionStore,
) LessonService {
	return &lessonService{
		lessonRepo:   lessonRepo,
		exerciseRepo: exerciseRepo,
		recordRepo:   recordRepo,
		sessions:     sessions,
		locks:        &session.Locks{},
	}
}

func (s *lessonService) loadTracker(ctx context.Context, userID, lessonID uint) (*assessment.Tracker, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, lessonID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Uint("lessonID", lessonID).Msg("Failed to load lesson exercises")
		}
		return nil, fmt.Errorf("lesson %d: %w", lessonID, err)
	}
	exercises := lesson.Exercises
	if err := checkLessonContent(lessonID, exercises); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.FindByUserAndLesson(ctx, userID, lessonID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("lessonID", lessonID).Msg("Failed to load exercise records")
		return nil, fmt.Errorf("records for lesson %d: %w", lessonID, err)
	}
	return assessment.NewTracker(userID, lessonID, exercises, records), nil
}

// checkLessonContent blocks lessons holding an exercise that cannot be graded.
func checkLessonContent(lessonID uint, exercises []model.Exercise) error {
	for i := range exercises {
		if err := assessment.ValidateExercise(&exercises[i]); err != nil {
			log.Warn().Err(err).Uint("lessonID", lessonID).Uint("exerciseID", exercises[i].ID).Msg("Lesson content is unusable")
			return fmt.Errorf("lesson %d: %w", lessonID, err)
		}
	}
	return nil
}

func (s *lessonService) GetProgress(ctx context.Context, userID, lessonID uint) (*dto.LessonProgressDTO, error) {
	tracker, err := s.loadTracker(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LessonProgressDTO{
		LessonID:  lessonID,
		UserID:    userID,
		Progress:  toProgressDTO(tracker.Progress()),
		Completed: tracker.AllCompleted(),
	}
	if i, ok := tracker.NextIncomplete(-1); ok {
		resp.NextIndex = &i
	}
	return resp, nil
}

func (s *lessonService) StartSession(ctx context.Context, userID, lessonID uint) (*dto.ExerciseSessionResponse, error) {
	tracker, err := s.loadTracker(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	sess := assessment.StartExerciseSession(session.NewID(), tracker)
	if err := s.sessions.Save(ctx, sess.ID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID).Msg("Failed to save exercise session")
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Info().Str("sessionID", sess.ID).Uint("userID", userID).Uint("lessonID", lessonID).
		Str("phase", string(sess.Phase())).Msg("Exercise session started")
	resp := toExerciseSessionResponse(sess)
	return &resp, nil
}

func (s *lessonService) GetSession(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp := toExerciseSessionResponse(sess)
	return &resp, nil
}

func (s *lessonService) SubmitAnswer(ctx context.Context, sessionID string, answer assessment.AnswerSet) (*dto.ExerciseAnswerResponse, error) {
	defer s.locks.Lock(sessionID)()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	attempt, err := sess.Check(answer)
	if err != nil {
		return nil, err
	}
	if attempt.Record != nil {
		rec := *attempt.Record
		if err := s.recordRepo.Upsert(ctx, &rec); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Uint("exerciseID", attempt.ExerciseID).
				Msg("Failed to store exercise record")
			return nil, fmt.Errorf("store answer for exercise %d: %w", attempt.ExerciseID, err)
		}
		attempt.Record = &rec
	}
	if err := sess.Commit(attempt); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to save exercise session")
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &dto.ExerciseAnswerResponse{
		IsCorrect: attempt.IsCorrect,
		Feedback:  toFeedbackDTO(attempt.Feedback),
		Session:   toExerciseSessionResponse(sess),
	}, nil
}

func (s *lessonService) Continue(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error) {
	return s.update(ctx, sessionID, (*assessment.ExerciseSession).Continue)
}

func (s *lessonService) PracticeAgain(ctx context.Context, sessionID string) (*dto.ExerciseSessionResponse, error) {
	return s.update(ctx, sessionID, (*assessment.ExerciseSession).PracticeAgain)
}

func (s *lessonService) update(ctx context.Context, sessionID string, op func(*assessment.ExerciseSession) error) (*dto.ExerciseSessionResponse, error) {
	defer s.locks.Lock(sessionID)()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to save exercise session")
		return nil, fmt.Errorf("save session: %w", err)
	}
	resp := toExerciseSessionResponse(sess)
	return &resp, nil
}

func (s *lessonService) SubmitExerciseAnswer(ctx context.Context, userID, exerciseID uint, answer assessment.AnswerSet) (*dto.ExerciseResultDTO, error) {
	ex, err := s.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, err)
	}
	if ex.LessonID == nil {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, assessment.ErrExerciseNotInLesson)
	}
	lessonID := *ex.LessonID
	if err := checkLessonContent(lessonID, []model.Exercise{*ex}); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindByUserAndLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("records for lesson %d: %w", lessonID, err)
	}
	tracker := assessment.NewTracker(userID, lessonID, []model.Exercise{*ex}, records)
	if _, err := tracker.RecordAttempt(exerciseID, answer); err != nil {
		return nil, err
	}
	rec, _ := tracker.Record(exerciseID)
	if err := s.recordRepo.Upsert(ctx, &rec); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("exerciseID", exerciseID).Msg("Failed to store exercise record")
		return nil, fmt.Errorf("store answer for exercise %d: %w", exerciseID, err)
	}

	return &dto.ExerciseResultDTO{
		ExerciseID: exerciseID,
		IsCorrect:  rec.IsCorrect,
		Completed:  rec.Completed,
		Feedback:   toFeedbackDTO(assessment.FeedbackFor(ex, rec.IsCorrect)),
	}, nil
}
