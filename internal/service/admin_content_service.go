package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/cache"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/model"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultPassScore = 70

// AdminContentService seeds lessons and tests after checking content invariants.
type AdminContentService interface {
	CreateLesson(ctx context.Context, req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error)
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
}

type adminContentService struct {
	lessonRepo repository.LessonRepository
	testRepo   repository.TestRepository
	tests      cache.TestCache
}

func NewAdminContentService(lessonRepo repository.LessonRepository, testRepo repository.TestRepository, tests cache.TestCache) AdminContentService {
	return &adminContentService{lessonRepo: lessonRepo, testRepo: testRepo, tests: tests}
}

func buildExercises(items []dto.ExerciseCreateDTO) ([]model.Exercise, error) {
	exercises := make([]model.Exercise, 0, len(items))
	for i, item := range items {
		var ex model.Exercise
		if err := copier.Copy(&ex, &item); err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		ex.OrderIndex = i + 1
		if ex.Focus == "" {
			ex.Focus = model.FocusVocabulary
		}
		if err := assessment.ValidateExercise(&ex); err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i+1, item.Question, err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func (s *adminContentService) CreateLesson(ctx context.Context, req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error) {
	exercises, err := buildExercises(req.Exercises)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	lesson := model.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Exercises:   exercises,
	}
	if err := s.lessonRepo.Create(ctx, &lesson); err != nil {
		log.Error().Err(err).Msg("Failed to create lesson in database")
		return nil, fmt.Errorf("database error creating lesson: %w", err)
	}
	log.Info().Uint("lessonID", lesson.ID).Int("exercises", len(exercises)).Msg("Lesson created")

	return &dto.LessonResponseDTO{
		ID:          lesson.ID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Exercises:   toAdminExerciseDTOs(lesson.Exercises),
	}, nil
}

func (s *adminContentService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if len(req.Exercises) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, assessment.ErrTestUnavailable)
	}
	exercises, err := buildExercises(req.Exercises)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	lessonIDs := uniqueIDs(req.LessonIDs)
	found, err := s.lessonRepo.ExistingIDs(ctx, lessonIDs)
	if err != nil {
		return nil, fmt.Errorf("database error checking lessons: %w", err)
	}
	if len(found) != len(lessonIDs) {
		return nil, fmt.Errorf("lessons %v, found %v: %w", lessonIDs, found, ErrUnknownLesson)
	}

	passScore := defaultPassScore
	if req.PassScore != nil {
		passScore = *req.PassScore
	}
	test := model.Test{
		Name:           req.Name,
		Description:    req.Description,
		PassScore:      passScore,
		TotalQuestions: len(exercises),
		Exercises:      exercises,
	}
	for _, id := range lessonIDs {
		test.Lessons = append(test.Lessons, model.Lesson{ID: id})
	}

	if err := s.testRepo.Create(ctx, &test); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("test %q: %w", req.Name, ErrDuplicateContent)
		}
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	if err := s.tests.Invalidate(ctx, test.ID); err != nil {
		log.Warn().Err(err).Uint("testID", test.ID).Msg("Failed to invalidate cached test")
	}
	log.Info().Uint("testID", test.ID).Int("exercises", len(exercises)).Msg("Test created")

	return &dto.TestResponseDTO{
		ID:             test.ID,
		Name:           test.Name,
		Description:    test.Description,
		PassScore:      test.PassScore,
		TotalQuestions: test.TotalQuestions,
		LessonIDs:      lessonIDs,
		Exercises:      toAdminExerciseDTOs(test.Exercises),
	}, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
