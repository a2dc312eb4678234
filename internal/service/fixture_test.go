package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/englishhub/config"
	"github.com/lshigami/englishhub/database"
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/cache"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	lessonRepo   repository.LessonRepository
	testRepo     repository.TestRepository
	exerciseRepo repository.ExerciseRepository
	recordRepo   repository.ExerciseRecordRepository
	attemptRepo  repository.TestRecordRepository
	tests        cache.TestCache

	exerciseSessions ExerciseSessionStore
	testSessions     TestSessionStore

	admin AdminContentService
	cfg   *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	f := &fixture{
		lessonRepo:       repository.NewLessonRepository(db),
		testRepo:         repository.NewTestRepository(db),
		exerciseRepo:     repository.NewExerciseRepository(db),
		recordRepo:       repository.NewExerciseRecordRepository(db),
		attemptRepo:      repository.NewTestRecordRepository(db),
		exerciseSessions: session.NewMemoryStore[*assessment.ExerciseSession](time.Hour),
		testSessions:     session.NewMemoryStore[*assessment.TestSession](time.Hour),
		cfg:              &config.Config{Engine: config.Engine{AttemptRetries: 3}},
	}
	f.tests = cache.NewMemoryTestCache(cache.LoaderFunc(f.testRepo.FindByID), time.Minute)
	f.admin = NewAdminContentService(f.lessonRepo, f.testRepo, f.tests)
	return f
}

func (f *fixture) lessons() LessonService {
	return NewLessonService(f.lessonRepo, f.exerciseRepo, f.recordRepo, f.exerciseSessions)
}

func (f *fixture) testService() TestService {
	return NewTestService(f.testRepo, f.lessonRepo, f.recordRepo, f.attemptRepo, f.tests, f.testSessions, f.cfg)
}

// seedAnimals creates a lesson with cat/dog/bird, a translation and a fill-in.
func (f *fixture) seedAnimals(t *testing.T) *dto.LessonResponseDTO {
	t.Helper()
	lesson, err := f.admin.CreateLesson(context.Background(), dto.LessonCreateDTO{
		Title: "Animals",
		Exercises: []dto.ExerciseCreateDTO{
			{Question: "Which one barks?", Type: "multiple_choice", Options: []string{"cat", "dog", "bird"}, Answer: []string{"dog"}, Explanation: "Dogs bark."},
			{Question: "Translate 'xin chao'", Type: "translate", Answer: []string{"Hello"}},
			{Question: "She ___ a doctor", Type: "fill_in_the_blank", Focus: "grammar", Answer: []string{"is"}},
		},
	})
	if err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return lesson
}

// seedArithmetic creates a two-question test gated by the given lessons.
func (f *fixture) seedArithmetic(t *testing.T, lessonIDs ...uint) *dto.TestResponseDTO {
	t.Helper()
	pass := 70
	test, err := f.admin.CreateTest(context.Background(), dto.TestCreateDTO{
		Name:      "Numbers",
		PassScore: &pass,
		LessonIDs: lessonIDs,
		Exercises: []dto.ExerciseCreateDTO{
			{Question: "2 + 3 = ?", Type: "fill_in_the_blank", Answer: []string{"5"}},
			{Question: "3 + 4 = ?", Type: "fill_in_the_blank", Answer: []string{"7"}},
		},
	})
	if err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return test
}

func (f *fixture) completeLesson(t *testing.T, userID uint, lesson *dto.LessonResponseDTO) {
	t.Helper()
	svc := f.lessons()
	for _, ex := range lesson.Exercises {
		if _, err := svc.SubmitExerciseAnswer(context.Background(), userID, ex.ID, assessment.NewAnswerSet(ex.Answer[0])); err != nil {
			t.Fatalf("complete exercise %d: %v", ex.ID, err)
		}
	}
}
