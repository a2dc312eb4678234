package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/englishhub/config"
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/cache"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/model"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type TestSessionStore = session.Store[*assessment.TestSession]

// TestService gates, runs and scores tests.
type TestService interface {
	ListLessonTests(ctx context.Context, userID, lessonID uint) ([]dto.TestSummaryDTO, error)
	GetGate(ctx context.Context, userID, testID uint) (*dto.GateDTO, error)
	// StartTest begins a single test. Without retake, a learner who already
	// passed gets the passed attempt back and no session is created.
	StartTest(ctx context.Context, userID, testID uint, retake bool) (*dto.TestSessionResponse, error)
	StartLessonTests(ctx context.Context, userID, lessonID uint) (*dto.TestSessionResponse, error)
	ChooseTest(ctx context.Context, sessionID string, testID uint) (*dto.TestSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)
	SetAnswer(ctx context.Context, sessionID string, exerciseID uint, answer assessment.AnswerSet) (*dto.TestSessionResponse, error)
	NextQuestion(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)
	PreviousQuestion(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)
	Retake(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)
	// SubmitTest grades and stores a whole attempt without a session.
	SubmitTest(ctx context.Context, userID, testID uint, answers map[uint]assessment.AnswerSet) (*dto.TestAttemptResponseDTO, error)
	GetMyAttempts(ctx context.Context, userID, testID uint) (*dto.TestAttemptHistoryDTO, error)
}

type testService struct {
	testRepo    repository.TestRepository
	lessonRepo  repository.LessonRepository
	recordRepo  repository.ExerciseRecordRepository
	attemptRepo repository.TestRecordRepository
	tests       cache.TestCache
	sessions    TestSessionStore
	locks       *session.Locks
	retries     int
	clock       func() time.Time
}

func NewTestService(
	testRepo repository.TestRepository,
	lessonRepo repository.LessonRepository,
	recordRepo repository.ExerciseRecordRepository,
	attemptRepo repository.TestRecordRepository,
	tests cache.TestCache,
	sessions TestSessionStore,
	cfg *config.Config,
) TestService {
	retries := cfg.Engine.AttemptRetries
	if retries < 1 {
		retries = 1
	}
	return &testService{
		testRepo:    testRepo,
		lessonRepo:  lessonRepo,
		recordRepo:  recordRepo,
		attemptRepo: attemptRepo,
		tests:       tests,
		sessions:    sessions,
		locks:       &session.Locks{},
		retries:     retries,
		clock:       time.Now,
	}
}

func (s *testService) loadTest(ctx context.Context, testID uint) (*model.Test, error) {
	test, err := s.tests.GetTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to load test")
		return nil, fmt.Errorf("test %d: %w", testID, err)
	}
	return test, nil
}

// gate recomputes lesson completion on every call.
func (s *testService) gate(ctx context.Context, userID uint, lessonIDs []uint) (assessment.GateResult, error) {
	status, err := s.recordRepo.LessonCompletionStatus(ctx, userID, lessonIDs)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to load lesson completion")
		return assessment.GateResult{}, fmt.Errorf("lesson completion: %w", err)
	}
	return assessment.EvaluateGate(lessonIDs, status), nil
}

func (s *testService) ListLessonTests(ctx context.Context, userID, lessonID uint) ([]dto.TestSummaryDTO, error) {
	found, err := s.lessonRepo.ExistingIDs(ctx, []uint{lessonID})
	if err != nil {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, repository.ErrNotFound)
	}

	tests, err := s.testRepo.FindByLessonID(ctx, lessonID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("Failed to load tests for lesson")
		return nil, fmt.Errorf("tests for lesson %d: %w", lessonID, err)
	}

	var lessonIDs []uint
	seen := map[uint]bool{}
	for i := range tests {
		for _, id := range tests[i].LessonIDs() {
			if !seen[id] {
				seen[id] = true
				lessonIDs = append(lessonIDs, id)
			}
		}
	}
	status, err := s.recordRepo.LessonCompletionStatus(ctx, userID, lessonIDs)
	if err != nil {
		return nil, fmt.Errorf("lesson completion: %w", err)
	}
	records, err := s.attemptRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("attempts for user %d: %w", userID, err)
	}

	out := make([]dto.TestSummaryDTO, 0, len(tests))
	for i := range tests {
		unlocked := assessment.IsUnlocked(&tests[i], status)
		out = append(out, toTestSummary(&tests[i], unlocked, records))
	}
	return out, nil
}

func (s *testService) GetGate(ctx context.Context, userID, testID uint) (*dto.GateDTO, error) {
	test, err := s.loadTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	g, err := s.gate(ctx, userID, test.LessonIDs())
	if err != nil {
		return nil, err
	}
	return &dto.GateDTO{TestID: testID, Unlocked: g.Unlocked, FirstIncompleteLessonID: g.FirstIncompleteLessonID}, nil
}

func (s *testService) StartTest(ctx context.Context, userID, testID uint, retake bool) (*dto.TestSessionResponse, error) {
	test, err := s.loadTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	records, err := s.attemptRepo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("attempts for test %d: %w", testID, err)
	}
	if !retake {
		if passed, ok := assessment.PassedView(records, testID); ok {
			result := toAttemptDTO(passed, nil)
			summary := toTestSummary(test, true, records)
			return &dto.TestSessionResponse{
				UserID:        userID,
				State:         string(assessment.KindCompleted),
				Test:          &summary,
				Answers:       result.Answers,
				Result:        &result,
				AlreadyPassed: true,
			}, nil
		}
	}

	g, err := s.gate(ctx, userID, test.LessonIDs())
	if err != nil {
		return nil, err
	}
	state, err := assessment.BeginTest(test, g.Unlocked)
	if err != nil {
		return nil, s.startError(err, testID, g)
	}

	sess := &assessment.TestSession{ID: session.NewID(), UserID: userID, State: state}
	if err := s.sessions.Save(ctx, sess.ID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID).Msg("Failed to save test session")
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Info().Str("sessionID", sess.ID).Uint("userID", userID).Uint("testID", testID).Bool("retake", retake).Msg("Test started")
	return s.render(ctx, sess)
}

func (s *testService) startError(err error, testID uint, g assessment.GateResult) error {
	if errors.Is(err, assessment.ErrTestLocked) && g.FirstIncompleteLessonID != nil {
		return fmt.Errorf("test %d, first incomplete lesson %d: %w", testID, *g.FirstIncompleteLessonID, err)
	}
	if errors.Is(err, assessment.ErrTestUnavailable) {
		log.Warn().Err(err).Uint("testID", testID).Msg("Test content is unusable")
	}
	return err
}

func (s *testService) StartLessonTests(ctx context.Context, userID, lessonID uint) (*dto.TestSessionResponse, error) {
	found, err := s.lessonRepo.ExistingIDs(ctx, []uint{lessonID})
	if err != nil {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, repository.ErrNotFound)
	}
	tests, err := s.testRepo.FindByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("tests for lesson %d: %w", lessonID, err)
	}
	ids := make([]uint, 0, len(tests))
	for _, t := range tests {
		ids = append(ids, t.ID)
	}

	sess := &assessment.TestSession{
		ID:     session.NewID(),
		UserID: userID,
		State:  assessment.Selecting{LessonID: lessonID, TestIDs: ids},
	}
	if err := s.sessions.Save(ctx, sess.ID, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.render(ctx, sess)
}

func (s *testService) ChooseTest(ctx context.Context, sessionID string, testID uint) (*dto.TestSessionResponse, error) {
	defer s.locks.Lock(sessionID)()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := sess.State.(assessment.Selecting); !ok {
		return nil, fmt.Errorf("choose test in %s: %w", sess.State.Kind(), assessment.ErrInvalidTransition)
	}
	test, err := s.loadTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	g, err := s.gate(ctx, sess.UserID, test.LessonIDs())
	if err != nil {
		return nil, err
	}
	if err := sess.Apply(assessment.StartTest{Test: test, Unlocked: g.Unlocked}); err != nil {
		return nil, s.startError(err, testID, g)
	}
	return s.save(ctx, sess)
}

func (s *testService) GetSession(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, sess)
}

func (s *testService) SetAnswer(ctx context.Context, sessionID string, exerciseID uint, answer assessment.AnswerSet) (*dto.TestSessionResponse, error) {
	return s.apply(ctx, sessionID, assessment.SetAnswer{ExerciseID: exerciseID, Answer: answer})
}

func (s *testService) NextQuestion(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error) {
	return s.apply(ctx, sessionID, assessment.NextQuestion{})
}

func (s *testService) PreviousQuestion(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error) {
	return s.apply(ctx, sessionID, assessment.PreviousQuestion{})
}

func (s *testService) Retake(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error) {
	return s.apply(ctx, sessionID, assessment.Retake{})
}

func (s *testService) apply(ctx context.Context, sessionID string, ev assessment.Event) (*dto.TestSessionResponse, error) {
	defer s.locks.Lock(sessionID)()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Apply(ev); err != nil {
		return nil, err
	}
	return s.save(ctx, sess)
}

func (s *testService) Submit(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error) {
	defer s.locks.Lock(sessionID)()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	taking, ok := sess.State.(assessment.Taking)
	if !ok {
		return nil, fmt.Errorf("submit in %s: %w", sess.State.Kind(), assessment.ErrInvalidTransition)
	}
	grade, err := assessment.GradeTest(taking.Test, taking.Answers)
	if err != nil {
		return nil, err
	}
	rec, err := s.persistAttempt(ctx, sess.UserID, taking.Test.ID, grade)
	if err != nil {
		return nil, err
	}
	if err := sess.Apply(assessment.Submitted{Record: rec, Grade: grade}); err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", sessionID).Uint("testID", rec.TestID).Int("attemptNo", rec.AttemptNo).
		Int("score", rec.Score).Str("status", string(rec.Status)).Msg("Test submitted")

	// The attempt is already stored. A session that cannot be saved is dropped
	// instead of staying resubmittable.
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to save submitted test session")
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to drop stale test session")
		}
	}
	return s.render(ctx, sess)
}

func (s *testService) SubmitTest(ctx context.Context, userID, testID uint, answers map[uint]assessment.AnswerSet) (*dto.TestAttemptResponseDTO, error) {
	test, err := s.loadTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	if err := assessment.CheckTestContent(test); err != nil {
		return nil, err
	}
	g, err := s.gate(ctx, userID, test.LessonIDs())
	if err != nil {
		return nil, err
	}
	if !g.Unlocked {
		return nil, s.startError(assessment.ErrTestLocked, testID, g)
	}

	grade, err := assessment.GradeTest(test, answers)
	if err != nil {
		return nil, err
	}
	rec, err := s.persistAttempt(ctx, userID, testID, grade)
	if err != nil {
		return nil, err
	}
	resp := toAttemptDTO(rec, grade.Results)
	return &resp, nil
}

// persistAttempt appends the graded attempt. A concurrent submission that
// took the same attempt number is retried with a fresh number.
func (s *testService) persistAttempt(ctx context.Context, userID, testID uint, grade assessment.Grade) (model.UserTestRecord, error) {
	var lastErr error
	for try := 1; try <= s.retries; try++ {
		records, err := s.attemptRepo.FindByUserAndTest(ctx, userID, testID)
		if err != nil {
			return model.UserTestRecord{}, fmt.Errorf("attempts for test %d: %w", testID, err)
		}
		rec := model.UserTestRecord{
			UserID:      userID,
			TestID:      testID,
			AttemptNo:   assessment.NextAttemptNo(records, testID),
			Score:       grade.Score,
			Status:      grade.Status,
			Answers:     datatypes.NewJSONType(grade.Answers),
			SubmittedAt: s.clock(),
		}
		err = s.attemptRepo.Create(ctx, &rec)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, assessment.ErrAttemptConflict) {
			log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("Failed to store test attempt")
			return model.UserTestRecord{}, fmt.Errorf("store attempt: %w", err)
		}
		log.Warn().Uint("userID", userID).Uint("testID", testID).Int("attemptNo", rec.AttemptNo).Int("try", try).
			Msg("Attempt number taken, retrying")
		lastErr = err
	}
	return model.UserTestRecord{}, lastErr
}

func (s *testService) GetMyAttempts(ctx context.Context, userID, testID uint) (*dto.TestAttemptHistoryDTO, error) {
	records, err := s.attemptRepo.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("Failed to load attempts")
		return nil, fmt.Errorf("attempts for test %d: %w", testID, err)
	}
	history := &dto.TestAttemptHistoryDTO{
		TestID:   testID,
		UserID:   userID,
		Attempts: make([]dto.TestAttemptResponseDTO, 0, len(records)),
	}
	if status, ok := assessment.AuthoritativeStatus(records, testID); ok {
		history.Status = string(status)
	}
	for _, rec := range records {
		history.Attempts = append(history.Attempts, toAttemptDTO(rec, nil))
	}
	return history, nil
}

func (s *testService) save(ctx context.Context, sess *assessment.TestSession) (*dto.TestSessionResponse, error) {
	if err := s.sessions.Save(ctx, sess.ID, sess); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID).Msg("Failed to save test session")
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.render(ctx, sess)
}

func (s *testService) render(ctx context.Context, sess *assessment.TestSession) (*dto.TestSessionResponse, error) {
	resp := &dto.TestSessionResponse{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		State:     string(sess.State.Kind()),
	}
	switch st := sess.State.(type) {
	case assessment.Selecting:
		lessonID := st.LessonID
		resp.LessonID = &lessonID
		tests, err := s.ListLessonTests(ctx, sess.UserID, st.LessonID)
		if err != nil {
			return nil, err
		}
		resp.Tests = tests
	case assessment.Taking:
		if st.LessonID != 0 {
			lessonID := st.LessonID
			resp.LessonID = &lessonID
		}
		summary := toTestSummary(st.Test, true, nil)
		resp.Test = &summary
		resp.QuestionIndex = st.QuestionIndex
		resp.CompletedQuestions = st.CompletedQuestions
		resp.Question = toExerciseDTO(st.Current())
		resp.Answers = make(map[uint][]string, len(st.Answers))
		for id, a := range st.Answers {
			resp.Answers[id] = a.Strings()
		}
	case assessment.Completed:
		if st.LessonID != 0 {
			lessonID := st.LessonID
			resp.LessonID = &lessonID
		}
		records, err := s.attemptRepo.FindByUserAndTest(ctx, sess.UserID, st.Test.ID)
		if err != nil {
			return nil, fmt.Errorf("attempts for test %d: %w", st.Test.ID, err)
		}
		summary := toTestSummary(st.Test, true, records)
		resp.Test = &summary
		result := toAttemptDTO(st.Record, st.Grade.Results)
		resp.Result = &result
		resp.Answers = result.Answers
	}
	return resp, nil
}
