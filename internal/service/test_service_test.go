package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/model"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/session"
)

func answers(pairs map[uint]string) map[uint]assessment.AnswerSet {
	out := make(map[uint]assessment.AnswerSet, len(pairs))
	for id, a := range pairs {
		out[id] = assessment.NewAnswerSet(a)
	}
	return out
}

func TestStartTestRespectsGate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)
	test := f.seedArithmetic(t, lesson.ID)
	svc := f.testService()

	gate, err := svc.GetGate(ctx, 1, test.ID)
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if gate.Unlocked || gate.FirstIncompleteLessonID == nil || *gate.FirstIncompleteLessonID != lesson.ID {
		t.Fatalf("expected locked gate pointing at lesson %d, got %+v", lesson.ID, gate)
	}
	if _, err := svc.StartTest(ctx, 1, test.ID, false); !errors.Is(err, assessment.ErrTestLocked) {
		t.Fatalf("expected ErrTestLocked, got %v", err)
	}

	// one exercise short still blocks
	svcLessons := f.lessons()
	for _, ex := range lesson.Exercises[:2] {
		_, _ = svcLessons.SubmitExerciseAnswer(ctx, 1, ex.ID, assessment.NewAnswerSet(ex.Answer[0]))
	}
	if gate, _ := svc.GetGate(ctx, 1, test.ID); gate.Unlocked {
		t.Fatalf("gate must stay closed with one incomplete exercise")
	}

	f.completeLesson(t, 1, lesson)
	started, err := svc.StartTest(ctx, 1, test.ID, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.State != string(assessment.KindTaking) || started.SessionID == "" || started.Question == nil {
		t.Fatalf("expected taking state, got %+v", started)
	}
	if started.Question.Type != string(model.ExerciseFillInBlank) {
		t.Fatalf("unexpected question %+v", started.Question)
	}
}

func TestTakeAndSubmitTest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	test := f.seedArithmetic(t)
	svc := f.testService()
	e1, e2 := test.Exercises[0].ID, test.Exercises[1].ID

	started, err := svc.StartTest(ctx, 1, test.ID, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := started.SessionID

	if _, err := svc.SetAnswer(ctx, id, e1, assessment.NewAnswerSet("5")); err != nil {
		t.Fatalf("answer: %v", err)
	}
	view, err := svc.NextQuestion(ctx, id)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if view.QuestionIndex != 1 || view.CompletedQuestions != 1 {
		t.Fatalf("unexpected navigation %+v", view)
	}
	if view, _ = svc.NextQuestion(ctx, id); view.QuestionIndex != 1 {
		t.Fatalf("next at the last question must be a no-op")
	}
	if _, err := svc.SetAnswer(ctx, id, e2, assessment.NewAnswerSet("8")); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.SetAnswer(ctx, id, 9999, assessment.NewAnswerSet("1")); !errors.Is(err, assessment.ErrExerciseNotInTest) {
		t.Fatalf("expected ErrExerciseNotInTest, got %v", err)
	}
	if view, _ = svc.PreviousQuestion(ctx, id); view.QuestionIndex != 0 || view.CompletedQuestions != 1 {
		t.Fatalf("previous must keep the high-water mark, got %+v", view)
	}

	done, err := svc.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.State != string(assessment.KindCompleted) || done.Result == nil {
		t.Fatalf("expected completed, got %+v", done)
	}
	if done.Result.Score != 50 || done.Result.Status != string(model.TestFailed) || done.Result.AttemptNo != 1 {
		t.Fatalf("expected attempt 1 scoring 50/failed, got %+v", done.Result)
	}
	if !done.Result.Results[e1] || done.Result.Results[e2] {
		t.Fatalf("unexpected per-question results %v", done.Result.Results)
	}

	if _, err := svc.Submit(ctx, id); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("second submit on a completed session must fail, got %v", err)
	}

	again, err := svc.Retake(ctx, id)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if again.State != string(assessment.KindTaking) || len(again.Answers) != 0 {
		t.Fatalf("retake must clear answers, got %+v", again)
	}
	_, _ = svc.SetAnswer(ctx, id, e1, assessment.NewAnswerSet("5"))
	_, _ = svc.SetAnswer(ctx, id, e2, assessment.NewAnswerSet("7"))
	done, err = svc.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.Result.AttemptNo != 2 || done.Result.Status != string(model.TestPassed) {
		t.Fatalf("expected attempt 2 passed, got %+v", done.Result)
	}

	history, err := svc.GetMyAttempts(ctx, 1, test.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Attempts) != 2 || history.Status != string(model.TestPassed) {
		t.Fatalf("unexpected history %+v", history)
	}

	short, err := svc.StartTest(ctx, 1, test.ID, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !short.AlreadyPassed || short.SessionID != "" || short.Result.AttemptNo != 2 {
		t.Fatalf("expected passed view of attempt 2, got %+v", short)
	}
	forced, err := svc.StartTest(ctx, 1, test.ID, true)
	if err != nil || forced.State != string(assessment.KindTaking) {
		t.Fatalf("retake must go through taking, got %+v (%v)", forced, err)
	}
}

func TestSubmitTestStatelessKeepsPassed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	test := f.seedArithmetic(t)
	svc := f.testService()
	e1, e2 := test.Exercises[0].ID, test.Exercises[1].ID

	first, err := svc.SubmitTest(ctx, 1, test.ID, answers(map[uint]string{e1: "5", e2: "7", 4242: "stale"}))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if first.Score != 100 || first.Status != string(model.TestPassed) {
		t.Fatalf("expected pass, got %+v", first)
	}
	if _, ok := first.Answers[4242]; ok {
		t.Fatalf("answers outside the test must be dropped")
	}

	second, err := svc.SubmitTest(ctx, 1, test.ID, answers(map[uint]string{e1: "0"}))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if second.AttemptNo <= first.AttemptNo || second.Status != string(model.TestFailed) {
		t.Fatalf("expected a later failed attempt, got %+v", second)
	}

	history, _ := svc.GetMyAttempts(ctx, 1, test.ID)
	if history.Status != string(model.TestPassed) {
		t.Fatalf("a passed attempt stays authoritative, got %s", history.Status)
	}
}

type conflictOnceRepo struct {
	repository.TestRecordRepository
	conflicts int
}

func (r *conflictOnceRepo) Create(ctx context.Context, rec *model.UserTestRecord) error {
	if r.conflicts > 0 {
		r.conflicts--
		// a concurrent submission got there first
		other := *rec
		other.ID = 0
		if err := r.TestRecordRepository.Create(ctx, &other); err != nil {
			return err
		}
		return assessment.ErrAttemptConflict
	}
	return r.TestRecordRepository.Create(ctx, rec)
}

func TestSubmitRetriesAttemptConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	test := f.seedArithmetic(t)
	f.attemptRepo = &conflictOnceRepo{TestRecordRepository: f.attemptRepo, conflicts: 1}
	svc := f.testService()

	rec, err := svc.SubmitTest(ctx, 1, test.ID, answers(map[uint]string{test.Exercises[0].ID: "5"}))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.AttemptNo != 2 {
		t.Fatalf("expected retry to take attempt 2, got %d", rec.AttemptNo)
	}

	f.attemptRepo = &conflictOnceRepo{TestRecordRepository: f.attemptRepo, conflicts: 5}
	svc = f.testService()
	if _, err := svc.SubmitTest(ctx, 1, test.ID, nil); !errors.Is(err, assessment.ErrAttemptConflict) {
		t.Fatalf("expected ErrAttemptConflict after retries, got %v", err)
	}
}

func TestLessonTestSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)
	test := f.seedArithmetic(t, lesson.ID)
	svc := f.testService()

	list, err := svc.ListLessonTests(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Unlocked || list[0].Status != "" {
		t.Fatalf("expected one locked, unattempted test, got %+v", list)
	}

	sel, err := svc.StartLessonTests(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if sel.State != string(assessment.KindSelecting) || len(sel.Tests) != 1 {
		t.Fatalf("unexpected selecting view %+v", sel)
	}
	if _, err := svc.ChooseTest(ctx, sel.SessionID, test.ID); !errors.Is(err, assessment.ErrTestLocked) {
		t.Fatalf("expected ErrTestLocked, got %v", err)
	}

	f.completeLesson(t, 1, lesson)
	taking, err := svc.ChooseTest(ctx, sel.SessionID, test.ID)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if taking.State != string(assessment.KindTaking) || taking.LessonID == nil || *taking.LessonID != lesson.ID {
		t.Fatalf("unexpected taking view %+v", taking)
	}

	if _, err := svc.Submit(ctx, sel.SessionID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	back, err := svc.Retake(ctx, sel.SessionID)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if back.State != string(assessment.KindSelecting) || back.Tests[0].Status != string(model.TestFailed) {
		t.Fatalf("expected selecting with failed status, got %+v", back)
	}

	if _, err := svc.ListLessonTests(ctx, 1, 404); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type saveFailingStore struct {
	TestSessionStore
	fail bool
}

func (s *saveFailingStore) Save(ctx context.Context, id string, sess *assessment.TestSession) error {
	if s.fail {
		return errStoreDown
	}
	return s.TestSessionStore.Save(ctx, id, sess)
}

func TestSubmitStoresOneAttemptWhenSessionSaveFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	test := f.seedArithmetic(t)
	store := &saveFailingStore{TestSessionStore: f.testSessions}
	f.testSessions = store
	svc := f.testService()

	started, err := svc.StartTest(ctx, 1, test.ID, false)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SetAnswer(ctx, started.SessionID, test.Exercises[0].ID, assessment.NewAnswerSet("5")); err != nil {
		t.Fatalf("answer: %v", err)
	}

	store.fail = true
	done, err := svc.Submit(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("submit must report the stored attempt, got %v", err)
	}
	if done.State != string(assessment.KindCompleted) || done.Result == nil || done.Result.AttemptNo != 1 || done.Result.Score != 50 {
		t.Fatalf("unexpected result %+v", done)
	}

	if _, err := svc.Submit(ctx, started.SessionID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected the unsaved session to be dropped, got %v", err)
	}
	records, err := f.attemptRepo.FindByUserAndTest(ctx, 1, test.ID)
	if err != nil || len(records) != 1 {
		t.Fatalf("expected exactly one attempt, got %d (%v)", len(records), err)
	}
}
