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

var errStoreDown = errors.New("store down")

type failingRecordRepo struct {
	repository.ExerciseRecordRepository
}

func (failingRecordRepo) Upsert(context.Context, *model.UserExerciseRecord) error {
	return errStoreDown
}

func TestExerciseSessionFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)
	svc := f.lessons()

	started, err := svc.StartSession(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Phase != string(assessment.PhasePresenting) || started.Index != 0 || started.Exercise == nil {
		t.Fatalf("unexpected start %+v", started)
	}

	resp, err := svc.SubmitAnswer(ctx, started.SessionID, assessment.NewAnswerSet("cat"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.IsCorrect || resp.Session.Phase != string(assessment.PhaseAwaitingFeedback) {
		t.Fatalf("expected awaiting feedback, got %+v", resp.Session)
	}
	if !resp.Feedback.Show || resp.Feedback.CorrectAnswers[0] != "dog" {
		t.Fatalf("expected feedback with correct answer, got %+v", resp.Feedback)
	}
	records, _ := f.recordRepo.FindByUserAndLesson(ctx, 1, lesson.ID)
	if len(records) != 1 || records[0].Completed {
		t.Fatalf("wrong answer must be stored as not completed, got %+v", records)
	}

	next, err := svc.Continue(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if next.Index != 1 {
		t.Fatalf("expected index 1, got %d", next.Index)
	}

	for _, answer := range []string{" hello ", "IS"} {
		if _, err := svc.SubmitAnswer(ctx, started.SessionID, assessment.NewAnswerSet(answer)); err != nil {
			t.Fatalf("submit %q: %v", answer, err)
		}
	}
	view, err := svc.GetSession(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// the skipped first exercise comes back
	if view.Index != 0 || view.Progress.Completed != 2 || view.Progress.Percent != 67 {
		t.Fatalf("expected resume at 0 with (2,3,67), got %+v", view)
	}

	progress, err := svc.GetProgress(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.Progress.Percent != 67 || progress.NextIndex == nil || *progress.NextIndex != 0 || progress.Completed {
		t.Fatalf("unexpected progress %+v", progress)
	}
}

func TestExerciseSessionResumeAndPractice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)
	f.completeLesson(t, 1, lesson)
	svc := f.lessons()

	started, err := svc.StartSession(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Phase != string(assessment.PhaseAllCompleted) || started.Progress.Percent != 100 {
		t.Fatalf("expected all completed, got %+v", started)
	}

	practice, err := svc.PracticeAgain(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("practice: %v", err)
	}
	if !practice.Practice || practice.Index != 0 {
		t.Fatalf("expected practice at 0, got %+v", practice)
	}
	if _, err := svc.SubmitAnswer(ctx, started.SessionID, assessment.NewAnswerSet("bird")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	records, _ := f.recordRepo.FindByUserAndLesson(ctx, 1, lesson.ID)
	for _, r := range records {
		if !r.Completed || !r.IsCorrect {
			t.Fatalf("practice must not touch records, got %+v", r)
		}
	}
}

func TestSubmitAnswerPersistFailureLeavesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)

	started, err := f.lessons().StartSession(ctx, 1, lesson.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	broken := NewLessonService(f.lessonRepo, f.exerciseRepo, failingRecordRepo{f.recordRepo}, f.exerciseSessions)
	if _, err := broken.SubmitAnswer(ctx, started.SessionID, assessment.NewAnswerSet("dog")); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}

	view, _ := broken.GetSession(ctx, started.SessionID)
	if view.Index != 0 || view.Phase != string(assessment.PhasePresenting) || view.Progress.Completed != 0 {
		t.Fatalf("failed write must not advance the session, got %+v", view)
	}

	// resubmission goes through once the store recovers
	resp, err := f.lessons().SubmitAnswer(ctx, started.SessionID, assessment.NewAnswerSet("dog"))
	if err != nil || !resp.IsCorrect || resp.Session.Index != 1 {
		t.Fatalf("expected resubmission to succeed, got %+v (%v)", resp, err)
	}
}

func TestLessonServiceErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.lessons()

	if _, err := svc.StartSession(ctx, 1, 404); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	test := f.seedArithmetic(t)
	if _, err := svc.SubmitExerciseAnswer(ctx, 1, test.Exercises[0].ID, assessment.NewAnswerSet("5")); !errors.Is(err, assessment.ErrExerciseNotInLesson) {
		t.Fatalf("test questions are not lesson exercises, got %v", err)
	}

	lesson := f.seedAnimals(t)
	started, _ := svc.StartSession(ctx, 1, lesson.ID)
	if _, err := svc.PracticeAgain(ctx, started.SessionID); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSubmitExerciseAnswerIsSticky(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := f.seedAnimals(t)
	svc := f.lessons()
	exID := lesson.Exercises[0].ID

	res, err := svc.SubmitExerciseAnswer(ctx, 1, exID, assessment.NewAnswerSet("dog"))
	if err != nil || !res.IsCorrect || !res.Completed {
		t.Fatalf("expected completion, got %+v (%v)", res, err)
	}
	res, err = svc.SubmitExerciseAnswer(ctx, 1, exID, assessment.NewAnswerSet("cat"))
	if err != nil || res.IsCorrect || !res.Completed {
		t.Fatalf("completion must stick, got %+v (%v)", res, err)
	}
	if !res.Feedback.Show {
		t.Fatalf("multiple choice feedback must show")
	}
}

func TestLessonWithEmptyAnswerKeyIsBlocked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lesson := &model.Lesson{
		Title: "Broken",
		Exercises: []model.Exercise{
			{Question: "Translate 'cam on'", Type: model.ExerciseTranslate},
		},
	}
	if err := f.lessonRepo.Create(ctx, lesson); err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	svc := f.lessons()

	if _, err := svc.StartSession(ctx, 1, lesson.ID); !errors.Is(err, assessment.ErrEmptyAnswerKey) {
		t.Fatalf("expected ErrEmptyAnswerKey from start, got %v", err)
	}
	if _, err := svc.SubmitExerciseAnswer(ctx, 1, lesson.Exercises[0].ID, assessment.NewAnswerSet("thank you")); !errors.Is(err, assessment.ErrEmptyAnswerKey) {
		t.Fatalf("expected ErrEmptyAnswerKey from submit, got %v", err)
	}
	records, err := f.recordRepo.FindByUserAndLesson(ctx, 1, lesson.ID)
	if err != nil || len(records) != 0 {
		t.Fatalf("nothing may be recorded, got %+v (%v)", records, err)
	}
}
