package assessment_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/model"
)

func TestExerciseSessionResumesAtFirstIncomplete(t *testing.T) {
	tr := assessment.NewTracker(1, 10, lessonExercises(), []model.UserExerciseRecord{completedRecord(1, 1)})
	s := assessment.StartExerciseSession("s1", tr)
	if s.Phase() != assessment.PhasePresenting || s.Index() != 1 {
		t.Fatalf("expected presenting at 1, got %s at %d", s.Phase(), s.Index())
	}

	done := assessment.NewTracker(1, 10, lessonExercises(), []model.UserExerciseRecord{
		completedRecord(1, 1), completedRecord(1, 2), completedRecord(1, 3),
	})
	s = assessment.StartExerciseSession("s2", done)
	if s.Phase() != assessment.PhaseAllCompleted {
		t.Fatalf("expected all completed, got %s", s.Phase())
	}
}

func TestExerciseSessionWrongAnswerThenContinue(t *testing.T) {
	s := assessment.StartExerciseSession("s", assessment.NewTracker(1, 10, lessonExercises(), nil))

	a, err := s.Submit(assessment.NewAnswerSet("cat"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.IsCorrect || s.Phase() != assessment.PhaseAwaitingFeedback {
		t.Fatalf("expected awaiting feedback after wrong answer, got %s", s.Phase())
	}
	if v := s.View(); v.Feedback == nil || v.Feedback.CorrectAnswers[0] != "dog" {
		t.Fatalf("feedback must carry the correct answer, got %+v", v.Feedback)
	}

	if _, err := s.Submit(assessment.NewAnswerSet("dog")); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("submit while awaiting feedback must fail, got %v", err)
	}

	if err := s.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}
	if s.Phase() != assessment.PhasePresenting || s.Index() != 1 {
		t.Fatalf("expected presenting at 1, got %s at %d", s.Phase(), s.Index())
	}
	if s.Tracker().IsCompleted(1) {
		t.Fatalf("skipped exercise must stay incomplete")
	}
}

func TestExerciseSessionRunsToCompletion(t *testing.T) {
	s := assessment.StartExerciseSession("s", assessment.NewTracker(1, 10, lessonExercises(), nil))
	for _, answer := range []string{"dog", " hello ", "IS"} {
		a, err := s.Submit(assessment.NewAnswerSet(answer))
		if err != nil {
			t.Fatalf("submit %q: %v", answer, err)
		}
		if !a.IsCorrect {
			t.Fatalf("expected %q to be correct", answer)
		}
	}
	if s.Phase() != assessment.PhaseAllCompleted {
		t.Fatalf("expected all completed, got %s", s.Phase())
	}
	if p := s.Tracker().Progress(); p.Percent != 100 {
		t.Fatalf("expected 100%%, got %+v", p)
	}
	if err := s.Continue(); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("continue after completion must fail, got %v", err)
	}
}

func TestExerciseSessionCheckDoesNotMutate(t *testing.T) {
	s := assessment.StartExerciseSession("s", assessment.NewTracker(1, 10, lessonExercises(), nil))
	a, err := s.Check(assessment.NewAnswerSet("dog"))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if a.Record == nil || !a.Record.Completed {
		t.Fatalf("expected a completed record to persist, got %+v", a.Record)
	}
	if s.Index() != 0 || s.Tracker().IsCompleted(1) {
		t.Fatalf("check must not advance or record")
	}
	if err := s.Commit(a); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if s.Index() != 1 || !s.Tracker().IsCompleted(1) {
		t.Fatalf("commit must record and advance")
	}
	if err := s.Commit(a); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("stale attempt must be rejected, got %v", err)
	}
}

func TestExerciseSessionPractice(t *testing.T) {
	tr := assessment.NewTracker(1, 10, lessonExercises(), []model.UserExerciseRecord{
		completedRecord(1, 1), completedRecord(1, 2), completedRecord(1, 3),
	})
	s := assessment.StartExerciseSession("s", tr)
	before := tr.Records()

	if err := s.PracticeAgain(); err != nil {
		t.Fatalf("practice: %v", err)
	}
	if !s.Practice() || s.Index() != 0 {
		t.Fatalf("practice must restart at 0")
	}

	a, err := s.Submit(assessment.NewAnswerSet("bird"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Record != nil {
		t.Fatalf("practice attempts must not produce records")
	}
	if err := s.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}
	for _, answer := range []string{"hello", "is"} {
		if _, err := s.Submit(assessment.NewAnswerSet(answer)); err != nil {
			t.Fatalf("submit %q: %v", answer, err)
		}
	}
	// the skipped first exercise comes back around
	if s.Phase() != assessment.PhasePresenting || s.Index() != 0 {
		t.Fatalf("expected wrap to 0, got %s at %d", s.Phase(), s.Index())
	}
	if _, err := s.Submit(assessment.NewAnswerSet("dog")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Phase() != assessment.PhaseAllCompleted || s.Practice() {
		t.Fatalf("practice run must end in all completed")
	}

	after := tr.Records()
	for i := range before {
		if before[i].IsCorrect != after[i].IsCorrect || !after[i].Completed {
			t.Fatalf("practice changed records: %+v", after[i])
		}
	}
}

func TestPracticeAgainRequiresCompletion(t *testing.T) {
	s := assessment.StartExerciseSession("s", assessment.NewTracker(1, 10, lessonExercises(), nil))
	if err := s.PracticeAgain(); !errors.Is(err, assessment.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestExerciseSessionJSON(t *testing.T) {
	s := assessment.StartExerciseSession("s", assessment.NewTracker(1, 10, lessonExercises(), nil))
	_, _ = s.Submit(assessment.NewAnswerSet("cat"))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back assessment.ExerciseSession
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Phase() != assessment.PhaseAwaitingFeedback || back.View().Feedback == nil {
		t.Fatalf("state lost: %+v", back.View())
	}
}
