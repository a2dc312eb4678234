package user_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/controller/user"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/service"
)

type stubTestService struct {
	service.TestService
	passed     bool
	locked     bool
	gotRetake  bool
	gotAnswers map[uint]assessment.AnswerSet
	steps      []string
}

func (s *stubTestService) StartTest(_ context.Context, userID, testID uint, retake bool) (*dto.TestSessionResponse, error) {
	s.gotRetake = retake
	if s.locked {
		return nil, fmt.Errorf("test %d: %w", testID, assessment.ErrTestLocked)
	}
	if s.passed && !retake {
		return &dto.TestSessionResponse{
			UserID:        userID,
			State:         "completed",
			AlreadyPassed: true,
			Result:        &dto.TestAttemptResponseDTO{TestID: testID, Score: 100, Status: "passed"},
		}, nil
	}
	return &dto.TestSessionResponse{SessionID: "s1", UserID: userID, State: "taking"}, nil
}

func (s *stubTestService) SetAnswer(_ context.Context, sessionID string, exerciseID uint, answer assessment.AnswerSet) (*dto.TestSessionResponse, error) {
	if exerciseID == 99 {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, assessment.ErrExerciseNotInTest)
	}
	return &dto.TestSessionResponse{
		SessionID: sessionID,
		State:     "taking",
		Answers:   map[uint][]string{exerciseID: answer.Strings()},
	}, nil
}

func (s *stubTestService) record(step, sessionID string) (*dto.TestSessionResponse, error) {
	s.steps = append(s.steps, step)
	return &dto.TestSessionResponse{SessionID: sessionID, State: "taking"}, nil
}

func (s *stubTestService) NextQuestion(_ context.Context, id string) (*dto.TestSessionResponse, error) {
	return s.record("next", id)
}

func (s *stubTestService) PreviousQuestion(_ context.Context, id string) (*dto.TestSessionResponse, error) {
	return s.record("previous", id)
}

func (s *stubTestService) Submit(_ context.Context, id string) (*dto.TestSessionResponse, error) {
	s.steps = append(s.steps, "submit")
	return nil, fmt.Errorf("submit: %w", assessment.ErrAttemptConflict)
}

func (s *stubTestService) SubmitTest(_ context.Context, userID, testID uint, answers map[uint]assessment.AnswerSet) (*dto.TestAttemptResponseDTO, error) {
	s.gotAnswers = answers
	return &dto.TestAttemptResponseDTO{UserID: userID, TestID: testID, AttemptNo: 1, Score: 50, Status: "failed"}, nil
}

func (s *stubTestService) GetGate(_ context.Context, userID, testID uint) (*dto.GateDTO, error) {
	first := uint(3)
	return &dto.GateDTO{TestID: testID, FirstIncompleteLessonID: &first}, nil
}

func TestStartTestStatusCodes(t *testing.T) {
	svc := &stubTestService{}
	r := newRouter(user.NewUserTestController(svc))

	w := do(t, r, http.MethodPost, "/api/v1/tests/7/sessions", map[string]any{"user_id": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("new session: status = %d, body %s", w.Code, w.Body.String())
	}
	if got := decode[dto.TestSessionResponse](t, w); got.SessionID == "" {
		t.Fatalf("expected a session handle")
	}

	svc.passed = true
	w = do(t, r, http.MethodPost, "/api/v1/tests/7/sessions", map[string]any{"user_id": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("already passed: status = %d", w.Code)
	}
	got := decode[dto.TestSessionResponse](t, w)
	if !got.AlreadyPassed || got.SessionID != "" || got.Result == nil {
		t.Fatalf("unexpected short-circuit response %+v", got)
	}

	w = do(t, r, http.MethodPost, "/api/v1/tests/7/sessions", map[string]any{"user_id": 1, "retake": true})
	if w.Code != http.StatusCreated || !svc.gotRetake {
		t.Fatalf("retake: status = %d retake = %v", w.Code, svc.gotRetake)
	}

	svc.locked = true
	if w := do(t, r, http.MethodPost, "/api/v1/tests/7/sessions", map[string]any{"user_id": 1}); w.Code != http.StatusForbidden {
		t.Fatalf("locked: status = %d, want 403", w.Code)
	}
}

func TestTestSessionNavigation(t *testing.T) {
	svc := &stubTestService{}
	r := newRouter(user.NewUserTestController(svc))

	w := do(t, r, http.MethodPut, "/api/v1/test-sessions/s1/answers", `{"exercise_id":1,"answer":"5"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set answer: status = %d, body %s", w.Code, w.Body.String())
	}
	if got := decode[dto.TestSessionResponse](t, w); len(got.Answers[1]) != 1 || got.Answers[1][0] != "5" {
		t.Fatalf("answers = %v", got.Answers)
	}
	if w := do(t, r, http.MethodPut, "/api/v1/test-sessions/s1/answers", `{"exercise_id":99,"answer":"5"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("foreign exercise: status = %d, want 400", w.Code)
	}

	for _, step := range []string{"next", "previous"} {
		if w := do(t, r, http.MethodPost, "/api/v1/test-sessions/s1/"+step, nil); w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", step, w.Code)
		}
	}
	if w := do(t, r, http.MethodPost, "/api/v1/test-sessions/s1/submit", nil); w.Code != http.StatusConflict {
		t.Fatalf("submit conflict: status = %d, want 409", w.Code)
	}
	if len(svc.steps) != 3 || svc.steps[2] != "submit" {
		t.Fatalf("steps = %v", svc.steps)
	}
}

func TestSubmitTestAttemptEndpoint(t *testing.T) {
	svc := &stubTestService{}
	r := newRouter(user.NewUserTestController(svc))

	body := `{"user_id":2,"answers":[{"exercise_id":1,"answer":"5"},{"exercise_id":2,"answer":["8"]}]}`
	w := do(t, r, http.MethodPost, "/api/v1/tests/7/attempts", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(svc.gotAnswers) != 2 || !svc.gotAnswers[2].Contains("8") {
		t.Fatalf("answers = %v", svc.gotAnswers)
	}
	if got := decode[dto.TestAttemptResponseDTO](t, w); got.Score != 50 || got.Status != "failed" {
		t.Fatalf("unexpected attempt %+v", got)
	}

	if w := do(t, r, http.MethodPost, "/api/v1/tests/7/attempts", `{"answers":[]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing user: status = %d, want 400", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/tests/x/attempts", body); w.Code != http.StatusBadRequest {
		t.Fatalf("bad test id: status = %d, want 400", w.Code)
	}
}

func TestGateEndpoint(t *testing.T) {
	r := newRouter(user.NewUserTestController(&stubTestService{}))

	w := do(t, r, http.MethodGet, "/api/v1/tests/7/gate?user_id=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	got := decode[dto.GateDTO](t, w)
	if got.Unlocked || got.FirstIncompleteLessonID == nil || *got.FirstIncompleteLessonID != 3 {
		t.Fatalf("unexpected gate %+v", got)
	}
}
