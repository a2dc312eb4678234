package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/lshigami/englishhub/internal/model"
)

type StateKind string

const (
	KindSelecting StateKind = "selecting"
	KindTaking    StateKind = "taking"
	KindCompleted StateKind = "completed"
)

// TestState is one of Selecting, Taking or Completed.
type TestState interface {
	Kind() StateKind
	isTestState()
}

// Selecting lists the tests available from a lesson.
type Selecting struct {
	LessonID uint   `json:"lesson_id"`
	TestIDs  []uint `json:"test_ids"`
}

// Taking is an attempt in progress. Answers only holds non-empty answers.
type Taking struct {
	Test               *model.Test        `json:"test"`
	QuestionIndex      int                `json:"question_index"`
	Answers            map[uint]AnswerSet `json:"answers"`
	CompletedQuestions int                `json:"completed_questions"`
	LessonID           uint               `json:"lesson_id,omitempty"`
}

// Completed holds the result of the attempt just submitted.
type Completed struct {
	Test     *model.Test          `json:"test"`
	Record   model.UserTestRecord `json:"record"`
	Grade    Grade                `json:"grade"`
	LessonID uint                 `json:"lesson_id,omitempty"`
}

func (Selecting) Kind() StateKind { return KindSelecting }
func (Taking) Kind() StateKind    { return KindTaking }
func (Completed) Kind() StateKind { return KindCompleted }
func (Selecting) isTestState()    {}
func (Taking) isTestState()       {}
func (Completed) isTestState()    {}

// Event is an input to Transition.
type Event interface{ isEvent() }

// StartTest enters Taking. Unlocked carries the lesson-completion gate result.
type StartTest struct {
	Test     *model.Test
	Unlocked bool
}

type SetAnswer struct {
	ExerciseID uint
	Answer     AnswerSet
}

type NextQuestion struct{}

type PreviousQuestion struct{}

// Submitted is applied once the graded attempt has been persisted.
type Submitted struct {
	Record model.UserTestRecord
	Grade  Grade
}

type Retake struct{}

func (StartTest) isEvent()        {}
func (SetAnswer) isEvent()        {}
func (NextQuestion) isEvent()     {}
func (PreviousQuestion) isEvent() {}
func (Submitted) isEvent()        {}
func (Retake) isEvent()           {}

// Transition computes the next state. The input state is never modified.
func Transition(state TestState, ev Event) (TestState, error) {
	switch st := state.(type) {
	case Selecting:
		if start, ok := ev.(StartTest); ok {
			return st.start(start)
		}
	case Taking:
		switch e := ev.(type) {
		case SetAnswer:
			return st.setAnswer(e)
		case NextQuestion:
			return st.move(1), nil
		case PreviousQuestion:
			return st.move(-1), nil
		case Submitted:
			if e.Record.TestID != st.Test.ID {
				return st, fmt.Errorf("record for test %d while taking test %d: %w", e.Record.TestID, st.Test.ID, ErrInvalidTransition)
			}
			return Completed{Test: st.Test, Record: e.Record, Grade: e.Grade, LessonID: st.LessonID}, nil
		}
	case Completed:
		if _, ok := ev.(Retake); ok {
			if st.LessonID != 0 {
				return Selecting{LessonID: st.LessonID}, nil
			}
			return newTaking(st.Test, 0), nil
		}
	}
	return state, fmt.Errorf("%T in %s: %w", ev, kindOf(state), ErrInvalidTransition)
}

// BeginTest is the single-test entry path: straight to Taking once the gate is satisfied.
func BeginTest(test *model.Test, unlocked bool) (TestState, error) {
	return Transition(Selecting{}, StartTest{Test: test, Unlocked: unlocked})
}

func (st Selecting) start(e StartTest) (TestState, error) {
	if e.Test == nil {
		return st, ErrTestUnavailable
	}
	offered := st.LessonID == 0 || containsID(e.Test.LessonIDs(), st.LessonID)
	if len(st.TestIDs) > 0 {
		offered = offered && containsID(st.TestIDs, e.Test.ID)
	}
	if !offered {
		return st, fmt.Errorf("test %d not offered by lesson %d: %w", e.Test.ID, st.LessonID, ErrInvalidTransition)
	}
	if !e.Unlocked {
		return st, ErrTestLocked
	}
	if err := CheckTestContent(e.Test); err != nil {
		return st, err
	}
	return newTaking(e.Test, st.LessonID), nil
}

// CheckTestContent reports content errors that make a test unavailable.
func CheckTestContent(test *model.Test) error {
	if len(test.Exercises) == 0 {
		return fmt.Errorf("test %d has no exercises: %w", test.ID, ErrTestUnavailable)
	}
	for i := range test.Exercises {
		if err := ValidateExercise(&test.Exercises[i]); err != nil {
			return fmt.Errorf("test %d: %w: %w", test.ID, ErrTestUnavailable, err)
		}
	}
	return nil
}

func newTaking(test *model.Test, lessonID uint) Taking {
	return Taking{Test: test, Answers: map[uint]AnswerSet{}, LessonID: lessonID}
}

func (st Taking) setAnswer(e SetAnswer) (TestState, error) {
	if !st.hasExercise(e.ExerciseID) {
		return st, fmt.Errorf("exercise %d: %w", e.ExerciseID, ErrExerciseNotInTest)
	}
	answers := make(map[uint]AnswerSet, len(st.Answers)+1)
	for k, v := range st.Answers {
		answers[k] = v
	}
	if e.Answer.Empty() {
		delete(answers, e.ExerciseID)
	} else {
		answers[e.ExerciseID] = e.Answer
	}
	st.Answers = answers
	return st, nil
}

func (st Taking) move(delta int) Taking {
	next := st.QuestionIndex + delta
	if next < 0 || next >= len(st.Test.Exercises) {
		return st
	}
	st.QuestionIndex = next
	if next > st.CompletedQuestions {
		st.CompletedQuestions = next
	}
	return st
}

func (st Taking) hasExercise(id uint) bool {
	for _, ex := range st.Test.Exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}

// Current returns the exercise at the question index.
func (st Taking) Current() *model.Exercise {
	if st.QuestionIndex < 0 || st.QuestionIndex >= len(st.Test.Exercises) {
		return nil
	}
	return &st.Test.Exercises[st.QuestionIndex]
}

func containsID(ids []uint, id uint) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func kindOf(s TestState) StateKind {
	if s == nil {
		return "none"
	}
	return s.Kind()
}

// TestSession owns the state machine for one learner and is kept by handle.
type TestSession struct {
	ID     string
	UserID uint
	State  TestState
}

// Apply runs an event through Transition and keeps the new state on success.
func (s *TestSession) Apply(ev Event) error {
	next, err := Transition(s.State, ev)
	if err != nil {
		return err
	}
	s.State = next
	return nil
}

type testSessionJSON struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"`
	Kind      StateKind  `json:"kind"`
	Selecting *Selecting `json:"selecting,omitempty"`
	Taking    *Taking    `json:"taking,omitempty"`
	Completed *Completed `json:"completed,omitempty"`
}

func (s TestSession) MarshalJSON() ([]byte, error) {
	raw := testSessionJSON{ID: s.ID, UserID: s.UserID, Kind: kindOf(s.State)}
	switch st := s.State.(type) {
	case Selecting:
		raw.Selecting = &st
	case Taking:
		raw.Taking = &st
	case Completed:
		raw.Completed = &st
	}
	return json.Marshal(raw)
}

func (s *TestSession) UnmarshalJSON(data []byte) error {
	var raw testSessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID, s.UserID = raw.ID, raw.UserID
	switch {
	case raw.Kind == KindSelecting && raw.Selecting != nil:
		s.State = *raw.Selecting
	case raw.Kind == KindTaking && raw.Taking != nil:
		if raw.Taking.Answers == nil {
			raw.Taking.Answers = map[uint]AnswerSet{}
		}
		s.State = *raw.Taking
	case raw.Kind == KindCompleted && raw.Completed != nil:
		s.State = *raw.Completed
	default:
		return fmt.Errorf("test session %s: unknown state %q", raw.ID, raw.Kind)
	}
	return nil
}
