package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/lshigami/englishhub/internal/model"
)

type Phase string

const (
	PhasePresenting       Phase = "presenting"
	PhaseAwaitingFeedback Phase = "awaiting_feedback"
	PhaseAllCompleted     Phase = "all_completed"
)

// ExerciseSession sequences the exercises of one lesson for one learner.
// Outside practice mode every answer goes through the tracker; in practice
// mode answers are validated only.
type ExerciseSession struct {
	ID string

	tracker      *Tracker
	phase        Phase
	index        int
	practice     bool
	practiceDone map[uint]bool
	feedback     *Feedback
}

// ExerciseAttempt is a checked but not yet committed answer. Record is nil in
// practice mode, otherwise it is the record to persist before Commit.
type ExerciseAttempt struct {
	ExerciseID uint                      `json:"exercise_id"`
	Index      int                       `json:"index"`
	Answer     AnswerSet                 `json:"answer"`
	IsCorrect  bool                      `json:"is_correct"`
	Feedback   Feedback                  `json:"feedback"`
	Record     *model.UserExerciseRecord `json:"-"`
}

// ExerciseView is a read-only snapshot of the session.
type ExerciseView struct {
	ID       string          `json:"id"`
	UserID   uint            `json:"user_id"`
	LessonID uint            `json:"lesson_id"`
	Phase    Phase           `json:"phase"`
	Index    int             `json:"index"`
	Practice bool            `json:"practice"`
	Exercise *model.Exercise `json:"exercise,omitempty"`
	Feedback *Feedback       `json:"feedback,omitempty"`
	Progress Progress        `json:"progress"`
}

// StartExerciseSession resumes at the learner's first unfinished exercise.
func StartExerciseSession(id string, tracker *Tracker) *ExerciseSession {
	s := &ExerciseSession{ID: id, tracker: tracker}
	if i, ok := tracker.NextIncomplete(-1); ok {
		s.present(i)
	} else {
		s.phase = PhaseAllCompleted
		s.index = -1
	}
	return s
}

func (s *ExerciseSession) Tracker() *Tracker { return s.tracker }
func (s *ExerciseSession) Phase() Phase      { return s.phase }
func (s *ExerciseSession) Index() int        { return s.index }
func (s *ExerciseSession) Practice() bool    { return s.practice }

// Check validates an answer to the presented exercise without changing the session.
func (s *ExerciseSession) Check(answer AnswerSet) (ExerciseAttempt, error) {
	if s.phase != PhasePresenting {
		return ExerciseAttempt{}, fmt.Errorf("submit in %s: %w", s.phase, ErrInvalidTransition)
	}
	ex, ok := s.tracker.Exercise(s.index)
	if !ok {
		return ExerciseAttempt{}, fmt.Errorf("index %d: %w", s.index, ErrExerciseNotInLesson)
	}

	attempt := ExerciseAttempt{
		ExerciseID: ex.ID,
		Index:      s.index,
		Answer:     answer,
	}
	if s.practice {
		attempt.IsCorrect = IsCorrect(answer, ex)
	} else {
		rec, err := s.tracker.Evaluate(ex.ID, answer)
		if err != nil {
			return ExerciseAttempt{}, err
		}
		attempt.IsCorrect = rec.IsCorrect
		attempt.Record = &rec
	}
	attempt.Feedback = FeedbackFor(ex, attempt.IsCorrect)
	return attempt, nil
}

// Commit applies a checked attempt. Callers persist attempt.Record first so a
// failed write leaves the session as it was.
func (s *ExerciseSession) Commit(a ExerciseAttempt) error {
	if s.phase != PhasePresenting || a.Index != s.index {
		return fmt.Errorf("commit exercise %d: %w", a.ExerciseID, ErrInvalidTransition)
	}
	if !s.practice {
		if a.Record == nil {
			return fmt.Errorf("commit exercise %d without record: %w", a.ExerciseID, ErrInvalidTransition)
		}
		if err := s.tracker.Apply(*a.Record); err != nil {
			return err
		}
	} else if a.IsCorrect {
		s.practiceDone[a.ExerciseID] = true
	}

	if !a.IsCorrect {
		fb := a.Feedback
		s.phase = PhaseAwaitingFeedback
		s.feedback = &fb
		return nil
	}
	s.advance()
	return nil
}

// Submit checks and commits in one step. Used when nothing needs persisting.
func (s *ExerciseSession) Submit(answer AnswerSet) (ExerciseAttempt, error) {
	a, err := s.Check(answer)
	if err != nil {
		return a, err
	}
	return a, s.Commit(a)
}

// Continue moves on regardless of whether the last answer was correct.
func (s *ExerciseSession) Continue() error {
	if s.phase == PhaseAllCompleted {
		return fmt.Errorf("continue in %s: %w", s.phase, ErrInvalidTransition)
	}
	s.advance()
	return nil
}

// PracticeAgain replays the lesson from the first exercise without touching
// the learner's records.
func (s *ExerciseSession) PracticeAgain() error {
	if s.phase != PhaseAllCompleted || s.tracker.Len() == 0 {
		return fmt.Errorf("practice in %s: %w", s.phase, ErrInvalidTransition)
	}
	s.practice = true
	s.practiceDone = make(map[uint]bool, s.tracker.Len())
	s.present(0)
	return nil
}

func (s *ExerciseSession) advance() {
	var (
		next int
		ok   bool
	)
	if s.practice {
		next, ok = nextIndex(s.tracker.Len(), s.index, func(i int) bool {
			ex, _ := s.tracker.Exercise(i)
			return !s.practiceDone[ex.ID]
		})
	} else {
		next, ok = s.tracker.NextIncomplete(s.index)
	}
	if !ok {
		s.phase = PhaseAllCompleted
		s.index = -1
		s.feedback = nil
		s.practice = false
		s.practiceDone = nil
		return
	}
	s.present(next)
}

func (s *ExerciseSession) present(i int) {
	s.phase = PhasePresenting
	s.index = i
	s.feedback = nil
}

func (s *ExerciseSession) View() ExerciseView {
	v := ExerciseView{
		ID:       s.ID,
		UserID:   s.tracker.UserID(),
		LessonID: s.tracker.LessonID(),
		Phase:    s.phase,
		Index:    s.index,
		Practice: s.practice,
		Feedback: s.feedback,
		Progress: s.tracker.Progress(),
	}
	if ex, ok := s.tracker.Exercise(s.index); ok {
		v.Exercise = ex
	}
	return v
}

type exerciseSessionJSON struct {
	ID           string        `json:"id"`
	Tracker      *Tracker      `json:"tracker"`
	Phase        Phase         `json:"phase"`
	Index        int           `json:"index"`
	Practice     bool          `json:"practice"`
	PracticeDone map[uint]bool `json:"practice_done,omitempty"`
	Feedback     *Feedback     `json:"feedback,omitempty"`
}

func (s *ExerciseSession) MarshalJSON() ([]byte, error) {
	return json.Marshal(exerciseSessionJSON{
		ID:           s.ID,
		Tracker:      s.tracker,
		Phase:        s.phase,
		Index:        s.index,
		Practice:     s.practice,
		PracticeDone: s.practiceDone,
		Feedback:     s.feedback,
	})
}

func (s *ExerciseSession) UnmarshalJSON(data []byte) error {
	var raw exerciseSessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Tracker == nil {
		return fmt.Errorf("exercise session %s: missing tracker", raw.ID)
	}
	*s = ExerciseSession{
		ID:           raw.ID,
		tracker:      raw.Tracker,
		phase:        raw.Phase,
		index:        raw.Index,
		practice:     raw.Practice,
		practiceDone: raw.PracticeDone,
		feedback:     raw.Feedback,
	}
	if s.practice && s.practiceDone == nil {
		s.practiceDone = make(map[uint]bool)
	}
	return nil
}
