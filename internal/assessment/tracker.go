package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/lshigami/englishhub/internal/model"
)

// Progress summarizes completion of a lesson.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// Tracker keeps one learner's completion records for the exercises of one lesson.
type Tracker struct {
	userID    uint
	lessonID  uint
	exercises []model.Exercise
	index     map[uint]int
	records   map[uint]model.UserExerciseRecord
}

// NewTracker builds a tracker from the lesson's ordered exercises and the
// learner's stored records. Records for other exercises are ignored.
func NewTracker(userID, lessonID uint, exercises []model.Exercise, records []model.UserExerciseRecord) *Tracker {
	t := &Tracker{
		userID:    userID,
		lessonID:  lessonID,
		exercises: exercises,
		index:     make(map[uint]int, len(exercises)),
		records:   make(map[uint]model.UserExerciseRecord, len(records)),
	}
	for i, ex := range exercises {
		t.index[ex.ID] = i
	}
	for _, r := range records {
		if _, ok := t.index[r.ExerciseID]; ok && r.UserID == userID {
			t.records[r.ExerciseID] = r
		}
	}
	return t
}

func (t *Tracker) UserID() uint   { return t.userID }
func (t *Tracker) LessonID() uint { return t.lessonID }
func (t *Tracker) Len() int       { return len(t.exercises) }

// Exercise returns the exercise at position i.
func (t *Tracker) Exercise(i int) (*model.Exercise, bool) {
	if i < 0 || i >= len(t.exercises) {
		return nil, false
	}
	return &t.exercises[i], true
}

func (t *Tracker) IsCompleted(exerciseID uint) bool {
	return t.records[exerciseID].Completed
}

func (t *Tracker) Record(exerciseID uint) (model.UserExerciseRecord, bool) {
	r, ok := t.records[exerciseID]
	return r, ok
}

// Evaluate validates an answer and returns the record that would be stored,
// without changing the tracker.
func (t *Tracker) Evaluate(exerciseID uint, answer AnswerSet) (model.UserExerciseRecord, error) {
	i, ok := t.index[exerciseID]
	if !ok {
		return model.UserExerciseRecord{}, fmt.Errorf("exercise %d: %w", exerciseID, ErrExerciseNotInLesson)
	}
	correct := IsCorrect(answer, &t.exercises[i])

	rec, exists := t.records[exerciseID]
	if !exists {
		rec = model.UserExerciseRecord{
			UserID:     t.userID,
			ExerciseID: exerciseID,
			LessonID:   t.lessonID,
		}
	}
	rec.UserAnswer = answer.Strings()
	rec.IsCorrect = correct
	// completion sticks once reached
	rec.Completed = rec.Completed || correct
	return rec, nil
}

// Apply stores a record produced by Evaluate.
func (t *Tracker) Apply(rec model.UserExerciseRecord) error {
	if _, ok := t.index[rec.ExerciseID]; !ok || rec.UserID != t.userID {
		return fmt.Errorf("exercise %d: %w", rec.ExerciseID, ErrExerciseNotInLesson)
	}
	t.records[rec.ExerciseID] = rec
	return nil
}

// RecordAttempt validates and stores an answer in one step.
func (t *Tracker) RecordAttempt(exerciseID uint, answer AnswerSet) (bool, error) {
	rec, err := t.Evaluate(exerciseID, answer)
	if err != nil {
		return false, err
	}
	return rec.IsCorrect, t.Apply(rec)
}

func (t *Tracker) Progress() Progress {
	done := 0
	for _, ex := range t.exercises {
		if t.records[ex.ID].Completed {
			done++
		}
	}
	return Progress{
		Completed: done,
		Total:     len(t.exercises),
		Percent:   RoundPercent(done, len(t.exercises)),
	}
}

func (t *Tracker) AllCompleted() bool {
	p := t.Progress()
	return p.Completed == p.Total
}

// NextIncomplete scans forward from after+1, wrapping to the start once, and
// returns the first exercise index that is not completed.
func (t *Tracker) NextIncomplete(after int) (int, bool) {
	return nextIndex(len(t.exercises), after, func(i int) bool {
		return !t.records[t.exercises[i].ID].Completed
	})
}

// Records returns the stored records in lesson order.
func (t *Tracker) Records() []model.UserExerciseRecord {
	out := make([]model.UserExerciseRecord, 0, len(t.records))
	for _, ex := range t.exercises {
		if r, ok := t.records[ex.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func nextIndex(n, after int, want func(i int) bool) (int, bool) {
	if n == 0 {
		return -1, false
	}
	if after < -1 || after >= n {
		after = -1
	}
	for step := 1; step <= n; step++ {
		i := (after + step) % n
		if want(i) {
			return i, true
		}
	}
	return -1, false
}

type trackerJSON struct {
	UserID    uint                       `json:"user_id"`
	LessonID  uint                       `json:"lesson_id"`
	Exercises []model.Exercise           `json:"exercises"`
	Records   []model.UserExerciseRecord `json:"records"`
}

func (t *Tracker) MarshalJSON() ([]byte, error) {
	return json.Marshal(trackerJSON{
		UserID:    t.userID,
		LessonID:  t.lessonID,
		Exercises: t.exercises,
		Records:   t.Records(),
	})
}

func (t *Tracker) UnmarshalJSON(data []byte) error {
	var raw trackerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = *NewTracker(raw.UserID, raw.LessonID, raw.Exercises, raw.Records)
	return nil
}
