package assessment

import "github.com/lshigami/englishhub/internal/model"

// GateResult tells whether a test may be taken. When it is locked,
// FirstIncompleteLessonID is where the learner should go next.
type GateResult struct {
	Unlocked                bool  `json:"unlocked"`
	FirstIncompleteLessonID *uint `json:"first_incomplete_lesson_id,omitempty"`
}

// EvaluateGate checks every lesson in order. Lessons missing from completed
// count as incomplete. No lessons means the gate is open.
func EvaluateGate(lessonIDs []uint, completed map[uint]bool) GateResult {
	for _, id := range lessonIDs {
		if !completed[id] {
			id := id
			return GateResult{Unlocked: false, FirstIncompleteLessonID: &id}
		}
	}
	return GateResult{Unlocked: true}
}

func IsUnlocked(test *model.Test, completed map[uint]bool) bool {
	return EvaluateGate(test.LessonIDs(), completed).Unlocked
}
