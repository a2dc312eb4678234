package assessment

import (
	"github.com/lshigami/englishhub/internal/model"
)

// RoundPercent returns round-half-up(100 * part / total), or 0 when total is 0.
func RoundPercent(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// StatusFor compares a score against the test's pass threshold.
func StatusFor(score, passScore int) model.TestStatus {
	if score >= passScore {
		return model.TestPassed
	}
	return model.TestFailed
}

// Grade is the scored outcome of one set of test answers.
type Grade struct {
	Correct int               `json:"correct"`
	Total   int               `json:"total"`
	Score   int               `json:"score"`
	Status  model.TestStatus  `json:"status"`
	Answers model.TestAnswers `json:"answers"`
	Results map[uint]bool     `json:"results"`
}

// GradeTest scores answers against the test's question bank. Answers for
// exercises outside the test are dropped before scoring.
func GradeTest(test *model.Test, answers map[uint]AnswerSet) (Grade, error) {
	if test == nil || len(test.Exercises) == 0 {
		return Grade{}, ErrTestUnavailable
	}

	g := Grade{
		Total:   len(test.Exercises),
		Answers: make(model.TestAnswers),
		Results: make(map[uint]bool, len(test.Exercises)),
	}
	for i := range test.Exercises {
		ex := &test.Exercises[i]
		submitted, ok := answers[ex.ID]
		if ok && !submitted.Empty() {
			g.Answers[ex.ID] = submitted.Strings()
		}
		correct := ok && IsCorrect(submitted, ex)
		g.Results[ex.ID] = correct
		if correct {
			g.Correct++
		}
	}
	g.Score = RoundPercent(g.Correct, g.Total)
	g.Status = StatusFor(g.Score, test.PassScore)
	return g, nil
}

// NextAttemptNo returns the previous maximum attempt number for the test plus one.
func NextAttemptNo(records []model.UserTestRecord, testID uint) int {
	max := 0
	for _, r := range records {
		if r.TestID == testID && r.AttemptNo > max {
			max = r.AttemptNo
		}
	}
	return max + 1
}

// AuthoritativeStatus is passed if any attempt passed, otherwise the status of
// the latest attempt. ok is false when the test was never attempted.
func AuthoritativeStatus(records []model.UserTestRecord, testID uint) (status model.TestStatus, ok bool) {
	latest := 0
	for _, r := range records {
		if r.TestID != testID {
			continue
		}
		if r.Status == model.TestPassed {
			return model.TestPassed, true
		}
		if r.AttemptNo > latest {
			latest = r.AttemptNo
			status = r.Status
		}
	}
	return status, latest > 0
}

// PassedView returns the most recent passed attempt, used to show a completed
// test without asking for a fresh attempt.
func PassedView(records []model.UserTestRecord, testID uint) (model.UserTestRecord, bool) {
	var best model.UserTestRecord
	found := false
	for _, r := range records {
		if r.TestID != testID || r.Status != model.TestPassed {
			continue
		}
		if !found || r.AttemptNo > best.AttemptNo {
			best = r
			found = true
		}
	}
	return best, found
}
