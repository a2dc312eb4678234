package assessment

import "errors"

var (
	// ErrExerciseNotInLesson is returned when an operation names an exercise
	// outside the lesson the session was started for.
	ErrExerciseNotInLesson = errors.New("exercise does not belong to the active lesson")
	// ErrExerciseNotInTest is returned when an answer targets an exercise outside the active test.
	ErrExerciseNotInTest = errors.New("exercise does not belong to the active test")
	// ErrTestUnavailable marks a test that cannot be administered (e.g. an empty question bank).
	ErrTestUnavailable = errors.New("test unavailable")
	// ErrEmptyAnswerKey marks an exercise with no accepted answers.
	ErrEmptyAnswerKey = errors.New("exercise has no accepted answers")
	// ErrAnswerNotInOptions marks a multiple choice exercise whose key is not one of its options.
	ErrAnswerNotInOptions = errors.New("multiple choice answer is not one of the options")
	// ErrUnknownExerciseType marks content with an unsupported exercise type.
	ErrUnknownExerciseType = errors.New("unknown exercise type")
	// ErrTestLocked is returned when prerequisite lessons are not fully completed.
	ErrTestLocked = errors.New("test is locked until prerequisite lessons are completed")
	// ErrInvalidTransition is returned for events that are not accepted in the current state.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrAttemptConflict is returned when another submission took the same attempt number.
	// Callers may re-read the attempt history and retry.
	ErrAttemptConflict = errors.New("attempt number already taken")
)
