package model

import (
	"time"

	"gorm.io/datatypes"
)

type TestStatus string

const (
	TestPassed TestStatus = "passed"
	TestFailed TestStatus = "failed"
)

// TestAnswers maps exercise id to the submitted answer set.
type TestAnswers map[uint][]string

// UserTestRecord is one scored attempt. Rows are append-only; attempt numbers
// are unique per (user, test).
type UserTestRecord struct {
	ID          uint                            `gorm:"primarykey" json:"id"`
	UserID      uint                            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_test_attempt;index"`
	TestID      uint                            `json:"test_id" gorm:"not null;uniqueIndex:idx_user_test_attempt"`
	AttemptNo   int                             `json:"attempt_no" gorm:"not null;uniqueIndex:idx_user_test_attempt"`
	Score       int                             `json:"score" gorm:"not null"`
	Status      TestStatus                      `json:"status" gorm:"not null"`
	Answers     datatypes.JSONType[TestAnswers] `json:"answers"`
	SubmittedAt time.Time                       `json:"submitted_at"`
	CreatedAt   time.Time                       `json:"created_at"`
}
