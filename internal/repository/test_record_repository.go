package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/model"
	"gorm.io/gorm"
)

// TestRecordRepository is the append-only attempt log.
type TestRecordRepository interface {
	// Create fails with assessment.ErrAttemptConflict when the attempt number is taken.
	Create(ctx context.Context, rec *model.UserTestRecord) error
	FindByUserAndTest(ctx context.Context, userID, testID uint) ([]model.UserTestRecord, error)
	FindByUser(ctx context.Context, userID uint) ([]model.UserTestRecord, error)
}

type testRecordRepository struct {
	db *gorm.DB
}

func NewTestRecordRepository(db *gorm.DB) TestRecordRepository {
	return &testRecordRepository{db: db}
}

func (r *testRecordRepository) Create(ctx context.Context, rec *model.UserTestRecord) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("user %d test %d attempt %d: %w", rec.UserID, rec.TestID, rec.AttemptNo, assessment.ErrAttemptConflict)
	}
	return err
}

func (r *testRecordRepository) FindByUserAndTest(ctx context.Context, userID, testID uint) ([]model.UserTestRecord, error) {
	var records []model.UserTestRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Order("attempt_no ASC").
		Find(&records).Error
	return records, err
}

func (r *testRecordRepository) FindByUser(ctx context.Context, userID uint) ([]model.UserTestRecord, error) {
	var records []model.UserTestRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("test_id ASC, attempt_no ASC").
		Find(&records).Error
	return records, err
}
