package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func orderedExercises(db *gorm.DB) *gorm.DB {
	return db.Order("exercises.order_index ASC, exercises.id ASC")
}

func orderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order("lessons.id ASC")
}
