package service

import "errors"

var (
	ErrUnknownLesson    = errors.New("unknown lesson")
	ErrDuplicateContent = errors.New("content already exists")
	ErrInvalidContent   = errors.New("invalid content")
)
