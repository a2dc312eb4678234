// Package controller holds helpers shared by the user and admin handlers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/service"
	"github.com/lshigami/englishhub/internal/session"
	"github.com/rs/zerolog/log"
)

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrTestLocked):
		return http.StatusForbidden
	case errors.Is(err, assessment.ErrAttemptConflict),
		errors.Is(err, assessment.ErrInvalidTransition),
		errors.Is(err, service.ErrDuplicateContent):
		return http.StatusConflict
	case errors.Is(err, assessment.ErrTestUnavailable),
		errors.Is(err, assessment.ErrEmptyAnswerKey),
		errors.Is(err, assessment.ErrAnswerNotInOptions),
		errors.Is(err, assessment.ErrUnknownExerciseType),
		errors.Is(err, service.ErrInvalidContent),
		errors.Is(err, service.ErrUnknownLesson):
		return http.StatusUnprocessableEntity
	case errors.Is(err, assessment.ErrExerciseNotInTest), errors.Is(err, assessment.ErrExerciseNotInLesson):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Fail writes an ErrorResponse for err, logging server errors at error level.
func Fail(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BadRequest is for malformed input caught before reaching a service.
func BadRequest(ctx *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{Message: message}
	if err != nil {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// ParamID reads a numeric path parameter and replies 400 when it is malformed.
func ParamID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		BadRequest(ctx, "Invalid "+name+" format", err)
		return 0, false
	}
	return uint(val), true
}

// QueryUserID reads the temporary user_id query parameter.
func QueryUserID(ctx *gin.Context) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil || val == 0 {
		BadRequest(ctx, "Invalid or missing user_id query parameter", err)
		return 0, false
	}
	return uint(val), true
}
