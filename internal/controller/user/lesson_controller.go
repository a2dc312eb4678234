package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/englishhub/internal/controller"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/service"
)

type LessonController struct {
	lessonService service.LessonService
}

func NewLessonController(lessonService service.LessonService) *LessonController {
	return &LessonController{lessonService: lessonService}
}

func (c *LessonController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/lessons/:lesson_id/progress", c.GetProgress)
	api.POST("/lessons/:lesson_id/sessions", c.StartSession)
	api.GET("/exercise-sessions/:session_id", c.GetSession)
	api.POST("/exercise-sessions/:session_id/answers", c.SubmitAnswer)
	api.POST("/exercise-sessions/:session_id/continue", c.Continue)
	api.POST("/exercise-sessions/:session_id/practice", c.PracticeAgain)
	api.POST("/exercises/:exercise_id/answers", c.SubmitExerciseAnswer)
}

// GetProgress godoc
// @Summary (User) Lesson progress
// @Description Completed and total exercises for a learner, with the index to resume at.
// @Tags User - Lessons
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.LessonProgressDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id}/progress [get]
func (c *LessonController) GetProgress(ctx *gin.Context) {
	lessonID, ok := controller.ParamID(ctx, "lesson_id")
	if !ok {
		return
	}
	userID, ok := controller.QueryUserID(ctx)
	if !ok {
		return
	}
	resp, err := c.lessonService.GetProgress(ctx.Request.Context(), userID, lessonID)
	if err != nil {
		controller.Fail(ctx, "Failed to load lesson progress", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartSession godoc
// @Summary (User) Start an exercise session
// @Description Resumes at the first unfinished exercise of the lesson.
// @Tags User - Lessons
// @Accept json
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param body body dto.StartSessionRequest true "User"
// @Success 201 {object} dto.ExerciseSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id}/sessions [post]
func (c *LessonController) StartSession(ctx *gin.Context) {
	lessonID, ok := controller.ParamID(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.lessonService.StartSession(ctx.Request.Context(), req.UserID, lessonID)
	if err != nil {
		controller.Fail(ctx, "Failed to start exercise session", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSession godoc
// @Summary (User) Get an exercise session
// @Tags User - Lessons
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.ExerciseSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /exercise-sessions/{session_id} [get]
func (c *LessonController) GetSession(ctx *gin.Context) {
	resp, err := c.lessonService.GetSession(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.Fail(ctx, "Failed to load exercise session", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary (User) Answer the presented exercise
// @Description The answer may be a string or an array of strings.
// @Tags User - Lessons
// @Accept json
// @Produce json
// @Param session_id path string true "Session handle"
// @Param body body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.ExerciseAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Session is not presenting an exercise"
// @Failure 500 {object} dto.ErrorResponse "Answer could not be stored; resubmit"
// @Router /exercise-sessions/{session_id}/answers [post]
func (c *LessonController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.lessonService.SubmitAnswer(ctx.Request.Context(), ctx.Param("session_id"), req.Answer.AnswerSet())
	if err != nil {
		controller.Fail(ctx, "Failed to submit answer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Continue godoc
// @Summary (User) Move to the next unfinished exercise
// @Tags User - Lessons
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.ExerciseSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Lesson already completed"
// @Router /exercise-sessions/{session_id}/continue [post]
func (c *LessonController) Continue(ctx *gin.Context) {
	resp, err := c.lessonService.Continue(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.Fail(ctx, "Failed to continue", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PracticeAgain godoc
// @Summary (User) Replay a completed lesson without recording answers
// @Tags User - Lessons
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.ExerciseSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Lesson not completed yet"
// @Router /exercise-sessions/{session_id}/practice [post]
func (c *LessonController) PracticeAgain(ctx *gin.Context) {
	resp, err := c.lessonService.PracticeAgain(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.Fail(ctx, "Failed to start practice", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitExerciseAnswer godoc
// @Summary (User) Record an answer to a single exercise
// @Tags User - Lessons
// @Accept json
// @Produce json
// @Param exercise_id path int true "Exercise ID"
// @Param body body dto.SubmitExerciseAnswerRequest true "User and answer"
// @Success 200 {object} dto.ExerciseResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /exercises/{exercise_id}/answers [post]
func (c *LessonController) SubmitExerciseAnswer(ctx *gin.Context) {
	exerciseID, ok := controller.ParamID(ctx, "exercise_id")
	if !ok {
		return
	}
	var req dto.SubmitExerciseAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.lessonService.SubmitExerciseAnswer(ctx.Request.Context(), req.UserID, exerciseID, req.Answer.AnswerSet())
	if err != nil {
		controller.Fail(ctx, "Failed to submit answer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
