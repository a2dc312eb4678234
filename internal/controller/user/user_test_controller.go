package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/englishhub/internal/controller"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	testService service.TestService
}

func NewUserTestController(testService service.TestService) *UserTestController {
	return &UserTestController{testService: testService}
}

func (c *UserTestController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/lessons/:lesson_id/tests", c.ListLessonTests)
	api.POST("/lessons/:lesson_id/test-sessions", c.StartLessonTests)
	api.GET("/tests/:test_id/gate", c.GetGate)
	api.POST("/tests/:test_id/sessions", c.StartTest)
	api.POST("/tests/:test_id/attempts", c.SubmitTestAttempt)
	api.GET("/tests/:test_id/my-attempts", c.GetMyAttempts)

	sessions := api.Group("/test-sessions/:session_id")
	sessions.GET("", c.GetSession)
	sessions.POST("/start", c.ChooseTest)
	sessions.PUT("/answers", c.SetAnswer)
	sessions.POST("/next", c.NextQuestion)
	sessions.POST("/previous", c.PreviousQuestion)
	sessions.POST("/submit", c.Submit)
	sessions.POST("/retake", c.Retake)
}

// ListLessonTests godoc
// @Summary (User) Tests attached to a lesson
// @Description Each test carries whether it is unlocked for the user and its pass status.
// @Tags User - Tests
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id}/tests [get]
func (c *UserTestController) ListLessonTests(ctx *gin.Context) {
	lessonID, ok := controller.ParamID(ctx, "lesson_id")
	if !ok {
		return
	}
	userID, ok := controller.QueryUserID(ctx)
	if !ok {
		return
	}
	tests, err := c.testService.ListLessonTests(ctx.Request.Context(), userID, lessonID)
	if err != nil {
		controller.Fail(ctx, "Failed to retrieve tests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetGate godoc
// @Summary (User) Check whether a test is unlocked
// @Tags User - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.GateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/gate [get]
func (c *UserTestController) GetGate(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id")
	if !ok {
		return
	}
	userID, ok := controller.QueryUserID(ctx)
	if !ok {
		return
	}
	gate, err := c.testService.GetGate(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.Fail(ctx, "Failed to check test gate", err)
		return
	}
	ctx.JSON(http.StatusOK, gate)
}

// StartTest godoc
// @Summary (User) Start taking a test
// @Description Returns the stored result without opening a session when the test is already passed, unless retake is set.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param body body dto.StartTestRequest true "User"
// @Success 200 {object} dto.TestSessionResponse "Already passed"
// @Success 201 {object} dto.TestSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Lessons not completed"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 422 {object} dto.ErrorResponse "Test has no questions"
// @Router /tests/{test_id}/sessions [post]
func (c *UserTestController) StartTest(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.testService.StartTest(ctx.Request.Context(), req.UserID, testID, req.Retake)
	if err != nil {
		controller.Fail(ctx, "Failed to start test", err)
		return
	}
	if resp.AlreadyPassed {
		ctx.JSON(http.StatusOK, resp)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// StartLessonTests godoc
// @Summary (User) Open a test session listing the lesson's tests
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param body body dto.StartSessionRequest true "User"
// @Success 201 {object} dto.TestSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id}/test-sessions [post]
func (c *UserTestController) StartLessonTests(ctx *gin.Context) {
	lessonID, ok := controller.ParamID(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.testService.StartLessonTests(ctx.Request.Context(), req.UserID, lessonID)
	if err != nil {
		controller.Fail(ctx, "Failed to open test session", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ChooseTest godoc
// @Summary (User) Pick a test from the session's list
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param session_id path string true "Session handle"
// @Param body body dto.ChooseTestRequest true "Test"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Lessons not completed"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Session is not selecting a test"
// @Router /test-sessions/{session_id}/start [post]
func (c *UserTestController) ChooseTest(ctx *gin.Context) {
	var req dto.ChooseTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.testService.ChooseTest(ctx.Request.Context(), ctx.Param("session_id"), req.TestID)
	if err != nil {
		controller.Fail(ctx, "Failed to start test", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSession godoc
// @Summary (User) Get a test session
// @Tags User - Tests
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /test-sessions/{session_id} [get]
func (c *UserTestController) GetSession(ctx *gin.Context) {
	resp, err := c.testService.GetSession(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.Fail(ctx, "Failed to load test session", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetAnswer godoc
// @Summary (User) Record or clear an answer in the running test
// @Description An empty answer clears the question.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param session_id path string true "Session handle"
// @Param body body dto.SetTestAnswerRequest true "Answer"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or exercise not in test"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Session is not taking a test"
// @Router /test-sessions/{session_id}/answers [put]
func (c *UserTestController) SetAnswer(ctx *gin.Context) {
	var req dto.SetTestAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.testService.SetAnswer(ctx.Request.Context(), ctx.Param("session_id"), req.ExerciseID, req.Answer.AnswerSet())
	if err != nil {
		controller.Fail(ctx, "Failed to record answer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// NextQuestion godoc
// @Summary (User) Move to the next question
// @Tags User - Tests
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /test-sessions/{session_id}/next [post]
func (c *UserTestController) NextQuestion(ctx *gin.Context) {
	c.step(ctx, c.testService.NextQuestion)
}

// PreviousQuestion godoc
// @Summary (User) Move to the previous question
// @Tags User - Tests
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /test-sessions/{session_id}/previous [post]
func (c *UserTestController) PreviousQuestion(ctx *gin.Context) {
	c.step(ctx, c.testService.PreviousQuestion)
}

// Submit godoc
// @Summary (User) Grade and store the running test
// @Description Unanswered questions count as wrong.
// @Tags User - Tests
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Not taking a test, or attempt numbering conflict"
// @Failure 500 {object} dto.ErrorResponse "Attempt could not be stored; resubmit"
// @Router /test-sessions/{session_id}/submit [post]
func (c *UserTestController) Submit(ctx *gin.Context) {
	c.step(ctx, c.testService.Submit)
}

// Retake godoc
// @Summary (User) Return to test selection after a result
// @Tags User - Tests
// @Produce json
// @Param session_id path string true "Session handle"
// @Success 200 {object} dto.TestSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /test-sessions/{session_id}/retake [post]
func (c *UserTestController) Retake(ctx *gin.Context) {
	c.step(ctx, c.testService.Retake)
}

type sessionStep func(ctx context.Context, sessionID string) (*dto.TestSessionResponse, error)

func (c *UserTestController) step(ctx *gin.Context, op sessionStep) {
	resp, err := op(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.Fail(ctx, "Failed to update test session", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitTestAttempt godoc
// @Summary (User) Submit answers for a test in one request
// @Description Grades the answers and appends an attempt. The lessons gating the test must be completed.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param attempt body dto.TestAttemptSubmitDTO true "User answers"
// @Success 201 {object} dto.TestAttemptResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Lessons not completed"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) SubmitTestAttempt(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Failed to bind test attempt")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.testService.SubmitTest(ctx.Request.Context(), req.UserID, testID, req.AnswerMap())
	if err != nil {
		controller.Fail(ctx, "Failed to submit test attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetMyAttempts godoc
// @Summary (User) Attempt history for a test
// @Tags User - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.TestAttemptHistoryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/my-attempts [get]
func (c *UserTestController) GetMyAttempts(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id")
	if !ok {
		return
	}
	userID, ok := controller.QueryUserID(ctx)
	if !ok {
		return
	}
	history, err := c.testService.GetMyAttempts(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.Fail(ctx, "Failed to retrieve attempts", err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}
