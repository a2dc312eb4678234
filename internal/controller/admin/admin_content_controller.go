package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/englishhub/internal/controller"
	"github.com/lshigami/englishhub/internal/dto"
	"github.com/lshigami/englishhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminContentController struct {
	contentService service.AdminContentService
}

func NewAdminContentController(contentService service.AdminContentService) *AdminContentController {
	return &AdminContentController{contentService: contentService}
}

func (c *AdminContentController) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/lessons", c.CreateLesson)
	admin.POST("/tests", c.CreateTest)
}

// CreateLesson godoc
// @Summary (Admin) Create a lesson with its exercises
// @Description Multiple-choice answers must be among the options and every exercise needs an answer.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param lesson_data body dto.LessonCreateDTO true "Lesson and ordered exercises"
// @Success 201 {object} dto.LessonResponseDTO "Lesson created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Lesson title already exists"
// @Failure 422 {object} dto.ErrorResponse "Exercise content is invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/lessons [post]
func (c *AdminContentController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateLesson: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}

	lesson, err := c.contentService.CreateLesson(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, "Failed to create lesson", err)
		return
	}
	ctx.JSON(http.StatusCreated, lesson)
}

// CreateTest godoc
// @Summary (Admin) Create a test
// @Description The test needs at least one question and may be gated on existing lessons. Pass score defaults to 70.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test with its questions and gating lessons"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Test name already exists"
// @Failure 422 {object} dto.ErrorResponse "Unknown lesson or invalid question"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminContentController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}

	test, err := c.contentService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, "Failed to create test", err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}
