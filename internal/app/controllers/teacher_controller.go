package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/services"
	"github.com/trueproject/capstone/internal/middleware"
	"github.com/trueproject/capstone/internal/pkg/helpers"
)

// TeacherController handles mentor roster reads
type TeacherController struct {
	teacherService services.TeacherLister
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherLister) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers returns the mentor roster
// @Summary List mentors
// @Description Retrieves mentors with their assigned project counts and remaining capacity, optionally filtered by department
// @Tags teachers
// @Accept json
// @Produce json
// @Param dept query string false "Filter by department"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherListResponse} "Mentor roster"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var department *string
	if dept := ctx.Query("dept"); dept != "" {
		department = &dept
	}

	result, err := c.teacherService.ListTeachers(ctx, department, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
