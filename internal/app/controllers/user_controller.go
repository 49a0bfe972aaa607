package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/services"
	"github.com/trueproject/capstone/internal/middleware"
	"github.com/trueproject/capstone/internal/pkg/validation"
)

// UserController handles profile reads
type UserController struct {
	profiles services.ProfileReader
}

// NewUserController creates a new UserController
func NewUserController(profiles services.ProfileReader) *UserController {
	return &UserController{
		profiles: profiles,
	}
}

// GetUserByEmail resolves an email to a student or teacher profile
// @Summary Get user profile by email
// @Description Returns the student profile with team, project, mentor and phase marks, or the teacher profile
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "User profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid email"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [get]
func (c *UserController) GetUserByEmail(ctx *gin.Context) {
	email := ctx.Param("email")
	if !validation.CompiledPatterns.Email.MatchString(email) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email").WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profiles.GetUserByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}
