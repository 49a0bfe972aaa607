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

// TeamController handles team registration and team lookups
type TeamController struct {
	registrar services.Registrar
	profiles  services.ProfileReader
}

// NewTeamController creates a new TeamController
func NewTeamController(registrar services.Registrar, profiles services.ProfileReader) *TeamController {
	return &TeamController{
		registrar: registrar,
		profiles:  profiles,
	}
}

// RegisterTeam handles a team submission
// @Summary Register a team with its project
// @Description Validates the submission, persists the team and project, and allocates a mentor from the department pool, all in one transaction. Any failure rolls the whole submission back.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body dto.RegisterTeamRequest true "Team submission"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterTeamResponse} "Team registered and mentor assigned"
// @Failure 400 {object} dto.ErrorResponse "Duplicate USN in request, member already registered, or invalid data"
// @Failure 409 {object} dto.ErrorResponse "Team name taken or no eligible mentor in the department"
// @Failure 500 {object} dto.ErrorResponse "Storage fault, nothing committed"
// @Router /teams [post]
func (c *TeamController) RegisterTeam(ctx *gin.Context) {
	var req dto.RegisterTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid team submission")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.registrar.RegisterTeam(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetTeamByMemberEmail returns the roster of the team a member belongs to
// @Summary Get team by member email
// @Description Looks the team up through its serialized member list
// @Tags teams
// @Accept json
// @Produce json
// @Param email path string true "Member email"
// @Success 200 {object} dto.APIResponse{data=dto.TeamRosterResponse} "Team roster"
// @Failure 400 {object} dto.ErrorResponse "Invalid email"
// @Failure 404 {object} dto.ErrorResponse "User not found in any team"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teams/by-member/{email} [get]
func (c *TeamController) GetTeamByMemberEmail(ctx *gin.Context) {
	email := ctx.Param("email")
	if !validation.CompiledPatterns.Email.MatchString(email) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email").WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	roster, err := c.profiles.GetTeamByMemberEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      roster,
		Timestamp: time.Now(),
	})
}
