package dto

import "github.com/trueproject/capstone/internal/app/models"

// RegisterTeamRequest represents a team submission with its project
type RegisterTeamRequest struct {
	TeamName        string              `json:"teamName" binding:"required" example:"Alpha"`
	TeamSize        int                 `json:"teamSize" binding:"required,min=1" example:"4"`
	TeamMembers     []models.TeamMember `json:"teamMembers" binding:"required,min=1,dive"`
	ProjectTitle    string              `json:"projectTitle" binding:"required" example:"Traffic AI"`
	ProjectSynopsis string              `json:"projectSynopsis" binding:"required" example:"Adaptive signal control using reinforcement learning"`
}

// RegisterTeamResponse is the success payload of a completed registration
type RegisterTeamResponse struct {
	Message      string `json:"message" example:"Team created successfully"`
	TeamID       int64  `json:"teamId" example:"12"`
	ProjectID    int64  `json:"projectId" example:"12"`
	MentorStatus string `json:"mentorStatus" example:"Assigned to Dr. Meera Iyer (ID: 3)"`
}

// TeamRosterResponse is the member list of a team looked up by member email
type TeamRosterResponse struct {
	TeamID      int64               `json:"teamId" example:"12"`
	TeamName    string              `json:"teamName" example:"Alpha"`
	TeamMembers []models.TeamMember `json:"teamMembers"`
}
