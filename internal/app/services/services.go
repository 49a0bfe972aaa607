package services

import (
	"context"

	"github.com/trueproject/capstone/internal/app/models/dto"
)

// Services defined in this package:
// - RegistrationService: runs the team registration and mentor allocation engine
// - ProfileService: read-only user/team profile aggregation
// - TeacherService: mentor roster reads

// Registrar is the registration engine surface consumed by the HTTP layer
type Registrar interface {
	RegisterTeam(ctx context.Context, req dto.RegisterTeamRequest) (*dto.RegisterTeamResponse, error)
}

// ProfileReader is the profile read surface consumed by the HTTP layer
type ProfileReader interface {
	GetUserByEmail(ctx context.Context, email string) (interface{}, error)
	GetTeamByMemberEmail(ctx context.Context, email string) (*dto.TeamRosterResponse, error)
}

// TeacherLister is the mentor roster surface consumed by the HTTP layer
type TeacherLister interface {
	ListTeachers(ctx context.Context, department *string, page, size int) (*dto.TeacherListResponse, error)
}
