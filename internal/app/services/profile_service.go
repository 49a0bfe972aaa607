package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/repositories"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
)

// ProfileService aggregates read-only user profile data: the student record
// with their team, project, mentor and phase marks, or the teacher record.
type ProfileService struct {
	studentRepo *repositories.StudentRepository
	teacherRepo *repositories.TeacherRepository
	teamRepo    *repositories.TeamRepository
	projectRepo *repositories.ProjectRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	teamRepo *repositories.TeamRepository,
	projectRepo *repositories.ProjectRepository,
) *ProfileService {
	return &ProfileService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
	}
}

// GetUserByEmail resolves an email to a student or teacher profile.
// Students come back with their team, project and phase data attached when
// they have registered; fields stay at their zero defaults otherwise.
func (s *ProfileService) GetUserByEmail(ctx context.Context, email string) (interface{}, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrStudentNotFound) {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if student != nil {
		return s.buildStudentProfile(ctx, student)
	}

	teacher, err := s.teacherRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up teacher: %w", err)
	}

	return &dto.TeacherProfileResponse{
		ID:                   teacher.ID,
		Name:                 teacher.Name,
		Email:                teacher.Email,
		Department:           teacher.Department,
		AssignedProjectCount: teacher.AssignedProjectCount,
		Role:                 models.RoleTeacher,
	}, nil
}

// GetTeamByMemberEmail returns the roster of the team a student belongs to.
func (s *ProfileService) GetTeamByMemberEmail(ctx context.Context, email string) (*dto.TeamRosterResponse, error) {
	team, err := s.teamRepo.GetTeamByMemberEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, apperrors.NewResourceNotFoundError("user not found in any team")
		}
		return nil, fmt.Errorf("error looking up team: %w", err)
	}

	return &dto.TeamRosterResponse{
		TeamID:      team.ID,
		TeamName:    team.Name,
		TeamMembers: team.Members,
	}, nil
}

func (s *ProfileService) buildStudentProfile(ctx context.Context, student *models.Student) (*dto.StudentProfileResponse, error) {
	profile := &dto.StudentProfileResponse{
		ID:          student.ID,
		Name:        student.Name,
		USN:         student.USN,
		Email:       student.Email,
		Department:  student.Department,
		Role:        models.RoleStudent,
		TeamMembers: []models.TeamMember{},
	}

	team, err := s.teamRepo.GetTeamByMemberEmail(ctx, student.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			// Not on a team yet; the profile keeps its empty defaults.
			return profile, nil
		}
		return nil, fmt.Errorf("error looking up student's team: %w", err)
	}
	profile.TeamMembers = team.Members

	project, err := s.projectRepo.GetByTeamID(ctx, team.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return profile, nil
		}
		return nil, fmt.Errorf("error looking up team project: %w", err)
	}

	title := project.Title
	status := string(project.Status)
	profile.ProjectTitle = &title
	profile.ProjectStatus = &status
	profile.MentorID = project.MentorID
	if project.Mentor != nil {
		profile.MentorName = &project.Mentor.Name
	}
	if project.Phases != nil {
		profile.ProjectPhases = dto.ProjectPhasesData{
			Phase1: dto.PhaseResult{Marks: project.Phases.Phase1Marks, Remarks: project.Phases.Phase1Remarks},
			Phase2: dto.PhaseResult{Marks: project.Phases.Phase2Marks, Remarks: project.Phases.Phase2Remarks},
			Phase3: dto.PhaseResult{Marks: project.Phases.Phase3Marks, Remarks: project.Phases.Phase3Remarks},
		}
	}

	return profile, nil
}
