package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/repositories"
	"github.com/trueproject/capstone/internal/db"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
	"github.com/trueproject/capstone/internal/pkg/validation"
)

//go:generate mockgen -source=registration_service.go -destination=mocks/registration.mock.go -package=mocks

// TeamStore is the team persistence surface used by the registration engine
type TeamStore interface {
	FindTeamNameByMemberUSN(ctx context.Context, tx pgx.Tx, usn string) (string, bool, error)
	CreateTeam(ctx context.Context, tx pgx.Tx, team *models.Team) (int64, error)
}

// ProjectStore is the project persistence surface used by the registration engine
type ProjectStore interface {
	CreateProject(ctx context.Context, tx pgx.Tx, project *models.SubmittedProject) (int64, error)
	AssignMentor(ctx context.Context, tx pgx.Tx, projectID, mentorID int64) error
}

// MentorStore is the mentor pool surface used by the registration engine
type MentorStore interface {
	LockNextAvailable(ctx context.Context, tx pgx.Tx, department string) (*models.Teacher, error)
	IncrementAssignedCount(ctx context.Context, tx pgx.Tx, teacherID int64) error
}

// registrationPhase tracks where a submission is in its unit of work, for logging.
type registrationPhase string

const (
	phaseValidating  registrationPhase = "validating"
	phaseRegistering registrationPhase = "registering"
	phaseAllocating  registrationPhase = "allocating"
	phaseCommitted   registrationPhase = "committed"
	phaseRolledBack  registrationPhase = "rolled_back"
)

// RegistrationService runs the team registration and mentor allocation engine.
// The whole validate, register, allocate sequence executes inside one
// transaction: every failure rolls the entire unit of work back and surfaces
// exactly one typed error. There is no partial commit and no automatic retry.
type RegistrationService struct {
	txRunner db.TxRunner
	teams    TeamStore
	projects ProjectStore
	mentors  MentorStore
	logger   zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(txRunner db.TxRunner, teams TeamStore, projects ProjectStore, mentors MentorStore, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		txRunner: txRunner,
		teams:    teams,
		projects: projects,
		mentors:  mentors,
		logger:   logger,
	}
}

// RegisterTeam registers a team with its project and allocates a mentor from
// the department pool, all-or-nothing.
func (s *RegistrationService) RegisterTeam(ctx context.Context, req dto.RegisterTeamRequest) (*dto.RegisterTeamResponse, error) {
	lgr := s.logger.With().Str("team", req.TeamName).Logger()
	lgr.Debug().Str("phase", string(phaseValidating)).Msg("Registering team")

	if err := validateSubmission(req); err != nil {
		lgr.Info().Err(err).Str("phase", string(phaseRolledBack)).Msg("Submission rejected")
		return nil, err
	}

	var result dto.RegisterTeamResponse

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Re-validate cross-team uniqueness inside the transaction, so the
		// scan and the insert below share one serializable unit of work.
		for _, member := range req.TeamMembers {
			existingTeam, found, err := s.teams.FindTeamNameByMemberUSN(ctx, tx, member.USN)
			if err != nil {
				return err
			}
			if found {
				return apperrors.NewAlreadyRegisteredError(member.Name, member.USN, existingTeam)
			}
		}

		lgr.Debug().Str("phase", string(phaseRegistering)).Msg("Members unique, inserting team")

		team := &models.Team{
			Name:    req.TeamName,
			Size:    req.TeamSize,
			Members: req.TeamMembers,
		}
		teamID, err := s.teams.CreateTeam(ctx, tx, team)
		if err != nil {
			return err
		}

		project := &models.SubmittedProject{
			TeamID:   teamID,
			Title:    req.ProjectTitle,
			Synopsis: req.ProjectSynopsis,
		}
		projectID, err := s.projects.CreateProject(ctx, tx, project)
		if err != nil {
			return err
		}

		// The allocation department is the first listed member's department.
		// Deterministic and order-dependent, not a majority vote.
		department := req.TeamMembers[0].Dept
		lgr.Debug().Str("phase", string(phaseAllocating)).Str("department", department).Msg("Claiming mentor slot")

		mentor, err := s.mentors.LockNextAvailable(ctx, tx, department)
		if err != nil {
			if errors.Is(err, repositories.ErrNoAvailableMentor) {
				// Hard failure: the product of this engine is a registered
				// team with a mentor, never a mentor-less team. The team and
				// project inserts above roll back with the transaction.
				return apperrors.NewNoEligibleMentorError(department)
			}
			return err
		}

		if err := s.projects.AssignMentor(ctx, tx, projectID, mentor.ID); err != nil {
			return err
		}
		if err := s.mentors.IncrementAssignedCount(ctx, tx, mentor.ID); err != nil {
			return err
		}

		result = dto.RegisterTeamResponse{
			Message:      "Team created successfully",
			TeamID:       teamID,
			ProjectID:    projectID,
			MentorStatus: fmt.Sprintf("Assigned to %s (ID: %d)", mentor.Name, mentor.ID),
		}
		return nil
	})
	if err != nil {
		if isRegistrationFailure(err) {
			lgr.Info().Err(err).Str("phase", string(phaseRolledBack)).Msg("Registration rolled back")
			return nil, err
		}
		// Anything else is a storage-level fault: the transaction never
		// committed, so the caller may retry the whole operation.
		lgr.Error().Err(err).Str("phase", string(phaseRolledBack)).Msg("Registration failed on storage fault")
		return nil, apperrors.NewStorageFaultError(err)
	}

	lgr.Info().
		Str("phase", string(phaseCommitted)).
		Int64("teamId", result.TeamID).
		Int64("projectId", result.ProjectID).
		Str("mentorStatus", result.MentorStatus).
		Msg("Team registered")
	return &result, nil
}

// validateSubmission checks the submission before any storage work: required
// fields and USN uniqueness within the request itself.
func validateSubmission(req dto.RegisterTeamRequest) error {
	nameOK := validation.NewStringValidation(req.TeamName).
		WithMinLength(validation.TeamNameMinLength).
		WithMaxLength(validation.TeamNameMaxLength).
		Validate()
	if !nameOK {
		return apperrors.NewBadRequestError("team name is required")
	}

	if len(req.TeamMembers) == 0 {
		return apperrors.NewBadRequestError("cannot register a team with no members")
	}

	seen := make(map[string]struct{}, len(req.TeamMembers))
	for _, member := range req.TeamMembers {
		if !validation.NewStringValidation(member.Name).Validate() ||
			!validation.NewStringValidation(member.USN).Validate() ||
			!validation.NewStringValidation(member.Email).Validate() ||
			!validation.NewStringValidation(member.Dept).Validate() {
			return apperrors.NewBadRequestError("every member needs a name, USN, email and department")
		}
		if _, dup := seen[member.USN]; dup {
			return apperrors.NewDuplicateInRequestError(member.USN)
		}
		seen[member.USN] = struct{}{}
	}

	return nil
}

// isRegistrationFailure reports whether the error is one of the typed
// registration outcomes, as opposed to a storage fault.
func isRegistrationFailure(err error) bool {
	return apperrors.Is(err, apperrors.ErrDuplicateInRequest,
		apperrors.ErrAlreadyRegistered,
		apperrors.ErrDuplicateTeamName,
		apperrors.ErrNoEligibleMentor,
		apperrors.ErrBadRequest,
	)
}
