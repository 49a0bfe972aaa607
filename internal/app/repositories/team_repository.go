package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
	"github.com/trueproject/capstone/internal/pkg/dberrors"
)

// Team error types
var (
	ErrTeamNotFound = errors.New("team not found")
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

// FindTeamNameByMemberUSN scans the member lists of all committed teams for the
// given USN. Runs on the supplied transaction so the check shares visibility
// with the insert that follows it.
func (r *TeamRepository) FindTeamNameByMemberUSN(ctx context.Context, tx pgx.Tx, usn string) (string, bool, error) {
	query := `
		SELECT t.team_name
		FROM teams t, jsonb_array_elements(t.team_members) AS m
		WHERE m->>'usn' = $1
		LIMIT 1
	`

	var teamName string
	err := tx.QueryRow(ctx, query, usn).Scan(&teamName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error scanning teams for USN: %w", err)
	}

	return teamName, true, nil
}

// CreateTeam inserts the team row with its members serialized as an ordered
// JSONB list and returns the generated team identifier.
func (r *TeamRepository) CreateTeam(ctx context.Context, tx pgx.Tx, team *models.Team) (int64, error) {
	membersJSON, err := team.MembersJSON()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO teams (team_name, team_size, team_members)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var teamID int64
	err = tx.QueryRow(ctx, query, team.Name, team.Size, membersJSON).Scan(&teamID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teams_team_name_key") {
			return 0, apperrors.ErrDuplicateTeamName
		}
		return 0, fmt.Errorf("error inserting team: %w", err)
	}

	team.ID = teamID
	return teamID, nil
}

// GetTeamByMemberEmail finds the team containing a member with the given email.
func (r *TeamRepository) GetTeamByMemberEmail(ctx context.Context, email string) (*models.Team, error) {
	query := `
		SELECT t.id, t.team_name, t.team_size, t.team_members
		FROM teams t, jsonb_array_elements(t.team_members) AS m
		WHERE m->>'email' = $1
		LIMIT 1
	`

	var team models.Team
	var membersRaw []byte
	err := r.db.QueryRow(ctx, query, email).Scan(
		&team.ID,
		&team.Name,
		&team.Size,
		&membersRaw,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error retrieving team by member email: %w", err)
	}

	team.Members, err = models.UnmarshalMembers(membersRaw)
	if err != nil {
		return nil, err
	}

	return &team, nil
}
