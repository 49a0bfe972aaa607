package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trueproject/capstone/internal/app/models"
)

// Project error types
var (
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectRepository handles database operations for submitted projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// CreateProject inserts the project row linked to its owning team, mentor
// unset and status 'not approved', and returns the generated identifier.
func (r *ProjectRepository) CreateProject(ctx context.Context, tx pgx.Tx, project *models.SubmittedProject) (int64, error) {
	query := `
		INSERT INTO submitted_projects (team_id, project_title, project_synopsis, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var projectID int64
	err := tx.QueryRow(ctx, query,
		project.TeamID,
		project.Title,
		project.Synopsis,
		models.StatusNotApproved,
	).Scan(&projectID)
	if err != nil {
		return 0, fmt.Errorf("error inserting submitted project: %w", err)
	}

	project.ID = projectID
	project.Status = models.StatusNotApproved
	return projectID, nil
}

// AssignMentor links the allocated mentor to the project. Runs inside the
// registration transaction, before the mentor counter increment commits.
func (r *ProjectRepository) AssignMentor(ctx context.Context, tx pgx.Tx, projectID, mentorID int64) error {
	query := `
		UPDATE submitted_projects
		SET mentor_id = $1
		WHERE id = $2
	`

	tag, err := tx.Exec(ctx, query, mentorID, projectID)
	if err != nil {
		return fmt.Errorf("error assigning mentor to project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// GetByTeamID retrieves the project of a team together with its mentor name
// and phase marks when present.
func (r *ProjectRepository) GetByTeamID(ctx context.Context, teamID int64) (*models.SubmittedProject, error) {
	query := `
		SELECT
			sp.id, sp.team_id, sp.project_title, sp.project_synopsis, sp.status, sp.mentor_id,
			t.name,
			pp.phase1_marks, pp.phase1_remarks,
			pp.phase2_marks, pp.phase2_remarks,
			pp.phase3_marks, pp.phase3_remarks
		FROM submitted_projects sp
		LEFT JOIN teachers t ON sp.mentor_id = t.id
		LEFT JOIN project_phases pp ON sp.id = pp.submitted_project_id
		WHERE sp.team_id = $1
	`

	var project models.SubmittedProject
	var mentorName *string
	var phase1Marks, phase2Marks, phase3Marks *int
	var phase1Remarks, phase2Remarks, phase3Remarks *string

	err := r.db.QueryRow(ctx, query, teamID).Scan(
		&project.ID,
		&project.TeamID,
		&project.Title,
		&project.Synopsis,
		&project.Status,
		&project.MentorID,
		&mentorName,
		&phase1Marks, &phase1Remarks,
		&phase2Marks, &phase2Remarks,
		&phase3Marks, &phase3Remarks,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project for team: %w", err)
	}

	if project.MentorID != nil && mentorName != nil {
		project.Mentor = &models.Teacher{ID: *project.MentorID, Name: *mentorName}
	}

	// The phases row may not exist yet; marks default to zero until grading
	// flows populate them.
	phases := &models.ProjectPhases{SubmittedProjectID: project.ID}
	if phase1Marks != nil {
		phases.Phase1Marks = *phase1Marks
	}
	if phase2Marks != nil {
		phases.Phase2Marks = *phase2Marks
	}
	if phase3Marks != nil {
		phases.Phase3Marks = *phase3Marks
	}
	phases.Phase1Remarks = phase1Remarks
	phases.Phase2Remarks = phase2Remarks
	phases.Phase3Remarks = phase3Remarks
	project.Phases = phases

	return &project, nil
}
