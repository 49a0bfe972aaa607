package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/pkg/dberrors"
)

// Teacher error types
var (
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrTeacherAlreadyExists = errors.New("teacher with this email already exists")
	ErrNoAvailableMentor    = errors.New("no mentor with remaining capacity in department")
)

// TeacherRepository handles database operations for teachers (mentors)
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// LockNextAvailable selects the mentor with the smallest identifier in the
// department whose assigned count is below the capacity ceiling, and takes
// an exclusive row lock on it. The lock is the serialization point for
// concurrent allocations: a second transaction targeting the same mentor row
// blocks here until the holder commits or rolls back.
func (r *TeacherRepository) LockNextAvailable(ctx context.Context, tx pgx.Tx, department string) (*models.Teacher, error) {
	query := `
		SELECT id, name, email, department, assigned_project_count
		FROM teachers
		WHERE department = $1 AND assigned_project_count < $2
		ORDER BY id ASC
		LIMIT 1
		FOR UPDATE
	`

	var teacher models.Teacher
	err := tx.QueryRow(ctx, query, department, models.MentorCapacity).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Department,
		&teacher.AssignedProjectCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoAvailableMentor
		}
		return nil, fmt.Errorf("error selecting available mentor: %w", err)
	}

	return &teacher, nil
}

// IncrementAssignedCount bumps the mentor's project counter by exactly one.
// Callers must hold the row lock taken by LockNextAvailable in the same
// transaction.
func (r *TeacherRepository) IncrementAssignedCount(ctx context.Context, tx pgx.Tx, teacherID int64) error {
	query := `
		UPDATE teachers
		SET assigned_project_count = assigned_project_count + 1
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, teacherID)
	if err != nil {
		return fmt.Errorf("error incrementing assigned project count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}

// GetByEmail retrieves a teacher by email
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := `
		SELECT id, name, email, department, assigned_project_count
		FROM teachers
		WHERE email = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, email).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Department,
		&teacher.AssignedProjectCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves teachers with an optional department filter and pagination
func (r *TeacherRepository) GetAll(ctx context.Context, department *string, page, pageSize int) ([]models.Teacher, int64, error) {
	query := `
		SELECT id, name, email, department, assigned_project_count,
			COUNT(*) OVER() AS total_count
		FROM teachers
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if department != nil && *department != "" {
		query += fmt.Sprintf(" AND department = $%d", argIndex)
		args = append(args, *department)
		argIndex++
	}

	offset := (page - 1) * pageSize
	query += " ORDER BY id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	var total int64
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Email,
			&teacher.Department,
			&teacher.AssignedProjectCount,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}

	return teachers, total, nil
}

// Create inserts a new teacher row. Used by seeding.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher, passwordHash string) error {
	query := `
		INSERT INTO teachers (name, email, department, assigned_project_count, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.Name,
		teacher.Email,
		teacher.Department,
		teacher.AssignedProjectCount,
		passwordHash,
	).Scan(&teacher.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_email_key") {
			return ErrTeacherAlreadyExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}
