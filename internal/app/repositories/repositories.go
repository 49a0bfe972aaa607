package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeamRepository    *TeamRepository
	ProjectRepository *ProjectRepository
	TeacherRepository *TeacherRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeamRepository:    NewTeamRepository(db),
		ProjectRepository: NewProjectRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
