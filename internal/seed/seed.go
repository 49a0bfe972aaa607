package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/trueproject/capstone/internal/app/models"
	appRepos "github.com/trueproject/capstone/internal/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

// defaultPassword is the placeholder credential for seeded accounts; the
// auth flows that consume it live outside this service.
const defaultPassword = "changeme"

// CreateDefaultData seeds a starter mentor pool and a few student accounts
// if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	teacherRepo := appRepos.NewTeacherRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (mentors/students)...")

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passwordHash := string(hash)

	var finalErr error // Collect errors without stopping the process

	mentors := []appModels.Teacher{
		{Name: "Dr. Meera Iyer", Email: "meera@college.edu", Department: "CS"},
		{Name: "Dr. Arjun Nair", Email: "arjun@college.edu", Department: "CS"},
		{Name: "Dr. Kavita Shet", Email: "kavita@college.edu", Department: "EC"},
		{Name: "Dr. Ramesh Pai", Email: "ramesh@college.edu", Department: "ME"},
	}
	for i := range mentors {
		err := teacherRepo.Create(ctx, &mentors[i], passwordHash)
		if err != nil && !errors.Is(err, appRepos.ErrTeacherAlreadyExists) {
			lgr.Error().Err(err).Str("email", mentors[i].Email).Msg("Error creating default mentor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	students := []appModels.Student{
		{Name: "Asha Rao", USN: "1BM21CS042", Email: "asha@college.edu", Department: "CS"},
		{Name: "Vikram Hegde", USN: "1BM21CS077", Email: "vikram@college.edu", Department: "CS"},
		{Name: "Divya Kulkarni", USN: "1BM21EC015", Email: "divya@college.edu", Department: "EC"},
	}
	for i := range students {
		err := studentRepo.Create(ctx, &students[i], passwordHash)
		if err != nil && !errors.Is(err, appRepos.ErrStudentAlreadyExists) {
			lgr.Error().Err(err).Str("email", students[i].Email).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
