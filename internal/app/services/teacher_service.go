package services

import (
	"context"
	"fmt"

	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/repositories"
	"github.com/trueproject/capstone/internal/pkg/helpers"
)

// TeacherService handles mentor roster reads
type TeacherService struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
	}
}

// ListTeachers returns the mentor roster with an optional department filter.
func (s *TeacherService) ListTeachers(ctx context.Context, department *string, page, size int) (*dto.TeacherListResponse, error) {
	teachers, total, err := s.teacherRepo.GetAll(ctx, department, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		responses = append(responses, dto.FromTeacher(&teachers[i]))
	}

	return &dto.TeacherListResponse{
		Teachers:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
