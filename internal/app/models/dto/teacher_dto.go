package dto

import "github.com/trueproject/capstone/internal/app/models"

// TeacherResponse is a single mentor entry in the roster listing
type TeacherResponse struct {
	ID                   int64  `json:"id" example:"3"`
	Name                 string `json:"name" example:"Dr. Meera Iyer"`
	Email                string `json:"email" example:"meera@college.edu"`
	Department           string `json:"dept" example:"CS"`
	AssignedProjectCount int    `json:"assignedProjectCount" example:"2"`
	RemainingCapacity    int    `json:"remainingCapacity" example:"3"`
}

// TeacherListResponse is the paginated mentor roster
type TeacherListResponse struct {
	Teachers   []TeacherResponse `json:"teachers"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FromTeacher converts a models.Teacher to a TeacherResponse
func FromTeacher(teacher *models.Teacher) TeacherResponse {
	if teacher == nil {
		return TeacherResponse{}
	}
	return TeacherResponse{
		ID:                   teacher.ID,
		Name:                 teacher.Name,
		Email:                teacher.Email,
		Department:           teacher.Department,
		AssignedProjectCount: teacher.AssignedProjectCount,
		RemainingCapacity:    models.MentorCapacity - teacher.AssignedProjectCount,
	}
}
