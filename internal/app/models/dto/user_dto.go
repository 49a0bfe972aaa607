package dto

import "github.com/trueproject/capstone/internal/app/models"

// PhaseResult is one graded phase of a project
type PhaseResult struct {
	Marks   int     `json:"marks" example:"18"`
	Remarks *string `json:"remarks"`
}

// ProjectPhasesData groups the three phase results
type ProjectPhasesData struct {
	Phase1 PhaseResult `json:"phase1"`
	Phase2 PhaseResult `json:"phase2"`
	Phase3 PhaseResult `json:"phase3"`
}

// StudentProfileResponse is the aggregated profile for a student, including
// their team, project, mentor and phase marks when present.
type StudentProfileResponse struct {
	ID            int64               `json:"id" example:"7"`
	Name          string              `json:"name" example:"Asha Rao"`
	USN           string              `json:"usn" example:"1BM21CS042"`
	Email         string              `json:"email" example:"asha@college.edu"`
	Department    string              `json:"dept" example:"CS"`
	Role          models.RoleType     `json:"role" example:"student"`
	TeamMembers   []models.TeamMember `json:"teamMembers"`
	ProjectTitle  *string             `json:"projectTitle"`
	ProjectStatus *string             `json:"projectStatus"`
	MentorID      *int64              `json:"mentorId"`
	MentorName    *string             `json:"mentorName"`
	ProjectPhases ProjectPhasesData   `json:"projectPhases"`
}

// TeacherProfileResponse is the profile for a mentor account
type TeacherProfileResponse struct {
	ID                   int64           `json:"id" example:"3"`
	Name                 string          `json:"name" example:"Dr. Meera Iyer"`
	Email                string          `json:"email" example:"meera@college.edu"`
	Department           string          `json:"dept" example:"CS"`
	AssignedProjectCount int             `json:"assignedProjectCount" example:"2"`
	Role                 models.RoleType `json:"role" example:"teacher"`
}
