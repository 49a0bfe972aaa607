package models

// SubmittedProject defines the project model based on the 'submitted_projects' table.
// Created together with its owning team in the same transaction. MentorID is the
// only field the registration engine updates after creation.
type SubmittedProject struct {
	ID       int64         `json:"id" db:"id" example:"1"`
	TeamID   int64         `json:"teamId" db:"team_id" example:"1"`
	Title    string        `json:"projectTitle" db:"project_title" example:"Traffic AI"`
	Synopsis string        `json:"projectSynopsis" db:"project_synopsis" example:"Adaptive traffic signal control"`
	Status   ProjectStatus `json:"status" db:"status" example:"not approved"`
	MentorID *int64        `json:"mentorId,omitempty" db:"mentor_id" example:"3"` // nil until allocation succeeds

	// Relations (populated when needed)
	Mentor *Teacher       `json:"mentor,omitempty"`
	Phases *ProjectPhases `json:"phases,omitempty"`
}

// ProjectPhases holds the per-phase evaluation of a submitted project.
// Populated by grading flows; the registration engine only ever reads it.
type ProjectPhases struct {
	SubmittedProjectID int64   `json:"submittedProjectId" db:"submitted_project_id"`
	Phase1Marks        int     `json:"phase1Marks" db:"phase1_marks"`
	Phase1Remarks      *string `json:"phase1Remarks" db:"phase1_remarks"`
	Phase2Marks        int     `json:"phase2Marks" db:"phase2_marks"`
	Phase2Remarks      *string `json:"phase2Remarks" db:"phase2_remarks"`
	Phase3Marks        int     `json:"phase3Marks" db:"phase3_marks"`
	Phase3Remarks      *string `json:"phase3Remarks" db:"phase3_remarks"`
}
