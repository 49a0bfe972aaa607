package models

// MentorCapacity is the fixed ceiling of concurrently assigned projects per mentor.
const MentorCapacity = 5

// Teacher defines the mentor model based on the 'teachers' table
type Teacher struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	Name       string `json:"name" db:"name" example:"Dr. Meera Iyer"`
	Email      string `json:"email" db:"email" example:"meera@college.edu"`
	Department string `json:"dept" db:"department" example:"CS"`
	// AssignedProjectCount is mutated only by the mentor allocator while
	// holding an exclusive lock on this row. It never exceeds MentorCapacity.
	AssignedProjectCount int `json:"assignedProjectCount" db:"assigned_project_count" example:"3"`
}

// HasCapacity reports whether the mentor can take one more project.
func (t *Teacher) HasCapacity() bool {
	return t.AssignedProjectCount < MentorCapacity
}
