package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
)

// ProjectStatus defines the review status of a submitted project
type ProjectStatus string

const (
	// StatusNotApproved is the initial status of every submitted project.
	// Transitions to approved/rejected are driven by review flows outside
	// the registration engine.
	StatusNotApproved ProjectStatus = "not approved"
	StatusApproved    ProjectStatus = "approved"
	StatusRejected    ProjectStatus = "rejected"
)
