package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64  `json:"id" db:"id" example:"1"`                         // Unique identifier for the student record
	Name       string `json:"name" db:"name" example:"Asha Rao"`              // Student's full name
	USN        string `json:"usn" db:"usn" example:"1BM21CS042"`              // University Serial Number, unique per student system-wide
	Email      string `json:"email" db:"email" example:"asha@college.edu"`    // Contact email
	Department string `json:"dept" db:"department" example:"CS"`              // Department code used for mentor scoping
}
