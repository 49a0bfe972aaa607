package models

import (
	"encoding/json"
	"fmt"
)

// TeamMember is the fixed-shape member record embedded in a team row.
// Members are persisted as an ordered JSONB array on the teams table.
type TeamMember struct {
	Name  string `json:"name" binding:"required" example:"Asha Rao"`
	USN   string `json:"usn" binding:"required" example:"1BM21CS042"`
	Email string `json:"email" binding:"required" example:"asha@college.edu"`
	Dept  string `json:"dept" binding:"required" example:"CS"`
}

// Team defines the team model based on the 'teams' table.
// A team is created once at submission time and never mutated afterwards
// by the registration engine.
type Team struct {
	ID       int64        `json:"id" db:"id" example:"1"`
	Name     string       `json:"teamName" db:"team_name" example:"Alpha"`
	Size     int          `json:"teamSize" db:"team_size" example:"4"`
	Members  []TeamMember `json:"teamMembers" db:"team_members"`

	// Relation (populated when needed)
	Project *SubmittedProject `json:"project,omitempty"`
}

// MembersJSON serializes the ordered member list for the JSONB column.
func (t *Team) MembersJSON() ([]byte, error) {
	if t.Members == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Members)
}

// UnmarshalMembers validates the stored member list shape on read.
func UnmarshalMembers(raw []byte) ([]TeamMember, error) {
	var members []TeamMember
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("malformed team_members payload: %w", err)
	}
	return members, nil
}
