package dto

import "time"

// CreateCampRequest is the payload for publishing a new camp
type CreateCampRequest struct {
	Name                   string    `json:"name" binding:"required"`
	Location               string    `json:"location" binding:"required"`
	Fees                   *int      `json:"fees" binding:"required,min=0"`
	HealthcareProfessional string    `json:"healthcareProfessional" binding:"required"`
	Date                   time.Time `json:"date" binding:"required"`
	Description            string    `json:"description,omitempty"`
	ImageURL               *string   `json:"imageUrl,omitempty"`
	OrganizerEmail         string    `json:"organizerEmail" binding:"required,email"`
}

// UpdateCampRequest carries a partial patch for an existing camp. Nil fields
// are left untouched; the participants counter is never patchable here.
type UpdateCampRequest struct {
	Name                   *string    `json:"name,omitempty"`
	Location               *string    `json:"location,omitempty"`
	Fees                   *int       `json:"fees,omitempty" binding:"omitempty,min=0"`
	HealthcareProfessional *string    `json:"healthcareProfessional,omitempty"`
	Date                   *time.Time `json:"date,omitempty"`
	Description            *string    `json:"description,omitempty"`
	ImageURL               *string    `json:"imageUrl,omitempty"`
}
