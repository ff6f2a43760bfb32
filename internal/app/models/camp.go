package models

import "time"

// Camp represents an organizer-published medical camp
type Camp struct {
	ID                     string    `json:"id" db:"id"`
	Name                   string    `json:"name" db:"name"`
	Location               string    `json:"location" db:"location"`
	Fees                   int       `json:"fees" db:"fees"`
	HealthcareProfessional string    `json:"healthcareProfessional" db:"healthcare_professional"`
	Date                   time.Time `json:"date" db:"date"`
	Description            string    `json:"description,omitempty" db:"description"`
	ImageURL               *string   `json:"imageUrl,omitempty" db:"image_url"`
	OrganizerEmail         string    `json:"organizerEmail" db:"organizer_email"`

	// Participants counts live registrations for this camp. It is mutated
	// only through CampRepository.IncrementParticipants/DecrementParticipants.
	Participants int `json:"participants" db:"participants"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
