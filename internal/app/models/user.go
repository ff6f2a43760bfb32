package models

import "time"

// User defines the user model based on the 'users' table.
// Users are keyed by email; accounts come from an external sign-in provider,
// so there is no credential material stored here.
type User struct {
	Email     string    `json:"email" db:"email" example:"p1@example.com"`          // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                  // Display name
	PhotoURL  *string   `json:"photoUrl,omitempty" db:"photo_url"`                  // Avatar URL from the sign-in provider (nullable)
	Role      RoleType  `json:"role" db:"role" example:"participant"`               // participant, organizer or admin
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                          // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`                          // Timestamp when the user was last updated
}
