package dto

// CreateUserRequest is the payload for creating a user. Creation is
// idempotent on email: a duplicate submission is a no-op.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     string  `json:"name" binding:"required"`
	PhotoURL *string `json:"photoUrl,omitempty"`
	Role     string  `json:"role,omitempty" binding:"omitempty,oneof=participant organizer admin"`
}

// UpdateUserRequest carries profile fields applied as an upsert by email
type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// RoleResponse exposes just a user's role
type RoleResponse struct {
	Role string `json:"role" example:"organizer"`
}
