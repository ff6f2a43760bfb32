package models

// RoleType defines the role of a user in the system
type RoleType string

const (
	RoleParticipant RoleType = "participant"
	RoleOrganizer   RoleType = "organizer"
	RoleAdmin       RoleType = "admin"
)

// PaymentStatus tracks whether a registration has been paid for
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// ConfirmationStatus tracks organizer confirmation of a registration
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "Pending"
	ConfirmationConfirmed ConfirmationStatus = "Confirmed"
)
