package models

import "time"

// Registration represents a participant's enrollment in one camp. Camp
// details are denormalized at registration time so the record stays
// meaningful even if the camp is later edited or removed.
type Registration struct {
	ID     string `json:"id" db:"id"`
	CampID string `json:"campId" db:"camp_id"`

	// Snapshot of the camp taken from the registration payload
	CampName               string `json:"campName" db:"camp_name"`
	CampFees               int    `json:"campFees" db:"camp_fees"`
	Location               string `json:"location" db:"location"`
	HealthcareProfessional string `json:"healthcareProfessional" db:"healthcare_professional"`
	OrganizerEmail         string `json:"organizerEmail" db:"organizer_email"`

	// Participant identity
	ParticipantName  string `json:"participantName" db:"participant_name"`
	ParticipantEmail string `json:"participantEmail" db:"participant_email"`
	Age              int    `json:"age" db:"age"`
	Phone            string `json:"phone" db:"phone"`
	Gender           string `json:"gender" db:"gender"`
	EmergencyContact string `json:"emergencyContact" db:"emergency_contact"`

	PaymentStatus      PaymentStatus      `json:"paymentStatus" db:"payment_status"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus" db:"confirmation_status"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
