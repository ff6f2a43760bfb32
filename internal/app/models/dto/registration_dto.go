package dto

// RegisterRequest is the payload for registering a participant for a camp.
// Required-field checks are applied fail-fast by the registration service so
// the response can name the first missing field; no binding tags here.
type RegisterRequest struct {
	CampID                 string `json:"campId"`
	CampName               string `json:"campName"`
	CampFees               *int   `json:"campFees"`
	Location               string `json:"location"`
	HealthcareProfessional string `json:"healthcareProfessional"`
	ParticipantName        string `json:"participantName"`
	ParticipantEmail       string `json:"participantEmail"`
	Age                    *int   `json:"age"`
	Phone                  string `json:"phone"`
	Gender                 string `json:"gender"`
	EmergencyContact       string `json:"emergencyContact"`
	OrganizerEmail         string `json:"organizerEmail"`
}

// RegistrationConfirmation is returned after a successful registration
type RegistrationConfirmation struct {
	RegistrationID     string `json:"registrationId"`
	CampID             string `json:"campId"`
	CampName           string `json:"campName"`
	ParticipantEmail   string `json:"participantEmail"`
	PaymentStatus      string `json:"paymentStatus" example:"Unpaid"`
	ConfirmationStatus string `json:"confirmationStatus" example:"Pending"`
}
