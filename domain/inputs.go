package domain

// Input DTOs for the remote action adapters. Field extraction and type
// coercion happen once at the form boundary; adapters forward these as-is.

// SignupInput carries the signup form fields after validation.
type SignupInput struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordInput carries the reset-password form fields plus the
// emailed reset token.
type ResetPasswordInput struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Token           string `json:"token"`
	Email           string `json:"email"`
}

// DonorProfileInput is the field set forwarded on donor profile completion
// and edits. Location coordinates are [lat, lng].
type DonorProfileInput struct {
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	Address          string    `json:"address"`
	BloodType        BloodType `json:"bloodType"`
	Location         Location  `json:"location"`
	IsAvailable      bool      `json:"isAvailable"`
}

// HospitalProfileInput is the field set forwarded on hospital profile
// completion. ServiceArea carries a GeoJSON Point.
type HospitalProfileInput struct {
	HospitalName      string         `json:"hospitalName"`
	LicenceNumber     string         `json:"licenceNumber"`
	HospitalType      HospitalType   `json:"hospitalType"`
	EstablishmentYear int            `json:"establishmentYear"`
	Address           string         `json:"address"`
	ServiceArea       Location       `json:"serviceArea"`
	EmergencyPhoneNo  string         `json:"emergencyPhoneNo"`
	Website           string         `json:"website,omitempty"`
	HospitalStatus    HospitalStatus `json:"hospitalStatus"`
	WorkingHours      string         `json:"workingHours"`
	Description       string         `json:"description,omitempty"`
}

// BloodRequestInput is the field set forwarded on request creation and
// detail updates.
type BloodRequestInput struct {
	BloodType     BloodType `json:"bloodType"`
	UnitsRequired int       `json:"unitsRequired"`
	Urgency       Urgency   `json:"urgency"`
	ExpiryTime    string    `json:"expiryTime"`
}

// GoogleIdentity is the provider profile handed to the backend exchange
// after a completed authorization-code flow.
type GoogleIdentity struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	GoogleID string `json:"googleId"`
	Role     Role   `json:"role"`
}
