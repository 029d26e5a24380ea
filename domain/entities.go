package domain

// Role identifies what kind of account a user holds.
type Role string

const (
	RoleUser     Role = "USER"
	RoleDonor    Role = "DONOR"
	RoleHospital Role = "HOSPITAL"
	RoleAdmin    Role = "ADMIN"
)

// BloodType is the backend's blood group enum.
type BloodType string

const (
	APositive  BloodType = "A_POSITIVE"
	ANegative  BloodType = "A_NEGATIVE"
	BPositive  BloodType = "B_POSITIVE"
	BNegative  BloodType = "B_NEGATIVE"
	ABPositive BloodType = "AB_POSITIVE"
	ABNegative BloodType = "AB_NEGATIVE"
	OPositive  BloodType = "O_POSITIVE"
	ONegative  BloodType = "O_NEGATIVE"
)

// BloodTypes lists every accepted blood group value.
var BloodTypes = []BloodType{
	APositive, ANegative, BPositive, BNegative,
	ABPositive, ABNegative, OPositive, ONegative,
}

// Urgency is the blood request urgency enum.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// RequestStatus is the blood request lifecycle enum. The canonical entity
// lives in the backend; the frontend only issues transitions against it.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestFulfilled RequestStatus = "FULFILLED"
	RequestExpired   RequestStatus = "EXPIRED"
	RequestCancelled RequestStatus = "CANCELLED"
)

// HospitalType is the hospital classification enum.
type HospitalType string

const (
	GeneralHospital    HospitalType = "GENERAL_HOSPITAL"
	TeachingHospital   HospitalType = "TEACHING_HOSPITAL"
	SpecialtyHospital  HospitalType = "SPECIALTY_HOSPITAL"
	ChildrenHospital   HospitalType = "CHILDREN_HOSPITAL"
	TraumaCenter       HospitalType = "TRAUMA_CENTER"
	CancerCenter       HospitalType = "CANCER_CENTER"
	BloodBank          HospitalType = "BLOOD_BANK"
	ResearchHospital   HospitalType = "RESEARCH_HOSPITAL"
	CommunityHospital  HospitalType = "COMMUNITY_HOSPITAL"
	GovernmentHospital HospitalType = "GOVERNMENT_HOSPITAL"
	PrivateHospital    HospitalType = "PRIVATE_HOSPITAL"
	MilitaryHospital   HospitalType = "MILITARY_HOSPITAL"
)

// HospitalTypes lists every accepted hospital classification.
var HospitalTypes = []HospitalType{
	GeneralHospital, TeachingHospital, SpecialtyHospital, ChildrenHospital,
	TraumaCenter, CancerCenter, BloodBank, ResearchHospital,
	CommunityHospital, GovernmentHospital, PrivateHospital, MilitaryHospital,
}

// HospitalStatus is the hospital operating status enum.
type HospitalStatus string

const (
	HospitalOpened           HospitalStatus = "OPENED"
	HospitalClosed           HospitalStatus = "CLOSED"
	HospitalUnderMaintenance HospitalStatus = "UNDER_MAINTENANCE"
)

// VerificationStatus is the hospital verification enum.
type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationPending  VerificationStatus = "PENDING"
	VerificationRejected VerificationStatus = "REJECTED"
)

// SessionUser is the authenticated user embedded in a session.
type SessionUser struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	Phone           string `json:"phone,omitempty"`
	ProfileComplete bool   `json:"profileComplete"`
	Provider        string `json:"provider,omitempty"`
	GoogleID        string `json:"googleId,omitempty"`
}

// Session is the record held by the auth store. Token is the backend-issued
// bearer token attached to every protected adapter call.
type Session struct {
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
	Expires string      `json:"expires,omitempty"`
}

// Location carries geo coordinates as a [lat, lng] pair, matching the
// backend's GeoJSON-ish wire shape.
type Location struct {
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type,omitempty"`
}

// ProfileOwner is the account block nested in both profile records.
type ProfileOwner struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            Role   `json:"role"`
	CreatedAt       string `json:"createdAt"`
	ProfileComplete bool   `json:"profileComplete"`
}

// DonorProfile is the record held by the donor store. It is created or
// replaced wholesale by a fetch or profile-completion action.
type DonorProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Age          int          `json:"age"`
	Address      string       `json:"address"`
	BloodType    BloodType    `json:"bloodType,omitempty"`
	Location     *Location    `json:"location,omitempty"`
	LastDonation string       `json:"lastDonation,omitempty"`
	Available    bool         `json:"available"`
	User         ProfileOwner `json:"user"`
}

// HospitalProfile is the record held by the hospital store.
type HospitalProfile struct {
	ID                 string             `json:"id"`
	HospitalName       string             `json:"hospitalName"`
	HospitalType       HospitalType       `json:"hospitalType"`
	EstablishmentYear  int                `json:"establishmentYear"`
	MainPhoneNo        string             `json:"mainPhoneNo"`
	EmergencyPhoneNo   string             `json:"emergencyPhoneNo"`
	Website            string             `json:"website"`
	WorkingHours       string             `json:"workingHours"`
	HospitalStatus     HospitalStatus     `json:"hospitalStatus"`
	LicenceNumber      string             `json:"licenceNumber"`
	ServiceArea        *Location          `json:"serviceArea,omitempty"`
	Address            string             `json:"address"`
	Description        string             `json:"description"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	User               ProfileOwner       `json:"user"`
}

// BloodRequest mirrors the backend's request entity for display purposes.
type BloodRequest struct {
	ID            string        `json:"id"`
	BloodType     BloodType     `json:"bloodType"`
	UnitsRequired int           `json:"unitsRequired"`
	Urgency       Urgency       `json:"urgency"`
	Status        RequestStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	ExpiryTime    string        `json:"expiryTime"`
}

// LoginResponse is the payload the backend returns on a successful login.
type LoginResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	PhoneNo         string `json:"phoneNo"`
	ProfileComplete bool   `json:"profileComplete"`
	Role            Role   `json:"role"`
	AccessToken     string `json:"accessToken"`
}

// SessionClaims are the claims carried by the frontend session token.
type SessionClaims struct {
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	AccessToken     string `json:"access_token"`
	Provider        string `json:"provider,omitempty"`
	ProfileComplete bool   `json:"profile_complete"`
	IssuedAt        int64  `json:"iat"`
	ExpiresAt       int64  `json:"exp"`
}

// ValidRole reports whether v is a signup-selectable role.
func ValidRole(v string) bool {
	return v == string(RoleDonor) || v == string(RoleHospital)
}

// ValidBloodType reports whether v is one of the eight blood groups.
func ValidBloodType(v string) bool {
	for _, bt := range BloodTypes {
		if v == string(bt) {
			return true
		}
	}
	return false
}

// ValidUrgency reports whether v is a known urgency level.
func ValidUrgency(v string) bool {
	return v == string(UrgencyLow) || v == string(UrgencyMedium) || v == string(UrgencyHigh)
}

// ValidRequestStatus reports whether v is a known request status.
func ValidRequestStatus(v string) bool {
	switch RequestStatus(v) {
	case RequestPending, RequestFulfilled, RequestExpired, RequestCancelled:
		return true
	}
	return false
}

// ValidHospitalType reports whether v is a known hospital classification.
func ValidHospitalType(v string) bool {
	for _, ht := range HospitalTypes {
		if v == string(ht) {
			return true
		}
	}
	return false
}

// ValidHospitalStatus reports whether v is a known operating status.
func ValidHospitalStatus(v string) bool {
	switch HospitalStatus(v) {
	case HospitalOpened, HospitalClosed, HospitalUnderMaintenance:
		return true
	}
	return false
}
