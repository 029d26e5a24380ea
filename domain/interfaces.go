package domain

import (
	"context"
	"time"
)

// Storage is the durable key-value layer beneath the persisted stores.
// Implementations hold one JSON document per key. Read returns
// ErrRecordNotFound when the key holds nothing.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// BackendGateway bridges form submissions to the remote backend API.
// Every method issues at most one HTTP call and maps the outcome into an
// ActionResult; no method returns a Go error. Methods taking a token
// short-circuit to an auth failure when the token is empty.
type BackendGateway interface {
	// Credential lifecycle
	Signup(ctx context.Context, in SignupInput) ActionResult
	Login(ctx context.Context, in LoginInput) ActionResult
	Logout(ctx context.Context, token string) ActionResult
	ForgotPassword(ctx context.Context, email string) ActionResult
	ResetPassword(ctx context.Context, in ResetPasswordInput) ActionResult
	DeleteAccount(ctx context.Context, token string) ActionResult
	ExchangeGoogleIdentity(ctx context.Context, identity GoogleIdentity) ActionResult

	// Profiles
	FetchProfile(ctx context.Context, token string) ActionResult
	CompleteDonorProfile(ctx context.Context, token string, in DonorProfileInput) ActionResult
	EditDonorProfile(ctx context.Context, token string, in DonorProfileInput) ActionResult
	CompleteHospitalProfile(ctx context.Context, token string, in HospitalProfileInput) ActionResult

	// Blood request lifecycle
	CreateBloodRequest(ctx context.Context, token string, in BloodRequestInput) ActionResult
	UpdateBloodRequest(ctx context.Context, token, requestID string, in BloodRequestInput) ActionResult
	CancelBloodRequest(ctx context.Context, token, requestID string) ActionResult
	ChangeRequestStatus(ctx context.Context, token, requestID string, status RequestStatus) ActionResult
	ChangeRequestUrgency(ctx context.Context, token, requestID string, urgency Urgency) ActionResult
}

// TokenService mints and validates the frontend's own session tokens
// (distinct from the backend bearer token, which it transports).
type TokenService interface {
	IssueSessionToken(sessionID string, user SessionUser, accessToken string) (string, error)
	ValidateSessionToken(token string) (*SessionClaims, error)
	Lifetime() time.Duration
}

// CodeExchanger resolves an OAuth authorization code into a provider
// identity ready for the backend exchange.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (*GoogleIdentity, error)
	AuthURL(state string) string
}
