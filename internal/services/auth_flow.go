package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/stores"
)

// SessionService orchestrates the credential lifecycle: it drives the
// backend gateway, establishes and tears down the per-session store set,
// and mints the frontend session token handed back as a cookie.
type SessionService struct {
	gateway   domain.BackendGateway
	tokens    domain.TokenService
	exchanger domain.CodeExchanger
	stores    *stores.Manager
	log       *zap.Logger
}

// NewSessionService creates a session service.
func NewSessionService(
	gateway domain.BackendGateway,
	tokens domain.TokenService,
	exchanger domain.CodeExchanger,
	storeManager *stores.Manager,
	log *zap.Logger,
) *SessionService {
	return &SessionService{
		gateway:   gateway,
		tokens:    tokens,
		exchanger: exchanger,
		stores:    storeManager,
		log:       log,
	}
}

// Gateway exposes the backend gateway for handlers that forward a single
// call without session side effects.
func (s *SessionService) Gateway() domain.BackendGateway { return s.gateway }

// Stores exposes the per-session store manager.
func (s *SessionService) Stores() *stores.Manager { return s.stores }

// TokenLifetime is the session token validity window, used for the cookie
// max-age.
func (s *SessionService) TokenLifetime() time.Duration { return s.tokens.Lifetime() }

// AuthURL builds the Google consent URL for the given CSRF state.
func (s *SessionService) AuthURL(state string) string { return s.exchanger.AuthURL(state) }

// readySet returns the session's store set once its hydration gate has
// opened. Mutating a store mid-rehydration could lose the write to the
// rehydrated snapshot; the gate's fallback timer bounds the wait.
func (s *SessionService) readySet(ctx context.Context, sessionID string) *stores.Set {
	set := s.stores.ForSession(sessionID)
	_ = set.Gate().Wait(ctx)
	return set
}

// Login authenticates against the backend and, on success, seeds the auth
// store and mints a session token. The token is empty on failure.
func (s *SessionService) Login(ctx context.Context, sessionID string, in domain.LoginInput) (domain.ActionResult, string) {
	res := s.gateway.Login(ctx, in)
	if !res.OK() {
		return res, ""
	}

	var login domain.LoginResponse
	if err := decodePayload(res.Data, &login); err != nil {
		s.log.Error("session: malformed login payload", zap.Error(err))
		return domain.NetworkFailure(err.Error()), ""
	}

	token, err := s.establish(ctx, sessionID, login, "credentials")
	if err != nil {
		s.log.Error("session: token mint failed", zap.Error(err))
		return domain.NetworkFailure(err.Error()), ""
	}
	return res, token
}

// GoogleSignIn completes the OAuth callback: it resolves the code into a
// Google identity, exchanges that identity with the backend, and
// establishes the session exactly as a credential login would.
func (s *SessionService) GoogleSignIn(ctx context.Context, sessionID, code string, role domain.Role) (domain.ActionResult, string) {
	identity, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		s.log.Warn("session: google exchange failed", zap.Error(err))
		return domain.AuthFailure(http.StatusUnauthorized, "Google authentication failed"), ""
	}
	if role == "" {
		role = domain.RoleDonor
	}
	identity.Role = role

	res := s.gateway.ExchangeGoogleIdentity(ctx, *identity)
	if !res.OK() {
		return res, ""
	}

	var login domain.LoginResponse
	if err := decodePayload(res.Data, &login); err != nil {
		s.log.Error("session: malformed google login payload", zap.Error(err))
		return domain.NetworkFailure(err.Error()), ""
	}

	token, err := s.establish(ctx, sessionID, login, "google")
	if err != nil {
		s.log.Error("session: token mint failed", zap.Error(err))
		return domain.NetworkFailure(err.Error()), ""
	}
	return res, token
}

// Logout invalidates the backend session when a token is held and always
// clears the local stores. A token-less logout is a purely local success,
// no backend call is made.
func (s *SessionService) Logout(ctx context.Context, sessionID, token string) domain.ActionResult {
	res := domain.Success("Logout successful", nil)
	if token != "" {
		res = s.gateway.Logout(ctx, token)
	}

	set := s.readySet(ctx, sessionID)
	set.ClearAll(ctx)
	s.stores.Drop(sessionID)
	return res
}

// DeleteAccount removes the backend account and, on success, clears local
// state the same way logout does.
func (s *SessionService) DeleteAccount(ctx context.Context, sessionID, token string) domain.ActionResult {
	res := s.gateway.DeleteAccount(ctx, token)
	if res.OK() {
		set := s.readySet(ctx, sessionID)
		set.ClearAll(ctx)
		s.stores.Drop(sessionID)
	}
	return res
}

// RefreshProfile fetches the caller's profile and replaces the matching
// store record wholesale. The donor and hospital stores are mutually
// exclusive per session; the role decides which one receives the payload.
func (s *SessionService) RefreshProfile(ctx context.Context, sessionID, token string, role domain.Role) domain.ActionResult {
	res := s.gateway.FetchProfile(ctx, token)
	if !res.OK() {
		return res
	}

	set := s.readySet(ctx, sessionID)
	switch role {
	case domain.RoleHospital:
		var profile domain.HospitalProfile
		if err := decodePayload(res.Data, &profile); err != nil {
			s.log.Warn("session: hospital profile payload not stored", zap.Error(err))
			return res
		}
		set.Hospital.Set(ctx, &profile)
	default:
		var profile domain.DonorProfile
		if err := decodePayload(res.Data, &profile); err != nil {
			s.log.Warn("session: donor profile payload not stored", zap.Error(err))
			return res
		}
		set.Donor.Set(ctx, &profile)
	}
	return res
}

// CompleteDonorProfile submits the onboarding form and, on success, stores
// the returned profile and flips the session's profileComplete flag.
func (s *SessionService) CompleteDonorProfile(ctx context.Context, sessionID, token string, in domain.DonorProfileInput) domain.ActionResult {
	res := s.gateway.CompleteDonorProfile(ctx, token, in)
	s.storeDonorResult(ctx, sessionID, res)
	return res
}

// EditDonorProfile submits profile edits and refreshes the donor store.
func (s *SessionService) EditDonorProfile(ctx context.Context, sessionID, token string, in domain.DonorProfileInput) domain.ActionResult {
	res := s.gateway.EditDonorProfile(ctx, token, in)
	s.storeDonorResult(ctx, sessionID, res)
	return res
}

// CompleteHospitalProfile submits the hospital onboarding form and, on
// success, stores the returned profile.
func (s *SessionService) CompleteHospitalProfile(ctx context.Context, sessionID, token string, in domain.HospitalProfileInput) domain.ActionResult {
	res := s.gateway.CompleteHospitalProfile(ctx, token, in)
	if !res.OK() {
		return res
	}

	set := s.readySet(ctx, sessionID)
	var profile domain.HospitalProfile
	if err := decodePayload(res.Data, &profile); err == nil {
		set.Hospital.Set(ctx, &profile)
	}
	s.markProfileComplete(ctx, set)
	return res
}

func (s *SessionService) storeDonorResult(ctx context.Context, sessionID string, res domain.ActionResult) {
	if !res.OK() {
		return
	}
	set := s.readySet(ctx, sessionID)
	var profile domain.DonorProfile
	if err := decodePayload(res.Data, &profile); err == nil {
		set.Donor.Set(ctx, &profile)
	}
	s.markProfileComplete(ctx, set)
}

func (s *SessionService) markProfileComplete(ctx context.Context, set *stores.Set) {
	set.Auth.Update(ctx, func(session *domain.Session) {
		session.User.ProfileComplete = true
	})
}

func (s *SessionService) establish(ctx context.Context, sessionID string, login domain.LoginResponse, provider string) (string, error) {
	user := domain.SessionUser{
		ID:              login.ID,
		Email:           login.Email,
		Role:            login.Role,
		Phone:           login.PhoneNo,
		ProfileComplete: login.ProfileComplete,
		Provider:        provider,
	}
	session := domain.Session{
		Token:   login.AccessToken,
		User:    user,
		Expires: time.Now().Add(s.tokens.Lifetime()).Format(time.RFC3339),
	}

	set := s.readySet(ctx, sessionID)
	set.Auth.Set(ctx, &session)

	return s.tokens.IssueSessionToken(sessionID, user, login.AccessToken)
}

// decodePayload converts an adapter's Data payload into a typed value.
// Adapters carry the raw backend body, so this is a plain re-decode.
func decodePayload(data any, v any) error {
	raw, ok := data.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		raw = b
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
