package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/mocks"
	"github.com/Luffyt01/HemoLink-sub000/internal/stores"
)

func loginPayload(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(domain.LoginResponse{
		ID:              "u1",
		Email:           "donor@example.com",
		PhoneNo:         "1234567890",
		ProfileComplete: true,
		Role:            domain.RoleDonor,
		AccessToken:     "bk_tok",
	})
	if err != nil {
		t.Fatalf("marshal login payload: %v", err)
	}
	return raw
}

func newTestService(gateway *mocks.MockBackendGateway) (*SessionService, *stores.Manager) {
	manager := stores.NewManager(&mocks.MockStorage{}, zap.NewNop(), 100*time.Millisecond)
	svc := NewSessionService(gateway, &mocks.MockTokenService{}, &mocks.MockCodeExchanger{}, manager, zap.NewNop())
	return svc, manager
}

func TestSessionService_LoginSeedsAuthStore(t *testing.T) {
	gateway := &mocks.MockBackendGateway{
		LoginFunc: func(ctx context.Context, in domain.LoginInput) domain.ActionResult {
			return domain.Success("Login successful", loginPayload(t))
		},
	}
	svc, manager := newTestService(gateway)

	res, token := svc.Login(context.Background(), "sess1", domain.LoginInput{
		Email: "donor@example.com", Password: "pw",
	})

	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
	if token != "mock_session_token" {
		t.Errorf("expected minted session token, got %q", token)
	}

	session := manager.ForSession("sess1").Auth.Get()
	if session == nil {
		t.Fatal("expected auth store seeded")
	}
	if session.Token != "bk_tok" {
		t.Errorf("expected backend token stored, got %q", session.Token)
	}
	if session.User.Role != domain.RoleDonor || !session.User.ProfileComplete {
		t.Errorf("unexpected session user %+v", session.User)
	}
}

func TestSessionService_LoginFailureMintsNothing(t *testing.T) {
	gateway := &mocks.MockBackendGateway{
		LoginFunc: func(ctx context.Context, in domain.LoginInput) domain.ActionResult {
			return domain.AuthFailure(http.StatusUnauthorized, "Invalid credentials")
		},
	}
	svc, manager := newTestService(gateway)

	res, token := svc.Login(context.Background(), "sess1", domain.LoginInput{
		Email: "donor@example.com", Password: "wrong",
	})

	if res.Status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", res.Status)
	}
	if token != "" {
		t.Errorf("expected no session token, got %q", token)
	}
	if manager.ForSession("sess1").Auth.Get() != nil {
		t.Error("expected auth store untouched")
	}
}

func TestSessionService_LogoutWithoutTokenIsLocal(t *testing.T) {
	gateway := &mocks.MockBackendGateway{}
	svc, manager := newTestService(gateway)
	ctx := context.Background()

	// Seed a session so there is local state to clear.
	set := manager.ForSession("sess1")
	set.Auth.Set(ctx, &domain.Session{Token: "bk_tok"})

	res := svc.Logout(ctx, "sess1", "")

	if !res.OK() || res.Message != "Logout successful" {
		t.Errorf("expected local logout success, got %+v", res)
	}
	if len(gateway.Calls) != 0 {
		t.Errorf("expected no backend call without a token, got %v", gateway.Calls)
	}
	if manager.ForSession("sess1").Auth.Get() != nil {
		t.Error("expected auth store cleared")
	}
}

func TestSessionService_LogoutClearsEvenOnBackendFailure(t *testing.T) {
	gateway := &mocks.MockBackendGateway{
		LogoutFunc: func(ctx context.Context, token string) domain.ActionResult {
			return domain.NetworkFailure("connection refused")
		},
	}
	svc, manager := newTestService(gateway)
	ctx := context.Background()

	set := manager.ForSession("sess1")
	set.Auth.Set(ctx, &domain.Session{Token: "bk_tok"})
	set.Donor.Set(ctx, &domain.DonorProfile{ID: "d1"})

	res := svc.Logout(ctx, "sess1", "bk_tok")

	if res.Status != http.StatusInternalServerError {
		t.Errorf("expected backend failure surfaced, got %+v", res)
	}
	fresh := manager.ForSession("sess1")
	if fresh.Auth.Get() != nil || fresh.Donor.Get() != nil {
		t.Error("local state must clear regardless of the backend outcome")
	}
}

func TestSessionService_DeleteAccount(t *testing.T) {
	tests := []struct {
		name          string
		deleteFunc    func(ctx context.Context, token string) domain.ActionResult
		expectCleared bool
	}{
		{
			name:          "success clears local state",
			deleteFunc:    nil, // default mock success
			expectCleared: true,
		},
		{
			name: "failure keeps local state",
			deleteFunc: func(ctx context.Context, token string) domain.ActionResult {
				return domain.AuthFailure(http.StatusForbidden, "nope")
			},
			expectCleared: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.MockBackendGateway{DeleteAccountFunc: tt.deleteFunc}
			svc, manager := newTestService(gateway)
			ctx := context.Background()

			manager.ForSession("sess1").Auth.Set(ctx, &domain.Session{Token: "bk_tok"})

			svc.DeleteAccount(ctx, "sess1", "bk_tok")

			cleared := manager.ForSession("sess1").Auth.Get() == nil
			if cleared != tt.expectCleared {
				t.Errorf("expected cleared=%v, got %v", tt.expectCleared, cleared)
			}
		})
	}
}

func TestSessionService_RefreshProfileByRole(t *testing.T) {
	donorRaw, _ := json.Marshal(domain.DonorProfile{ID: "d1", Name: "Pat"})
	hospitalRaw, _ := json.Marshal(domain.HospitalProfile{ID: "h1", HospitalName: "City Hospital"})

	tests := []struct {
		name    string
		role    domain.Role
		payload json.RawMessage
		check   func(t *testing.T, set *stores.Set)
	}{
		{
			name: "donor payload lands in donor store", role: domain.RoleDonor, payload: donorRaw,
			check: func(t *testing.T, set *stores.Set) {
				if p := set.Donor.Get(); p == nil || p.ID != "d1" {
					t.Errorf("expected donor profile stored, got %+v", p)
				}
				if set.Hospital.Get() != nil {
					t.Error("hospital store must stay empty for a donor")
				}
			},
		},
		{
			name: "hospital payload lands in hospital store", role: domain.RoleHospital, payload: hospitalRaw,
			check: func(t *testing.T, set *stores.Set) {
				if p := set.Hospital.Get(); p == nil || p.ID != "h1" {
					t.Errorf("expected hospital profile stored, got %+v", p)
				}
				if set.Donor.Get() != nil {
					t.Error("donor store must stay empty for a hospital")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.MockBackendGateway{
				FetchProfileFunc: func(ctx context.Context, token string) domain.ActionResult {
					return domain.Success("Profile fetched successfully", tt.payload)
				},
			}
			svc, manager := newTestService(gateway)

			res := svc.RefreshProfile(context.Background(), "sess1", "bk_tok", tt.role)
			if !res.OK() {
				t.Fatalf("expected success, got %+v", res)
			}
			tt.check(t, manager.ForSession("sess1"))
		})
	}
}

func TestSessionService_CompleteDonorProfileMarksSession(t *testing.T) {
	profileRaw, _ := json.Marshal(domain.DonorProfile{ID: "d1", Name: "Pat"})
	gateway := &mocks.MockBackendGateway{
		CompleteDonorProfileFunc: func(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult {
			return domain.Success("Profile saved successfully", json.RawMessage(profileRaw))
		},
	}
	svc, manager := newTestService(gateway)
	ctx := context.Background()

	manager.ForSession("sess1").Auth.Set(ctx, &domain.Session{
		Token: "bk_tok",
		User:  domain.SessionUser{ID: "u1", Role: domain.RoleDonor},
	})

	res := svc.CompleteDonorProfile(ctx, "sess1", "bk_tok", domain.DonorProfileInput{Name: "Pat"})
	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}

	set := manager.ForSession("sess1")
	if p := set.Donor.Get(); p == nil || p.ID != "d1" {
		t.Errorf("expected donor store seeded, got %+v", p)
	}
	if s := set.Auth.Get(); s == nil || !s.User.ProfileComplete {
		t.Errorf("expected profileComplete flipped on the session, got %+v", s)
	}
}

func TestSessionService_GoogleSignIn(t *testing.T) {
	var exchanged domain.GoogleIdentity
	gateway := &mocks.MockBackendGateway{
		ExchangeGoogleIdentityFunc: func(ctx context.Context, identity domain.GoogleIdentity) domain.ActionResult {
			exchanged = identity
			return domain.Success("Google authentication successful", loginPayload(t))
		},
	}
	svc, manager := newTestService(gateway)

	res, token := svc.GoogleSignIn(context.Background(), "sess1", "oauth-code", "")

	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
	if token == "" {
		t.Error("expected minted session token")
	}
	// Role defaults to donor when the sign-in flow carried none.
	if exchanged.Role != domain.RoleDonor {
		t.Errorf("expected DONOR default role, got %q", exchanged.Role)
	}
	if exchanged.Email == "" {
		t.Error("expected provider identity forwarded to the backend")
	}
	session := manager.ForSession("sess1").Auth.Get()
	if session == nil || session.User.Provider != "google" {
		t.Errorf("expected google provider session, got %+v", session)
	}
}

func TestSessionService_GoogleSignIn_ExchangeFailure(t *testing.T) {
	gateway := &mocks.MockBackendGateway{}
	manager := stores.NewManager(&mocks.MockStorage{}, zap.NewNop(), 100*time.Millisecond)
	exchanger := &mocks.MockCodeExchanger{
		ExchangeFunc: func(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
			return nil, domain.ErrExchangeFailed
		},
	}
	svc := NewSessionService(gateway, &mocks.MockTokenService{}, exchanger, manager, zap.NewNop())

	res, token := svc.GoogleSignIn(context.Background(), "sess1", "bad-code", domain.RoleDonor)

	if res.Status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %+v", res)
	}
	if token != "" {
		t.Errorf("expected no token, got %q", token)
	}
	if len(gateway.Calls) != 0 {
		t.Errorf("expected no backend exchange after a failed code exchange, got %v", gateway.Calls)
	}
}
