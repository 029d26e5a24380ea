package mocks

import (
	"time"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// MockTokenService implements domain.TokenService for testing.
type MockTokenService struct {
	IssueSessionTokenFunc    func(sessionID string, user domain.SessionUser, accessToken string) (string, error)
	ValidateSessionTokenFunc func(token string) (*domain.SessionClaims, error)
	LifetimeFunc             func() time.Duration
}

func (m *MockTokenService) IssueSessionToken(sessionID string, user domain.SessionUser, accessToken string) (string, error) {
	if m.IssueSessionTokenFunc != nil {
		return m.IssueSessionTokenFunc(sessionID, user, accessToken)
	}
	return "mock_session_token", nil
}

func (m *MockTokenService) ValidateSessionToken(token string) (*domain.SessionClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) Lifetime() time.Duration {
	if m.LifetimeFunc != nil {
		return m.LifetimeFunc()
	}
	return 7 * 24 * time.Hour
}
