package mocks

import (
	"context"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// MockCodeExchanger implements domain.CodeExchanger for testing.
type MockCodeExchanger struct {
	ExchangeFunc func(ctx context.Context, code string) (*domain.GoogleIdentity, error)
	AuthURLFunc  func(state string) string
}

func (m *MockCodeExchanger) Exchange(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return &domain.GoogleIdentity{
		Email:    "donor@example.com",
		Name:     "Mock Donor",
		GoogleID: "google-sub-1",
	}, nil
}

func (m *MockCodeExchanger) AuthURL(state string) string {
	if m.AuthURLFunc != nil {
		return m.AuthURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/v2/auth?state=" + state
}
