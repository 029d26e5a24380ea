package mocks

import (
	"context"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// MockBackendGateway implements domain.BackendGateway for testing. Each
// method delegates to its Func field when set and records the call;
// unset methods return a plain success.
type MockBackendGateway struct {
	Calls []string

	SignupFunc                  func(ctx context.Context, in domain.SignupInput) domain.ActionResult
	LoginFunc                   func(ctx context.Context, in domain.LoginInput) domain.ActionResult
	LogoutFunc                  func(ctx context.Context, token string) domain.ActionResult
	ForgotPasswordFunc          func(ctx context.Context, email string) domain.ActionResult
	ResetPasswordFunc           func(ctx context.Context, in domain.ResetPasswordInput) domain.ActionResult
	DeleteAccountFunc           func(ctx context.Context, token string) domain.ActionResult
	ExchangeGoogleIdentityFunc  func(ctx context.Context, identity domain.GoogleIdentity) domain.ActionResult
	FetchProfileFunc            func(ctx context.Context, token string) domain.ActionResult
	CompleteDonorProfileFunc    func(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult
	EditDonorProfileFunc        func(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult
	CompleteHospitalProfileFunc func(ctx context.Context, token string, in domain.HospitalProfileInput) domain.ActionResult
	CreateBloodRequestFunc      func(ctx context.Context, token string, in domain.BloodRequestInput) domain.ActionResult
	UpdateBloodRequestFunc      func(ctx context.Context, token, requestID string, in domain.BloodRequestInput) domain.ActionResult
	CancelBloodRequestFunc      func(ctx context.Context, token, requestID string) domain.ActionResult
	ChangeRequestStatusFunc     func(ctx context.Context, token, requestID string, status domain.RequestStatus) domain.ActionResult
	ChangeRequestUrgencyFunc    func(ctx context.Context, token, requestID string, urgency domain.Urgency) domain.ActionResult
}

func (m *MockBackendGateway) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *MockBackendGateway) Signup(ctx context.Context, in domain.SignupInput) domain.ActionResult {
	m.record("Signup")
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return domain.Success("Account created successfully", nil)
}

func (m *MockBackendGateway) Login(ctx context.Context, in domain.LoginInput) domain.ActionResult {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, in)
	}
	return domain.Success("Login successful", nil)
}

func (m *MockBackendGateway) Logout(ctx context.Context, token string) domain.ActionResult {
	m.record("Logout")
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return domain.Success("Logout successful", nil)
}

func (m *MockBackendGateway) ForgotPassword(ctx context.Context, email string) domain.ActionResult {
	m.record("ForgotPassword")
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return domain.Success("Email sent successfully", nil)
}

func (m *MockBackendGateway) ResetPassword(ctx context.Context, in domain.ResetPasswordInput) domain.ActionResult {
	m.record("ResetPassword")
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, in)
	}
	return domain.Success("Password reset successfully!", nil)
}

func (m *MockBackendGateway) DeleteAccount(ctx context.Context, token string) domain.ActionResult {
	m.record("DeleteAccount")
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, token)
	}
	return domain.Success("Account deleted successfully", nil)
}

func (m *MockBackendGateway) ExchangeGoogleIdentity(ctx context.Context, identity domain.GoogleIdentity) domain.ActionResult {
	m.record("ExchangeGoogleIdentity")
	if m.ExchangeGoogleIdentityFunc != nil {
		return m.ExchangeGoogleIdentityFunc(ctx, identity)
	}
	return domain.Success("Google authentication successful", nil)
}

func (m *MockBackendGateway) FetchProfile(ctx context.Context, token string) domain.ActionResult {
	m.record("FetchProfile")
	if m.FetchProfileFunc != nil {
		return m.FetchProfileFunc(ctx, token)
	}
	return domain.Success("Profile fetched successfully", nil)
}

func (m *MockBackendGateway) CompleteDonorProfile(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult {
	m.record("CompleteDonorProfile")
	if m.CompleteDonorProfileFunc != nil {
		return m.CompleteDonorProfileFunc(ctx, token, in)
	}
	return domain.Success("Profile saved successfully", nil)
}

func (m *MockBackendGateway) EditDonorProfile(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult {
	m.record("EditDonorProfile")
	if m.EditDonorProfileFunc != nil {
		return m.EditDonorProfileFunc(ctx, token, in)
	}
	return domain.Success("Profile updated successfully", nil)
}

func (m *MockBackendGateway) CompleteHospitalProfile(ctx context.Context, token string, in domain.HospitalProfileInput) domain.ActionResult {
	m.record("CompleteHospitalProfile")
	if m.CompleteHospitalProfileFunc != nil {
		return m.CompleteHospitalProfileFunc(ctx, token, in)
	}
	return domain.Success("Hospital profile saved successfully", nil)
}

func (m *MockBackendGateway) CreateBloodRequest(ctx context.Context, token string, in domain.BloodRequestInput) domain.ActionResult {
	m.record("CreateBloodRequest")
	if m.CreateBloodRequestFunc != nil {
		return m.CreateBloodRequestFunc(ctx, token, in)
	}
	return domain.Success("Request created successfully", nil)
}

func (m *MockBackendGateway) UpdateBloodRequest(ctx context.Context, token, requestID string, in domain.BloodRequestInput) domain.ActionResult {
	m.record("UpdateBloodRequest")
	if m.UpdateBloodRequestFunc != nil {
		return m.UpdateBloodRequestFunc(ctx, token, requestID, in)
	}
	return domain.Success("Request updated successfully", nil)
}

func (m *MockBackendGateway) CancelBloodRequest(ctx context.Context, token, requestID string) domain.ActionResult {
	m.record("CancelBloodRequest")
	if m.CancelBloodRequestFunc != nil {
		return m.CancelBloodRequestFunc(ctx, token, requestID)
	}
	return domain.Success("Request cancelled successfully", nil)
}

func (m *MockBackendGateway) ChangeRequestStatus(ctx context.Context, token, requestID string, status domain.RequestStatus) domain.ActionResult {
	m.record("ChangeRequestStatus")
	if m.ChangeRequestStatusFunc != nil {
		return m.ChangeRequestStatusFunc(ctx, token, requestID, status)
	}
	return domain.Success("Status changed successfully", nil)
}

func (m *MockBackendGateway) ChangeRequestUrgency(ctx context.Context, token, requestID string, urgency domain.Urgency) domain.ActionResult {
	m.record("ChangeRequestUrgency")
	if m.ChangeRequestUrgencyFunc != nil {
		return m.ChangeRequestUrgencyFunc(ctx, token, requestID, urgency)
	}
	return domain.Success("Urgency changed successfully", nil)
}
