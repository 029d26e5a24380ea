package backend

import (
	"context"
	"net/http"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Signup registers a new account. Not idempotent: resubmission creates a
// duplicate backend entity, so the form layer must keep at most one
// submission in flight.
func (c *Client) Signup(ctx context.Context, in domain.SignupInput) domain.ActionResult {
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/signup", "", in)
	return c.finish("signup", "Account created successfully", "Signup failed", resp, err)
}

// Login exchanges credentials for a backend bearer token.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) domain.ActionResult {
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/login", "", in)
	return c.finish("login", "Login successful", "Login failed", resp, err)
}

// Logout invalidates the backend session for the held token.
func (c *Client) Logout(ctx context.Context, token string) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/logout", token, nil)
	return c.finish("logout", "Logout successful", "Logout failed", resp, err)
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) domain.ActionResult {
	payload := map[string]string{"email": email}
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/forgot-password", "", payload)
	return c.finish("forgot-password", "Email sent successfully", "Failed to send reset email", resp, err)
}

// ResetPassword completes the emailed reset flow.
func (c *Client) ResetPassword(ctx context.Context, in domain.ResetPasswordInput) domain.ActionResult {
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/reset-password", "", in)
	return c.finish("reset-password", "Password reset successfully!", "Failed to reset password. Please try again.", resp, err)
}

// DeleteAccount permanently removes the account behind the token.
func (c *Client) DeleteAccount(ctx context.Context, token string) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodDelete, c.authBase+"/profile/delete", token, nil)
	return c.finish("delete-account", "Account deleted successfully", "Failed to delete account", resp, err)
}

// ExchangeGoogleIdentity trades a verified Google profile for a
// backend-issued token, completing the OAuth sign-in.
func (c *Client) ExchangeGoogleIdentity(ctx context.Context, identity domain.GoogleIdentity) domain.ActionResult {
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/auth/google", "", identity)
	return c.finish("google-exchange", "Google authentication successful", "Google authentication failed", resp, err)
}
