package backend

import (
	"context"
	"net/http"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// FetchProfile loads the profile belonging to the token's account. The
// backend shapes the payload by role (donor or hospital).
func (c *Client) FetchProfile(ctx context.Context, token string) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodGet, c.authBase+"/profile/me", token, nil)
	return c.finish("fetch-profile", "Profile fetched successfully", "Failed to fetch profile", resp, err)
}

// CompleteDonorProfile submits the multi-step donor onboarding form.
func (c *Client) CompleteDonorProfile(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/donors/completeProfile", token, in)
	return c.finish("donor-complete-profile", "Profile saved successfully", "Failed to save profile", resp, err)
}

// EditDonorProfile replaces the editable donor profile fields.
func (c *Client) EditDonorProfile(ctx context.Context, token string, in domain.DonorProfileInput) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/donors/editProfile", token, in)
	return c.finish("donor-edit-profile", "Profile updated successfully", "Failed to update profile", resp, err)
}

// CompleteHospitalProfile submits the hospital onboarding form.
func (c *Client) CompleteHospitalProfile(ctx context.Context, token string, in domain.HospitalProfileInput) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.authBase+"/hospitals/completeProfile", token, in)
	return c.finish("hospital-complete-profile", "Hospital profile saved successfully", "Failed to save hospital profile", resp, err)
}
