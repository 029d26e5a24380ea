package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
)

// DonorHandlers serves the donor profile routes.
type DonorHandlers struct {
	sessions *services.SessionService
}

func NewDonorHandlers(sessions *services.SessionService) *DonorHandlers {
	return &DonorHandlers{sessions: sessions}
}

// CompleteProfile handles POST /donor/completeProfile.
func (h *DonorHandlers) CompleteProfile(c *gin.Context) {
	in, errs := parseDonorProfile(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	res := h.sessions.CompleteDonorProfile(
		c.Request.Context(),
		c.GetString(middleware.CtxSessionID),
		c.GetString(middleware.CtxAccessToken),
		in,
	)
	respond(c, res)
}

// EditProfile handles POST /donor/editProfile.
func (h *DonorHandlers) EditProfile(c *gin.Context) {
	in, errs := parseDonorProfile(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	res := h.sessions.EditDonorProfile(
		c.Request.Context(),
		c.GetString(middleware.CtxSessionID),
		c.GetString(middleware.CtxAccessToken),
		in,
	)
	respond(c, res)
}

// Profile handles GET /donor/profile, returning the locally held donor
// record after hydration.
func (h *DonorHandlers) Profile(c *gin.Context) {
	set := h.sessions.Stores().ForSession(c.GetString(middleware.CtxSessionID))
	profile := set.Donor.Get()
	if profile == nil {
		respond(c, domain.NotFoundFailure("No donor profile stored"))
		return
	}
	respond(c, domain.Success("Profile fetched successfully", profile))
}
