package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
)

// HospitalHandlers serves the hospital profile routes.
type HospitalHandlers struct {
	sessions *services.SessionService
}

func NewHospitalHandlers(sessions *services.SessionService) *HospitalHandlers {
	return &HospitalHandlers{sessions: sessions}
}

// CompleteProfile handles POST /hospital/completeProfile.
func (h *HospitalHandlers) CompleteProfile(c *gin.Context) {
	in, errs := parseHospitalProfile(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	res := h.sessions.CompleteHospitalProfile(
		c.Request.Context(),
		c.GetString(middleware.CtxSessionID),
		c.GetString(middleware.CtxAccessToken),
		in,
	)
	respond(c, res)
}

// Profile handles GET /hospital/profile, returning the locally held
// hospital record after hydration.
func (h *HospitalHandlers) Profile(c *gin.Context) {
	set := h.sessions.Stores().ForSession(c.GetString(middleware.CtxSessionID))
	profile := set.Hospital.Get()
	if profile == nil {
		respond(c, domain.NotFoundFailure("No hospital profile stored"))
		return
	}
	respond(c, domain.Success("Profile fetched successfully", profile))
}
