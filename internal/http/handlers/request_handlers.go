package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
)

// RequestHandlers serves the blood request lifecycle routes. These are
// hospital-only; the casbin layer enforces that before the handler runs.
type RequestHandlers struct {
	sessions *services.SessionService
}

func NewRequestHandlers(sessions *services.SessionService) *RequestHandlers {
	return &RequestHandlers{sessions: sessions}
}

func (h *RequestHandlers) token(c *gin.Context) string {
	return c.GetString(middleware.CtxAccessToken)
}

// Create handles POST /hospital/requests.
func (h *RequestHandlers) Create(c *gin.Context) {
	in, errs := parseBloodRequest(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	respond(c, h.sessions.Gateway().CreateBloodRequest(c.Request.Context(), h.token(c), in))
}

// Update handles POST /hospital/requests/:id.
func (h *RequestHandlers) Update(c *gin.Context) {
	in, errs := parseBloodRequest(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	respond(c, h.sessions.Gateway().UpdateBloodRequest(c.Request.Context(), h.token(c), c.Param("id"), in))
}

// Cancel handles PATCH /hospital/requests/:id/cancel.
func (h *RequestHandlers) Cancel(c *gin.Context) {
	respond(c, h.sessions.Gateway().CancelBloodRequest(c.Request.Context(), h.token(c), c.Param("id")))
}

// ChangeStatus handles PATCH /hospital/requests/:id/status/:status.
func (h *RequestHandlers) ChangeStatus(c *gin.Context) {
	status := c.Param("status")
	if !domain.ValidRequestStatus(status) {
		respond(c, domain.ValidationFailure(fieldErrors{"status": {"Select a valid request status"}}))
		return
	}
	res := h.sessions.Gateway().ChangeRequestStatus(
		c.Request.Context(), h.token(c), c.Param("id"), domain.RequestStatus(status))
	respond(c, res)
}

// ChangeUrgency handles PATCH /hospital/requests/:id/urgency/:urgency.
func (h *RequestHandlers) ChangeUrgency(c *gin.Context) {
	urgency := c.Param("urgency")
	if !domain.ValidUrgency(urgency) {
		respond(c, domain.ValidationFailure(fieldErrors{"urgency": {"Select a valid urgency level"}}))
		return
	}
	res := h.sessions.Gateway().ChangeRequestUrgency(
		c.Request.Context(), h.token(c), c.Param("id"), domain.Urgency(urgency))
	respond(c, res)
}
