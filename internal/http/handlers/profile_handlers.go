package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
)

// ProfileHandlers serves the shared profile routes.
type ProfileHandlers struct {
	sessions   *services.SessionService
	cookieName string
	secure     bool
}

func NewProfileHandlers(sessions *services.SessionService, cookieName string, secure bool) *ProfileHandlers {
	return &ProfileHandlers{sessions: sessions, cookieName: cookieName, secure: secure}
}

// Me handles GET /profile/me. The fetched profile also refreshes the
// matching session store.
func (h *ProfileHandlers) Me(c *gin.Context) {
	res := h.sessions.RefreshProfile(
		c.Request.Context(),
		c.GetString(middleware.CtxSessionID),
		c.GetString(middleware.CtxAccessToken),
		domain.Role(c.GetString(middleware.CtxUserRole)),
	)
	respond(c, res)
}

// Delete handles DELETE /profile/delete. The session cookie is cleared
// only when the backend confirmed the deletion.
func (h *ProfileHandlers) Delete(c *gin.Context) {
	res := h.sessions.DeleteAccount(
		c.Request.Context(),
		c.GetString(middleware.CtxSessionID),
		c.GetString(middleware.CtxAccessToken),
	)
	if res.OK() {
		c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	}
	respond(c, res)
}
