package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
)

const (
	oauthStateCookie = "oauth_state"
	oauthRoleCookie  = "oauth_role"
)

// AuthHandlers serves the credential lifecycle routes.
type AuthHandlers struct {
	sessions   *services.SessionService
	cookieName string
	secure     bool
}

// NewAuthHandlers creates the auth handler set. cookieName is the session
// cookie; secure controls its Secure flag.
func NewAuthHandlers(sessions *services.SessionService, cookieName string, secure bool) *AuthHandlers {
	return &AuthHandlers{sessions: sessions, cookieName: cookieName, secure: secure}
}

func respond(c *gin.Context, res domain.ActionResult) {
	c.JSON(res.Status, res)
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(ttl.Seconds()), "/", "", h.secure, true)
}

func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
}

// Signup handles POST /auth/signup.
func (h *AuthHandlers) Signup(c *gin.Context) {
	in, errs := parseSignup(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	respond(c, h.sessions.Gateway().Signup(c.Request.Context(), in))
}

// Login handles POST /auth/login. On success a fresh session is
// established and the session cookie is set.
func (h *AuthHandlers) Login(c *gin.Context) {
	in, errs := parseLogin(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}

	sessionID := uuid.NewString()
	res, token := h.sessions.Login(c.Request.Context(), sessionID, in)
	if token != "" {
		h.setSessionCookie(c, token, h.sessions.TokenLifetime())
	}
	respond(c, res)
}

// Logout handles POST /auth/logout. Local session state is cleared even
// when the backend call fails.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	token := c.GetString(middleware.CtxAccessToken)

	res := h.sessions.Logout(c.Request.Context(), sessionID, token)
	h.clearSessionCookie(c)
	respond(c, res)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	email, errs := parseForgotPassword(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	respond(c, h.sessions.Gateway().ForgotPassword(c.Request.Context(), email))
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	in, errs := parseResetPassword(c)
	if len(errs) > 0 {
		respond(c, domain.ValidationFailure(errs))
		return
	}
	respond(c, h.sessions.Gateway().ResetPassword(c.Request.Context(), in))
}

// GoogleRedirect handles GET /auth/google. It parks the CSRF state and the
// chosen role in short-lived cookies and sends the browser to the consent
// screen.
func (h *AuthHandlers) GoogleRedirect(c *gin.Context) {
	role := c.Query("role")
	if role != "" && !domain.ValidRole(role) {
		respond(c, domain.ValidationFailure(fieldErrors{"role": {"Please select a role"}}))
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secure, true)
	c.SetCookie(oauthRoleCookie, role, 600, "/", "", h.secure, true)
	c.Redirect(http.StatusTemporaryRedirect, h.sessions.AuthURL(state))
}

// GoogleCallback handles GET /auth/google/callback.
func (h *AuthHandlers) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		respond(c, domain.AuthFailure(http.StatusUnauthorized, "Invalid OAuth state"))
		return
	}
	code := c.Query("code")
	if code == "" {
		respond(c, domain.AuthFailure(http.StatusUnauthorized, "Google authentication failed"))
		return
	}
	role, _ := c.Cookie(oauthRoleCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secure, true)
	c.SetCookie(oauthRoleCookie, "", -1, "/", "", h.secure, true)

	sessionID := uuid.NewString()
	res, token := h.sessions.GoogleSignIn(c.Request.Context(), sessionID, code, domain.Role(role))
	if token != "" {
		h.setSessionCookie(c, token, h.sessions.TokenLifetime())
	}
	respond(c, res)
}

// Session handles GET /auth/session. It waits behind the hydration gate
// and returns the locally held session record.
func (h *AuthHandlers) Session(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	set := h.sessions.Stores().ForSession(sessionID)

	session := set.Auth.Get()
	if session == nil {
		respond(c, domain.AuthFailure(http.StatusUnauthorized, "No active session"))
		return
	}
	respond(c, domain.Success("Session active", session))
}
