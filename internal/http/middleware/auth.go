package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Context keys set by the session middleware.
const (
	CtxSessionID   = "session_id"
	CtxUserID      = "user_id"
	CtxUserRole    = "user_role"
	CtxAccessToken = "access_token"
)

// AuthMW wraps the token service for the session middleware.
type AuthMW struct {
	tokens     domain.TokenService
	cookieName string
}

// NewAuthMW creates a session middleware wrapper. cookieName is the
// session cookie issued on login.
func NewAuthMW(tokens domain.TokenService, cookieName string) *AuthMW {
	return &AuthMW{tokens: tokens, cookieName: cookieName}
}

// WithSession authenticates the request from the session cookie, falling
// back to a bearer Authorization header. The validated claims are placed
// on the gin context for the casbin layer and the handlers.
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := mw.extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, domain.AuthFailure(http.StatusUnauthorized, "Authorization token required"))
			c.Abort()
			return
		}

		claims, err := mw.tokens.ValidateSessionToken(token)
		if err != nil {
			message := "Invalid token"
			if err == domain.ErrTokenExpired {
				message = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, domain.AuthFailure(http.StatusUnauthorized, message))
			c.Abort()
			return
		}

		c.Set(CtxSessionID, claims.SessionID)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, string(claims.Role))
		c.Set(CtxAccessToken, claims.AccessToken)
		c.Next()
	}
}

func (mw *AuthMW) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(mw.cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
