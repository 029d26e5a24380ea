package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/stores"
)

// WithHydration blocks until the session's store set has rehydrated. The
// gate opens on rehydration completion or on its fallback timer, whichever
// fires first, so the wait is bounded; only request cancellation fails it.
func WithHydration(manager *stores.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(CtxSessionID)
		if sessionID == "" {
			c.Next()
			return
		}

		set := manager.ForSession(sessionID)
		if err := set.Gate().Wait(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, domain.NetworkFailure(err.Error()))
			c.Abort()
			return
		}
		c.Next()
	}
}
