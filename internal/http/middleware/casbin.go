package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// CasbinMW wraps the casbin enforcer for route authorization.
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates a casbin middleware wrapper.
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce authorizes the request against the policy. Roles are prefixed
// with "role_" to match the policy subjects, so a DONOR session enforces
// as role_DONOR.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxUserRole)
		if !ok {
			c.JSON(http.StatusUnauthorized, domain.AuthFailure(http.StatusUnauthorized, "Role not found in session"))
			c.Abort()
			return
		}

		casbinRole := "role_" + role.(string)
		allowed, err := mw.enforcer.Enforce(casbinRole, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, domain.RemoteFailure(http.StatusInternalServerError, "Authorization check failed", nil))
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, domain.AuthFailure(http.StatusForbidden, "You don't have permission to access this resource"))
			c.Abort()
			return
		}
		c.Next()
	}
}
