package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/internal/http/handlers"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Auth     *handlers.AuthHandlers
	Profile  *handlers.ProfileHandlers
	Donor    *handlers.DonorHandlers
	Hospital *handlers.HospitalHandlers
	Requests *handlers.RequestHandlers

	Session   gin.HandlerFunc
	Authorize gin.HandlerFunc
	Hydration gin.HandlerFunc
	Logger    gin.HandlerFunc
}

// BuildRouter wires the HTTP surface. Public routes carry no session;
// everything else runs session validation, casbin authorization and the
// hydration gate in that order.
func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), d.Logger)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/forgot-password", d.Auth.ForgotPassword)
	auth.POST("/reset-password", d.Auth.ResetPassword)
	auth.GET("/google", d.Auth.GoogleRedirect)
	auth.GET("/google/callback", d.Auth.GoogleCallback)

	private := r.Group("/").Use(d.Session, d.Authorize, d.Hydration)
	private.POST("/auth/logout", d.Auth.Logout)
	private.GET("/auth/session", d.Auth.Session)

	private.GET("/profile/me", d.Profile.Me)
	private.DELETE("/profile/delete", d.Profile.Delete)

	private.POST("/donor/completeProfile", d.Donor.CompleteProfile)
	private.POST("/donor/editProfile", d.Donor.EditProfile)
	private.GET("/donor/profile", d.Donor.Profile)

	private.POST("/hospital/completeProfile", d.Hospital.CompleteProfile)
	private.GET("/hospital/profile", d.Hospital.Profile)

	private.POST("/hospital/requests", d.Requests.Create)
	private.POST("/hospital/requests/:id", d.Requests.Update)
	private.PATCH("/hospital/requests/:id/cancel", d.Requests.Cancel)
	private.PATCH("/hospital/requests/:id/status/:status", d.Requests.ChangeStatus)
	private.PATCH("/hospital/requests/:id/urgency/:urgency", d.Requests.ChangeUrgency)

	return r
}
