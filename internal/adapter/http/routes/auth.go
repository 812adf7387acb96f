package routes

import (
	"furniture_warehouse/internal/adapter/http/handlers"
	"furniture_warehouse/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathAudit = "/audit"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, verifier middleware.TokenVerifier) {
	auth := rg.Group(PathAuth)
	{
		// Public.
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	private := auth.Group("", middleware.RequireAuth(verifier))
	{
		private.GET("/profile", h.Profile)
		private.PUT("/profile", h.UpdateProfile)
		private.POST("/change-password", h.ChangePassword)
	}

	admin := private.Group("/users", middleware.RequireAdmin())
	{
		admin.GET("", h.ListUsers)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

func addAuditRoutes(rg *gin.RouterGroup, h *handlers.AuditHandler) {
	rg.GET(PathAudit, middleware.RequireAdmin(), h.List)
}
