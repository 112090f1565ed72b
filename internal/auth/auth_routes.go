package auth

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("/register", rbac.Authorize(enforcer, "employee", "write"), h.Register)
	}
}
