package tabletimer

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	timers := r.Group("/timers")
	timers.Use(middleware.AuthMiddleware())
	{
		timers.GET("", rbac.Authorize(enforcer, "timer", "read"), h.GetAll)
		timers.GET("/:id", rbac.Authorize(enforcer, "timer", "read"), h.GetByID)
		timers.POST("", rbac.Authorize(enforcer, "timer", "create"), h.Start)
		timers.POST("/:id/stop", rbac.Authorize(enforcer, "timer", "close"), h.Stop)
	}
}
