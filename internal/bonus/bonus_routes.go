package bonus

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	bonuses := r.Group("/bonuses")
	bonuses.Use(middleware.AuthMiddleware())
	{
		bonuses.GET("", rbac.Authorize(enforcer, "bonus", "read"), h.ListInRange)
		bonuses.GET("/shift/:shiftId", rbac.Authorize(enforcer, "bonus", "read"), h.ListByShift)
		bonuses.POST("", rbac.Authorize(enforcer, "bonus", "create"), h.Create)
		bonuses.DELETE("/:id", rbac.Authorize(enforcer, "bonus", "delete"), h.Delete)
	}
}
