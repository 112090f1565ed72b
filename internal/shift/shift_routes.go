package shift

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", rbac.Authorize(enforcer, "shift", "read"), h.GetAll)
		shifts.GET("/open", rbac.Authorize(enforcer, "shift", "read"), h.GetOpen)
		shifts.GET("/:id", rbac.Authorize(enforcer, "shift", "read"), h.GetByID)
		shifts.POST("/start", rbac.Authorize(enforcer, "shift", "create"), h.Start)
		shifts.POST("/:id/end", rbac.Authorize(enforcer, "shift", "close"), h.End)
		shifts.PUT("/:id", rbac.Authorize(enforcer, "shift", "edit"), h.Edit)

		// Bulk-destructive: admin role plus the PIN confirmation gate.
		shifts.POST("/reset", rbac.Authorize(enforcer, "shift", "reset"), middleware.AdminPIN(), h.ResetPeriod)
	}
}
