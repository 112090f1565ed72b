package reconcile

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	rec := r.Group("/reconciliation")
	rec.Use(middleware.AuthMiddleware())
	{
		rec.GET("/pending", rbac.Authorize(enforcer, "reconciliation", "read"), h.ListPending)
		rec.POST("/approve", rbac.Authorize(enforcer, "reconciliation", "approve"), h.ApproveGroup)
		rec.POST("/shifts/:shiftId/reject", rbac.Authorize(enforcer, "reconciliation", "approve"), h.RejectShift)
		rec.POST("/expenses/:id/approve", rbac.Authorize(enforcer, "reconciliation", "approve"), h.ApproveExpense)
		rec.POST("/expenses/:id/reject", rbac.Authorize(enforcer, "reconciliation", "approve"), h.RejectExpense)
	}
}
