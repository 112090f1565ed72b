package register

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	registers := r.Group("/register")
	registers.Use(middleware.AuthMiddleware())
	{
		registers.GET("", rbac.Authorize(enforcer, "register", "read"), h.GetByDateAndShift)
		registers.GET("/range", rbac.Authorize(enforcer, "register", "read"), h.GetRange)
		registers.PUT("/opening-balance", rbac.Authorize(enforcer, "register", "write"), h.SetOpeningBalance)

		registers.POST("/expenses", rbac.Authorize(enforcer, "register", "write"), h.AddExpense)
		registers.DELETE("/expenses/:id", rbac.Authorize(enforcer, "register", "write"), h.RemoveExpense)
		registers.PUT("/expenses/:id/category", rbac.Authorize(enforcer, "register", "write"), h.ChangeExpenseCategory)
		registers.POST("/expenses/:id/approve", rbac.Authorize(enforcer, "register", "write"), h.ApproveExpense)
	}
}
