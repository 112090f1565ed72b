package payroll

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.GET("/summary", rbac.Authorize(enforcer, "payroll", "read"), h.GetSummary)

		// Payment stamping retries must not double-apply.
		payroll.POST("/pay", rbac.Authorize(enforcer, "payroll", "pay"), middleware.Idempotency(rdb), h.MarkPaid)
	}
}
