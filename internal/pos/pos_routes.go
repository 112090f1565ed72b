package pos

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	posGroup := r.Group("/pos")
	posGroup.Use(middleware.AuthMiddleware())
	{
		posGroup.GET("/totals", rbac.Authorize(enforcer, "pos", "sync"), h.GetTotals)
		posGroup.POST("/sync", rbac.Authorize(enforcer, "pos", "sync"), h.SyncExpected)
	}
}
