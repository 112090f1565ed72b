package export

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	exports := r.Group("/export")
	exports.Use(middleware.AuthMiddleware())
	{
		exports.GET("/workbook", rbac.Authorize(enforcer, "export", "run"), h.DownloadWorkbook)
		exports.POST("/sheet", rbac.Authorize(enforcer, "export", "run"), h.PushToSheet)
	}
}
