package investor

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	investors := r.Group("/investors/contributions")
	investors.Use(middleware.AuthMiddleware())
	{
		investors.GET("", rbac.Authorize(enforcer, "investor", "read"), h.GetAll)
		investors.GET("/:id", rbac.Authorize(enforcer, "investor", "read"), h.GetByID)
		investors.POST("", rbac.Authorize(enforcer, "investor", "write"), h.Create)
		investors.PUT("/:id", rbac.Authorize(enforcer, "investor", "write"), h.Update)
		investors.DELETE("/:id", rbac.Authorize(enforcer, "investor", "write"), h.Delete)
	}
}
