package employee

import (
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/middleware"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", rbac.Authorize(enforcer, "employee", "read"), h.GetAll)
		employees.GET("/options", h.GetOptions)
		employees.GET("/:id", rbac.Authorize(enforcer, "employee", "read"), h.GetByID)
		employees.POST("", rbac.Authorize(enforcer, "employee", "write"), h.Create)
		employees.PUT("/:id", rbac.Authorize(enforcer, "employee", "write"), h.Update)
		employees.DELETE("/:id", rbac.Authorize(enforcer, "employee", "write"), h.Deactivate)
	}
}
