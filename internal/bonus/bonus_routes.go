package bonus

import (
	"sahl/internal/access"
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService) {
	bonus := r.Group("/bonus")
	bonus.Use(middleware.AuthMiddleware())
	{
		bonus.GET("", middleware.Authorize(accessService, "bonus", "read"), handler.MonthlySummary)

		rules := bonus.Group("/rules")
		{
			rules.GET("", middleware.Authorize(accessService, "bonus", "read"), handler.GetRules)
			rules.POST("", middleware.RoleMiddleware(access.RoleAdmin), handler.CreateRule)
			rules.PUT("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.UpdateRule)
			rules.DELETE("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.DeleteRule)
		}
	}
}
