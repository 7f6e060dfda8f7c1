package expense

import (
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.POST("", middleware.Authorize(accessService, "expense", "create"), handler.Create)
		expenses.GET("", middleware.Authorize(accessService, "expense", "read"), handler.GetAll)
		expenses.GET("/:id", middleware.Authorize(accessService, "expense", "read"), handler.GetByID)
		expenses.PUT("/:id", middleware.Authorize(accessService, "expense", "update"), handler.Update)
		expenses.DELETE("/:id", middleware.Authorize(accessService, "expense", "delete"), handler.Delete)
	}
}
