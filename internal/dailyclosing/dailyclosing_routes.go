package dailyclosing

import (
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService) {
	closings := r.Group("/daily-closings")
	closings.Use(middleware.AuthMiddleware())
	{
		closings.POST("", middleware.Authorize(accessService, "dailyclosing", "create"), handler.Create)
		closings.GET("", middleware.Authorize(accessService, "dailyclosing", "read"), handler.GetAll)
		closings.GET("/:id", middleware.Authorize(accessService, "dailyclosing", "read"), handler.GetByID)
	}
}
