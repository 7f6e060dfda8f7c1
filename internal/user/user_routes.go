package user

import (
	"sahl/internal/access"
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	accessService access.Service,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.Authorize(accessService, "user", "read"), handler.GetAll)
		users.GET("/:id", middleware.Authorize(accessService, "user", "read"), handler.GetById)
		users.POST("", middleware.RoleMiddleware(access.RoleAdmin), handler.Create)
		users.PUT("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.Update)
		users.DELETE("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.Delete)
	}
}
