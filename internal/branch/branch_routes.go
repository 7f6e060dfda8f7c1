package branch

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
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	{
		branches.GET("", middleware.Authorize(accessService, "branch", "read"), handler.GetAll)
		branches.GET("/:id", middleware.Authorize(accessService, "branch", "read"), middleware.RequireSameBranch("id"), handler.GetById)
		branches.POST("", middleware.RoleMiddleware(access.RoleAdmin), handler.Create)
		branches.PUT("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.Update)
		branches.DELETE("/:id", middleware.RoleMiddleware(access.RoleAdmin), handler.Delete)
	}
}
