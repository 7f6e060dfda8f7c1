package request

import (
	"sahl/internal/access"
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", middleware.Authorize(accessService, "request", "create"), handler.Create)
		requests.GET("", middleware.Authorize(accessService, "request", "read"), handler.GetAll)
		requests.GET("/:id", middleware.Authorize(accessService, "request", "read"), handler.GetByID)

		requests.POST("/:id/review", middleware.RoleMiddleware(access.RoleAdmin), handler.Review)
		requests.POST("/:id/approve", middleware.RoleMiddleware(access.RoleAdmin), handler.Approve)
		requests.POST("/:id/reject", middleware.RoleMiddleware(access.RoleAdmin), handler.Reject)
	}
}
