package productrequest

import (
	"sahl/internal/access"
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService) {
	productRequests := r.Group("/product-requests")
	productRequests.Use(middleware.AuthMiddleware())
	{
		productRequests.POST("", middleware.Authorize(accessService, "productrequest", "create"), handler.Create)
		productRequests.GET("", middleware.Authorize(accessService, "productrequest", "read"), handler.GetAll)
		productRequests.GET("/:id", middleware.Authorize(accessService, "productrequest", "read"), handler.GetByID)

		productRequests.POST("/:id/review", middleware.RoleMiddleware(access.RoleAdmin), handler.Review)
		productRequests.POST("/:id/approve", middleware.RoleMiddleware(access.RoleAdmin), handler.Approve)
		productRequests.POST("/:id/reject", middleware.RoleMiddleware(access.RoleAdmin), handler.Reject)
	}
}
