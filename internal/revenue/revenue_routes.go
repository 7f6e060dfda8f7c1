package revenue

import (
	"sahl/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessService middleware.AccessService, redisClient *redis.Client) {
	revenues := r.Group("/revenues")
	revenues.Use(middleware.AuthMiddleware())
	{
		revenues.POST("",
			middleware.Authorize(accessService, "revenue", "create"),
			middleware.Idempotency(redisClient),
			handler.Create,
		)
		revenues.GET("", middleware.Authorize(accessService, "revenue", "read"), handler.GetAll)
		revenues.GET("/:id", middleware.Authorize(accessService, "revenue", "read"), handler.GetByID)
		revenues.DELETE("/:id", middleware.Authorize(accessService, "revenue", "delete"), handler.Delete)
	}
}
