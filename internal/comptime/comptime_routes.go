package comptime

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/overtime/:period",
			middleware.RateLimitByUser(2, 10),
			handler.OvertimeDetails,
		)
	}
}
