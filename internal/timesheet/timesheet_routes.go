package timesheet

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.POST("",
			middleware.RateLimitByUser(2, 10),
			handler.Create,
		)
		timesheets.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			handler.Update,
		)
		timesheets.POST("/batch-delete",
			middleware.RateLimitByUser(0.5, 2),
			handler.BatchDelete,
		)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/timesheet-stats/:period",
			middleware.RateLimitByUser(5, 20),
			handler.MonthlyStats,
		)
	}
}
