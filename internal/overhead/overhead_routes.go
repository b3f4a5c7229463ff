package overhead

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	overheads := r.Group("/overhead")
	overheads.Use(middleware.AuthMiddleware())
	{
		overheads.GET("/cost-rates/:period",
			middleware.RateLimitByUser(0.5, 2),
			handler.EmployeeCostRates,
		)
	}
}
