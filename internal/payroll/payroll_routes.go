package payroll

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idem gin.HandlerFunc) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("/:period/preview",
			middleware.RateLimitByUser(0.5, 2),
			handler.Preview,
		)
		// Finalisasi mengunci periode; hanya admin yang boleh.
		payrolls.POST("/:period/finalize",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware("admin"),
			idem,
			handler.Finalize,
		)
		payrolls.GET("/:period/snapshots",
			middleware.RateLimitByUser(2, 10),
			handler.ListSnapshots,
		)
	}

	snapshots := r.Group("/payroll-snapshots")
	snapshots.Use(middleware.AuthMiddleware())
	{
		snapshots.GET("/:snapshotId",
			middleware.RateLimitByUser(2, 10),
			handler.GetSnapshot,
		)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/payroll/:period",
			middleware.RateLimitByUser(2, 10),
			handler.EmployeePayroll,
		)
	}
}
