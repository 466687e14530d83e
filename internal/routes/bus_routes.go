package routes

import (
	"transit_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

// BusRoutes keeps the original frontend's split between the read path
// (/api/busdetails/) and the mutation path (/api/createbus/).
func BusRoutes(r *gin.Engine) {
	r.GET("/api/busdetails/", controllers.ListBuses)

	bus := r.Group("/api/createbus")
	{
		bus.POST("/", controllers.CreateBus)
		bus.PUT("/:id/", controllers.UpdateBus)
		bus.PATCH("/:id/status", controllers.SetBusServiceStatus)
		bus.DELETE("/:id/", controllers.DeleteBus)
	}
}
