package routes

import (
	"transit_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/api/drivers")
	{
		driver.GET("", controllers.ListDrivers)
		driver.POST("/", controllers.CreateDriver)
		driver.GET("/:id/", controllers.GetDriver)
		driver.PUT("/:id/", controllers.UpdateDriver)
		driver.DELETE("/:id/", controllers.DeleteDriver)
	}
}
