package routes

import (
	"transit_admin/internal/controllers"
	"transit_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/drivers", controllers.ListDrivers)
		admin.GET("/buses", controllers.ListBuses)
	}
}
