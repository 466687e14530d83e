package routes

import (
	"transit_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RouteRoutes mounts the route-builder API. The console submits whole
// routes here; paths keep the original frontend's trailing slashes.
func RouteRoutes(r *gin.Engine) {
	route := r.Group("/api/createroute")
	{
		route.GET("/", controllers.ListRoutes)
		route.POST("/", controllers.CreateRoute)
		route.GET("/:id/", controllers.GetRoute)
		route.PUT("/:id/", controllers.UpdateRoute)
		route.DELETE("/:id/", controllers.DeleteRoute)
	}
}
