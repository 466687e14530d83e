package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"transit_admin/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery middleware
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	r.Use(middleware.RequestID())

	AuthRoutes(r)
	RouteRoutes(r)
	DriverRoutes(r)
	BusRoutes(r)
	AdminRoutes(r)

	return r
}
