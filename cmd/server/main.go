package main

import (
	"log"
	"net/http"

	"transit_admin/internal/config"
	"transit_admin/internal/logger"
	"transit_admin/internal/middleware"
	"transit_admin/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Println("Admin console API running at " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
