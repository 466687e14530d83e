package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"transit_admin/internal/config"
	"transit_admin/internal/models"
)

// busInput is the console's add/edit bus form payload.
type busInput struct {
	BusNo    string `json:"busno" binding:"required"`
	DriverID uint   `json:"driver"`
	RouteID  uint   `json:"route"`
}

// serviceStatusPayload defines the expected JSON for updating bus service status.
type serviceStatusPayload struct {
	InService *bool `json:"in_service" binding:"required"`
}

// BusResponse is the wire shape of a bus record.
type BusResponse struct {
	BusID     uint   `json:"bus_id"`
	BusNo     string `json:"bus_no"`
	DriverID  uint   `json:"driver_id"`
	RouteID   uint   `json:"route_id"`
	InService bool   `json:"in_service"`
}

func toBusResponse(b models.Bus) BusResponse {
	return BusResponse{
		BusID:     b.ID,
		BusNo:     b.BusNo,
		DriverID:  b.DriverID,
		RouteID:   b.RouteID,
		InService: b.InService,
	}
}

// ListBuses returns all buses as a bare array for the console table.
func ListBuses(c *gin.Context) {
	var buses []models.Bus
	if err := config.DB.Find(&buses).Error; err != nil {
		logrus.WithError(err).Error("ListBuses: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing buses: " + err.Error()})
		return
	}

	responses := make([]BusResponse, 0, len(buses))
	for _, b := range buses {
		responses = append(responses, toBusResponse(b))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateBus registers a new bus, optionally assigned to a driver and route.
func CreateBus(c *gin.Context) {
	var input busInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if input.DriverID != 0 {
		var driver models.Driver
		if err := config.DB.First(&driver, input.DriverID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assigned driver does not exist"})
			return
		}
	}
	if input.RouteID != 0 {
		var route models.Route
		if err := config.DB.First(&route, input.RouteID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assigned route does not exist"})
			return
		}
	}

	bus := models.Bus{
		BusNo:     input.BusNo,
		DriverID:  input.DriverID,
		RouteID:   input.RouteID,
		InService: true,
	}
	if err := config.DB.Create(&bus).Error; err != nil {
		logrus.WithError(err).Error("CreateBus: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create bus failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBusResponse(bus))
}

// UpdateBus replaces a bus's number and assignments.
func UpdateBus(c *gin.Context) {
	bID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID format."})
		return
	}

	var bus models.Bus
	if err := config.DB.First(&bus, uint(bID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var input busInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	bus.BusNo = input.BusNo
	bus.DriverID = input.DriverID
	bus.RouteID = input.RouteID
	if err := config.DB.Save(&bus).Error; err != nil {
		logrus.WithError(err).Error("UpdateBus: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, toBusResponse(bus))
}

// SetBusServiceStatus flips a bus's in_service flag.
func SetBusServiceStatus(c *gin.Context) {
	bID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID format."})
		return
	}

	var bus models.Bus
	if err := config.DB.First(&bus, uint(bID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var payload serviceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	bus.InService = *payload.InService
	if err := config.DB.Save(&bus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service status updated successfully.",
		"bus":     toBusResponse(bus),
	})
}

// DeleteBus removes a bus record.
func DeleteBus(c *gin.Context) {
	bID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID format."})
		return
	}

	var bus models.Bus
	if err := config.DB.First(&bus, uint(bID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	if err := config.DB.Delete(&bus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bus: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
