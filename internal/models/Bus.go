// internal/models/bus.go
package models

import (
	"gorm.io/gorm"
)

type Bus struct {
	gorm.Model
	BusNo     string `json:"bus_no"`
	DriverID  uint   `json:"driver_id"` // link to the driver record
	RouteID   uint   `json:"route_id"`
	InService bool   `json:"in_service" gorm:"default:true"`
}
