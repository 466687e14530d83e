package models

import (
	"gorm.io/gorm"
)

// Subroute is one ordered stop along a route.
// Order is 1-based and contiguous within its route.
type Subroute struct {
	gorm.Model

	RouteName string  `json:"route_name" binding:"required"`
	Order     int     `json:"order" binding:"required"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`

	// Foreign key to route
	RouteID uint `json:"route_id"`
}
