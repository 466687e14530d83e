package models

import (
	"gorm.io/gorm"
)

// Route is a named service path composed of ordered subroutes.
// The console builds routes as a whole; updates replace the full
// subroute set rather than patching individual rows.
type Route struct {
	gorm.Model

	RouteTitle string `json:"route_title" binding:"required"`

	// Geometry holds a derived LINESTRING over the ordered subroute
	// coordinates, stored as WKB. Recomputed on every create/update.
	Geometry []byte `gorm:"type:bytea"`

	// Associations
	Subroutes []Subroute `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"subroutes,omitempty"`
	Buses     []Bus      `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"buses,omitempty"`
}
