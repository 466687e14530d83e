package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"transit_admin/internal/config"
	"transit_admin/internal/models"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// LocationResponse is the nested coordinate object the console expects.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SubrouteResponse mirrors models.Subroute with the coordinate nested
// under "location" for the wire format.
type SubrouteResponse struct {
	RouteName string           `json:"route_name"`
	Order     int              `json:"order"`
	Location  LocationResponse `json:"location"`
}

// RouteResponse struct for API output
// This mirrors models.Route but has Geometry as a GeoJSON string.
type RouteResponse struct {
	RouteID    uint               `json:"route_id"`
	RouteTitle string             `json:"route_title"`
	Subroutes  []SubrouteResponse `json:"subroutes"`
	Geometry   string             `json:"geometry,omitempty"`
}

// toRouteResponse converts a models.Route to a RouteResponse
func toRouteResponse(route models.Route) RouteResponse {
	jsonGeom, _ := convertWKBToGeoJSON(route.Geometry)
	subroutes := make([]SubrouteResponse, 0, len(route.Subroutes))
	for _, s := range route.Subroutes {
		subroutes = append(subroutes, SubrouteResponse{
			RouteName: s.RouteName,
			Order:     s.Order,
			Location:  LocationResponse{Lat: s.Lat, Lng: s.Lng},
		})
	}
	return RouteResponse{
		RouteID:    route.ID,
		RouteTitle: route.RouteTitle,
		Subroutes:  subroutes,
		Geometry:   jsonGeom,
	}
}

// subrouteInput is one stop in a create/update payload.
type subrouteInput struct {
	RouteName string `json:"route_name" binding:"required"`
	Order     int    `json:"order" binding:"required"`
	Location  struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type routeInput struct {
	RouteTitle string          `json:"route_title" binding:"required"`
	Subroutes  []subrouteInput `json:"subroutes" binding:"required"`
}

// validateSubrouteOrders checks that orders arrive contiguous and 1-based.
// The console always submits them that way; anything else is a bad payload.
func validateSubrouteOrders(subroutes []subrouteInput) error {
	if len(subroutes) == 0 {
		return errors.New("at least one subroute is required")
	}
	for i, s := range subroutes {
		if s.Order != i+1 {
			return errors.New("subroute orders must be contiguous starting at 1")
		}
	}
	return nil
}

// buildRouteGeometry derives a geometry from the ordered stop coordinates
// and returns WKB bytes. Two or more stops give a LINESTRING, a single
// stop a POINT.
func buildRouteGeometry(subroutes []subrouteInput) ([]byte, error) {
	var g geom.T
	switch {
	case len(subroutes) >= 2:
		coords := make([]geom.Coord, 0, len(subroutes))
		for _, s := range subroutes {
			coords = append(coords, geom.Coord{s.Location.Lng, s.Location.Lat})
		}
		line := geom.NewLineString(geom.XY)
		if _, err := line.SetCoords(coords); err != nil {
			return nil, err
		}
		g = line
	case len(subroutes) == 1:
		point := geom.NewPoint(geom.XY)
		if _, err := point.SetCoords(geom.Coord{subroutes[0].Location.Lng, subroutes[0].Location.Lat}); err != nil {
			return nil, err
		}
		g = point
	default:
		return nil, nil
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ListRoutes returns every route with its subroutes as a bare array,
// which is the shape the console's list store consumes.
func ListRoutes(c *gin.Context) {
	var routes []models.Route
	if err := config.DB.Preload("Subroutes", func(db *gorm.DB) *gorm.DB {
		return db.Order("subroutes.order ASC")
	}).Find(&routes).Error; err != nil {
		logrus.WithError(err).Error("ListRoutes: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch routes: " + err.Error()})
		return
	}

	routeResponses := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		routeResponses = append(routeResponses, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, routeResponses)
}

// GetRoute returns a single route with its subroutes.
func GetRoute(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var route models.Route
	if err := config.DB.Preload("Subroutes", func(db *gorm.DB) *gorm.DB {
		return db.Order("subroutes.order ASC")
	}).First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(route))
}

// CreateRoute stores a new route together with its ordered subroutes in
// one transaction.
func CreateRoute(c *gin.Context) {
	var input routeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := validateSubrouteOrders(input.Subroutes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wkbGeom, err := buildRouteGeometry(input.Subroutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	route := models.Route{RouteTitle: input.RouteTitle, Geometry: wkbGeom}
	if err := tx.Create(&route).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateRoute: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create route failed: " + err.Error()})
		return
	}

	for _, s := range input.Subroutes {
		subroute := models.Subroute{
			RouteName: s.RouteName,
			Order:     s.Order,
			Lat:       s.Location.Lat,
			Lng:       s.Location.Lng,
			RouteID:   route.ID,
		}
		if err := tx.Create(&subroute).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create subroute failed: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Subroutes").First(&route, route.ID)
	c.JSON(http.StatusCreated, toRouteResponse(route))
}

// UpdateRoute replaces an existing route's title and full subroute set.
func UpdateRoute(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logrus.WithError(err).Warn("UpdateRoute: invalid route ID in parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var route models.Route
	if err := config.DB.First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			logrus.WithError(err).Error("UpdateRoute: database error fetching route")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input routeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := validateSubrouteOrders(input.Subroutes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wkbGeom, err := buildRouteGeometry(input.Subroutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	route.RouteTitle = input.RouteTitle
	route.Geometry = wkbGeom
	if err := tx.Save(&route).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("UpdateRoute: failed to save route")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}

	// Full replace: drop the old stop set, then write the new one.
	if err := tx.Unscoped().Where("route_id = ?", route.ID).Delete(&models.Subroute{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace subroutes: " + err.Error()})
		return
	}
	for _, s := range input.Subroutes {
		subroute := models.Subroute{
			RouteName: s.RouteName,
			Order:     s.Order,
			Lat:       s.Location.Lat,
			Lng:       s.Location.Lng,
			RouteID:   route.ID,
		}
		if err := tx.Create(&subroute).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace subroutes: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Subroutes").First(&route, route.ID)
	c.JSON(http.StatusOK, toRouteResponse(route))
}

// DeleteRoute removes a route and its subroutes.
func DeleteRoute(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var route models.Route
	if err := config.DB.First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	if err := tx.Where("route_id = ?", route.ID).Delete(&models.Subroute{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subroutes: " + err.Error()})
		return
	}
	if err := tx.Delete(&route).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
