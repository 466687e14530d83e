package console

import "context"

// GeoPoint is a coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SubrouteRecord is one ordered stop within a persisted route.
type SubrouteRecord struct {
	RouteName string   `json:"route_name"`
	Order     int      `json:"order"`
	Location  GeoPoint `json:"location"`
}

// RouteRecord is a persisted route as served by the admin API. The
// console never mutates these locally; every change round-trips through
// the API and a full reload.
type RouteRecord struct {
	RouteID    uint             `json:"route_id"`
	RouteTitle string           `json:"route_title"`
	Subroutes  []SubrouteRecord `json:"subroutes"`
}

// RoutePayload is the transactional create/update body assembled at
// submission time from the complete draft rows.
type RoutePayload struct {
	RouteTitle string           `json:"route_title"`
	Subroutes  []SubrouteRecord `json:"subroutes"`
}

// RouteService is the persistence collaborator the console talks to.
type RouteService interface {
	ListRoutes(ctx context.Context) ([]RouteRecord, error)
	CreateRoute(ctx context.Context, payload RoutePayload) (RouteRecord, error)
	UpdateRoute(ctx context.Context, routeID uint, payload RoutePayload) (RouteRecord, error)
	DeleteRoute(ctx context.Context, routeID uint) error
}
