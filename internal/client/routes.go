package client

import (
	"context"
	"fmt"
	"net/http"

	"transit_admin/internal/console"
)

// ListRoutes fetches every persisted route.
func (c *Client) ListRoutes(ctx context.Context) ([]console.RouteRecord, error) {
	var records []console.RouteRecord
	if err := c.do(ctx, http.MethodGet, "/api/createroute/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRoute stores a new route with its ordered subroutes.
func (c *Client) CreateRoute(ctx context.Context, payload console.RoutePayload) (console.RouteRecord, error) {
	var record console.RouteRecord
	if err := c.do(ctx, http.MethodPost, "/api/createroute/", payload, &record); err != nil {
		return console.RouteRecord{}, err
	}
	return record, nil
}

// UpdateRoute fully replaces an existing route's title and subroutes.
func (c *Client) UpdateRoute(ctx context.Context, routeID uint, payload console.RoutePayload) (console.RouteRecord, error) {
	var record console.RouteRecord
	path := fmt.Sprintf("/api/createroute/%d/", routeID)
	if err := c.do(ctx, http.MethodPut, path, payload, &record); err != nil {
		return console.RouteRecord{}, err
	}
	return record, nil
}

// DeleteRoute removes a route and its subroutes.
func (c *Client) DeleteRoute(ctx context.Context, routeID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/createroute/%d/", routeID), nil, nil)
}

var _ console.RouteService = (*Client)(nil)
