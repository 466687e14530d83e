package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	logrus "github.com/sirupsen/logrus"
)

// SubmissionCoordinator turns a finished draft into one transactional
// API call and keeps the list store in sync afterwards.
type SubmissionCoordinator struct {
	editor *SequenceEditor
	store  *RouteListStore
	svc    RouteService
}

func NewSubmissionCoordinator(editor *SequenceEditor, store *RouteListStore, svc RouteService) *SubmissionCoordinator {
	return &SubmissionCoordinator{editor: editor, store: store, svc: svc}
}

// deriveFilteredOrder keeps only the complete rows, re-tagging each with
// its 1-based position among the kept rows (not its original index).
// Lat/lng text is parsed here, at the last moment before the wire; a
// non-numeric value surfaces as a ValidationError naming the row.
func deriveFilteredOrder(rows []DraftRow) ([]SubrouteRecord, error) {
	var records []SubrouteRecord
	for i, row := range rows {
		if !row.Complete() {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(row.Lat), 64)
		if err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("subroute %d: latitude %q is not a number", i+1, row.Lat)}
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(row.Lng), 64)
		if err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("subroute %d: longitude %q is not a number", i+1, row.Lng)}
		}
		records = append(records, SubrouteRecord{
			RouteName: row.RouteName,
			Order:     len(records) + 1,
			Location:  GeoPoint{Lat: lat, Lng: lng},
		})
	}
	return records, nil
}

// Submit validates the whole draft, assembles the payload, and performs
// the create (nil id) or full replace (id set). On success the draft is
// discarded, the editor closed and the list reloaded; on transport
// failure the draft and the active-row pointer stay exactly as they
// were so nothing the user typed is lost.
func (c *SubmissionCoordinator) Submit(ctx context.Context, routeTitle string, editingRouteID *uint) error {
	rows := c.editor.Rows()

	// Whole-sequence scan, trailing auto-grown empty rows included
	// (they are never partial, so they always pass).
	for _, row := range rows {
		if row.Partial() {
			return &ValidationError{Reason: "please fill in complete details for all subroutes or leave them empty"}
		}
	}

	subroutes, err := deriveFilteredOrder(rows)
	if err != nil {
		return err
	}
	if len(subroutes) == 0 {
		return &ValidationError{Reason: "please fill in complete details for at least one subroute"}
	}

	payload := RoutePayload{RouteTitle: routeTitle, Subroutes: subroutes}
	if editingRouteID == nil {
		_, err = c.svc.CreateRoute(ctx, payload)
	} else {
		_, err = c.svc.UpdateRoute(ctx, *editingRouteID, payload)
	}
	if err != nil {
		logrus.WithError(err).Error("route submission failed")
		return &SubmissionError{Err: err}
	}

	c.editor.Close()
	if err := c.store.Load(ctx); err != nil {
		logrus.WithError(err).Warn("route list refresh after submit failed")
	}
	return nil
}

// Delete removes a persisted route and refreshes the list. A failed
// delete leaves the displayed list stale; there is no retry.
func (c *SubmissionCoordinator) Delete(ctx context.Context, routeID uint) error {
	if err := c.svc.DeleteRoute(ctx, routeID); err != nil {
		logrus.WithError(err).WithField("route_id", routeID).Error("route delete failed")
		return &DeletionError{Err: err}
	}
	if err := c.store.Load(ctx); err != nil {
		logrus.WithError(err).Warn("route list refresh after delete failed")
	}
	return nil
}
