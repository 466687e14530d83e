package console

import "context"

// fakeRouteService is an in-memory stand-in for the admin API.
type fakeRouteService struct {
	routes []RouteRecord

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls int
	created   []RoutePayload
	updated   map[uint]RoutePayload
	deleted   []uint
}

func newFakeRouteService(routes ...RouteRecord) *fakeRouteService {
	return &fakeRouteService{routes: routes, updated: map[uint]RoutePayload{}}
}

func (f *fakeRouteService) ListRoutes(ctx context.Context) ([]RouteRecord, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]RouteRecord, len(f.routes))
	copy(out, f.routes)
	return out, nil
}

func (f *fakeRouteService) CreateRoute(ctx context.Context, payload RoutePayload) (RouteRecord, error) {
	if f.createErr != nil {
		return RouteRecord{}, f.createErr
	}
	record := RouteRecord{
		RouteID:    uint(len(f.routes) + 1),
		RouteTitle: payload.RouteTitle,
		Subroutes:  payload.Subroutes,
	}
	f.created = append(f.created, payload)
	f.routes = append(f.routes, record)
	return record, nil
}

func (f *fakeRouteService) UpdateRoute(ctx context.Context, routeID uint, payload RoutePayload) (RouteRecord, error) {
	if f.updateErr != nil {
		return RouteRecord{}, f.updateErr
	}
	f.updated[routeID] = payload
	return RouteRecord{RouteID: routeID, RouteTitle: payload.RouteTitle, Subroutes: payload.Subroutes}, nil
}

func (f *fakeRouteService) DeleteRoute(ctx context.Context, routeID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, routeID)
	return nil
}

// completeRow builds a row with all three fields filled.
func completeRow(name, lat, lng string) DraftRow {
	return DraftRow{RouteName: name, Lat: lat, Lng: lng}
}

// openEditorWithRows seeds an open editor to an exact row layout.
func openEditorWithRows(rows ...DraftRow) *SequenceEditor {
	e := NewSequenceEditor()
	e.Open()
	e.rows = make([]DraftRow, len(rows))
	copy(e.rows, rows)
	return e
}
