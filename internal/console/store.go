package console

import (
	"context"
	"strings"
	"sync"

	logrus "github.com/sirupsen/logrus"
)

// RouteListStore holds the fetched route collection and derives the
// filtered, paged view the table renders. It never mutates records
// locally; every change elsewhere triggers a fresh Load.
type RouteListStore struct {
	svc RouteService

	mu     sync.Mutex
	routes []RouteRecord
	query  string
	gen    uint64 // fetch generation; responses from older fetches are dropped
}

func NewRouteListStore(svc RouteService) *RouteListStore {
	return &RouteListStore{svc: svc}
}

// Load fetches the full collection. On failure the previous collection
// is kept and a FetchError returned. A response that arrives after a
// newer Load was issued is discarded, so racing reloads cannot roll the
// list back to an older snapshot.
func (s *RouteListStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	records, err := s.svc.ListRoutes(ctx)
	if err != nil {
		logrus.WithError(err).Error("route list fetch failed")
		return &FetchError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// a newer fetch owns the collection now
		return nil
	}
	s.routes = records
	return nil
}

// Routes returns a copy of the unfiltered collection.
func (s *RouteListStore) Routes() []RouteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RouteRecord, len(s.routes))
	copy(out, s.routes)
	return out
}

// Search filters the collection by case-insensitive substring over the
// route title or the joined subroute names, remembers the query for
// Page, and returns the matches. Meant to be called on every keystroke;
// there is no debouncing.
func (s *RouteListStore) Search(query string) []RouteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return filterRoutes(s.routes, query)
}

// Page returns the 1-based n-th window over the last search's filtered
// result, plus the page count. Out-of-range page numbers clamp into
// [1, pageCount] rather than failing.
func (s *RouteListStore) Page(n, pageSize int) ([]RouteRecord, int) {
	if pageSize <= 0 {
		return nil, 0
	}

	s.mu.Lock()
	filtered := filterRoutes(s.routes, s.query)
	s.mu.Unlock()

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	if pageCount > 0 && n > pageCount {
		n = pageCount
	}

	start := (n - 1) * pageSize
	if start >= len(filtered) {
		return []RouteRecord{}, pageCount
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], pageCount
}

func filterRoutes(routes []RouteRecord, query string) []RouteRecord {
	matched := make([]RouteRecord, 0, len(routes))
	for _, r := range routes {
		if routeMatches(r, query) {
			matched = append(matched, r)
		}
	}
	return matched
}

func routeMatches(r RouteRecord, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.RouteTitle), q) {
		return true
	}
	names := make([]string, 0, len(r.Subroutes))
	for _, s := range r.Subroutes {
		names = append(names, strings.ToLower(s.RouteName))
	}
	return strings.Contains(strings.Join(names, " "), q)
}
