package console

import (
	"context"
	"errors"
	"testing"
)

func newCoordinator(svc *fakeRouteService) (*SubmissionCoordinator, *SequenceEditor, *RouteListStore) {
	editor := NewSequenceEditor()
	store := NewRouteListStore(svc)
	return NewSubmissionCoordinator(editor, store, svc), editor, store
}

// Partial rows anywhere in the sequence block submission, even when
// other rows are complete.
func TestSubmitRejectsPartialRows(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, _ := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{
		completeRow("a", "1", "1"),
		{RouteName: "partial"},
		completeRow("c", "3", "3"),
		{Lat: "4"},
		completeRow("e", "5", "5"),
	}

	err := coord.Submit(context.Background(), "Cross Town", nil)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Submit = %v, want *ValidationError", err)
	}
	if len(svc.created) != 0 {
		t.Error("no payload should reach the service")
	}
	if !editor.IsOpen() {
		t.Error("editor must stay open on validation failure")
	}
}

func TestSubmitRejectsEmptyDraft(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, _ := newCoordinator(svc)
	editor.Open() // five blank rows, none complete

	err := coord.Submit(context.Background(), "Nothing", nil)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Submit = %v, want *ValidationError", err)
	}
}

// Complete rows at scattered indices are re-tagged 1..n by their
// position among the kept rows, not their original index.
func TestSubmitReordersFilteredRows(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, _ := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{
		completeRow("a", "1", "1"),
		{},
		completeRow("c", "3", "3"),
		{},
		completeRow("e", "5", "5"),
	}

	if err := coord.Submit(context.Background(), "Cross Town", nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(svc.created) != 1 {
		t.Fatalf("created %d payloads, want 1", len(svc.created))
	}
	payload := svc.created[0]
	if payload.RouteTitle != "Cross Town" {
		t.Errorf("RouteTitle = %q", payload.RouteTitle)
	}
	if len(payload.Subroutes) != 3 {
		t.Fatalf("payload has %d subroutes, want 3", len(payload.Subroutes))
	}
	for i, s := range payload.Subroutes {
		if s.Order != i+1 {
			t.Errorf("subroute %d order = %d, want %d", i, s.Order, i+1)
		}
	}
	if payload.Subroutes[1].RouteName != "c" || payload.Subroutes[1].Location.Lat != 3 {
		t.Errorf("subroute 2 = %+v", payload.Subroutes[1])
	}
}

func TestSubmitRejectsNonNumericCoordinates(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, _ := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{completeRow("a", "not-a-number", "1")}

	err := coord.Submit(context.Background(), "Bad", nil)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Submit = %v, want *ValidationError", err)
	}
	if len(svc.created) != 0 {
		t.Error("no payload should reach the service")
	}
}

func TestSubmitCreateClosesEditorAndReloads(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, store := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{completeRow("a", "1", "2")}

	if err := coord.Submit(context.Background(), "New Route", nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if editor.IsOpen() {
		t.Error("editor should close after a successful submit")
	}
	if svc.listCalls != 1 {
		t.Errorf("listCalls = %d, want a reload after submit", svc.listCalls)
	}
	if got := len(store.Routes()); got != 1 {
		t.Errorf("store has %d routes after reload, want 1", got)
	}
}

func TestSubmitWithIDPerformsFullReplace(t *testing.T) {
	svc := newFakeRouteService()
	coord, editor, _ := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{completeRow("a", "1", "2")}

	id := uint(42)
	if err := coord.Submit(context.Background(), "Renamed", &id); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, ok := svc.updated[42]; !ok {
		t.Fatalf("update for route 42 never reached the service: %v", svc.updated)
	}
	if len(svc.created) != 0 {
		t.Error("an edit must not create a new route")
	}
}

// A submission failing at the network step leaves the draft, the
// active-row pointer and the open editor untouched.
func TestSubmitFailurePreservesDraft(t *testing.T) {
	svc := newFakeRouteService()
	svc.createErr = errors.New("connection reset")
	coord, editor, _ := newCoordinator(svc)
	editor.Open()
	editor.rows = []DraftRow{
		completeRow("a", "1", "1"),
		completeRow("b", "2", "2"),
	}
	editor.Focus(1)

	err := coord.Submit(context.Background(), "Doomed", nil)

	var sErr *SubmissionError
	if !errors.As(err, &sErr) {
		t.Fatalf("Submit = %v, want *SubmissionError", err)
	}
	if !editor.IsOpen() {
		t.Error("editor must stay open")
	}
	if editor.ActiveRow() != 1 {
		t.Errorf("ActiveRow() = %d, want unchanged 1", editor.ActiveRow())
	}
	rows := editor.Rows()
	if len(rows) != 2 || rows[0].RouteName != "a" || rows[1].RouteName != "b" {
		t.Errorf("draft changed: %+v", rows)
	}
	if svc.listCalls != 0 {
		t.Errorf("listCalls = %d, want no reload on failure", svc.listCalls)
	}
}

func TestDeleteReloadsList(t *testing.T) {
	svc := newFakeRouteService(storeRoutes()...)
	coord, _, store := newCoordinator(svc)

	if err := coord.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 1 {
		t.Errorf("deleted = %v, want [1]", svc.deleted)
	}
	if svc.listCalls != 1 {
		t.Errorf("listCalls = %d, want a reload after delete", svc.listCalls)
	}
	if got := len(store.Routes()); got != 2 {
		t.Errorf("store has %d routes after reload, want 2", got)
	}
}

func TestDeleteFailureLeavesListStale(t *testing.T) {
	svc := newFakeRouteService(storeRoutes()...)
	coord, _, store := newCoordinator(svc)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	svc.deleteErr = errors.New("timeout")

	err := coord.Delete(context.Background(), 1)

	var dErr *DeletionError
	if !errors.As(err, &dErr) {
		t.Fatalf("Delete = %v, want *DeletionError", err)
	}
	if got := len(store.Routes()); got != 2 {
		t.Errorf("store has %d routes, want stale 2", got)
	}
}
