package console

import "testing"

func TestOpenSeedsFiveEmptyRows(t *testing.T) {
	e := NewSequenceEditor()
	e.Open()

	if e.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", e.Len())
	}
	if e.ActiveRow() != 0 {
		t.Errorf("ActiveRow() = %d, want 0", e.ActiveRow())
	}
	if got := e.State(0); got != RowEmpty {
		t.Errorf("State(0) = %v, want empty", got)
	}
	for i := 1; i < e.Len(); i++ {
		if got := e.State(i); got != RowLocked {
			t.Errorf("State(%d) = %v, want locked", i, got)
		}
	}
}

func TestOpenWithSeedsPrevalidatedRows(t *testing.T) {
	record := RouteRecord{
		RouteID:    7,
		RouteTitle: "Airport Express",
		Subroutes: []SubrouteRecord{
			{RouteName: "Terminal", Order: 1, Location: GeoPoint{Lat: 12.98, Lng: 80.16}},
			{RouteName: "Gateway", Order: 2, Location: GeoPoint{Lat: 12.99, Lng: 80.2}},
		},
	}

	e := NewSequenceEditor()
	e.OpenWith(record)

	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	for i := 0; i < e.Len(); i++ {
		if got := e.State(i); got != RowComplete {
			t.Errorf("State(%d) = %v, want complete", i, got)
		}
	}
	row, _ := e.Row(0)
	if row.RouteName != "Terminal" || row.Lat != "12.98" || row.Lng != "80.16" {
		t.Errorf("seeded row = %+v", row)
	}
}

func TestOpenWithEmptyRecordFallsBackToFreshDraft(t *testing.T) {
	e := NewSequenceEditor()
	e.OpenWith(RouteRecord{RouteID: 3, RouteTitle: "Empty"})

	if e.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", e.Len())
	}
}

// Row i (i>0) is editable iff row i-1 is complete.
func TestRowUnlocking(t *testing.T) {
	e := NewSequenceEditor()
	e.Open()

	if ok := e.SetField(1, FieldRouteName, "blocked"); ok {
		t.Fatal("row 1 should be locked while row 0 is incomplete")
	}

	e.SetField(0, FieldRouteName, "Central")
	e.SetField(0, FieldLat, "13.0")
	if got := e.State(1); got != RowLocked {
		t.Fatalf("State(1) = %v, want locked while row 0 is partial", got)
	}

	e.SetField(0, FieldLng, "80.5")
	if got := e.State(1); got != RowEmpty {
		t.Fatalf("State(1) = %v, want empty once row 0 completes", got)
	}
	if ok := e.SetField(1, FieldRouteName, "Beach"); !ok {
		t.Fatal("row 1 should accept edits once unlocked")
	}
}

// Editing a locked row is rejected with no state change.
func TestLockedRowEditIsNoOp(t *testing.T) {
	e := openEditorWithRows(
		completeRow("Central", "13.0", "80.5"),
		DraftRow{RouteName: "half"},
		DraftRow{},
	)

	if got := e.State(2); got != RowLocked {
		t.Fatalf("State(2) = %v, want locked behind the partial row", got)
	}
	if ok := e.SetField(2, FieldLat, "1.0"); ok {
		t.Fatal("editing a locked row must be a no-op")
	}
	row, _ := e.Row(2)
	if row != (DraftRow{}) {
		t.Errorf("locked row mutated: %+v", row)
	}
}

// Starting from five empty rows, setting route_name on row 4 yields six
// rows with the sixth empty and editable.
func TestAutoGrowth(t *testing.T) {
	e := openEditorWithRows(
		completeRow("a", "1", "1"),
		completeRow("b", "2", "2"),
		completeRow("c", "3", "3"),
		completeRow("d", "4", "4"),
		DraftRow{},
	)

	e.SetField(4, FieldRouteName, "e")
	if e.Len() != 6 {
		t.Fatalf("Len() = %d, want 6 after editing the last row", e.Len())
	}
	row, _ := e.Row(5)
	if !row.Blank() {
		t.Errorf("appended row should be blank, got %+v", row)
	}

	// An empty write to the last row must not grow the sequence.
	e.SetField(4, FieldLat, "5")
	e.SetField(4, FieldLng, "5")
	e.SetField(5, FieldRouteName, "")
	if e.Len() != 6 {
		t.Errorf("Len() = %d, want 6 after writing an empty value", e.Len())
	}
}

func TestFocusMovesActiveRowPointer(t *testing.T) {
	e := NewSequenceEditor()
	e.Open()

	if ok := e.Focus(2); !ok {
		t.Fatal("Focus(2) should succeed inside the seeded range")
	}
	if e.ActiveRow() != 2 {
		t.Errorf("ActiveRow() = %d, want 2", e.ActiveRow())
	}
	if ok := e.Focus(99); ok {
		t.Error("Focus out of range should be rejected")
	}
	if e.ActiveRow() != 2 {
		t.Errorf("rejected focus moved the pointer to %d", e.ActiveRow())
	}
}

func TestCloseDiscardsDraftAndPointer(t *testing.T) {
	e := NewSequenceEditor()
	e.Open()
	e.SetField(0, FieldRouteName, "Central")
	e.Focus(3)

	e.Close()
	if e.IsOpen() {
		t.Fatal("editor should be closed")
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d after close, want 0", e.Len())
	}
	if e.ActiveRow() != 0 {
		t.Errorf("ActiveRow() = %d after close, want 0", e.ActiveRow())
	}
	if ok := e.SetField(0, FieldRouteName, "stale"); ok {
		t.Error("edits on a closed editor must be rejected")
	}
}
