package console

import "testing"

func TestDraftRowCompleteness(t *testing.T) {
	cases := []struct {
		name     string
		row      DraftRow
		complete bool
		partial  bool
		blank    bool
	}{
		{"all empty", DraftRow{}, false, false, true},
		{"whitespace only counts as empty", DraftRow{RouteName: "  ", Lat: "\t", Lng: " "}, false, false, true},
		{"name only", DraftRow{RouteName: "Central"}, false, true, false},
		{"coords only", DraftRow{Lat: "13.0", Lng: "80.5"}, false, true, false},
		{"all filled", completeRow("Central", "13.0", "80.5"), true, false, false},
		{"non-numeric text still counts as filled", completeRow("Central", "abc", "def"), true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.row.Complete(); got != tc.complete {
				t.Errorf("Complete() = %v, want %v", got, tc.complete)
			}
			if got := tc.row.Partial(); got != tc.partial {
				t.Errorf("Partial() = %v, want %v", got, tc.partial)
			}
			if got := tc.row.Blank(); got != tc.blank {
				t.Errorf("Blank() = %v, want %v", got, tc.blank)
			}
		})
	}
}

// Validity is a function of the row's own three fields only, never of
// its position or neighbors.
func TestDraftRowValidityPurity(t *testing.T) {
	row := completeRow("Central", "13.0", "80.5")

	alone := openEditorWithRows(row)
	surrounded := openEditorWithRows(DraftRow{RouteName: "partial"}, row, DraftRow{})

	if !alone.rows[0].Complete() {
		t.Fatal("row should be complete standing alone")
	}
	if !surrounded.rows[1].Complete() {
		t.Fatal("row completeness must not depend on neighbor state")
	}
}
