package console

import "strconv"

// seedRowCount is how many empty rows a fresh draft starts with.
const seedRowCount = 5

// SequenceEditor owns the ordered, growable list of draft rows and the
// active-row pointer the map feeds. It is the single writer of both;
// the UI event loop is expected to own it, so it is not safe for
// concurrent use.
type SequenceEditor struct {
	rows   []DraftRow
	active int
	open   bool
}

func NewSequenceEditor() *SequenceEditor {
	return &SequenceEditor{}
}

// Open resets the editor to a fresh five-row draft for creating a route.
func (e *SequenceEditor) Open() {
	e.rows = make([]DraftRow, seedRowCount)
	e.active = 0
	e.open = true
}

// OpenWith seeds the draft from a persisted route for editing. Each
// stored subroute becomes a pre-validated row; an empty record falls
// back to the fresh-draft seed.
func (e *SequenceEditor) OpenWith(record RouteRecord) {
	if len(record.Subroutes) == 0 {
		e.Open()
		return
	}
	rows := make([]DraftRow, 0, len(record.Subroutes))
	for _, s := range record.Subroutes {
		rows = append(rows, DraftRow{
			RouteName: s.RouteName,
			Lat:       formatCoord(s.Location.Lat),
			Lng:       formatCoord(s.Location.Lng),
		})
	}
	e.rows = rows
	e.active = 0
	e.open = true
}

// Close discards the draft and invalidates the active-row pointer, so a
// stale pointer cannot leak into the next open/close cycle.
func (e *SequenceEditor) Close() {
	e.rows = nil
	e.active = 0
	e.open = false
}

func (e *SequenceEditor) IsOpen() bool { return e.open }

func (e *SequenceEditor) Len() int { return len(e.rows) }

// Row returns a copy of row i.
func (e *SequenceEditor) Row(i int) (DraftRow, bool) {
	if i < 0 || i >= len(e.rows) {
		return DraftRow{}, false
	}
	return e.rows[i], true
}

// Rows returns a copy of the whole sequence.
func (e *SequenceEditor) Rows() []DraftRow {
	out := make([]DraftRow, len(e.rows))
	copy(out, e.rows)
	return out
}

// State derives the four-state value for row i. Row 0 is never locked;
// any later row is locked until the row above it is complete.
func (e *SequenceEditor) State(i int) RowState {
	if i < 0 || i >= len(e.rows) {
		return RowLocked
	}
	if i > 0 && !e.rows[i-1].Complete() {
		return RowLocked
	}
	switch r := e.rows[i]; {
	case r.Complete():
		return RowComplete
	case r.Blank():
		return RowEmpty
	default:
		return RowPartial
	}
}

// SetField writes one field of one row. It reports false without
// touching anything when the editor is closed, the index is out of
// range, or the row is locked. Editing the last row with a non-empty
// value appends a fresh empty row, so there is always a next slot.
func (e *SequenceEditor) SetField(i int, field Field, value string) bool {
	if !e.open || i < 0 || i >= len(e.rows) {
		return false
	}
	if e.State(i) == RowLocked {
		return false
	}
	switch field {
	case FieldRouteName:
		e.rows[i].RouteName = value
	case FieldLat:
		e.rows[i].Lat = value
	case FieldLng:
		e.rows[i].Lng = value
	default:
		return false
	}
	if i == len(e.rows)-1 && value != "" {
		e.rows = append(e.rows, DraftRow{})
	}
	return true
}

// Focus marks row i as the target for map point updates.
func (e *SequenceEditor) Focus(i int) bool {
	if !e.open || i < 0 || i >= len(e.rows) {
		return false
	}
	e.active = i
	return true
}

// ActiveRow returns the index of the row the map currently feeds.
func (e *SequenceEditor) ActiveRow() int { return e.active }

// formatCoord renders a coordinate the way the row inputs hold it:
// shortest text that round-trips the value.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
