package console

import "strings"

// RowState is the derived state of one draft row. Lock status comes
// from the preceding row; the other three states are a function of the
// row's own fields only.
type RowState int

const (
	RowLocked RowState = iota
	RowEmpty
	RowPartial
	RowComplete
)

func (s RowState) String() string {
	switch s {
	case RowLocked:
		return "locked"
	case RowEmpty:
		return "empty"
	case RowPartial:
		return "partial"
	case RowComplete:
		return "complete"
	}
	return "unknown"
}

// Field names one of the three editable columns of a draft row.
type Field int

const (
	FieldRouteName Field = iota
	FieldLat
	FieldLng
)

// DraftRow is an in-progress, not-yet-persisted subroute entry. Lat and
// Lng stay as typed text until submission assembles the payload.
type DraftRow struct {
	RouteName string
	Lat       string
	Lng       string
}

func (r DraftRow) filledFields() int {
	n := 0
	if strings.TrimSpace(r.RouteName) != "" {
		n++
	}
	if strings.TrimSpace(r.Lat) != "" {
		n++
	}
	if strings.TrimSpace(r.Lng) != "" {
		n++
	}
	return n
}

// Complete reports whether all three fields are filled.
func (r DraftRow) Complete() bool { return r.filledFields() == 3 }

// Blank reports whether every field is empty.
func (r DraftRow) Blank() bool { return r.filledFields() == 0 }

// Partial reports whether some but not all fields are filled. Partial
// rows block submission.
func (r DraftRow) Partial() bool {
	n := r.filledFields()
	return n > 0 && n < 3
}
