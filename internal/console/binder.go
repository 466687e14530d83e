package console

// MapWidget is the slice of the map library the binder drives: marker
// placement and view centering. Click, drag and geocode events flow the
// other way, into the binder's handlers.
type MapWidget interface {
	SetMarker(lat, lng float64)
	Center(lat, lng float64)
}

// MapPointBinder funnels the widget's three point sources into lat/lng
// updates against whichever row the editor currently marks active. The
// binder has no row scoping of its own; the coupling runs entirely
// through the editor's active-row pointer.
type MapPointBinder struct {
	editor *SequenceEditor
	widget MapWidget
}

func NewMapPointBinder(editor *SequenceEditor, widget MapWidget) *MapPointBinder {
	return &MapPointBinder{editor: editor, widget: widget}
}

// Click handles a plain map click.
func (b *MapPointBinder) Click(lat, lng float64) {
	b.pointSelected(lat, lng)
}

// MarkerDragEnd handles the marker settling after a drag.
func (b *MapPointBinder) MarkerDragEnd(lat, lng float64) {
	b.pointSelected(lat, lng)
}

// SearchResult handles a confirmed geocoder selection.
func (b *MapPointBinder) SearchResult(lat, lng float64) {
	b.pointSelected(lat, lng)
}

func (b *MapPointBinder) pointSelected(lat, lng float64) {
	b.widget.SetMarker(lat, lng)
	b.widget.Center(lat, lng)

	row := b.editor.ActiveRow()
	b.editor.SetField(row, FieldLat, formatCoord(lat))
	b.editor.SetField(row, FieldLng, formatCoord(lng))
}
