package geo

// segment is a flattened piece of a water-centerline polyline.
type segment struct {
	A, B Point
}

// WaterFilter rejects walking edges that would cross an impassable
// waterway (§4.3). It is built once from a set of polylines and is
// immutable thereafter.
type WaterFilter struct {
	segments []segment
}

// NewWaterFilter flattens a collection of polylines (each a sequence of
// Points) into line segments.
func NewWaterFilter(polylines [][]Point) *WaterFilter {
	wf := &WaterFilter{}
	for _, line := range polylines {
		for i := 0; i+1 < len(line); i++ {
			wf.segments = append(wf.segments, segment{A: line[i], B: line[i+1]})
		}
	}
	return wf
}

// Blocked returns true iff the straight segment (p1,p2) intersects any
// water segment — i.e. a walking edge between them would "jump a river".
func (wf *WaterFilter) Blocked(p1, p2 Point) bool {
	if wf == nil {
		return false
	}
	for _, s := range wf.segments {
		if SegmentsIntersect(p1, p2, s.A, s.B) {
			return true
		}
	}
	return false
}

// BlockedLatLng is the (lat,lng) convenience form used by callers that
// carry coordinates as separate lat/lng fields rather than geo.Point.
func (wf *WaterFilter) BlockedLatLng(lat1, lng1, lat2, lng2 float64) bool {
	return wf.Blocked(Point{Lat: lat1, Lng: lng1}, Point{Lat: lat2, Lng: lng2})
}
