// Package geo implements the planar geometry primitives, the spatial index
// and the water-barrier filter used to build walking transfers between
// stops.
package geo

import "math"

// Point is a (longitude, latitude) pair, matching GeoJSON's coordinate
// order. Most of the rest of this codebase carries (lat, lng) separately;
// Point exists for the geometry and indexing primitives that want to treat
// a location as a single planar value.
type Point struct {
	Lng float64
	Lat float64
}

const epsilon = 1e-16

// orientation returns the sign of the cross product (b-a) x (c-a): positive
// for counter-clockwise, negative for clockwise, ~0 for collinear.
func orientation(a, b, c Point) float64 {
	return (b.Lng-a.Lng)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lng-a.Lng)
}

func sign(v float64) int {
	if v > epsilon {
		return 1
	}
	if v < -epsilon {
		return -1
	}
	return 0
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.Lng, b.Lng) <= p.Lng && p.Lng <= math.Max(a.Lng, b.Lng) &&
		math.Min(a.Lat, b.Lat) <= p.Lat && p.Lat <= math.Max(a.Lat, b.Lat)
}

// SegmentsIntersect returns true iff segments [p1,p2] and [p3,p4] share a
// point. Collinear overlaps count as an intersection.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := sign(orientation(p3, p4, p1))
	d2 := sign(orientation(p3, p4, p2))
	d3 := sign(orientation(p1, p2, p3))
	d4 := sign(orientation(p1, p2, p4))

	if d1 != d2 && d3 != d4 {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// ClosestPoint is the result of projecting a point onto a polyline.
type ClosestPoint struct {
	Point       Point
	Distance    float64 // planar distance, squared-then-rooted, same units as the polyline coordinates
	BeforeIndex int
	AfterIndex  int
}

// ClosestPointOnLineString projects p onto every segment of polyline and
// returns the closest result. The projection is planar; callers accept the
// approximation for lat/lng over small regions.
func ClosestPointOnLineString(p Point, polyline []Point) (ClosestPoint, bool) {
	if len(polyline) < 2 {
		return ClosestPoint{}, false
	}

	best := ClosestPoint{Distance: math.Inf(1)}
	found := false

	for i := 0; i+1 < len(polyline); i++ {
		a := polyline[i]
		b := polyline[i+1]

		dx := b.Lng - a.Lng
		dy := b.Lat - a.Lat
		lenSq := dx*dx + dy*dy

		var t float64
		if lenSq > 0 {
			t = ((p.Lng-a.Lng)*dx + (p.Lat-a.Lat)*dy) / lenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}

		proj := Point{Lng: a.Lng + t*dx, Lat: a.Lat + t*dy}
		ddx := p.Lng - proj.Lng
		ddy := p.Lat - proj.Lat
		distSq := ddx*ddx + ddy*ddy

		if distSq < best.Distance*best.Distance || !found {
			best = ClosestPoint{
				Point:       proj,
				Distance:    math.Sqrt(distSq),
				BeforeIndex: i,
				AfterIndex:  i + 1,
			}
			found = true
		}
	}

	return best, found
}

// HaversineKm returns the great-circle distance in kilometers between two
// (lat, lng) points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dLat := rlat2 - rlat1
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
