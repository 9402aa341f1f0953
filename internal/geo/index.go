package geo

import (
	"math"

	"github.com/tidwall/rtree"
)

// IndexedPoint is one entry in a SpatialIndex: an opaque id plus its
// (lat, lng) location.
type IndexedPoint struct {
	ID  string
	Lat float64
	Lng float64
}

// Neighbor is a search/intersect hit: the id found, and its distance in km
// from the query point.
type Neighbor struct {
	ID string
	Km float64
}

// SpatialIndex is a 2D R-tree over (lng, lat) points, backed by
// tidwall/rtree. Range queries use a local flat-earth approximation (§4.2):
// the caller gets back everything inside the bounding rectangle, filtered
// down to the requested radius measured as planar km distance.
type SpatialIndex struct {
	tree   rtree.RTreeG[string]
	points map[string]IndexedPoint
}

// NewSpatialIndex builds an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{points: make(map[string]IndexedPoint)}
}

// Add bulk-inserts points into the index.
func (idx *SpatialIndex) Add(points []IndexedPoint) {
	for _, p := range points {
		idx.points[p.ID] = p
		idx.tree.Insert([2]float64{p.Lng, p.Lat}, [2]float64{p.Lng, p.Lat}, p.ID)
	}
}

// Clone deep-copies the index. Augmented feeds clone the base spatial index
// once per query and add their ephemeral origin/destination points on top,
// leaving the base untouched (§4.7, §5).
func (idx *SpatialIndex) Clone() *SpatialIndex {
	clone := NewSpatialIndex()
	points := make([]IndexedPoint, 0, len(idx.points))
	for _, p := range idx.points {
		points = append(points, p)
	}
	clone.Add(points)
	return clone
}

// kmPerDegree returns the local flat-earth conversion factors centered at
// lat, per §4.2.
func kmPerDegree(lat float64) (kmPerDegLat, kmPerDegLng float64) {
	kmPerDegLat = 10000.0 / 90.0
	kmPerDegLng = kmPerDegLat * math.Cos(lat*math.Pi/180)
	return
}

// Search returns every indexed point within radiusKm of (lat, lng), sorted
// by increasing distance. Distances are planar, using the flat-earth
// degrees-to-km factors at lat, not great-circle distances.
func (idx *SpatialIndex) Search(lat, lng, radiusKm float64) []Neighbor {
	kmPerDegLat, kmPerDegLng := kmPerDegree(lat)
	dLat := radiusKm / kmPerDegLat
	var dLng float64
	if kmPerDegLng > 0 {
		dLng = radiusKm / kmPerDegLng
	} else {
		dLng = 180
	}

	min := [2]float64{lng - dLng, lat - dLat}
	max := [2]float64{lng + dLng, lat + dLat}

	var hits []Neighbor
	idx.tree.Search(min, max, func(_, _ [2]float64, id string) bool {
		p := idx.points[id]
		planarDx := (p.Lng - lng) * kmPerDegLng
		planarDy := (p.Lat - lat) * kmPerDegLat
		distSq := planarDx*planarDx + planarDy*planarDy
		if distSq <= radiusKm*radiusKm {
			hits = append(hits, Neighbor{ID: id, Km: math.Sqrt(distSq)})
		}
		return true
	})

	sortNeighbors(hits)
	return hits
}

// Intersect returns, for every point in idx, all points in other within
// radiusKm.
func (idx *SpatialIndex) Intersect(other *SpatialIndex, radiusKm float64) map[string][]Neighbor {
	result := make(map[string][]Neighbor, len(idx.points))
	for _, p := range idx.points {
		hits := other.Search(p.Lat, p.Lng, radiusKm)
		if len(hits) > 0 {
			result[p.ID] = hits
		}
	}
	return result
}

// Get returns the indexed point for id, if present.
func (idx *SpatialIndex) Get(id string) (IndexedPoint, bool) {
	p, ok := idx.points[id]
	return p, ok
}

func sortNeighbors(hits []Neighbor) {
	// insertion sort: hit lists from a radius search are small (a handful of
	// nearby stops), so this avoids pulling in sort for a few elements.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Km < hits[j-1].Km; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}
