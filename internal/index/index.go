// Package index turns a loaded, date-filtered gtfs.Feed into the derived
// lookup structures the router needs at query time: per-stop and per-trip
// stop-time sequences, a spatial index of stops, and the three-source
// walking-transfer graph (§4.5).
package index

import (
	"sort"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
)

// IndexedFeed is the immutable, query-ready view of one loaded feed.
// Everything here is derived from Feed and never mutated after Build;
// query-time augmentation (§4.7, §5) clones the maps it needs to extend
// rather than writing through to these.
type IndexedFeed struct {
	Feed     *gtfs.Feed
	LoadOpts config.LoadOptions

	StopIdToStopTimes map[string][]gtfs.StopTime // sorted by TimeOfDaySec
	TripIdToStopTimes map[string][]gtfs.StopTime // sorted by StopSequence
	TripIdToTrip      map[string]gtfs.Trip
	StopIdToStop      map[string]gtfs.Stop
	RouteIdToRoute    map[string]gtfs.Route
	ShapeIdToPoints   map[string][]gtfs.ShapePoint // sorted by Sequence
	ParentToChildren  map[string][]string
	ShapeHints        map[string]string // key: shapeHintKey(directionID, routeID)

	WalkingTransfers map[string][]gtfs.WalkingTransfer // sorted, deduped by destination

	StopIndex *geo.SpatialIndex
}

// Build derives all lookup structures from feed and constructs the walking
// transfer graph from its three sources (§4.5): intra-station transfers,
// explicit transfers.txt rows, and proximity footpaths.
func Build(feed *gtfs.Feed, loadOpts config.LoadOptions, waterFilter *geo.WaterFilter) *IndexedFeed {
	idx := &IndexedFeed{
		Feed:              feed,
		LoadOpts:          loadOpts,
		StopIdToStopTimes: make(map[string][]gtfs.StopTime),
		TripIdToStopTimes: make(map[string][]gtfs.StopTime),
		TripIdToTrip:      make(map[string]gtfs.Trip, len(feed.Trips)),
		StopIdToStop:      make(map[string]gtfs.Stop, len(feed.Stops)),
		RouteIdToRoute:    make(map[string]gtfs.Route, len(feed.Routes)),
		ShapeIdToPoints:   make(map[string][]gtfs.ShapePoint),
		ParentToChildren:  make(map[string][]string),
		ShapeHints:        make(map[string]string, len(loadOpts.ShapeHints)),
	}

	for _, h := range loadOpts.ShapeHints {
		idx.ShapeHints[shapeHintKey(h.DirectionID, h.RouteID)] = h.ShapeID
	}

	for _, s := range feed.Stops {
		idx.StopIdToStop[s.StopID] = s
		if s.ParentStation != "" {
			idx.ParentToChildren[s.ParentStation] = append(idx.ParentToChildren[s.ParentStation], s.StopID)
		}
	}
	for _, t := range feed.Trips {
		idx.TripIdToTrip[t.TripID] = t
	}
	for _, r := range feed.Routes {
		idx.RouteIdToRoute[r.RouteID] = r
	}
	for _, sp := range feed.Shapes {
		idx.ShapeIdToPoints[sp.ShapeID] = append(idx.ShapeIdToPoints[sp.ShapeID], sp)
	}
	for shapeID := range idx.ShapeIdToPoints {
		pts := idx.ShapeIdToPoints[shapeID]
		sort.Slice(pts, func(i, j int) bool { return pts[i].Sequence < pts[j].Sequence })
	}

	for _, st := range feed.StopTimes {
		idx.StopIdToStopTimes[st.StopID] = append(idx.StopIdToStopTimes[st.StopID], st)
		idx.TripIdToStopTimes[st.TripID] = append(idx.TripIdToStopTimes[st.TripID], st)
	}
	for stopID := range idx.StopIdToStopTimes {
		sts := idx.StopIdToStopTimes[stopID]
		sort.Slice(sts, func(i, j int) bool { return sts[i].TimeOfDaySec < sts[j].TimeOfDaySec })
	}
	for tripID := range idx.TripIdToStopTimes {
		sts := idx.TripIdToStopTimes[tripID]
		sort.Slice(sts, func(i, j int) bool { return sts[i].StopSequence < sts[j].StopSequence })
	}

	idx.StopIndex = geo.NewSpatialIndex()
	points := make([]geo.IndexedPoint, 0, len(feed.Stops))
	for _, s := range feed.Stops {
		points = append(points, geo.IndexedPoint{ID: s.StopID, Lat: s.Lat, Lng: s.Lng})
	}
	idx.StopIndex.Add(points)

	idx.WalkingTransfers = buildWalkingTransfers(idx, loadOpts, waterFilter)

	return idx
}

func shapeHintKey(directionID int, routeID string) string {
	if directionID == 0 {
		return "0_" + routeID
	}
	return "1_" + routeID
}

// ShapeForTrip resolves the geographic shape to draw for a trip: the trip's
// own shape_id if set, else the operator-supplied hint for its
// (direction_id, route_id) pair (§4.5).
func (idx *IndexedFeed) ShapeForTrip(trip gtfs.Trip) []gtfs.ShapePoint {
	if trip.ShapeID != "" {
		return idx.ShapeIdToPoints[trip.ShapeID]
	}
	hint := idx.ShapeHints[shapeHintKey(trip.DirectionID, trip.RouteID)]
	if hint == "" {
		return nil
	}
	return idx.ShapeIdToPoints[hint]
}

// RoutesServingStop returns the set of route ids that have at least one
// trip stopping at stopID, used by the "same route set" footpath
// redundancy check (§4.5).
func (idx *IndexedFeed) RoutesServingStop(stopID string) map[string]bool {
	routes := make(map[string]bool)
	for _, st := range idx.StopIdToStopTimes[stopID] {
		trip, ok := idx.TripIdToTrip[st.TripID]
		if !ok {
			continue
		}
		routes[trip.RouteID] = true
	}
	return routes
}

// sameRouteSet reports whether every route serving b is already served by
// a — i.e. a footpath from a to b would add no new reachability (§4.5).
func sameRouteSet(a, b map[string]bool) bool {
	if len(b) == 0 {
		return false
	}
	for r := range b {
		if !a[r] {
			return false
		}
	}
	return true
}
