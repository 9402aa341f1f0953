package index

import "github.com/antigravity/transit-router/internal/gtfs"

// These methods give *IndexedFeed the same shape as raptor.Source and the
// router package's StopLookup, by structural typing: index never imports
// either package, so there is nothing for them to depend back on.

// StopTimesAt returns stop s's stop-times, sorted by TimeOfDaySec.
func (idx *IndexedFeed) StopTimesAt(stopID string) []gtfs.StopTime {
	return idx.StopIdToStopTimes[stopID]
}

// StopTimesOnTrip returns trip t's stop-times, sorted by StopSequence.
func (idx *IndexedFeed) StopTimesOnTrip(tripID string) []gtfs.StopTime {
	return idx.TripIdToStopTimes[tripID]
}

// TripByID looks up a trip by id.
func (idx *IndexedFeed) TripByID(tripID string) (gtfs.Trip, bool) {
	t, ok := idx.TripIdToTrip[tripID]
	return t, ok
}

// RouteByID looks up a route by id.
func (idx *IndexedFeed) RouteByID(routeID string) (gtfs.Route, bool) {
	r, ok := idx.RouteIdToRoute[routeID]
	return r, ok
}

// WalkingTransfersFrom returns stop s's outgoing footpaths.
func (idx *IndexedFeed) WalkingTransfersFrom(stopID string) []gtfs.WalkingTransfer {
	return idx.WalkingTransfers[stopID]
}

// StopName resolves a stop id to its rider-facing name, falling back to the
// id itself if the stop is unknown.
func (idx *IndexedFeed) StopName(stopID string) string {
	if s, ok := idx.StopIdToStop[stopID]; ok {
		return s.StopName
	}
	return stopID
}

// Coordinates resolves a stop id to its (lat, lng).
func (idx *IndexedFeed) Coordinates(stopID string) (lat, lng float64, ok bool) {
	s, found := idx.StopIdToStop[stopID]
	if !found {
		return 0, 0, false
	}
	return s.Lat, s.Lng, true
}
