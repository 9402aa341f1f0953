// Package raptor implements the round-based reachability computation
// (§4.6): alternating vehicle-boarding and walking-transfer rounds over a
// Source, producing a Tau frontier sequence from which the best round per
// destination is picked by cost plus a transfer penalty.
package raptor

import (
	"github.com/antigravity/transit-router/internal/gtfs"
)

// Mode is the closed variant a ReachInfo was reached by (§9 design note:
// modeled as a tagged union rather than an open set of optional fields).
type Mode int

const (
	ModeOrigin Mode = iota
	ModeTransit
	ModeWalk
)

func (m Mode) String() string {
	switch m {
	case ModeOrigin:
		return "origin"
	case ModeTransit:
		return "transit"
	case ModeWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// ReachInfo is the best-known way to reach a stop after some number of
// rounds (§3). TripID is only meaningful when Mode == ModeTransit.
// isUnexplored is deliberately not a field here (§9): frontier membership
// is tracked by the caller's worklist, not by a mutable flag on the record.
type ReachInfo struct {
	TimeOfDaySec   int
	Cost           float64
	Mode           Mode
	PreviousStopID string
	PrevK          int
	TripID         string
}

// ReachMap is the frontier after exactly k rounds: stopId -> best ReachInfo.
type ReachMap map[string]ReachInfo

// Tau is the full round-by-round history of a query, τ[0..n].
type Tau []ReachMap

// Source is everything the round functions need to read from an indexed
// feed, real or query-augmented (§4.7's layered view implements this same
// interface so the algorithm never knows the difference).
type Source interface {
	StopTimesAt(stopID string) []gtfs.StopTime
	StopTimesOnTrip(tripID string) []gtfs.StopTime
	TripByID(tripID string) (gtfs.Trip, bool)
	RouteByID(routeID string) (gtfs.Route, bool)
	WalkingTransfersFrom(stopID string) []gtfs.WalkingTransfer
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// addConnection is the relaxation invariant (§4.6): update reachMap[dest]
// only if absent or strictly improved, and mark it as newly reached.
func addConnection(reachMap ReachMap, destStopID string, candidate ReachInfo, frontier map[string]bool) {
	existing, ok := reachMap[destStopID]
	if !ok || candidate.Cost < existing.Cost {
		reachMap[destStopID] = candidate
		frontier[destStopID] = true
	}
}
