package raptor

import (
	"github.com/antigravity/transit-router/internal/config"
)

// roundResult bundles a round's output reachmap with the set of stops it
// newly marked, since both are needed to drive the next round.
type roundResult struct {
	reach    ReachMap
	frontier map[string]bool
}

// runBoardingRound is takeVehicles (§4.6): for every stop in frontier,
// board every stop-time departing within the waiting window and relax
// every downstream stop-time on that trip.
func runBoardingRound(src Source, tau Tau, fromRound int, frontier map[string]bool, opts config.QueryOptions, lastValid float64) roundResult {
	next := make(ReachMap)
	nextFrontier := make(map[string]bool)

	for stopID := range frontier {
		info := tau[fromRound][stopID]
		t := info.TimeOfDaySec

		for _, boarded := range src.StopTimesAt(stopID) {
			if boarded.TimeOfDaySec < t || boarded.TimeOfDaySec > t+opts.MaxWaitingTimeSecs {
				continue
			}
			trip, ok := src.TripByID(boarded.TripID)
			if !ok || containsString(opts.ExcludeRoutes, trip.RouteID) {
				continue
			}
			route, _ := src.RouteByID(trip.RouteID)
			multiplier := opts.RailMultiplier
			if route.RouteType.IsBus() {
				multiplier = opts.BusMultiplier
			}
			if multiplier < 0 {
				continue // negative multiplier disables this mode entirely
			}

			tripStopTimes := src.StopTimesOnTrip(boarded.TripID)
			boardIdx := -1
			for i, ts := range tripStopTimes {
				if ts.StopID == stopID && ts.StopSequence == boarded.StopSequence {
					boardIdx = i
					break
				}
			}
			if boardIdx < 0 {
				continue
			}

			wait := float64(boarded.TimeOfDaySec - t)
			for _, down := range tripStopTimes[boardIdx+1:] {
				if containsString(opts.ExcludeStops, down.StopID) {
					continue
				}
				if float64(down.TimeOfDaySec) > lastValid {
					break // stop-times within a trip are monotonic: nothing further qualifies
				}
				travel := float64(down.TimeOfDaySec - boarded.TimeOfDaySec)
				segmentCost := wait + multiplier*travel
				candidate := ReachInfo{
					// arrival is the downstream stop-time's departure-derived TimeOfDaySec, not its ArrivalTime
					TimeOfDaySec:   down.TimeOfDaySec,
					Cost:           info.Cost + segmentCost,
					Mode:           ModeTransit,
					PreviousStopID: stopID,
					PrevK:          fromRound,
					TripID:         boarded.TripID,
				}
				addConnection(next, down.StopID, candidate, nextFrontier)
			}
		}
	}

	return roundResult{reach: next, frontier: nextFrontier}
}

// runWalkingRound is makeTransfers (§4.6). When seedForward is true, the
// output reachmap is first pre-seeded with frontier's entries from
// fromRound, so a transit-only arrival survives into the next boarding
// round even when no walk out of it improves anything — this is the
// "copy marked entries forward" rule. The initial walking round from a
// non-stop origin passes seedForward=false.
func runWalkingRound(src Source, tau Tau, fromRound int, frontier map[string]bool, opts config.QueryOptions, lastValid float64, seedForward bool) roundResult {
	next := make(ReachMap)
	nextFrontier := make(map[string]bool)

	if seedForward {
		for stopID := range frontier {
			next[stopID] = tau[fromRound][stopID]
			nextFrontier[stopID] = true
		}
	}

	for stopID := range frontier {
		info := tau[fromRound][stopID]
		if info.Mode == ModeWalk {
			continue // forbid walk -> walk
		}
		for _, wt := range src.WalkingTransfersFrom(stopID) {
			if wt.Km > opts.MaxWalkingDistanceKm {
				continue
			}
			if containsString(opts.ExcludeStops, wt.ToStopID) {
				continue
			}
			secs := wt.Secs
			if !wt.Explicit {
				secs = int(wt.Km * 3600 / opts.WalkingSpeedKph)
			}
			arrival := info.TimeOfDaySec + secs
			if float64(arrival) > lastValid {
				continue
			}
			candidate := ReachInfo{
				TimeOfDaySec:   arrival,
				Cost:           info.Cost + float64(secs),
				Mode:           ModeWalk,
				PreviousStopID: stopID,
				PrevK:          fromRound,
			}
			addConnection(next, wt.ToStopID, candidate, nextFrontier)
		}
	}

	return roundResult{reach: next, frontier: nextFrontier}
}
