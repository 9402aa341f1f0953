package router

import (
	"fmt"

	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/raptor"
)

// hop is one (stopID, round) pair on the backward walk from a destination
// to the origin.
type hop struct {
	stopID string
	round  int
}

// traceRoute walks τ backward from (destStopID, k) following
// PreviousStopID/PrevK (§4.7 "traceRoute"), then replays the chain forward
// to emit one Step per hop. Transit steps span however many physical stops
// a single boarding covered; walking steps carry a haversine distance.
func traceRoute(lk StopLookup, tau raptor.Tau, k int, destStopID string, depSecs int) *Route {
	var hops []hop
	curID, curK := destStopID, k
	for {
		hops = append(hops, hop{curID, curK})
		info := tau[curK][curID]
		if info.Mode == raptor.ModeOrigin {
			break
		}
		curID, curK = info.PreviousStopID, info.PrevK
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	var steps []Step
	var walkKm float64

	for i := 1; i < len(hops); i++ {
		fromID, toID := hops[i-1].stopID, hops[i].stopID
		info := tau[hops[i].round][toID]

		switch info.Mode {
		case raptor.ModeTransit:
			var fromSeq, toSeq, departTime int
			for _, st := range lk.StopTimesOnTrip(info.TripID) {
				if st.StopID == fromID {
					fromSeq, departTime = st.StopSequence, st.DepartureTime
				}
				if st.StopID == toID {
					toSeq = st.StopSequence
				}
			}
			trip, _ := lk.TripByID(info.TripID)
			steps = append(steps, Step{
				From: fromID, To: toID, Mode: StepTransit,
				DepartTime: departTime, ArriveTime: info.TimeOfDaySec,
				TravelTime: info.TimeOfDaySec - departTime,
				TripID:     info.TripID,
				RouteID:    trip.RouteID,
				NumStops:   toSeq - fromSeq,
				Description: fmt.Sprintf("Ride %s to %s", routeLabel(trip.RouteID, trip.ShortName),
					lk.StopName(toID)),
			})

		case raptor.ModeWalk:
			fromInfo := tau[hops[i-1].round][fromID]
			latFrom, lngFrom, _ := lk.Coordinates(fromID)
			latTo, lngTo, _ := lk.Coordinates(toID)
			dist := geo.HaversineKm(latFrom, lngFrom, latTo, lngTo)
			walkKm += dist
			steps = append(steps, Step{
				From: fromID, To: toID, Mode: StepWalk,
				DepartTime: fromInfo.TimeOfDaySec, ArriveTime: info.TimeOfDaySec,
				TravelTime:  info.TimeOfDaySec - fromInfo.TimeOfDaySec,
				DistanceKm:  dist,
				Description: fmt.Sprintf("Walk to %s", lk.StopName(toID)),
			})
		}
	}

	arrival := tau[k][destStopID].TimeOfDaySec
	return &Route{
		Steps:             steps,
		DepartureSecs:     depSecs,
		ArriveTimeSecs:    arrival,
		TravelTimeSecs:    arrival - depSecs,
		WalkingDistanceKm: walkKm,
	}
}

func routeLabel(routeID, shortName string) string {
	if shortName != "" {
		return shortName
	}
	return routeID
}
