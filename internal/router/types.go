// Package router implements the online router (§4.7): the query entry
// points (stopToStop, oneToOne, oneToMany, oneToManyPreset, manyToMany),
// the query-time augmentation that splices ephemeral origin/destination
// stops into the transit graph, and the backward itinerary reconstruction
// that turns a τ frontier into an ordered list of Steps.
package router

import (
	"math"

	"github.com/antigravity/transit-router/internal/raptor"
)

// StepMode is the closed variant a Step was taken by (§9 design note:
// TransportMode as a tagged union). TripID/RouteID/NumStops only apply to
// StepTransit; DistanceKm only applies to StepWalk.
type StepMode string

const (
	StepTransit StepMode = "transit"
	StepWalk    StepMode = "walk"
)

// Step is one leg of a reconstructed itinerary (§4.7 traceRoute).
type Step struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Mode        StepMode `json:"mode"`
	DepartTime  int      `json:"departTime"`
	ArriveTime  int      `json:"arriveTime"`
	TravelTime  int      `json:"travelTime"`
	TripID      string   `json:"tripId,omitempty"`
	RouteID     string   `json:"routeId,omitempty"`
	NumStops    int      `json:"numStops,omitempty"`
	DistanceKm  float64  `json:"distanceKm,omitempty"`
	Description string   `json:"description"`
}

// Route is a complete, reconstructed itinerary from an origin to a
// destination (§4.7).
type Route struct {
	Steps             []Step  `json:"steps"`
	DepartureSecs     int     `json:"departureSecs"`
	ArriveTimeSecs    int     `json:"arriveTimeSecs"`
	TravelTimeSecs    int     `json:"travelTimeSecs"`
	WalkingDistanceKm float64 `json:"walkingDistanceKm"`
}

// StopLookup is what traceRoute needs beyond raptor.Source: a rider-facing
// name and coordinates for every id it might encounter, real stop or
// ephemeral location alike.
type StopLookup interface {
	raptor.Source
	StopName(stopID string) string
	Coordinates(stopID string) (lat, lng float64, ok bool)
}

// JSONSafeTimes converts a travel-time map to a form encoding/json can
// serialize: +Inf (the router's "unreachable" value) has no JSON
// representation, so it becomes a nil entry instead (§4.8, "produce null
// route / ∞ travel time; never throw").
func JSONSafeTimes(times map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(times))
	for id, secs := range times {
		if math.IsInf(secs, 1) {
			out[id] = nil
			continue
		}
		v := secs
		out[id] = &v
	}
	return out
}
