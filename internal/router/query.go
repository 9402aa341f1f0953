package router

import (
	"math"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/index"
	"github.com/antigravity/transit-router/internal/raptor"
)

// CompleteOptions merges the feed's load-time ceilings into userOpts
// (§4.7 "Option completion"). There is no per-feed QueryOptions override
// stored on IndexedFeed today, so the "feed options" layer of the
// defaults<-feedOptions<-userOptions chain is the zero value.
func CompleteOptions(feed *index.IndexedFeed, userOpts config.QueryOptions) config.QueryOptions {
	return config.CompleteQueryOptions(config.QueryOptions{}, userOpts, feed.LoadOpts)
}

// StopToStop routes between two real stops already in the feed, with no
// augmentation required.
func StopToStop(feed *index.IndexedFeed, originStopID string, depSecs int, destStopID string, userOpts config.QueryOptions) (*Route, error) {
	opts := CompleteOptions(feed, userOpts)
	tau := raptor.Run(feed, originStopID, depSecs, opts)
	k, _, found := raptor.FindBestK(tau, destStopID, opts)
	if !found {
		return nil, nil
	}
	return traceRoute(feed, tau, k, destStopID, depSecs), nil
}

// OneToOne routes between an arbitrary origin and destination location
// (§4.7), augmenting the feed with both as ephemeral stops.
func OneToOne(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, origin gtfs.Location, depSecs int, destination gtfs.Location, userOpts config.QueryOptions) (*Route, error) {
	opts := CompleteOptions(feed, userOpts)
	af, err := Augment(feed, waterFilter, &origin, []gtfs.Location{destination}, opts.MaxWalkingDistanceKm)
	if err != nil {
		return nil, err
	}
	tau := raptor.Run(af, origin.ID, depSecs, opts)
	k, _, found := raptor.FindBestK(tau, destination.ID, opts)
	if !found {
		return nil, nil
	}
	return traceRoute(af, tau, k, destination.ID, depSecs), nil
}

// OneToMany reports, for every destination, the best travel time in
// seconds from origin, or +Inf if unreachable (§4.7). It augments the feed
// exactly once and reuses the single τ run for every destination — this is
// what makes it consistent with the per-destination result of OneToOne
// (property test §8.3).
func OneToMany(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, origin gtfs.Location, depSecs int, destinations []gtfs.Location, userOpts config.QueryOptions) (map[string]float64, error) {
	opts := CompleteOptions(feed, userOpts)
	af, err := Augment(feed, waterFilter, &origin, destinations, opts.MaxWalkingDistanceKm)
	if err != nil {
		return nil, err
	}
	tau := raptor.Run(af, origin.ID, depSecs, opts)

	result := make(map[string]float64, len(destinations))
	for _, d := range destinations {
		_, info, found := raptor.FindBestK(tau, d.ID, opts)
		if !found {
			result[d.ID] = math.Inf(1)
			continue
		}
		result[d.ID] = float64(info.TimeOfDaySec - depSecs)
	}
	return result, nil
}

// OneToManyPreset is OneToMany against a cached preset destination set:
// only the origin's edges are computed fresh, the stop<->destination
// edges are reused from the preset build (§4.7).
func OneToManyPreset(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, preset *PresetFeed, origin gtfs.Location, depSecs int, userOpts config.QueryOptions) (map[string]float64, error) {
	opts := CompleteOptions(feed, userOpts)
	af, err := AugmentOrigin(feed, preset, waterFilter, origin, opts.MaxWalkingDistanceKm)
	if err != nil {
		return nil, err
	}
	tau := raptor.Run(af, origin.ID, depSecs, opts)

	result := make(map[string]float64, len(preset.Destinations))
	for _, d := range preset.Destinations {
		_, info, found := raptor.FindBestK(tau, d.ID, opts)
		if !found {
			result[d.ID] = math.Inf(1)
			continue
		}
		result[d.ID] = float64(info.TimeOfDaySec - depSecs)
	}
	return result, nil
}

// ManyToMany folds OneToMany over a set of origins (§4.7).
func ManyToMany(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, origins []gtfs.Location, depSecs int, destinations []gtfs.Location, userOpts config.QueryOptions) (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64, len(origins))
	for _, o := range origins {
		times, err := OneToMany(feed, waterFilter, o, depSecs, destinations, userOpts)
		if err != nil {
			return nil, err
		}
		out[o.ID] = times
	}
	return out, nil
}
