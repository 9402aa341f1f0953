package router

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/index"
)

// AugmentedFeed is the layered view §9 calls for: a borrow of the
// immutable base IndexedFeed plus owned, query-scoped overlay maps for
// ephemeral stops and the walking edges that connect them to the real
// graph. Lookups check the overlay first, then fall through to base; there
// is no prototype chaining and the base is never written to.
type AugmentedFeed struct {
	base           *index.IndexedFeed
	stops          map[string]gtfs.Location
	walkingOverlay map[string][]gtfs.WalkingTransfer
	spatialIndex   *geo.SpatialIndex
}

var _ StopLookup = (*AugmentedFeed)(nil)

func (a *AugmentedFeed) StopTimesAt(stopID string) []gtfs.StopTime {
	if _, ok := a.stops[stopID]; ok {
		return nil // ephemeral stops carry no scheduled service
	}
	return a.base.StopTimesAt(stopID)
}

func (a *AugmentedFeed) StopTimesOnTrip(tripID string) []gtfs.StopTime {
	return a.base.StopTimesOnTrip(tripID)
}

func (a *AugmentedFeed) TripByID(tripID string) (gtfs.Trip, bool) {
	return a.base.TripByID(tripID)
}

func (a *AugmentedFeed) RouteByID(routeID string) (gtfs.Route, bool) {
	return a.base.RouteByID(routeID)
}

func (a *AugmentedFeed) WalkingTransfersFrom(stopID string) []gtfs.WalkingTransfer {
	overlay := a.walkingOverlay[stopID]
	if len(overlay) == 0 {
		return a.base.WalkingTransfersFrom(stopID)
	}
	base := a.base.WalkingTransfersFrom(stopID)
	combined := make([]gtfs.WalkingTransfer, 0, len(overlay)+len(base))
	combined = append(combined, overlay...)
	combined = append(combined, base...)
	return combined
}

func (a *AugmentedFeed) StopName(stopID string) string {
	if loc, ok := a.stops[stopID]; ok {
		return loc.ID
	}
	return a.base.StopName(stopID)
}

func (a *AugmentedFeed) Coordinates(stopID string) (lat, lng float64, ok bool) {
	if loc, found := a.stops[stopID]; found {
		return loc.Lat, loc.Lng, true
	}
	return a.base.Coordinates(stopID)
}

// nearbyReal returns every real stop within radiusKm of (lat, lng) that the
// water filter doesn't reject between the two points.
func nearbyReal(base *index.IndexedFeed, waterFilter *geo.WaterFilter, lat, lng, radiusKm float64) []geo.Neighbor {
	candidates := base.StopIndex.Search(lat, lng, radiusKm)
	out := candidates[:0:0]
	for _, n := range candidates {
		stop, ok := base.StopIdToStop[n.ID]
		if !ok {
			continue
		}
		if waterFilter.BlockedLatLng(lat, lng, stop.Lat, stop.Lng) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func sortByKm(edges []gtfs.WalkingTransfer) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Km < edges[j].Km })
}

// checkCollisions rejects location ids that collide with an existing stop
// id or with each other (§3 Location invariant, §4.7 "rejected as errors").
func checkCollisions(base *index.IndexedFeed, locations []gtfs.Location) error {
	seen := make(map[string]bool, len(locations))
	for _, loc := range locations {
		if _, exists := base.StopIdToStop[loc.ID]; exists {
			return errors.Errorf("augmentation: location id %q collides with an existing stop id", loc.ID)
		}
		if seen[loc.ID] {
			return errors.Errorf("augmentation: duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
	}
	return nil
}

// Augment builds the ephemeral feed for one query (§4.7): synthetic stops
// for origin (if any) and every destination, walking edges from the
// origin to nearby real stops, from nearby real stops to each
// destination, and direct origin->destination edges, all within radiusKm
// and filtered by waterFilter.
func Augment(base *index.IndexedFeed, waterFilter *geo.WaterFilter, origin *gtfs.Location, destinations []gtfs.Location, radiusKm float64) (*AugmentedFeed, error) {
	all := make([]gtfs.Location, 0, len(destinations)+1)
	if origin != nil {
		all = append(all, *origin)
	}
	all = append(all, destinations...)

	if err := checkCollisions(base, all); err != nil {
		return nil, err
	}

	af := &AugmentedFeed{
		base:           base,
		stops:          make(map[string]gtfs.Location, len(all)),
		walkingOverlay: make(map[string][]gtfs.WalkingTransfer),
	}
	for _, loc := range all {
		af.stops[loc.ID] = loc
	}

	clone := base.StopIndex.Clone()
	points := make([]geo.IndexedPoint, 0, len(all))
	for _, loc := range all {
		points = append(points, geo.IndexedPoint{ID: loc.ID, Lat: loc.Lat, Lng: loc.Lng})
	}
	clone.Add(points)
	af.spatialIndex = clone

	if origin != nil {
		for _, n := range nearbyReal(base, waterFilter, origin.Lat, origin.Lng, radiusKm) {
			af.walkingOverlay[origin.ID] = append(af.walkingOverlay[origin.ID], gtfs.WalkingTransfer{
				FromStopID: origin.ID, ToStopID: n.ID, Km: n.Km,
			})
		}
	}

	for _, dest := range destinations {
		for _, n := range nearbyReal(base, waterFilter, dest.Lat, dest.Lng, radiusKm) {
			af.walkingOverlay[n.ID] = append(af.walkingOverlay[n.ID], gtfs.WalkingTransfer{
				FromStopID: n.ID, ToStopID: dest.ID, Km: n.Km,
			})
		}
		if origin != nil {
			direct := geo.HaversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng)
			if direct <= radiusKm && !waterFilter.BlockedLatLng(origin.Lat, origin.Lng, dest.Lat, dest.Lng) {
				af.walkingOverlay[origin.ID] = append(af.walkingOverlay[origin.ID], gtfs.WalkingTransfer{
					FromStopID: origin.ID, ToStopID: dest.ID, Km: direct,
				})
			}
		}
	}

	for id := range af.walkingOverlay {
		sortByKm(af.walkingOverlay[id])
	}

	return af, nil
}

// AugmentOrigin layers a query-time origin onto a PresetFeed's cached
// destination augmentation (§4.7, "oneToManyPreset... using a cached,
// pre-augmented feed for destination walks"): the stop<->destination
// edges are reused as-is, and only the origin's edges are computed fresh.
func AugmentOrigin(base *index.IndexedFeed, preset *PresetFeed, waterFilter *geo.WaterFilter, origin gtfs.Location, radiusKm float64) (*AugmentedFeed, error) {
	all := append([]gtfs.Location{origin}, preset.Destinations...)
	if err := checkCollisions(base, all); err != nil {
		return nil, err
	}
	if _, ok := preset.augmented.stops[origin.ID]; ok {
		return nil, errors.Errorf("augmentation: origin id %q collides with a preset destination id", origin.ID)
	}

	af := &AugmentedFeed{
		base:           base,
		stops:          make(map[string]gtfs.Location, len(preset.augmented.stops)+1),
		walkingOverlay: make(map[string][]gtfs.WalkingTransfer, len(preset.augmented.walkingOverlay)+1),
	}
	for id, loc := range preset.augmented.stops {
		af.stops[id] = loc
	}
	af.stops[origin.ID] = origin
	for id, edges := range preset.augmented.walkingOverlay {
		af.walkingOverlay[id] = append([]gtfs.WalkingTransfer(nil), edges...)
	}

	for _, n := range nearbyReal(base, waterFilter, origin.Lat, origin.Lng, radiusKm) {
		af.walkingOverlay[origin.ID] = append(af.walkingOverlay[origin.ID], gtfs.WalkingTransfer{
			FromStopID: origin.ID, ToStopID: n.ID, Km: n.Km,
		})
	}
	for _, dest := range preset.Destinations {
		direct := geo.HaversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng)
		if direct <= radiusKm && !waterFilter.BlockedLatLng(origin.Lat, origin.Lng, dest.Lat, dest.Lng) {
			af.walkingOverlay[origin.ID] = append(af.walkingOverlay[origin.ID], gtfs.WalkingTransfer{
				FromStopID: origin.ID, ToStopID: dest.ID, Km: direct,
			})
		}
	}
	sortByKm(af.walkingOverlay[origin.ID])

	return af, nil
}
