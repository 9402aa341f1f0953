package router

import (
	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/index"
)

// PresetFeed is a named, pre-augmented destination set (§4.7 "Preset
// destinations"): the stop<->destination walking edges are computed once
// at load time and reused by every OneToManyPreset query against it,
// amortizing the cost for a recurring destination list (e.g. "hospitals",
// "schools").
type PresetFeed struct {
	Name         string
	Destinations []gtfs.Location
	augmented    *AugmentedFeed
}

// BuildPreset augments feed with locations as destinations only (no
// origin), caching the result for repeated OneToManyPreset queries.
func BuildPreset(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, name string, maxWalkKm float64, locations []gtfs.Location) (*PresetFeed, error) {
	af, err := Augment(feed, waterFilter, nil, locations, maxWalkKm)
	if err != nil {
		return nil, err
	}
	return &PresetFeed{Name: name, Destinations: locations, augmented: af}, nil
}
