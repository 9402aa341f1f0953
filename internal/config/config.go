// Package config holds the JSON-configurable load-time and query-time
// options (§6 Configuration) and the option-completion/clamping logic
// (§4.7 "Option completion"). Configuration is passed explicitly as an
// immutable value per query; the only process-wide state is the loaded
// feed and its preset caches (§9 design note).
package config

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"
)

// StopTimeFilter narrows loaded stop-times to a clock-time window (§4.4).
type StopTimeFilter struct {
	Earliest *int `json:"earliest,omitempty"`
	Latest   *int `json:"latest,omitempty"`
}

// PresetConfig describes one named, pre-augmented destination set (§4.7,
// "Preset destinations").
type PresetConfig struct {
	Name                          string  `json:"name"`
	LocationsFile                 string  `json:"locations_file"`
	MaxAllowableDestinationWalkKm float64 `json:"max_allowable_destination_walk_km"`
}

// LoadOptions are the load-time, process-wide settings (§6).
type LoadOptions struct {
	DepartureDate                 string         `json:"departure_date"`
	GTFSDataDirs                  []string       `json:"gtfs_data_dirs"`
	StopTimeFilter                StopTimeFilter `json:"stop_time_filter"`
	MaxAllowableBetweenStopWalkKm float64        `json:"max_allowable_between_stop_walk_km"`
	MaxAllowableWalkingDistanceKm float64        `json:"max_allowable_walking_distance_km"`
	MaxAllowableNumberOfTransfers int            `json:"max_allowable_number_of_transfers"`
	WaterGeoJSONFile              string         `json:"water_geojson_file,omitempty"`
	ShapeHints                    []ShapeHint    `json:"shape_hints,omitempty"`
	PresetDestinations            []PresetConfig `json:"preset_destinations,omitempty"`
}

// ShapeHint names the shape to use for trips of a (direction_id, route_id)
// pair that have no shape_id of their own (§4.5). These configured hints
// are the only source of shape hints; none are derived from the feed's
// own shapes.
type ShapeHint struct {
	DirectionID int    `json:"direction_id"`
	RouteID     string `json:"route_id"`
	ShapeID     string `json:"shape_id"`
}

// DefaultLoadOptions returns the §6-documented defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MaxAllowableBetweenStopWalkKm: 1.5,
		MaxAllowableWalkingDistanceKm: math.Inf(1),
		MaxAllowableNumberOfTransfers: math.MaxInt32,
	}
}

// LoadLoadOptions reads and validates a JSON load-options file.
func LoadLoadOptions(path string) (LoadOptions, error) {
	opts := DefaultLoadOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "reading load options %s", path)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing load options %s", path)
	}

	if opts.DepartureDate == "" {
		return opts, errors.New("load options: departure_date is required")
	}
	if len(opts.GTFSDataDirs) == 0 {
		return opts, errors.New("load options: gtfs_data_dirs must be non-empty")
	}
	for _, p := range opts.PresetDestinations {
		if p.MaxAllowableDestinationWalkKm <= 0 {
			return opts, errors.Errorf("load options: preset %q missing max_allowable_destination_walk_km", p.Name)
		}
	}

	return opts, nil
}

// QueryOptions are the per-query settings (§6).
type QueryOptions struct {
	MaxWalkingDistanceKm  float64  `json:"max_walking_distance_km"`
	WalkingSpeedKph       float64  `json:"walking_speed_kph"`
	MaxWaitingTimeSecs    int      `json:"max_waiting_time_secs"`
	TransferPenaltySecs   int      `json:"transfer_penalty_secs"`
	MaxNumberOfTransfers  int      `json:"max_number_of_transfers"`
	MaxCommuteTimeSecs    float64  `json:"max_commute_time_secs"`
	BusMultiplier         float64  `json:"bus_multiplier"`
	RailMultiplier        float64  `json:"rail_multiplier"`
	ExcludeRoutes         []string `json:"exclude_routes,omitempty"`
	ExcludeStops          []string `json:"exclude_stops,omitempty"`
}

// DefaultQueryOptions returns the §6-documented defaults.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		MaxWalkingDistanceKm: 1.5,
		WalkingSpeedKph:      5.1,
		MaxWaitingTimeSecs:   1800,
		TransferPenaltySecs:  30,
		MaxNumberOfTransfers: 1,
		MaxCommuteTimeSecs:   math.Inf(1),
		BusMultiplier:        1,
		RailMultiplier:       1,
	}
}

// mergeQueryOptions overlays non-zero fields of override onto base.
// Numeric query options of 0 are always treated as "unset", so an
// override cannot set a numeric option to 0. A non-nil exclude list
// replaces the base list; lists are never merged element-wise.
func mergeQueryOptions(base, override QueryOptions) QueryOptions {
	out := base
	if override.MaxWalkingDistanceKm != 0 {
		out.MaxWalkingDistanceKm = override.MaxWalkingDistanceKm
	}
	if override.WalkingSpeedKph != 0 {
		out.WalkingSpeedKph = override.WalkingSpeedKph
	}
	if override.MaxWaitingTimeSecs != 0 {
		out.MaxWaitingTimeSecs = override.MaxWaitingTimeSecs
	}
	if override.TransferPenaltySecs != 0 {
		out.TransferPenaltySecs = override.TransferPenaltySecs
	}
	if override.MaxNumberOfTransfers != 0 {
		out.MaxNumberOfTransfers = override.MaxNumberOfTransfers
	}
	if override.MaxCommuteTimeSecs != 0 {
		out.MaxCommuteTimeSecs = override.MaxCommuteTimeSecs
	}
	if override.BusMultiplier != 0 {
		out.BusMultiplier = override.BusMultiplier
	}
	if override.RailMultiplier != 0 {
		out.RailMultiplier = override.RailMultiplier
	}
	if override.ExcludeRoutes != nil {
		out.ExcludeRoutes = override.ExcludeRoutes
	}
	if override.ExcludeStops != nil {
		out.ExcludeStops = override.ExcludeStops
	}
	return out
}

// CompleteQueryOptions merges defaults ← feedOptions ← userOptions, then
// clamps max_number_of_transfers and max_walking_distance_km to the feed's
// max_allowable_* ceilings (§4.7, defense against DoS through large
// values).
func CompleteQueryOptions(feedOptions, userOptions QueryOptions, load LoadOptions) QueryOptions {
	merged := mergeQueryOptions(DefaultQueryOptions(), feedOptions)
	merged = mergeQueryOptions(merged, userOptions)

	if merged.MaxNumberOfTransfers > load.MaxAllowableNumberOfTransfers {
		merged.MaxNumberOfTransfers = load.MaxAllowableNumberOfTransfers
	}
	if merged.MaxWalkingDistanceKm > load.MaxAllowableWalkingDistanceKm {
		merged.MaxWalkingDistanceKm = load.MaxAllowableWalkingDistanceKm
	}

	return merged
}
