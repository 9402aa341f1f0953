// Package app wires the leaf packages into the load pipeline described in
// §2 System Overview: feed files -> merged feed -> date-filtered feed ->
// indexed feed (with transfer map) -> router, with preset destination
// sets built alongside. Both the CLI and the HTTP server share this as
// their single load entry point.
package app

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/gtfsio"
	"github.com/antigravity/transit-router/internal/index"
	"github.com/antigravity/transit-router/internal/router"
)

// App is the process-wide, read-only state built once at startup (§5):
// the indexed feed, the water filter it was built with, and any preset
// destination sets. Every query reads these concurrently without locking.
type App struct {
	Feed        *index.IndexedFeed
	WaterFilter *geo.WaterFilter
	LoadOpts    config.LoadOptions
	Presets     map[string]*router.PresetFeed
}

// Load runs the full pipeline from a validated LoadOptions value: read
// every GTFS directory, merge them, filter to the departure date (and
// optional stop-time window), build the water filter and indexed feed,
// then build every configured preset destination set. Preset builds run
// concurrently since they are independent of each other (§5).
func Load(loadOpts config.LoadOptions) (*App, error) {
	feeds := make([]*gtfs.Feed, 0, len(loadOpts.GTFSDataDirs))
	names := make([]string, 0, len(loadOpts.GTFSDataDirs))
	for _, dir := range loadOpts.GTFSDataDirs {
		feed, err := gtfsio.LoadFeedDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "loading gtfs directory %s", dir)
		}
		feeds = append(feeds, feed)
		names = append(names, filepath.Base(filepath.Clean(dir)))
	}

	merged, err := gtfs.MergeFeeds(feeds, names)
	if err != nil {
		return nil, errors.Wrap(err, "merging gtfs feeds")
	}

	filtered, err := merged.FilterByDate(loadOpts.DepartureDate)
	if err != nil {
		return nil, errors.Wrap(err, "filtering feed by departure date")
	}

	if loadOpts.StopTimeFilter.Earliest != nil && loadOpts.StopTimeFilter.Latest != nil {
		filtered, err = filtered.FilterStopTimesByRange(*loadOpts.StopTimeFilter.Earliest, *loadOpts.StopTimeFilter.Latest)
		if err != nil {
			return nil, errors.Wrap(err, "filtering stop-times by range")
		}
	}

	var waterFilter *geo.WaterFilter
	if loadOpts.WaterGeoJSONFile != "" {
		polylines, err := gtfsio.LoadWaterPolylines(loadOpts.WaterGeoJSONFile)
		if err != nil {
			return nil, errors.Wrap(err, "loading water geojson")
		}
		waterFilter = geo.NewWaterFilter(polylines)
	}

	feed := index.Build(filtered, loadOpts, waterFilter)

	a := &App{
		Feed:        feed,
		WaterFilter: waterFilter,
		LoadOpts:    loadOpts,
		Presets:     make(map[string]*router.PresetFeed, len(loadOpts.PresetDestinations)),
	}

	if err := a.buildPresets(feed, waterFilter, loadOpts.PresetDestinations); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *App) buildPresets(feed *index.IndexedFeed, waterFilter *geo.WaterFilter, presets []config.PresetConfig) error {
	if len(presets) == 0 {
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	var mu sync.Mutex

	for _, p := range presets {
		p := p
		g.Go(func() error {
			locations, err := gtfsio.LoadLocationsCSV(p.LocationsFile)
			if err != nil {
				return errors.Wrapf(err, "preset %q: loading locations", p.Name)
			}
			built, err := router.BuildPreset(feed, waterFilter, p.Name, p.MaxAllowableDestinationWalkKm, locations)
			if err != nil {
				return errors.Wrapf(err, "preset %q: augmenting", p.Name)
			}
			mu.Lock()
			a.Presets[p.Name] = built
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
