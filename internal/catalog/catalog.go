// Package catalog is a small in-memory browsing surface over an
// IndexedFeed: list routes, find stops near a point, and look up a stop
// with the routes that serve it. It answers the same three questions a
// Postgres-backed stop/line repository would, straight from memory
// instead of PostGIS.
package catalog

import (
	"sort"

	"github.com/antigravity/transit-router/internal/index"
)

// RouteSummary is the wire shape for a single GTFS route.
type RouteSummary struct {
	RouteID   string `json:"routeId"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	RouteType int    `json:"routeType"`
}

// StopSummary is the wire shape for a single GTFS stop.
type StopSummary struct {
	StopID string  `json:"stopId"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	DistKm float64 `json:"distanceKm,omitempty"`
}

// Catalog answers browsing queries over a loaded feed.
type Catalog struct {
	feed *index.IndexedFeed
}

func New(feed *index.IndexedFeed) *Catalog {
	return &Catalog{feed: feed}
}

// Routes lists every route in the feed, sorted by id.
func (c *Catalog) Routes() []RouteSummary {
	out := make([]RouteSummary, 0, len(c.feed.RouteIdToRoute))
	for _, r := range c.feed.RouteIdToRoute {
		out = append(out, RouteSummary{
			RouteID:   r.RouteID,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			RouteType: int(r.RouteType),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RouteID < out[j].RouteID })
	return out
}

// StopsNear returns every stop within radiusKm of (lat, lng), nearest first.
func (c *Catalog) StopsNear(lat, lng, radiusKm float64) []StopSummary {
	neighbors := c.feed.StopIndex.Search(lat, lng, radiusKm)
	out := make([]StopSummary, 0, len(neighbors))
	for _, n := range neighbors {
		stop, ok := c.feed.StopIdToStop[n.ID]
		if !ok {
			continue
		}
		out = append(out, StopSummary{
			StopID: stop.StopID,
			Name:   stop.StopName,
			Lat:    stop.Lat,
			Lng:    stop.Lng,
			DistKm: n.Km,
		})
	}
	return out
}

// StopDetails returns a stop and the routes serving it, or ok=false if the
// stop id is unknown.
func (c *Catalog) StopDetails(stopID string) (StopSummary, []RouteSummary, bool) {
	stop, ok := c.feed.StopIdToStop[stopID]
	if !ok {
		return StopSummary{}, nil, false
	}

	routeIDs := c.feed.RoutesServingStop(stopID)
	routes := make([]RouteSummary, 0, len(routeIDs))
	for id := range routeIDs {
		if r, ok := c.feed.RouteIdToRoute[id]; ok {
			routes = append(routes, RouteSummary{
				RouteID:   r.RouteID,
				ShortName: r.ShortName,
				LongName:  r.LongName,
				RouteType: int(r.RouteType),
			})
		}
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].RouteID < routes[j].RouteID })

	return StopSummary{
		StopID: stop.StopID,
		Name:   stop.StopName,
		Lat:    stop.Lat,
		Lng:    stop.Lng,
	}, routes, true
}
