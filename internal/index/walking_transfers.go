package index

import (
	"sort"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/geo"
	"github.com/antigravity/transit-router/internal/gtfs"
)

type stopPair [2]string

// buildWalkingTransfers assembles the directed footpath graph from its
// three sources, in priority order (§4.5):
//
//  1. intra-station: free transfers between every pair of children of the
//     same parent_station, unless a transfers.txt row overrides the pair.
//  2. explicit transfers.txt rows, expanded from parent stations to their
//     children: MIN_TIME rows carry their fixed seconds cost, RECOMMENDED
//     and TIMED rows are free, INFEASIBLE rows suppress the pair entirely.
//  3. proximity footpaths between any two stops within
//     max_allowable_between_stop_walk_km, skipped when the pair is
//     water-blocked, already feed-declared, or redundant because the
//     destination's routes are a subset of the origin's (the "same route
//     set" check).
func buildWalkingTransfers(idx *IndexedFeed, loadOpts config.LoadOptions, waterFilter *geo.WaterFilter) map[string][]gtfs.WalkingTransfer {
	result := make(map[string][]gtfs.WalkingTransfer)

	declared := make(map[stopPair]gtfs.TransferType)
	for _, tr := range idx.Feed.Transfers {
		for _, f := range expandStation(idx, tr.FromStopID) {
			for _, t := range expandStation(idx, tr.ToStopID) {
				declared[stopPair{f, t}] = tr.Type
			}
		}
	}

	for parent, children := range idx.ParentToChildren {
		_ = parent
		for i, a := range children {
			for j, b := range children {
				if i == j {
					continue
				}
				if _, ok := declared[stopPair{a, b}]; ok {
					continue
				}
				appendTransfer(result, gtfs.WalkingTransfer{FromStopID: a, ToStopID: b, Explicit: true})
			}
		}
	}

	for _, tr := range idx.Feed.Transfers {
		for _, f := range expandStation(idx, tr.FromStopID) {
			for _, t := range expandStation(idx, tr.ToStopID) {
				switch tr.Type {
				case gtfs.TransferMinTime:
					secs := tr.MinTransferTime
					if !tr.HasMinTime {
						secs = 0
					}
					appendTransfer(result, gtfs.WalkingTransfer{FromStopID: f, ToStopID: t, Secs: secs, Explicit: true})
				case gtfs.TransferRecommended, gtfs.TransferTimed:
					appendTransfer(result, gtfs.WalkingTransfer{FromStopID: f, ToStopID: t, Explicit: true})
				case gtfs.TransferInfeasible:
					// no edge: an infeasible row suppresses the pair entirely,
					// including any intra-station edge built above.
				}
			}
		}
	}

	maxKm := loadOpts.MaxAllowableBetweenStopWalkKm
	if maxKm > 0 {
		// Proximity footpaths only ever connect stops that actually have
		// service (§4.5): a stop with no stop-times can't be boarded from,
		// so it never gets a walkable pair on this pass.
		served := geo.NewSpatialIndex()
		servedPoints := make([]geo.IndexedPoint, 0, len(idx.StopIdToStopTimes))
		for stopID := range idx.StopIdToStopTimes {
			stop, ok := idx.StopIdToStop[stopID]
			if !ok {
				continue
			}
			servedPoints = append(servedPoints, geo.IndexedPoint{ID: stop.StopID, Lat: stop.Lat, Lng: stop.Lng})
		}
		served.Add(servedPoints)

		intersections := served.Intersect(served, maxKm)
		for fromID, neighbors := range intersections {
			fromStop, ok := idx.StopIdToStop[fromID]
			if !ok {
				continue
			}
			fromRoutes := idx.RoutesServingStop(fromID)
			for _, n := range neighbors {
				if n.ID == fromID {
					continue
				}
				if _, ok := declared[stopPair{fromID, n.ID}]; ok {
					continue
				}
				toStop, ok := idx.StopIdToStop[n.ID]
				if !ok {
					continue
				}
				if waterFilter.BlockedLatLng(fromStop.Lat, fromStop.Lng, toStop.Lat, toStop.Lng) {
					continue
				}
				if sameRouteSet(fromRoutes, idx.RoutesServingStop(n.ID)) {
					continue
				}
				appendTransfer(result, gtfs.WalkingTransfer{FromStopID: fromID, ToStopID: n.ID, Km: n.Km})
			}
		}
	}

	for stopID := range result {
		result[stopID] = dedupTransfers(result[stopID])
		sortWalkingTransfers(result[stopID])
	}

	return result
}

// dedupTransfers collapses an origin's transfer list to at most one entry
// per destination (§4.5 "de-duplicate per origin by destination id"),
// keeping the cheaper entry when a pair arrives from more than one source
// — e.g. a free intra-station edge and a proximity footpath to the same
// sibling. Explicit (intra-station/transfers.txt) edges win over proximity
// ones regardless of cost, since the feed or station topology is trusted
// over a derived footpath; within the same kind, lower Secs/Km wins.
func dedupTransfers(edges []gtfs.WalkingTransfer) []gtfs.WalkingTransfer {
	best := make(map[string]gtfs.WalkingTransfer, len(edges))
	order := make([]string, 0, len(edges))
	for _, e := range edges {
		cur, ok := best[e.ToStopID]
		if !ok {
			best[e.ToStopID] = e
			order = append(order, e.ToStopID)
			continue
		}
		if transferCheaper(e, cur) {
			best[e.ToStopID] = e
		}
	}
	out := make([]gtfs.WalkingTransfer, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	return out
}

func transferCheaper(a, b gtfs.WalkingTransfer) bool {
	if a.Explicit != b.Explicit {
		return a.Explicit
	}
	if a.Explicit {
		return a.Secs < b.Secs
	}
	return a.Km < b.Km
}

// expandStation resolves a transfers.txt endpoint to the set of boardable
// stop ids it denotes: its children if it is a parent station, itself
// otherwise.
func expandStation(idx *IndexedFeed, id string) []string {
	if children, ok := idx.ParentToChildren[id]; ok && len(children) > 0 {
		return children
	}
	return []string{id}
}

func appendTransfer(result map[string][]gtfs.WalkingTransfer, wt gtfs.WalkingTransfer) {
	result[wt.FromStopID] = append(result[wt.FromStopID], wt)
}

// sortWalkingTransfers orders one origin stop's transfer list
// deterministically: fixed-cost (explicit) edges first by (Secs,
// ToStopID), then distance-based proximity edges by Km.
func sortWalkingTransfers(transfers []gtfs.WalkingTransfer) {
	sort.Slice(transfers, func(i, j int) bool {
		a, b := transfers[i], transfers[j]
		if a.Explicit != b.Explicit {
			return a.Explicit
		}
		if a.Explicit {
			if a.Secs != b.Secs {
				return a.Secs < b.Secs
			}
			return a.ToStopID < b.ToStopID
		}
		return a.Km < b.Km
	})
}
