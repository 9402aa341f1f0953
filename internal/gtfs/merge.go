package gtfs

import "fmt"

// MergeFeeds concatenates feeds into one, renaming stop IDs only where a
// stop_id appears in ≥2 feeds with differing coordinates (§4.4). feedNames
// must have the same length as feeds and supplies the prefix used when
// renaming (`<feedName>_<stopId>`).
func MergeFeeds(feeds []*Feed, feedNames []string) (*Feed, error) {
	if len(feeds) != len(feedNames) {
		return nil, fmt.Errorf("merge: %d feeds but %d feed names", len(feeds), len(feedNames))
	}
	if len(feeds) == 1 {
		return feeds[0], nil
	}

	type coord struct{ lat, lng float64 }
	seen := make(map[string]coord)
	needsRename := make(map[string]bool)

	for _, f := range feeds {
		for _, s := range f.Stops {
			if c, ok := seen[s.StopID]; ok {
				if c.lat != s.Lat || c.lng != s.Lng {
					needsRename[s.StopID] = true
				}
			} else {
				seen[s.StopID] = coord{s.Lat, s.Lng}
			}
		}
	}

	out := &Feed{}
	dedupStops := make(map[string]bool)

	rename := func(feedName, stopID string) string {
		if needsRename[stopID] {
			return feedName + "_" + stopID
		}
		return stopID
	}

	for i, f := range feeds {
		feedName := feedNames[i]

		for _, s := range f.Stops {
			newID := rename(feedName, s.StopID)
			if !needsRename[s.StopID] && dedupStops[newID] {
				// identical-coordinate duplicate across feeds: collapse to one record
				continue
			}
			s.StopID = newID
			if s.ParentStation != "" {
				s.ParentStation = rename(feedName, s.ParentStation)
			}
			s.FeedName = feedName
			dedupStops[newID] = true
			out.Stops = append(out.Stops, s)
		}

		for _, st := range f.StopTimes {
			st.StopID = rename(feedName, st.StopID)
			out.StopTimes = append(out.StopTimes, st)
		}

		for _, tr := range f.Transfers {
			tr.FromStopID = rename(feedName, tr.FromStopID)
			tr.ToStopID = rename(feedName, tr.ToStopID)
			out.Transfers = append(out.Transfers, tr)
		}

		out.Trips = append(out.Trips, f.Trips...)
		out.Calendars = append(out.Calendars, f.Calendars...)
		out.CalendarDates = append(out.CalendarDates, f.CalendarDates...)
		out.Routes = append(out.Routes, f.Routes...)
		out.Shapes = append(out.Shapes, f.Shapes...)
	}

	return out, nil
}
