package gtfs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Feed is a raw, flat GTFS feed: the loader's output before any indexing.
type Feed struct {
	Stops         []Stop
	StopTimes     []StopTime
	Trips         []Trip
	Routes        []Route
	Calendars     []Calendar
	CalendarDates []CalendarDate
	Shapes        []ShapePoint
	Transfers     []Transfer
}

// weekdayIndex maps a YYYYMMDD date string to a Go time.Weekday-compatible
// index (0=Sunday..6=Saturday), matching Calendar.Weekday's layout.
func weekdayIndex(yyyymmdd string) (int, error) {
	if len(yyyymmdd) != 8 {
		return 0, fmt.Errorf("invalid date %q: want YYYYMMDD", yyyymmdd)
	}
	var y, m, d int
	if _, err := fmt.Sscanf(yyyymmdd, "%4d%2d%2d", &y, &m, &d); err != nil {
		return 0, errors.Wrapf(err, "parsing date %q", yyyymmdd)
	}
	// Sakamoto's algorithm for day-of-week, Sunday=0.
	t := []int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	yy := y
	if m < 3 {
		yy--
	}
	dow := (yy + yy/4 - yy/100 + yy/400 + t[m-1] + d) % 7
	return dow, nil
}

// FilterByDate returns the subset of services active on date (YYYYMMDD) per
// §4.4: start from every service_id referenced by trips, narrow by each
// calendar's date window and weekday bit, then apply calendar_date
// exceptions for that date. Trips whose service does not survive are
// dropped.
func (f *Feed) FilterByDate(date string) (*Feed, error) {
	dow, err := weekdayIndex(date)
	if err != nil {
		return nil, errors.Wrap(err, "filtering feed by date")
	}

	services := make(map[string]bool)
	for _, trip := range f.Trips {
		services[trip.ServiceID] = true
	}

	for _, cal := range f.Calendars {
		if !services[cal.ServiceID] {
			continue
		}
		if date < cal.StartDate || date > cal.EndDate {
			services[cal.ServiceID] = false
			continue
		}
		if !cal.Weekday[dow] {
			services[cal.ServiceID] = false
		}
	}

	for _, cd := range f.CalendarDates {
		if cd.Date != date {
			continue
		}
		switch cd.ExceptionType {
		case ServiceAdded:
			services[cd.ServiceID] = true
		case ServiceRemoved:
			services[cd.ServiceID] = false
		default:
			return nil, fmt.Errorf("calendar_dates: unknown exception_type %d for service %q", cd.ExceptionType, cd.ServiceID)
		}
	}

	out := &Feed{
		Stops:     f.Stops,
		Routes:    f.Routes,
		Shapes:    f.Shapes,
		Transfers: f.Transfers,
	}

	keepTrip := make(map[string]bool, len(f.Trips))
	for _, trip := range f.Trips {
		if services[trip.ServiceID] {
			out.Trips = append(out.Trips, trip)
			keepTrip[trip.TripID] = true
		}
	}

	for _, st := range f.StopTimes {
		if keepTrip[st.TripID] {
			out.StopTimes = append(out.StopTimes, st)
		}
	}

	out.Calendars = f.Calendars
	out.CalendarDates = f.CalendarDates

	return out, nil
}

// FilterStopTimesByRange keeps only stop-times with TimeOfDaySec in
// [earliest, latest] (§4.4). earliest must be strictly less than latest.
func (f *Feed) FilterStopTimesByRange(earliest, latest int) (*Feed, error) {
	if earliest >= latest {
		return nil, fmt.Errorf("stop_time_filter: earliest (%d) must be < latest (%d)", earliest, latest)
	}

	out := *f
	out.StopTimes = nil
	for _, st := range f.StopTimes {
		if st.TimeOfDaySec >= earliest && st.TimeOfDaySec <= latest {
			out.StopTimes = append(out.StopTimes, st)
		}
	}
	return &out, nil
}
