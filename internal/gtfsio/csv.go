// Package gtfsio implements the external interfaces spec.md lists as
// "out of scope, specified only at their interface": CSV parsing of GTFS
// directories, locations CSV, water GeoJSON, and clock-string parsing. The
// core packages only depend on the typed entities in internal/gtfs; this
// package is the concrete feed loader that produces them.
package gtfsio

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"

	"github.com/antigravity/transit-router/internal/gtfs"
)

type stopCSV struct {
	StopID        string  `csv:"stop_id"`
	StopName      string  `csv:"stop_name"`
	StopDesc      string  `csv:"stop_desc"`
	StopLat       float64 `csv:"stop_lat"`
	StopLon       float64 `csv:"stop_lon"`
	ParentStation string  `csv:"parent_station"`
}

type stopTimeCSV struct {
	TripID        string `csv:"trip_id"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
	StopID        string `csv:"stop_id"`
	StopSequence  int    `csv:"stop_sequence"`
}

type tripCSV struct {
	TripID      string `csv:"trip_id"`
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	DirectionID int    `csv:"direction_id"`
	ShapeID     string `csv:"shape_id"`
	Headsign    string `csv:"trip_headsign"`
	ShortName   string `csv:"trip_short_name"`
	BlockID     string `csv:"block_id"`
}

type routeCSV struct {
	RouteID   string `csv:"route_id"`
	RouteType int    `csv:"route_type"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Color     string `csv:"route_color"`
	TextColor string `csv:"route_text_color"`
}

type calendarCSV struct {
	ServiceID string `csv:"service_id"`
	Monday    int    `csv:"monday"`
	Tuesday   int    `csv:"tuesday"`
	Wednesday int    `csv:"wednesday"`
	Thursday  int    `csv:"thursday"`
	Friday    int    `csv:"friday"`
	Saturday  int    `csv:"saturday"`
	Sunday    int    `csv:"sunday"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

type calendarDateCSV struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}

type shapeCSV struct {
	ShapeID      string  `csv:"shape_id"`
	ShapePtLat   float64 `csv:"shape_pt_lat"`
	ShapePtLon   float64 `csv:"shape_pt_lon"`
	ShapePtSeq   int     `csv:"shape_pt_sequence"`
}

type transferCSV struct {
	FromStopID      string `csv:"from_stop_id"`
	ToStopID        string `csv:"to_stop_id"`
	TransferType    int    `csv:"transfer_type"`
	MinTransferTime string `csv:"min_transfer_time"`
}

// gtfsRouteType maps a raw GTFS route_type code to our RouteType enum.
func gtfsRouteType(code int) gtfs.RouteType {
	switch code {
	case 0:
		return gtfs.RouteTypeLightRail
	case 1:
		return gtfs.RouteTypeSubway
	case 2:
		return gtfs.RouteTypeRail
	case 3:
		return gtfs.RouteTypeBus
	case 4:
		return gtfs.RouteTypeFerry
	case 5:
		return gtfs.RouteTypeCableCar
	case 6:
		return gtfs.RouteTypeGondola
	default:
		return gtfs.RouteTypeFunicular
	}
}

func openBOM(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func unmarshalCSV(path string, out interface{}) error {
	f, err := openBOM(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	if err := gocsv.Unmarshal(bom.NewReader(f), out); err != nil {
		return errors.Wrapf(err, "unmarshaling %s", path)
	}
	return nil
}

// LoadFeedDir loads a single GTFS directory into a *gtfs.Feed. stops.txt
// and stop_times.txt must be present; every other file may be absent and is
// treated as empty (§6).
func LoadFeedDir(dir string) (*gtfs.Feed, error) {
	stopsPath := filepath.Join(dir, "stops.txt")
	stopTimesPath := filepath.Join(dir, "stop_times.txt")

	if _, err := os.Stat(stopsPath); err != nil {
		return nil, errors.Wrapf(err, "missing required stops.txt in %s", dir)
	}
	if _, err := os.Stat(stopTimesPath); err != nil {
		return nil, errors.Wrapf(err, "missing required stop_times.txt in %s", dir)
	}

	var stopRows []*stopCSV
	if err := unmarshalCSV(stopsPath, &stopRows); err != nil {
		return nil, err
	}

	var stopTimeRows []*stopTimeCSV
	if err := unmarshalCSV(stopTimesPath, &stopTimeRows); err != nil {
		return nil, err
	}

	var tripRows []*tripCSV
	if err := unmarshalCSV(filepath.Join(dir, "trips.txt"), &tripRows); err != nil {
		return nil, err
	}

	var routeRows []*routeCSV
	if err := unmarshalCSV(filepath.Join(dir, "routes.txt"), &routeRows); err != nil {
		return nil, err
	}

	var calendarRows []*calendarCSV
	if err := unmarshalCSV(filepath.Join(dir, "calendar.txt"), &calendarRows); err != nil {
		return nil, err
	}

	var calendarDateRows []*calendarDateCSV
	if err := unmarshalCSV(filepath.Join(dir, "calendar_dates.txt"), &calendarDateRows); err != nil {
		return nil, err
	}

	var shapeRows []*shapeCSV
	if err := unmarshalCSV(filepath.Join(dir, "shapes.txt"), &shapeRows); err != nil {
		return nil, err
	}

	var transferRows []*transferCSV
	if err := unmarshalCSV(filepath.Join(dir, "transfers.txt"), &transferRows); err != nil {
		return nil, err
	}

	feed := &gtfs.Feed{}

	for _, r := range stopRows {
		feed.Stops = append(feed.Stops, gtfs.Stop{
			StopID:        r.StopID,
			StopName:      r.StopName,
			StopDesc:      r.StopDesc,
			Lat:           r.StopLat,
			Lng:           r.StopLon,
			ParentStation: r.ParentStation,
		})
	}

	for _, r := range stopTimeRows {
		dep, err := ParseClock(r.DepartureTime)
		if err != nil {
			return nil, errors.Wrapf(err, "stop_times.txt: trip %s seq %d", r.TripID, r.StopSequence)
		}
		arr, err := ParseClock(r.ArrivalTime)
		if err != nil {
			return nil, errors.Wrapf(err, "stop_times.txt: trip %s seq %d", r.TripID, r.StopSequence)
		}
		feed.StopTimes = append(feed.StopTimes, gtfs.StopTime{
			TripID:        r.TripID,
			StopID:        r.StopID,
			StopSequence:  r.StopSequence,
			ArrivalTime:   arr,
			DepartureTime: dep,
			TimeOfDaySec:  dep,
		})
	}

	for _, r := range tripRows {
		feed.Trips = append(feed.Trips, gtfs.Trip{
			TripID:      r.TripID,
			RouteID:     r.RouteID,
			ServiceID:   r.ServiceID,
			DirectionID: r.DirectionID,
			ShapeID:     r.ShapeID,
			Headsign:    r.Headsign,
			ShortName:   r.ShortName,
			BlockID:     r.BlockID,
		})
	}

	for _, r := range routeRows {
		feed.Routes = append(feed.Routes, gtfs.Route{
			RouteID:   r.RouteID,
			RouteType: gtfsRouteType(r.RouteType),
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Color:     r.Color,
			TextColor: r.TextColor,
		})
	}

	for _, r := range calendarRows {
		feed.Calendars = append(feed.Calendars, gtfs.Calendar{
			ServiceID: r.ServiceID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Weekday: [7]bool{
				r.Sunday == 1, r.Monday == 1, r.Tuesday == 1, r.Wednesday == 1,
				r.Thursday == 1, r.Friday == 1, r.Saturday == 1,
			},
		})
	}

	for _, r := range calendarDateRows {
		feed.CalendarDates = append(feed.CalendarDates, gtfs.CalendarDate{
			ServiceID:     r.ServiceID,
			Date:          r.Date,
			ExceptionType: gtfs.ExceptionType(r.ExceptionType),
		})
	}

	for _, r := range shapeRows {
		feed.Shapes = append(feed.Shapes, gtfs.ShapePoint{
			ShapeID:  r.ShapeID,
			Lat:      r.ShapePtLat,
			Lng:      r.ShapePtLon,
			Sequence: r.ShapePtSeq,
		})
	}

	for _, r := range transferRows {
		t := gtfs.Transfer{
			FromStopID: r.FromStopID,
			ToStopID:   r.ToStopID,
			Type:       gtfs.TransferType(r.TransferType),
		}
		if r.MinTransferTime != "" {
			secs, err := strconv.Atoi(r.MinTransferTime)
			if err != nil {
				return nil, errors.Wrapf(err, "transfers.txt: min_transfer_time for %s->%s", r.FromStopID, r.ToStopID)
			}
			t.MinTransferTime = secs
			t.HasMinTime = true
		}
		feed.Transfers = append(feed.Transfers, t)
	}

	return feed, nil
}
