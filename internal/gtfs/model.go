// Package gtfs holds the typed entities of the transit feed (§3), and the
// date-based filtering and multi-feed merge operations over them (§4.4).
package gtfs

// RouteType enumerates the GTFS route_type values this system cares about.
// Anything other than Bus is treated as "rail" for cost multipliers (§3).
type RouteType int

const (
	RouteTypeLightRail RouteType = iota
	RouteTypeSubway
	RouteTypeRail
	RouteTypeBus
	RouteTypeFerry
	RouteTypeCableCar
	RouteTypeGondola
	RouteTypeFunicular
)

// IsBus reports whether rt should use the bus cost multiplier.
func (rt RouteType) IsBus() bool { return rt == RouteTypeBus }

// TransferType enumerates transfers.txt's transfer_type column (§3).
type TransferType int

const (
	TransferRecommended TransferType = iota
	TransferTimed
	TransferMinTime
	TransferInfeasible
)

// ExceptionType enumerates calendar_dates.txt's exception_type column.
type ExceptionType int

const (
	ServiceAdded   ExceptionType = 1
	ServiceRemoved ExceptionType = 2
)

// Stop is a boardable location (§3). StopID is unique within a feed before
// merge, and unique across all feeds after merge (§4.4).
type Stop struct {
	StopID        string
	StopName      string
	StopDesc      string
	Lat           float64
	Lng           float64
	ParentStation string
	FeedName      string
}

// StopTime is one scheduled visit of a trip to a stop (§3). TimeOfDaySec is
// derived from DepartureTime by the loader.
type StopTime struct {
	TripID        string
	StopID        string
	StopSequence  int
	ArrivalTime   int // seconds since midnight, may exceed 86400 for wraparound service
	DepartureTime int // seconds since midnight, may exceed 86400
	TimeOfDaySec  int
}

// Trip is one scheduled run of a vehicle along a route (§3).
type Trip struct {
	TripID      string
	RouteID     string
	ServiceID   string
	DirectionID int
	ShapeID     string
	Headsign    string
	ShortName   string
	BlockID     string
}

// Route groups trips that share a rider-facing identity (§3).
type Route struct {
	RouteID   string
	RouteType RouteType
	ShortName string
	LongName  string
	Color     string
	TextColor string
}

// Calendar is a weekday-window service availability rule (§3).
type Calendar struct {
	ServiceID string
	StartDate string // YYYYMMDD
	EndDate   string // YYYYMMDD
	Weekday   [7]bool
}

// CalendarDate is a single-date exception to a Calendar (§3).
type CalendarDate struct {
	ServiceID     string
	Date          string // YYYYMMDD
	ExceptionType ExceptionType
}

// ShapePoint is one vertex of a trip's geographic shape (§3).
type ShapePoint struct {
	ShapeID  string
	Lat      float64
	Lng      float64
	Sequence int
}

// Transfer is an explicit transfers.txt row (§3).
type Transfer struct {
	FromStopID      string
	ToStopID        string
	Type            TransferType
	MinTransferTime int
	HasMinTime      bool
}

// WalkingTransfer is a derived, directed footpath edge between two stops
// (§3). Exactly one of Km / Secs applies: walked edges carry a distance,
// explicit min-time edges carry a fixed cost.
type WalkingTransfer struct {
	FromStopID string
	ToStopID   string
	Km         float64
	Secs       int
	Explicit   bool // true if this came from an explicit MIN_TIME transfers.txt row
}

// Location is the canonical representation of a query endpoint or preset
// destination (§3).
type Location struct {
	ID  string
	Lat float64
	Lng float64
}
