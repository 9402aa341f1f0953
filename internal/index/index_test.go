package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfs"
)

func sampleFeed() *gtfs.Feed {
	return &gtfs.Feed{
		Stops: []gtfs.Stop{
			{StopID: "A", Lat: 36.0, Lng: -117.0},
			{StopID: "B", Lat: 36.0, Lng: -117.0009},
			{StopID: "C", Lat: 40.0, Lng: -120.0},
		},
		Trips: []gtfs.Trip{
			{TripID: "T1", RouteID: "R1", ServiceID: "S1"},
		},
		Routes: []gtfs.Route{
			{RouteID: "R1", RouteType: gtfs.RouteTypeBus},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "T1", StopID: "A", StopSequence: 1, TimeOfDaySec: 100},
			{TripID: "T1", StopID: "B", StopSequence: 2, TimeOfDaySec: 200},
		},
	}
}

func TestBuildDerivesLookups(t *testing.T) {
	idx := Build(sampleFeed(), config.DefaultLoadOptions(), nil)

	require.Len(t, idx.StopIdToStopTimes["A"], 1)
	require.Len(t, idx.TripIdToStopTimes["T1"], 2)
	assert.Equal(t, "A", idx.TripIdToStopTimes["T1"][0].StopID)
	assert.Equal(t, gtfs.RouteTypeBus, idx.RouteIdToRoute["R1"].RouteType)
}

func TestBuildProximityWalkingTransfer(t *testing.T) {
	// B is also served by R2, so its route set differs from A's and the
	// A->B footpath is not dropped as redundant.
	feed := sampleFeed()
	feed.Trips = append(feed.Trips, gtfs.Trip{TripID: "T2", RouteID: "R2", ServiceID: "S1"})
	feed.StopTimes = append(feed.StopTimes, gtfs.StopTime{TripID: "T2", StopID: "B", StopSequence: 1, TimeOfDaySec: 300})

	opts := config.DefaultLoadOptions()
	opts.MaxAllowableBetweenStopWalkKm = 1.0
	idx := Build(feed, opts, nil)

	transfers := idx.WalkingTransfers["A"]
	require.NotEmpty(t, transfers)
	assert.Equal(t, "B", transfers[0].ToStopID)
	assert.False(t, transfers[0].Explicit)
	assert.Greater(t, transfers[0].Km, 0.0)

	// C is far away: no footpath.
	for _, wt := range transfers {
		assert.NotEqual(t, "C", wt.ToStopID)
	}
}

func TestBuildIntraStationFreeTransfer(t *testing.T) {
	feed := sampleFeed()
	feed.Stops[1].ParentStation = "PARENT"
	feed.Stops = append(feed.Stops, gtfs.Stop{StopID: "B2", Lat: 36.0, Lng: -117.0009, ParentStation: "PARENT"})

	opts := config.DefaultLoadOptions()
	opts.MaxAllowableBetweenStopWalkKm = 0 // disable proximity, isolate intra-station source
	idx := Build(feed, opts, nil)

	transfers := idx.WalkingTransfers["B"]
	require.Len(t, transfers, 1)
	assert.Equal(t, "B2", transfers[0].ToStopID)
	assert.Equal(t, 0, transfers[0].Secs)
	assert.True(t, transfers[0].Explicit)
}

func TestBuildExplicitMinTimeTransferOverridesIntraStation(t *testing.T) {
	feed := sampleFeed()
	feed.Stops[0].ParentStation = "PARENT"
	feed.Stops[1].ParentStation = "PARENT"
	feed.Transfers = []gtfs.Transfer{
		{FromStopID: "A", ToStopID: "B", Type: gtfs.TransferMinTime, MinTransferTime: 45, HasMinTime: true},
	}

	opts := config.DefaultLoadOptions()
	opts.MaxAllowableBetweenStopWalkKm = 0
	idx := Build(feed, opts, nil)

	transfers := idx.WalkingTransfers["A"]
	require.Len(t, transfers, 1)
	assert.Equal(t, "B", transfers[0].ToStopID)
	assert.Equal(t, 45, transfers[0].Secs)
	assert.True(t, transfers[0].Explicit)
}

func TestBuildInfeasibleTransferSuppressesEdge(t *testing.T) {
	feed := sampleFeed()
	feed.Stops[0].ParentStation = "PARENT"
	feed.Stops[1].ParentStation = "PARENT"
	feed.Transfers = []gtfs.Transfer{
		{FromStopID: "A", ToStopID: "B", Type: gtfs.TransferInfeasible},
	}

	opts := config.DefaultLoadOptions()
	opts.MaxAllowableBetweenStopWalkKm = 0
	idx := Build(feed, opts, nil)

	assert.Empty(t, idx.WalkingTransfers["A"])
}

func TestRoutesServingStopAndSameRouteSet(t *testing.T) {
	idx := Build(sampleFeed(), config.DefaultLoadOptions(), nil)
	routesA := idx.RoutesServingStop("A")
	routesB := idx.RoutesServingStop("B")
	assert.True(t, routesA["R1"])
	assert.True(t, sameRouteSet(routesA, routesB))
	assert.False(t, sameRouteSet(routesA, idx.RoutesServingStop("C")))
}
