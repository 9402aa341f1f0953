package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/index"
)

// buildTestFeed is a two-stop, one-trip feed small enough to reason about
// by hand: A and B are ~2km apart (too far to walk directly, beyond the
// default 1.5km radius) and connected by a bus departing A at 08:00:00
// and arriving B at 08:10:00.
func buildTestFeed(t *testing.T) *index.IndexedFeed {
	t.Helper()
	feed := &gtfs.Feed{
		Stops: []gtfs.Stop{
			{StopID: "A", StopName: "Stop A", Lat: 36.000, Lng: -117.000},
			{StopID: "B", StopName: "Stop B", Lat: 36.018, Lng: -117.000},
		},
		Trips: []gtfs.Trip{
			{TripID: "T1", RouteID: "R1", ServiceID: "S1"},
		},
		Routes: []gtfs.Route{
			{RouteID: "R1", RouteType: gtfs.RouteTypeBus},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "T1", StopID: "A", StopSequence: 1, DepartureTime: 8 * 3600, TimeOfDaySec: 8 * 3600},
			{TripID: "T1", StopID: "B", StopSequence: 2, DepartureTime: 8*3600 + 600, TimeOfDaySec: 8*3600 + 600},
		},
	}
	return index.Build(feed, config.DefaultLoadOptions(), nil)
}

func TestStopToStopBoardsTheTrip(t *testing.T) {
	feed := buildTestFeed(t)
	route, err := StopToStop(feed, "A", 8*3600, "B", config.QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, 8*3600+600, route.ArriveTimeSecs)
	require.Len(t, route.Steps, 1)
	assert.Equal(t, StepTransit, route.Steps[0].Mode)
	assert.Equal(t, "R1", route.Steps[0].RouteID)
}

func TestStopToStopUnreachableIsNilNotError(t *testing.T) {
	feed := buildTestFeed(t)
	route, err := StopToStop(feed, "A", 9*3600, "nonexistent", config.QueryOptions{})
	require.NoError(t, err)
	assert.Nil(t, route)
}

func TestAugmentRejectsIDCollision(t *testing.T) {
	feed := buildTestFeed(t)
	origin := gtfs.Location{ID: "A", Lat: 36.0003, Lng: -117.000}
	_, err := Augment(feed, nil, &origin, nil, 1.5)
	assert.Error(t, err)
}

func TestOneToOneWalksToStopRidesAndWalksOff(t *testing.T) {
	feed := buildTestFeed(t)
	origin := gtfs.Location{ID: "origin", Lat: 36.0003, Lng: -117.000}
	dest := gtfs.Location{ID: "dest", Lat: 36.0183, Lng: -117.000}

	route, err := OneToOne(feed, nil, origin, 7*3600+55*60, dest, config.QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, route)

	require.GreaterOrEqual(t, len(route.Steps), 3)
	assert.Equal(t, StepWalk, route.Steps[0].Mode)
	assert.Equal(t, StepTransit, route.Steps[1].Mode)
	assert.Equal(t, StepWalk, route.Steps[len(route.Steps)-1].Mode)
	assert.Greater(t, route.WalkingDistanceKm, 0.0)
}

func TestOneToManyAgreesWithOneToOne(t *testing.T) {
	feed := buildTestFeed(t)
	origin := gtfs.Location{ID: "origin", Lat: 36.0003, Lng: -117.000}
	dest := gtfs.Location{ID: "dest", Lat: 36.0183, Lng: -117.000}

	oneToOneRoute, err := OneToOne(feed, nil, origin, 7*3600+55*60, dest, config.QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, oneToOneRoute)

	times, err := OneToMany(feed, nil, origin, 7*3600+55*60, []gtfs.Location{dest}, config.QueryOptions{})
	require.NoError(t, err)
	assert.InDelta(t, float64(oneToOneRoute.TravelTimeSecs), times["dest"], 0.01)
}

func TestOneToManyPresetAgreesWithOneToMany(t *testing.T) {
	feed := buildTestFeed(t)
	origin := gtfs.Location{ID: "origin", Lat: 36.0003, Lng: -117.000}
	dest := gtfs.Location{ID: "dest", Lat: 36.0183, Lng: -117.000}

	plain, err := OneToMany(feed, nil, origin, 7*3600+55*60, []gtfs.Location{dest}, config.QueryOptions{})
	require.NoError(t, err)

	preset, err := BuildPreset(feed, nil, "test-preset", 1.5, []gtfs.Location{dest})
	require.NoError(t, err)

	viaPreset, err := OneToManyPreset(feed, nil, preset, origin, 7*3600+55*60, config.QueryOptions{})
	require.NoError(t, err)

	assert.InDelta(t, plain["dest"], viaPreset["dest"], 0.01)
}

func TestManyToManyFoldsOneToMany(t *testing.T) {
	feed := buildTestFeed(t)
	origin := gtfs.Location{ID: "origin", Lat: 36.0003, Lng: -117.000}
	dest := gtfs.Location{ID: "dest", Lat: 36.0183, Lng: -117.000}

	all, err := ManyToMany(feed, nil, []gtfs.Location{origin}, 7*3600+55*60, []gtfs.Location{dest}, config.QueryOptions{})
	require.NoError(t, err)
	require.Contains(t, all, "origin")
	assert.Greater(t, all["origin"]["dest"], 0.0)
}
