package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/router"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// buildSampleFeedDir lays down the GTFS sample feed scenarios A-C of §8
// exercise: STAGECOACH -> EMSI direct, and BEATTY_AIRPORT -> FUR_CREEK_RES
// via a BULLFROG transfer.
func buildSampleFeedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "stops.txt", "stop_id,stop_name,stop_lat,stop_lon,parent_station\n"+
		"STAGECOACH,Stagecoach Stop,36.915,-116.7629,\n"+
		"EMSI,E Main St,36.905,-116.7629,\n"+
		"BEATTY_AIRPORT,Nye County Airport,36.868,-116.7843,\n"+
		"BULLFROG,Bullfrog,36.88,-116.8183,\n"+
		"FUR_CREEK_RES,Furnace Creek Resort,36.4259,-117.1332,\n")

	writeFile(t, dir, "routes.txt", "route_id,route_type,route_short_name,route_long_name\n"+
		"CITY,3,CITY,City Bus\n"+
		"AB,3,AB,Airport Bullfrog\n"+
		"BFC,3,BFC,Bullfrog Furnace Creek\n")

	writeFile(t, dir, "trips.txt", "trip_id,route_id,service_id,direction_id\n"+
		"CITY1,CITY,FULLW,0\n"+
		"AB1,AB,FULLW,0\n"+
		"BFC1,BFC,FULLW,0\n")

	writeFile(t, dir, "stop_times.txt", "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n"+
		"CITY1,06:00:00,06:00:00,STAGECOACH,1\n"+
		"CITY1,06:28:00,06:28:00,EMSI,2\n"+
		"AB1,08:00:00,08:00:00,BEATTY_AIRPORT,1\n"+
		"AB1,08:10:00,08:10:00,BULLFROG,2\n"+
		"BFC1,08:20:00,08:20:00,BULLFROG,1\n"+
		"BFC1,09:20:00,09:20:00,FUR_CREEK_RES,2\n")

	writeFile(t, dir, "calendar.txt", "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n"+
		"FULLW,1,1,1,1,1,1,1,20070101,20101231\n")

	return dir
}

func sampleLoadOptions(dir string) config.LoadOptions {
	opts := config.DefaultLoadOptions()
	opts.DepartureDate = "20090806" // a Thursday within FULLW's window
	opts.GTFSDataDirs = []string{dir}
	return opts
}

// Scenario A (§8): STAGECOACH at 06:00:00 -> EMSI arrives 06:28:00, one
// transit step, no wait since the bus departs exactly on time.
func TestScenarioADirectRide(t *testing.T) {
	a, err := Load(sampleLoadOptions(buildSampleFeedDir(t)))
	require.NoError(t, err)

	route, err := router.StopToStop(a.Feed, "STAGECOACH", 6*3600, "EMSI", config.QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, route)

	assert.Equal(t, 6*3600+28*60, route.ArriveTimeSecs)
	assert.Equal(t, 28*60, route.TravelTimeSecs)
	require.Len(t, route.Steps, 1)
	assert.Equal(t, router.StepTransit, route.Steps[0].Mode)
}

// Scenario B (§8): departing 10 minutes earlier waits for the same bus,
// so the arrival is unchanged but travel time grows by the wait.
func TestScenarioBWaitsForTheBus(t *testing.T) {
	a, err := Load(sampleLoadOptions(buildSampleFeedDir(t)))
	require.NoError(t, err)

	route, err := router.StopToStop(a.Feed, "STAGECOACH", 5*3600+50*60, "EMSI", config.QueryOptions{})
	require.NoError(t, err)
	require.NotNil(t, route)

	assert.Equal(t, 6*3600+28*60, route.ArriveTimeSecs)
	assert.Equal(t, 38*60, route.TravelTimeSecs)
}

// Scenario C (§8): BEATTY_AIRPORT -> FUR_CREEK_RES requires two transit
// legs via a BULLFROG transfer, so max_number_of_transfers must allow it.
func TestScenarioCTransfersAtBullfrog(t *testing.T) {
	loadOpts := sampleLoadOptions(buildSampleFeedDir(t))
	a, err := Load(loadOpts)
	require.NoError(t, err)

	route, err := router.StopToStop(a.Feed, "BEATTY_AIRPORT", 8*3600, "FUR_CREEK_RES", config.QueryOptions{MaxNumberOfTransfers: 1})
	require.NoError(t, err)
	require.NotNil(t, route)

	assert.Equal(t, 9*3600+20*60, route.ArriveTimeSecs)
	require.Len(t, route.Steps, 2)
	assert.Equal(t, router.StepTransit, route.Steps[0].Mode)
	assert.Equal(t, router.StepTransit, route.Steps[1].Mode)
	assert.Equal(t, "BULLFROG", route.Steps[0].To)
}
