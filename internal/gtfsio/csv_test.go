package gtfsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-router/internal/gtfs"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadFeedDirMinimal(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "stops.txt", "stop_id,stop_name,stop_lat,stop_lon,parent_station\n"+
		"STAGECOACH,Stagecoach Stop,36.915,-116.7629,\n"+
		"EMSI,E Main St,36.905,-116.7629,\n")

	writeFile(t, dir, "routes.txt", "route_id,route_type,route_short_name,route_long_name\n"+
		"CITY,3,CITY,City Bus\n")

	writeFile(t, dir, "trips.txt", "trip_id,route_id,service_id,direction_id\n"+
		"CITY1,CITY,FULLW,0\n")

	writeFile(t, dir, "stop_times.txt", "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n"+
		"CITY1,06:00:00,06:00:00,STAGECOACH,1\n"+
		"CITY1,06:28:00,06:28:00,EMSI,2\n")

	writeFile(t, dir, "calendar.txt", "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n"+
		"FULLW,1,1,1,1,1,1,1,20070101,20101231\n")

	feed, err := LoadFeedDir(dir)
	require.NoError(t, err)

	assert.Len(t, feed.Stops, 2)
	assert.Len(t, feed.Trips, 1)
	assert.Len(t, feed.Routes, 1)
	assert.Len(t, feed.Calendars, 1)
	require.Len(t, feed.StopTimes, 2)

	assert.Equal(t, 6*3600, feed.StopTimes[0].TimeOfDaySec)
	assert.Equal(t, gtfs.RouteTypeBus, feed.Routes[0].RouteType)

	// optional files absent: no error, empty
	assert.Empty(t, feed.Transfers)
	assert.Empty(t, feed.Shapes)
	assert.Empty(t, feed.CalendarDates)
}

func TestLoadFeedDirMissingRequired(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stops.txt", "stop_id,stop_name,stop_lat,stop_lon\nS1,Stop 1,1,1\n")
	_, err := LoadFeedDir(dir)
	assert.Error(t, err)
}
