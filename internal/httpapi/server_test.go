package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-router/internal/app"
	"github.com/antigravity/transit-router/internal/catalog"
	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/router"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testApp(t *testing.T) *app.App {
	t.Helper()
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

	loadOpts := config.DefaultLoadOptions()
	loadOpts.DepartureDate = "20090806"
	loadOpts.GTFSDataDirs = []string{dir}

	a, err := app.Load(loadOpts)
	require.NoError(t, err)
	return a
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testApp(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthy")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouteEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testApp(t)))
	defer srv.Close()

	// The two stops are ~1.1km apart; a 0.5km walking limit rules out the
	// direct walk so the route rides CITY1.
	body := routeRequest{
		Origin:        coordinate{Lat: 36.915, Lng: -116.7629},
		DepartureTime: "06:00:00",
		Destination:   coordinate{Lat: 36.905, Lng: -116.7629},
		Options:       config.QueryOptions{MaxWalkingDistanceKm: 0.5},
	}
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/route", "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var route router.Route
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&route))
	assert.Equal(t, 6*3600+28*60, route.ArriveTimeSecs)
}

func TestCatalogRoutesAndStops(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testApp(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/routes")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var routes []catalog.RouteSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "CITY", routes[0].RouteID)

	resp2, err := http.Get(srv.URL + "/api/v1/stops?lat=36.915&lng=-116.7629&radius_km=1")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var stops []catalog.StopSummary
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&stops))
	require.Len(t, stops, 1)
	assert.Equal(t, "STAGECOACH", stops[0].StopID)

	resp3, err := http.Get(srv.URL + "/api/v1/stops/STAGECOACH")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	resp4, err := http.Get(srv.URL + "/api/v1/stops/NOPE")
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp4.StatusCode)
}

func TestOneToPresetUnknownNameIsBadRequest(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testApp(t)))
	defer srv.Close()

	body := oneToPresetRequest{
		Origin:        coordinate{Lat: 36.915, Lng: -116.7629},
		DepartureTime: "06:00:00",
		Preset:        "nope",
	}
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/one-to-preset", "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
