package main

import (
	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/gtfsio"
	"github.com/antigravity/transit-router/internal/router"
)

var oneToManyCmd = &cobra.Command{
	Use:   "one-to-many <lat> <lng> <HH:MM:SS> <locations.csv>",
	Short: "Travel time from one coordinate to every location in a CSV",
	Args:  cobra.ExactArgs(4),
	RunE:  runOneToMany,
}

func runOneToMany(cmd *cobra.Command, args []string) error {
	lat, lng, err := parseLatLng(args[0], args[1])
	if err != nil {
		return err
	}
	depSecs, err := parseClockArg(args[2])
	if err != nil {
		return err
	}
	destinations, err := gtfsio.LoadLocationsCSV(args[3])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	origin := gtfs.Location{ID: "origin", Lat: lat, Lng: lng}
	times, err := router.OneToMany(a.Feed, a.WaterFilter, origin, depSecs, destinations, config.QueryOptions{})
	if err != nil {
		return err
	}
	return printJSON(router.JSONSafeTimes(times))
}
