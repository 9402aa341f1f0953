package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/router"
)

var oneToOneCmd = &cobra.Command{
	Use:   "one-to-one <lat1> <lng1> <HH:MM:SS> <lat2> <lng2>",
	Short: "Route between two arbitrary coordinates",
	Args:  cobra.ExactArgs(5),
	RunE:  runOneToOne,
}

func runOneToOne(cmd *cobra.Command, args []string) error {
	lat1, lng1, err := parseLatLng(args[0], args[1])
	if err != nil {
		return err
	}
	depSecs, err := parseClockArg(args[2])
	if err != nil {
		return err
	}
	lat2, lng2, err := parseLatLng(args[3], args[4])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	origin := gtfs.Location{ID: "origin", Lat: lat1, Lng: lng1}
	destination := gtfs.Location{ID: "destination", Lat: lat2, Lng: lng2}

	route, err := router.OneToOne(a.Feed, a.WaterFilter, origin, depSecs, destination, config.QueryOptions{})
	if err != nil {
		return err
	}
	if route == nil {
		fmt.Println("no route found")
		return nil
	}
	return printJSON(route)
}
