package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfsio"
	"github.com/antigravity/transit-router/internal/router"
)

var oneToOneLocationCmd = &cobra.Command{
	Use:   "one-to-one-location <locations.csv> <originId> <HH:MM:SS> <destId>",
	Short: "Route between two ids drawn from a locations CSV",
	Args:  cobra.ExactArgs(4),
	RunE:  runOneToOneLocation,
}

func runOneToOneLocation(cmd *cobra.Command, args []string) error {
	locations, err := gtfsio.LoadLocationsCSV(args[0])
	if err != nil {
		return err
	}
	depSecs, err := parseClockArg(args[2])
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(locations))
	for i, l := range locations {
		byID[l.ID] = i
	}
	originIdx, ok := byID[args[1]]
	if !ok {
		return errors.Errorf("locations file: unknown origin id %q", args[1])
	}
	destIdx, ok := byID[args[3]]
	if !ok {
		return errors.Errorf("locations file: unknown destination id %q", args[3])
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	route, err := router.OneToOne(a.Feed, a.WaterFilter, locations[originIdx], depSecs, locations[destIdx], config.QueryOptions{})
	if err != nil {
		return err
	}
	if route == nil {
		fmt.Println("no route found")
		return nil
	}
	return printJSON(route)
}
