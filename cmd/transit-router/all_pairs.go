package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfsio"
	"github.com/antigravity/transit-router/internal/router"
)

var allPairsCmd = &cobra.Command{
	Use:   "all-pairs <locations.csv> <HH:MM:SS>",
	Short: "Travel time between every pair of locations in a CSV",
	Long:  "Emits origin,destination,seconds rows, omitting identity pairs and unreachable pairs.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAllPairs,
}

func runAllPairs(cmd *cobra.Command, args []string) error {
	locations, err := gtfsio.LoadLocationsCSV(args[0])
	if err != nil {
		return err
	}
	depSecs, err := parseClockArg(args[1])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	times, err := router.ManyToMany(a.Feed, a.WaterFilter, locations, depSecs, locations, config.QueryOptions{})
	if err != nil {
		return err
	}

	for _, origin := range locations {
		for _, dest := range locations {
			if origin.ID == dest.ID {
				continue
			}
			secs, ok := times[origin.ID][dest.ID]
			if !ok || math.IsInf(secs, 1) {
				continue
			}
			fmt.Printf("%s,%s,%d\n", origin.ID, dest.ID, int(secs))
		}
	}
	return nil
}
