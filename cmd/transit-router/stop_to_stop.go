package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/router"
)

var stopToStopCmd = &cobra.Command{
	Use:   "stop-to-stop <originStopId> <HH:MM:SS> <destStopId>",
	Short: "Route between two stop ids already in the feed",
	Args:  cobra.ExactArgs(3),
	RunE:  runStopToStop,
}

func runStopToStop(cmd *cobra.Command, args []string) error {
	depSecs, err := parseClockArg(args[1])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	route, err := router.StopToStop(a.Feed, args[0], depSecs, args[2], config.QueryOptions{})
	if err != nil {
		return err
	}
	if route == nil {
		fmt.Println("no route found")
		return nil
	}
	return printJSON(route)
}
