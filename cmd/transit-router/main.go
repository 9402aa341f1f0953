// Command transit-router is the CLI surface (§6): one-to-one,
// one-to-many, stop-to-stop, all-pairs, one-to-one-location, and a serve
// subcommand exposing the HTTP surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/app"
	"github.com/antigravity/transit-router/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "transit-router",
	Short:        "Round-based (RAPTOR) public transit journey planner",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the load-options JSON config (required)")
	rootCmd.AddCommand(oneToOneCmd)
	rootCmd.AddCommand(oneToManyCmd)
	rootCmd.AddCommand(stopToStopCmd)
	rootCmd.AddCommand(allPairsCmd)
	rootCmd.AddCommand(oneToOneLocationCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadApp() (*app.App, error) {
	if configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	loadOpts, err := config.LoadLoadOptions(configPath)
	if err != nil {
		return nil, err
	}
	return app.Load(loadOpts)
}
