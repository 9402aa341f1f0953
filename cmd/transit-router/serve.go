package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-router/internal/httpapi"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP surface (GET /healthy, POST /route, /one-to-many, /one-to-preset)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	addr := ":" + servePort
	fmt.Printf("listening on %s\n", addr)
	return http.ListenAndServe(addr, httpapi.NewRouter(a))
}
