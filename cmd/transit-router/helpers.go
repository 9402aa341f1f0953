package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/antigravity/transit-router/internal/gtfsio"
)

func parseLatLng(latStr, lngStr string) (lat, lng float64, err error) {
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lng, err = strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lngStr, err)
	}
	return lat, lng, nil
}

func parseClockArg(s string) (int, error) {
	secs, err := gtfsio.ParseClock(s)
	if err != nil {
		return 0, fmt.Errorf("invalid departure time %q: %w", s, err)
	}
	return secs, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
