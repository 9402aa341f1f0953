package gtfsio

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses an HH:MM:SS clock string into seconds since midnight.
// It accepts an optional leading space and hours beyond 24, the GTFS
// convention for service that runs past midnight (§6).
func ParseClock(s string) (int, error) {
	s = strings.TrimLeft(s, " ")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM:SS", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid second in %q", s)
	}
	if h < 0 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}

	return h*3600 + m*60 + sec, nil
}

// FormatClock renders seconds-since-midnight back to HH:MM:SS.
func FormatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
