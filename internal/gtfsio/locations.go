package gtfsio

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"

	"github.com/antigravity/transit-router/internal/gtfs"
)

type locationCSV struct {
	ID  string  `csv:"id"`
	Lat float64 `csv:"latitude"`
	Lng float64 `csv:"longitude"`
}

// LoadLocationsCSV loads a `id, latitude, longitude` CSV (§6) used for
// one-to-many queries and preset destination lists.
func LoadLocationsCSV(path string) ([]gtfs.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening locations file %s", path)
	}
	defer f.Close()

	var rows []*locationCSV
	if err := gocsv.Unmarshal(bom.NewReader(f), &rows); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling locations file %s", path)
	}

	locations := make([]gtfs.Location, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.ID == "" {
			return nil, errors.New("locations file: empty id")
		}
		if seen[r.ID] {
			return nil, errors.Errorf("locations file: duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		locations = append(locations, gtfs.Location{ID: r.ID, Lat: r.Lat, Lng: r.Lng})
	}
	return locations, nil
}
