package gtfsio

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/antigravity/transit-router/internal/geo"
)

// LoadWaterPolylines reads a GeoJSON FeatureCollection of LineString
// features (§6) and returns each as a polyline of geo.Point, taking each
// GeoJSON [lng, lat] coordinate into Point's Lng and Lat fields. Any other
// geometry type is an error.
func LoadWaterPolylines(path string) ([][]geo.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading water geojson %s", path)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing water geojson %s", path)
	}

	var polylines [][]geo.Point
	for _, feature := range fc.Features {
		if feature.Geometry == nil || !feature.Geometry.IsLineString() {
			return nil, errors.Errorf("water geojson %s: expected LineString features only", path)
		}

		coords := feature.Geometry.LineString
		line := make([]geo.Point, 0, len(coords))
		for _, c := range coords {
			if len(c) < 2 {
				return nil, errors.Errorf("water geojson %s: malformed coordinate", path)
			}
			// GeoJSON coordinates are [lng, lat].
			line = append(line, geo.Point{Lng: c[0], Lat: c[1]})
		}
		polylines = append(polylines, line)
	}

	return polylines, nil
}
