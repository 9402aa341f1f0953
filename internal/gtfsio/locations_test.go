package gtfsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocationsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,latitude,longitude\n"+
		"home,36.868,-116.7828\nwork,36.426,-117.1326\n"), 0o644))

	locations, err := LoadLocationsCSV(path)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "home", locations[0].ID)
}

func TestLoadLocationsCSVDuplicateID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,latitude,longitude\n"+
		"home,1,1\nhome,2,2\n"), 0o644))

	_, err := LoadLocationsCSV(path)
	assert.Error(t, err)
}
