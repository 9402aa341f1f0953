package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaterFilterBlocks(t *testing.T) {
	river := []Point{{Lng: -117.1, Lat: 36.0}, {Lng: -117.1, Lat: 37.0}}
	wf := NewWaterFilter([][]Point{river})

	// crosses the river
	assert.True(t, wf.BlockedLatLng(36.5, -117.2, 36.5, -117.0))
	// stays on one side
	assert.False(t, wf.BlockedLatLng(36.5, -117.3, 36.6, -117.2))
}

func TestNilWaterFilterNeverBlocks(t *testing.T) {
	var wf *WaterFilter
	assert.False(t, wf.BlockedLatLng(0, 0, 1, 1))
}
