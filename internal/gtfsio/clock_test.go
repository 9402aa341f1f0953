package gtfsio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	secs, err := ParseClock("06:28:00")
	require.NoError(t, err)
	assert.Equal(t, 6*3600+28*60, secs)
}

func TestParseClockLeadingSpace(t *testing.T) {
	secs, err := ParseClock(" 6:05:00")
	require.NoError(t, err)
	assert.Equal(t, 6*3600+5*60, secs)
}

func TestParseClockWraparound(t *testing.T) {
	secs, err := ParseClock("25:10:00")
	require.NoError(t, err)
	assert.Equal(t, 25*3600+10*60, secs)
}

func TestParseClockInvalid(t *testing.T) {
	_, err := ParseClock("not-a-time")
	assert.Error(t, err)

	_, err = ParseClock("12:60:00")
	assert.Error(t, err)
}

func TestFormatClockRoundTrip(t *testing.T) {
	secs, err := ParseClock("14:05:09")
	require.NoError(t, err)
	assert.Equal(t, "14:05:09", FormatClock(secs))
}
