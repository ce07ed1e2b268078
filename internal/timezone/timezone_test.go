package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	// Shanghai is UTC+8 year-round.
	utc := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "2024-05-01 20:30", Format(utc))

	// A non-UTC stored value converts through the same fixed zone.
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		assert.Equal(t, "2024-05-01 20:30", Format(utc.In(ny)))
	}
}

func TestToDisplayRoundTrip(t *testing.T) {
	utc := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	local := ToDisplay(utc)

	// Conversion only changes the representation, not the instant.
	assert.True(t, local.Equal(utc))
	assert.Equal(t, "2025-01-01 07:00", Format(utc))
}
