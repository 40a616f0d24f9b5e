package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	assert.True(t, converted.Equal(utc))
	assert.Equal(t, timezone.GetLocation(), converted.Location())
}

func TestFormat(t *testing.T) {
	assert.Empty(t, timezone.Format(time.Time{}, time.DateOnly))

	stamp := time.Date(2024, 1, 1, 12, 0, 0, 0, timezone.GetLocation())
	assert.Equal(t, "2024-01-01", timezone.Format(stamp, time.DateOnly))
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())

	_, err = timezone.Parse(time.DateOnly, "not a date")
	assert.Error(t, err)
}
