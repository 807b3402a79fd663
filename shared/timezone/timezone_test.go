package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesHotelLocation(t *testing.T) {
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestFormatAndParse(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(instant, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))

	local, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), local.Location())
}

func TestParseDateAndStartOfDay(t *testing.T) {
	checkIn, err := timezone.ParseDate("2024-01-04")
	require.NoError(t, err)

	assert.Equal(t, 4, checkIn.Day())
	assert.Zero(t, checkIn.Hour())
	assert.True(t, timezone.StartOfDay(checkIn.Add(15*time.Hour)).Equal(checkIn))

	_, err = timezone.ParseDate("04/01/2024")
	assert.Error(t, err)
}
