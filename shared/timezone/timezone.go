package timezone

import (
	"time"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
)

var hotelLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE is empty, business dates use UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown IANA zone, business dates use UTC")

		return
	}

	hotelLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("hotel timezone loaded")
}

// Now returns the current time in the hotel's zone.
func Now() time.Time {
	return time.Now().In(hotelLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(hotelLocation)
}

func GetLocation() *time.Location {
	return hotelLocation
}

// Parse interprets value as wall-clock time in the hotel's zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, hotelLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate parses a calendar date (YYYY-MM-DD) at local midnight.
func ParseDate(value string) (time.Time, error) {
	return Parse(time.DateOnly, value)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, hotelLocation)
}
