package timezone

import (
	"hotelier/config"
	"hotelier/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// ParseDate parses a YYYY-MM-DD calendar date in the application timezone.
func ParseDate(value string) (time.Time, error) {
	if appLocation == nil {
		return time.Parse(constant.DateFormat, value)
	}
	return time.ParseInLocation(constant.DateFormat, value, appLocation)
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
// The date is taken as written, without converting to the application timezone.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateFormat)
}
