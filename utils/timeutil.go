// File: utils/timeutil.go
package utils

import (
	"fmt"
	"time"

	"vitalguard/config"
)

// LocalDateTimeLayout is the civil date-time format accepted from clients.
const LocalDateTimeLayout = "2006-01-02 15:04"

// DisplayLayout is the format used when presenting timestamps to users.
const DisplayLayout = "Jan 02, 2006 15:04"

// LoadLocation resolves a timezone name, falling back to the configured
// default zone (and finally UTC) when the name is empty or unrecognized.
// The fallback applies to stored profile zones only; user-supplied input
// goes through ParseLocalDateTime which rejects bad zones outright.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if def := config.AppConfig.DefaultTimezone; def != "" {
		if loc, err := time.LoadLocation(def); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseLocalDateTime parses a civil "YYYY-MM-DD HH:MM" string in the given
// location and returns the corresponding UTC instant.
func ParseLocalDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, fmt.Errorf("timezone is required")
	}
	t, err := time.ParseInLocation(LocalDateTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q, expected YYYY-MM-DD HH:MM: %w", s, err)
	}
	return t.UTC(), nil
}

// ToLocal converts a UTC instant to wall-clock time in the given location.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// FormatLocal renders a UTC instant for display in the given location.
func FormatLocal(t time.Time, loc *time.Location) string {
	return ToLocal(t, loc).Format(DisplayLayout)
}
