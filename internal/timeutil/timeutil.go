package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DisplayTimezone is the wall display's fixed timezone. All rendered dates and
// the counter's day boundary use it, regardless of where a request comes from.
const DisplayTimezone = "America/Chicago"

// Central returns the display timezone, falling back to UTC when the zone
// database is unavailable.
func Central() *time.Location {
	if loc, err := time.LoadLocation(DisplayTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Today formats the given instant as a wall-clock date in the display timezone.
func Today(now time.Time) string {
	return now.In(Central()).Format(DateLayout)
}
