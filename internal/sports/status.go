// Package sports resolves "is there a live game / what's next" for the wall
// display's fixed set of teams. Each team has an ordered chain of sources;
// the first source that yields a status wins.
package sports

import "time"

// Status is the display shape: at most one of Live/Next is populated. An
// event is either happening (or finished) today, or upcoming, never both.
type Status struct {
	Live *LiveGame `json:"live"`
	Next *NextGame `json:"next"`
}

// LiveGame describes a game in progress or finished today.
type LiveGame struct {
	OpponentName string `json:"opponentName"`
	OpponentLogo string `json:"opponentLogo,omitempty"`
	UsScore      int    `json:"usScore"`
	ThemScore    int    `json:"themScore"`
	Period       string `json:"period"`
	Clock        string `json:"clock"`
	HomeAway     string `json:"homeAway"`
}

// NextGame describes the next scheduled game, with date/time already
// rendered in the display timezone.
type NextGame struct {
	OpponentName string `json:"opponentName"`
	OpponentLogo string `json:"opponentLogo,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	HomeAway     string `json:"homeAway"`
}

// Home/away markers as the display renders them.
const (
	MarkHome = "vs"
	MarkAway = "@"
)

// FinalPeriod marks a finished game in the Live shape.
const FinalPeriod = "F"

// Display layouts for NextGame date/time.
const (
	dateLayout = "Mon, Jan 2"
	timeLayout = "3:04 PM"
)

// FormatEventDate renders an event date for the display, in the given zone.
func FormatEventDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// FormatEventTime renders an event start time for the display.
func FormatEventTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

// HomeAwayMark maps a home flag to the display marker.
func HomeAwayMark(home bool) string {
	if home {
		return MarkHome
	}
	return MarkAway
}
