// Package staticsched serves a hard-coded schedule table as a last-resort
// sports source, for teams whose data provider has no free schedule access.
package staticsched

import (
	"context"
	"sort"
	"time"

	"wallboard/internal/sports"
	"wallboard/internal/timeutil"
)

// Entry is one scheduled game. Start is the tip-off instant in the display
// timezone.
type Entry struct {
	Opponent string
	Start    time.Time
	Home     bool
}

// Source picks the earliest future entry from a fixed table.
type Source struct {
	entries []Entry
	loc     *time.Location
	now     func() time.Time
}

// NewSource builds a static schedule source. Entries may be given in any
// order.
func NewSource(entries []Entry) *Source {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	return &Source{
		entries: sorted,
		loc:     timeutil.Central(),
		now:     time.Now,
	}
}

func (s *Source) Name() string { return "static-schedule" }

// Fetch returns the next upcoming game, or nothing once the table is
// exhausted. It never errors.
func (s *Source) Fetch(_ context.Context) (*sports.Status, error) {
	now := s.now()
	for _, entry := range s.entries {
		if !entry.Start.After(now) {
			continue
		}
		return &sports.Status{Next: &sports.NextGame{
			OpponentName: entry.Opponent,
			Date:         sports.FormatEventDate(entry.Start, s.loc),
			Time:         sports.FormatEventTime(entry.Start, s.loc),
			HomeAway:     sports.HomeAwayMark(entry.Home),
		}}, nil
	}
	return nil, nil
}

// at builds a schedule instant in the display timezone.
func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, timeutil.Central())
}

// Bulls returns the maintained Chicago Bulls home-stretch table. The listing
// covers the stretch the wall display cares about and gets refreshed by hand
// when it runs dry.
func Bulls() []Entry {
	return []Entry{
		{Opponent: "Milwaukee Bucks", Start: at(2026, time.October, 23, 19, 0), Home: true},
		{Opponent: "Detroit Pistons", Start: at(2026, time.October, 26, 18, 0), Home: false},
		{Opponent: "Cleveland Cavaliers", Start: at(2026, time.October, 29, 19, 0), Home: true},
		{Opponent: "Indiana Pacers", Start: at(2026, time.November, 2, 18, 0), Home: false},
		{Opponent: "Boston Celtics", Start: at(2026, time.November, 6, 19, 0), Home: true},
		{Opponent: "New York Knicks", Start: at(2026, time.November, 10, 19, 0), Home: true},
		{Opponent: "Miami Heat", Start: at(2026, time.November, 13, 18, 30), Home: false},
		{Opponent: "Atlanta Hawks", Start: at(2026, time.November, 16, 18, 30), Home: false},
		{Opponent: "Toronto Raptors", Start: at(2026, time.November, 20, 19, 0), Home: true},
		{Opponent: "Minnesota Timberwolves", Start: at(2026, time.November, 22, 14, 30), Home: true},
	}
}
