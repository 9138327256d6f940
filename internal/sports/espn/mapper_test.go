package espn

import (
	"encoding/json"
	"testing"
	"time"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

var bearsSpec = TeamSpec{
	League: LeagueNFL,
	ID:     "3",
	Names:  []string{"Chicago Bears", "Bears", "CHI"},
}

func decodeEvent(t *testing.T, raw string) event {
	t.Helper()
	var ev event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	return ev
}

func TestClassifyInProgressGame(t *testing.T) {
	ev := decodeEvent(t, `{
		"date": "2025-01-05T19:00Z",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "team": {"displayName": "Chicago Bears", "abbreviation": "CHI"}, "score": "17"},
				{"homeAway": "away", "team": {"displayName": "Green Bay Packers", "abbreviation": "GB", "logo": "https://a.espncdn.com/gb.png"}, "score": "14"}
			],
			"status": {"displayClock": "8:42", "period": 3, "type": {"state": "in"}}
		}]
	}`)

	status := classifyEvent(ev, bearsSpec, mustLoc(t))
	if status == nil || status.Live == nil {
		t.Fatalf("expected live status, got %+v", status)
	}
	if status.Next != nil {
		t.Fatal("live and next must be mutually exclusive")
	}
	live := status.Live
	if live.OpponentName != "Green Bay Packers" || live.OpponentLogo != "https://a.espncdn.com/gb.png" {
		t.Fatalf("unexpected opponent %+v", live)
	}
	if live.UsScore != 17 || live.ThemScore != 14 {
		t.Fatalf("unexpected scores %+v", live)
	}
	if live.Period != "Q3" || live.Clock != "8:42" {
		t.Fatalf("unexpected period/clock %+v", live)
	}
	if live.HomeAway != "vs" {
		t.Fatalf("expected home marker, got %s", live.HomeAway)
	}
}

func TestClassifyFinishedGame(t *testing.T) {
	ev := decodeEvent(t, `{
		"date": "2025-01-05T19:00Z",
		"competitions": [{
			"competitors": [
				{"homeAway": "away", "team": {"displayName": "Chicago Bears"}, "score": "20"},
				{"homeAway": "home", "team": {"displayName": "Detroit Lions"}, "score": "27"}
			],
			"status": {"displayClock": "0:00", "period": 4, "type": {"state": "post", "completed": true}}
		}]
	}`)

	status := classifyEvent(ev, bearsSpec, mustLoc(t))
	if status == nil || status.Live == nil {
		t.Fatalf("expected live status for final, got %+v", status)
	}
	if status.Live.Period != "F" || status.Live.Clock != "" {
		t.Fatalf("expected final marker with no clock, got %+v", status.Live)
	}
	if status.Live.HomeAway != "@" {
		t.Fatalf("expected away marker, got %s", status.Live.HomeAway)
	}
}

func TestClassifyUpcomingGameRendersCentralTime(t *testing.T) {
	// 00:15 UTC Monday is 6:15 PM Sunday in Chicago.
	ev := decodeEvent(t, `{
		"date": "2025-01-06T00:15Z",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "team": {"displayName": "Chicago Bears"}},
				{"homeAway": "away", "team": {"displayName": "Minnesota Vikings"}}
			],
			"status": {"type": {"state": "pre"}}
		}]
	}`)

	status := classifyEvent(ev, bearsSpec, mustLoc(t))
	if status == nil || status.Next == nil {
		t.Fatalf("expected next status, got %+v", status)
	}
	if status.Live != nil {
		t.Fatal("live and next must be mutually exclusive")
	}
	if status.Next.Date != "Sun, Jan 5" || status.Next.Time != "6:15 PM" {
		t.Fatalf("expected Central rendering, got %q %q", status.Next.Date, status.Next.Time)
	}
}

func TestScoreExtractionAlternatives(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{"direct string", `{"score": "21"}`, 21, true},
		{"direct number", `{"score": 21}`, 21, true},
		{"score object", `{"score": {"value": 33, "displayValue": "33"}}`, 33, true},
		{"linescore sum", `{"linescores": [{"value": 7}, {"value": 10}, {"value": 3}]}`, 20, true},
		{"linescore display values", `{"linescores": [{"displayValue": "14"}, {"displayValue": "7"}]}`, 21, true},
		{"statistic entry", `{"statistics": [{"name": "rebounds", "displayValue": "40"}, {"name": "points", "displayValue": "88"}]}`, 88, true},
		{"nothing usable", `{"statistics": [{"name": "rebounds", "displayValue": "40"}]}`, 0, false},
		{"unparsable string score falls through", `{"score": "TBD", "linescores": [{"value": 9}]}`, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c competitor
			if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
				t.Fatalf("decode competitor: %v", err)
			}
			got, ok := c.points()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestPeriodLabels(t *testing.T) {
	tests := []struct {
		league string
		period int
		want   string
	}{
		{LeagueNFL, 1, "Q1"},
		{LeagueNFL, 4, "Q4"},
		{LeagueNFL, 5, "OT"},
		{LeagueMensCBB, 1, "1H"},
		{LeagueMensCBB, 2, "2H"},
		{LeagueMensCBB, 3, "OT"},
		{"hockey/nhl", 2, "P2"},
		{LeagueNFL, 0, ""},
	}
	for _, tt := range tests {
		if got := periodLabel(tt.league, tt.period); got != tt.want {
			t.Fatalf("periodLabel(%s, %d) = %q, want %q", tt.league, tt.period, got, tt.want)
		}
	}
}

func TestFindTeamEventAbsent(t *testing.T) {
	var payload scoreboardResponse
	raw := `{"events": [{
		"competitions": [{"competitors": [
			{"team": {"displayName": "Dallas Cowboys"}},
			{"team": {"displayName": "New York Giants"}}
		]}]
	}]}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := findTeamEvent(payload.Events, bearsSpec); ok {
		t.Fatal("expected no event for absent team")
	}
}

func TestNextScheduledEventPicksEarliestFuture(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []event{
		{Date: "2024-12-25T18:00Z"}, // past
		{Date: "2025-02-01T18:00Z"},
		{Date: "2025-01-10T18:00Z"},
	}
	ev, ok := nextScheduledEvent(events, now)
	if !ok || ev.Date != "2025-01-10T18:00Z" {
		t.Fatalf("expected earliest future event, got %+v (%v)", ev, ok)
	}

	if _, ok := nextScheduledEvent([]event{{Date: "2024-01-01T18:00Z"}}, now); ok {
		t.Fatal("expected no event when everything is past")
	}
}
