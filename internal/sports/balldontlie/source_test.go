package balldontlie

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wallboard/internal/testutil"
)

var bullsSpec = TeamSpec{Names: []string{"Chicago Bulls", "CHI"}}

const teamsBody = `{"data": [
	{"id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS"},
	{"id": 5, "full_name": "Chicago Bulls", "abbreviation": "CHI"}
]}`

func newSource(t *testing.T, gamesBody string) (*TodaySource, *testutil.CountingTransport) {
	t.Helper()
	transport := &testutil.CountingTransport{Next: func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/teams") {
			return testutil.JSONResponse(http.StatusOK, teamsBody), nil
		}
		if req.URL.Query().Get("team_ids[]") != "5" {
			t.Fatalf("expected bulls team id in query, got %s", req.URL.RawQuery)
		}
		return testutil.JSONResponse(http.StatusOK, gamesBody), nil
	}}

	client := NewClient(Config{
		BaseURL:    "http://example.com/v1",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: transport},
	})
	src := NewTodaySource(client, bullsSpec)
	src.now = func() time.Time { return time.Date(2025, 1, 7, 20, 0, 0, 0, time.UTC) }
	return src, transport
}

func TestFetchLiveGame(t *testing.T) {
	src, _ := newSource(t, `{"data": [{
		"id": 99,
		"date": "2025-01-07",
		"status": "3rd Qtr",
		"time": "5:12",
		"home_team": {"id": 5, "full_name": "Chicago Bulls"},
		"visitor_team": {"id": 2, "full_name": "Boston Celtics"},
		"home_team_score": 78,
		"visitor_team_score": 81
	}]}`)

	status, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status == nil || status.Live == nil {
		t.Fatalf("expected live status, got %+v", status)
	}
	if status.Next != nil {
		t.Fatal("live and next must be mutually exclusive")
	}
	live := status.Live
	if live.OpponentName != "Boston Celtics" || live.UsScore != 78 || live.ThemScore != 81 {
		t.Fatalf("unexpected live shape %+v", live)
	}
	if live.Period != "3rd Qtr" || live.Clock != "5:12" || live.HomeAway != "vs" {
		t.Fatalf("unexpected period/clock %+v", live)
	}
}

func TestFetchFinalGameSwapsScoresWhenAway(t *testing.T) {
	src, _ := newSource(t, `{"data": [{
		"id": 99,
		"date": "2025-01-07",
		"status": "Final",
		"home_team": {"id": 2, "full_name": "Boston Celtics"},
		"visitor_team": {"id": 5, "full_name": "Chicago Bulls"},
		"home_team_score": 110,
		"visitor_team_score": 102
	}]}`)

	status, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	live := status.Live
	if live == nil {
		t.Fatalf("expected live status for final, got %+v", status)
	}
	if live.Period != "F" || live.UsScore != 102 || live.ThemScore != 110 {
		t.Fatalf("unexpected final shape %+v", live)
	}
	if live.HomeAway != "@" {
		t.Fatalf("expected away marker, got %s", live.HomeAway)
	}
}

func TestFetchUpcomingGame(t *testing.T) {
	src, _ := newSource(t, `{"data": [{
		"id": 99,
		"date": "2025-01-08T01:00:00Z",
		"status": "7:00 pm ET",
		"home_team": {"id": 5, "full_name": "Chicago Bulls"},
		"visitor_team": {"id": 2, "full_name": "Boston Celtics"}
	}]}`)

	status, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status == nil || status.Next == nil {
		t.Fatalf("expected next status, got %+v", status)
	}
	if status.Live != nil {
		t.Fatal("live and next must be mutually exclusive")
	}
	if status.Next.OpponentName != "Boston Celtics" || status.Next.HomeAway != "vs" {
		t.Fatalf("unexpected next shape %+v", status.Next)
	}
}

func TestFetchNoGameTodayYieldsNothing(t *testing.T) {
	src, _ := newSource(t, `{"data": []}`)

	status, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status != nil {
		t.Fatalf("expected nothing, got %+v", status)
	}
}

func TestFetchCachesTeamLookup(t *testing.T) {
	src, transport := newSource(t, `{"data": []}`)

	for i := 0; i < 2; i++ {
		if _, err := src.Fetch(context.Background()); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	// First fetch: /teams + /games. Second fetch: /games only.
	if calls := transport.Calls.Load(); calls != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", calls)
	}
}

func TestFetchMissingKeyPropagatesError(t *testing.T) {
	client := NewClient(Config{HTTPClient: &http.Client{Transport: &testutil.CountingTransport{}}})
	src := NewTodaySource(client, bullsSpec)

	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestFetchConcurrentRequestsShareTeamLookup(t *testing.T) {
	var teamCalls atomic.Int32
	transport := testutil.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/teams") {
			teamCalls.Add(1)
			return testutil.JSONResponse(http.StatusOK, teamsBody), nil
		}
		return testutil.JSONResponse(http.StatusOK, `{"data": []}`), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://example.com/v1",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: transport},
	})
	src := NewTodaySource(client, bullsSpec)
	src.now = func() time.Time { return time.Date(2025, 1, 7, 20, 0, 0, 0, time.UTC) }

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := src.Fetch(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent fetch: %v", err)
		}
	}
	if calls := teamCalls.Load(); calls != 1 {
		t.Fatalf("expected one team lookup, got %d", calls)
	}
}
