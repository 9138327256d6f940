package balldontlie

import (
	"context"
	"strings"
	"sync"
	"time"

	"wallboard/internal/sports"
	"wallboard/internal/timeutil"
)

// TeamSpec identifies the NBA team this source tracks.
type TeamSpec struct {
	// Names holds the full name and abbreviation used to find the team.
	Names []string
}

// TodaySource reports the team's same-day game from balldontlie. It looks at
// today only; future games come from the static schedule fallback.
type TodaySource struct {
	client *Client
	spec   TeamSpec
	loc    *time.Location
	now    func() time.Time

	// teamID is resolved once on first use and cached under mu; requests
	// hit Fetch concurrently. The roster of NBA franchises does not
	// change mid-season, so a successful lookup is kept forever.
	mu     sync.Mutex
	teamID int
}

// NewTodaySource builds the same-day strategy for an NBA team.
func NewTodaySource(client *Client, spec TeamSpec) *TodaySource {
	return &TodaySource{
		client: client,
		spec:   spec,
		loc:    timeutil.Central(),
		now:    time.Now,
	}
}

func (s *TodaySource) Name() string { return "balldontlie" }

func (s *TodaySource) Fetch(ctx context.Context) (*sports.Status, error) {
	teamID, err := s.resolveTeamID(ctx)
	if err != nil {
		return nil, err
	}
	if teamID == 0 {
		return nil, nil
	}

	today := s.now().In(s.loc).Format(timeutil.DateLayout)
	games, err := s.client.GamesForTeam(ctx, teamID, today)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}

	// One team plays at most once a day; the first entry is the game.
	return s.classify(teamID, games[0]), nil
}

// resolveTeamID serializes the one-time team lookup. A failed lookup is not
// cached, so a transient upstream error retries on the next request.
func (s *TodaySource) resolveTeamID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.teamID != 0 {
		return s.teamID, nil
	}
	team, err := s.client.FindTeam(ctx, s.spec.Names...)
	if err != nil {
		return 0, err
	}
	if team == nil {
		return 0, nil
	}
	s.teamID = team.ID
	return s.teamID, nil
}

func (s *TodaySource) classify(teamID int, game gameResponse) *sports.Status {
	isHome := game.HomeTeam.ID == teamID
	opponent := game.HomeTeam
	if isHome {
		opponent = game.VisitorTeam
	}

	status := strings.ToLower(game.Status)
	isFinal := strings.Contains(status, "final")

	switch {
	case isFinal || inProgress(status):
		usScore, themScore := game.HomeTeamScore, game.VisitorTeamScore
		if !isHome {
			usScore, themScore = themScore, usScore
		}
		period := game.Status
		if isFinal {
			period = sports.FinalPeriod
		}
		return &sports.Status{Live: &sports.LiveGame{
			OpponentName: opponent.FullName,
			UsScore:      usScore,
			ThemScore:    themScore,
			Period:       period,
			Clock:        strings.TrimSpace(game.Time),
			HomeAway:     sports.HomeAwayMark(isHome),
		}}
	default:
		start, ok := parseGameTime(game.Date)
		if !ok {
			return nil
		}
		return &sports.Status{Next: &sports.NextGame{
			OpponentName: opponent.FullName,
			Date:         sports.FormatEventDate(start, s.loc),
			Time:         sports.FormatEventTime(start, s.loc),
			HomeAway:     sports.HomeAwayMark(isHome),
		}}
	}
}

// inProgress matches the quarter/half markers balldontlie puts in the status
// string while a game is running.
func inProgress(status string) bool {
	for _, marker := range []string{"1st", "2nd", "3rd", "4th", "qtr", "quarter", "half"} {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

func parseGameTime(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, timeutil.DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
