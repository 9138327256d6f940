package espn

import (
	"fmt"
	"time"

	"wallboard/internal/sports"
)

// TeamSpec describes how to find one of our teams in ESPN feeds.
type TeamSpec struct {
	League string
	ID     string
	// Names holds the display names/abbreviations that identify the team in
	// scoreboard competitor entries.
	Names []string
}

// classifyEvent maps a located event into the display status. State "in" and
// "post" yield Live; "pre" yields Next. An event we cannot make sense of
// yields nil so the chain can keep looking.
func classifyEvent(ev event, spec TeamSpec, loc *time.Location) *sports.Status {
	competitors := ev.competitors()
	if len(competitors) < 2 {
		return nil
	}

	var us, them *competitor
	for i := range competitors {
		if competitors[i].matchesTeam(spec.Names) {
			us = &competitors[i]
		} else {
			them = &competitors[i]
		}
	}
	if us == nil || them == nil {
		return nil
	}

	isHome := us.HomeAway == "home"
	status := ev.status()
	state := statePre
	if status != nil {
		state = status.Type.State
	}

	switch state {
	case stateIn, statePost:
		usScore, _ := us.points()
		themScore, _ := them.points()
		live := &sports.LiveGame{
			OpponentName: them.Team.DisplayName,
			OpponentLogo: them.Team.logoURL(),
			UsScore:      usScore,
			ThemScore:    themScore,
			HomeAway:     sports.HomeAwayMark(isHome),
		}
		if state == statePost {
			live.Period = sports.FinalPeriod
		} else {
			live.Period = periodLabel(spec.League, status.Period)
			live.Clock = status.DisplayClock
		}
		return &sports.Status{Live: live}
	default:
		start, ok := ev.startTime()
		if !ok {
			return nil
		}
		return &sports.Status{Next: &sports.NextGame{
			OpponentName: them.Team.DisplayName,
			OpponentLogo: them.Team.logoURL(),
			Date:         sports.FormatEventDate(start, loc),
			Time:         sports.FormatEventTime(start, loc),
			HomeAway:     sports.HomeAwayMark(isHome),
		}}
	}
}

// periodLabel renders the in-game period per league convention: quarters for
// football, halves for college basketball, "OT" beyond regulation.
func periodLabel(league string, period int) string {
	if period <= 0 {
		return ""
	}
	switch league {
	case LeagueNFL:
		if period > 4 {
			return "OT"
		}
		return fmt.Sprintf("Q%d", period)
	case LeagueMensCBB:
		if period > 2 {
			return "OT"
		}
		switch period {
		case 1:
			return "1H"
		default:
			return "2H"
		}
	default:
		return fmt.Sprintf("P%d", period)
	}
}

// findTeamEvent scans scoreboard events for one involving the team.
func findTeamEvent(events []event, spec TeamSpec) (event, bool) {
	for _, ev := range events {
		for _, comp := range ev.competitors() {
			if comp.matchesTeam(spec.Names) {
				return ev, true
			}
		}
	}
	return event{}, false
}

// nextScheduledEvent picks the earliest future event from a schedule feed.
func nextScheduledEvent(events []event, now time.Time) (event, bool) {
	var best event
	var bestTime time.Time
	found := false
	for _, ev := range events {
		start, ok := ev.startTime()
		if !ok || !start.After(now) {
			continue
		}
		if !found || start.Before(bestTime) {
			best, bestTime, found = ev, start, true
		}
	}
	return best, found
}
