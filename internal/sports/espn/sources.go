package espn

import (
	"context"
	"time"

	"wallboard/internal/sports"
	"wallboard/internal/timeutil"
)

// ScoreboardSource finds the team on today's league scoreboard.
type ScoreboardSource struct {
	client *Client
	spec   TeamSpec
	loc    *time.Location
}

// NewScoreboardSource builds the scoreboard strategy for a team.
func NewScoreboardSource(client *Client, spec TeamSpec) *ScoreboardSource {
	return &ScoreboardSource{client: client, spec: spec, loc: timeutil.Central()}
}

func (s *ScoreboardSource) Name() string { return "espn-scoreboard" }

func (s *ScoreboardSource) Fetch(ctx context.Context) (*sports.Status, error) {
	payload, err := s.client.Scoreboard(ctx, s.spec.League)
	if err != nil {
		return nil, err
	}

	ev, ok := findTeamEvent(payload.Events, s.spec)
	if !ok {
		return nil, nil
	}
	return classifyEvent(ev, s.spec, s.loc), nil
}

// ScheduleSource reads the team's own schedule resource for its next game.
type ScheduleSource struct {
	client *Client
	spec   TeamSpec
	loc    *time.Location
	now    func() time.Time
}

// NewScheduleSource builds the schedule strategy for a team.
func NewScheduleSource(client *Client, spec TeamSpec) *ScheduleSource {
	return &ScheduleSource{client: client, spec: spec, loc: timeutil.Central(), now: time.Now}
}

func (s *ScheduleSource) Name() string { return "espn-schedule" }

func (s *ScheduleSource) Fetch(ctx context.Context) (*sports.Status, error) {
	payload, err := s.client.TeamSchedule(ctx, s.spec.League, s.spec.ID)
	if err != nil {
		return nil, err
	}

	ev, ok := nextScheduledEvent(payload.Events, s.now())
	if !ok {
		return nil, nil
	}

	status := classifyEvent(ev, s.spec, s.loc)
	if status == nil || status.Next == nil {
		// A schedule hit that classifies as live belongs to the scoreboard
		// path; report nothing rather than a stale live entry.
		return nil, nil
	}
	return status, nil
}
