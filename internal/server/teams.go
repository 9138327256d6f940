package server

import (
	"log/slog"

	"wallboard/internal/config"
	"wallboard/internal/metrics"
	"wallboard/internal/sports"
	"wallboard/internal/sports/balldontlie"
	"wallboard/internal/sports/espn"
	"wallboard/internal/sports/staticsched"
)

// Specs for the teams the wall display tracks. The bears and creighton ride
// ESPN's site API; the bulls use balldontlie (free tier, today only) backed
// by a static schedule.
var (
	bearsSpec = espn.TeamSpec{
		League: espn.LeagueNFL,
		ID:     "3",
		Names:  []string{"Chicago Bears", "Bears", "CHI"},
	}
	creightonSpec = espn.TeamSpec{
		League: espn.LeagueMensCBB,
		ID:     "156",
		Names:  []string{"Creighton Bluejays", "Creighton", "CREI"},
	}
	bullsSpec = balldontlie.TeamSpec{
		Names: []string{"Chicago Bulls", "CHI"},
	}
)

func buildSportsService(cfg config.SportsConfig, logger *slog.Logger, recorder *metrics.Recorder) *sports.Service {
	espnClient := espn.NewClient(espn.Config{BaseURL: cfg.ESPNBaseURL})
	bdlClient := balldontlie.NewClient(balldontlie.Config{
		BaseURL: cfg.BalldontlieBaseURL,
		APIKey:  cfg.BalldontlieAPIKey,
	})

	return sports.NewService(map[string]*sports.Chain{
		sports.TeamBears: sports.NewChain(sports.TeamBears, logger, recorder,
			espn.NewScoreboardSource(espnClient, bearsSpec),
			espn.NewScheduleSource(espnClient, bearsSpec),
		),
		sports.TeamCreighton: sports.NewChain(sports.TeamCreighton, logger, recorder,
			espn.NewScoreboardSource(espnClient, creightonSpec),
			espn.NewScheduleSource(espnClient, creightonSpec),
		),
		sports.TeamBulls: sports.NewChain(sports.TeamBulls, logger, recorder,
			balldontlie.NewTodaySource(bdlClient, bullsSpec),
			staticsched.NewSource(staticsched.Bulls()),
		),
	})
}
