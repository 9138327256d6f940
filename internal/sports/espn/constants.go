package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second

	userAgent = "wallboard/1.0"
)

// League paths under the ESPN site API.
const (
	LeagueNFL          = "football/nfl"
	LeagueMensCBB      = "basketball/mens-college-basketball"
	statePre           = "pre"
	stateIn            = "in"
	statePost          = "post"
	pointsStatisticKey = "points"
)
