package config

const (
	defaultBdlBaseURL  = "https://api.balldontlie.io/v1"
	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// SportsConfig controls the sports adapter's upstream feeds.
type SportsConfig struct {
	BalldontlieBaseURL string
	BalldontlieAPIKey  string
	ESPNBaseURL        string
}

func loadSports() SportsConfig {
	return SportsConfig{
		BalldontlieBaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		BalldontlieAPIKey:  envOrDefault(envBdlAPIKey, ""),
		ESPNBaseURL:        envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}
