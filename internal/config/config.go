package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	CORSOrigins []string
	CTA         CTAConfig
	Sports      SportsConfig
	Sonos       SonosConfig
	Pullups     PullupsConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Secrets default to empty; each adapter reports its own missing key at
// request time rather than failing startup.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		CTA:         loadCTA(),
		Sports:      loadSports(),
		Sonos:       loadSonos(),
		Pullups:     loadPullups(),
		Metrics:     loadMetrics(),
	}
}
