package config

const (
	defaultBusBaseURL   = "https://www.ctabustracker.com/bustime/api/v3"
	defaultTrainBaseURL = "http://lapi.transitchicago.com/api/1.0"
)

// CTAConfig controls how we talk to the CTA bus and train trackers.
type CTAConfig struct {
	BusKey       string
	BusBaseURL   string
	TrainKey     string
	TrainBaseURL string
}

func loadCTA() CTAConfig {
	return CTAConfig{
		BusKey:       envOrDefault(envBusKey, ""),
		BusBaseURL:   envOrDefault(envBusBaseURL, defaultBusBaseURL),
		TrainKey:     envOrDefault(envTrainKey, ""),
		TrainBaseURL: envOrDefault(envTrainBaseURL, defaultTrainBaseURL),
	}
}
