package config

// PullupsConfig locates the counter's SQLite database file.
type PullupsConfig struct {
	DatabasePath string
}

func loadPullups() PullupsConfig {
	return PullupsConfig{
		DatabasePath: envOrDefault(envPullupsDB, defaultPullupsDB),
	}
}
