package config

// SonosConfig holds the Sonos cloud control credentials and preferences.
// HouseholdID and GroupID are optional pins; when empty the adapter uses the
// first household and first group it discovers.
type SonosConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURI  string
	HouseholdID  string
	GroupID      string
}

func loadSonos() SonosConfig {
	return SonosConfig{
		ClientID:     envOrDefault(envSonosClientID, ""),
		ClientSecret: envOrDefault(envSonosClientSecret, ""),
		RefreshToken: envOrDefault(envSonosRefreshToken, ""),
		RedirectURI:  envOrDefault(envSonosRedirectURI, ""),
		HouseholdID:  envOrDefault(envSonosHouseholdID, ""),
		GroupID:      envOrDefault(envSonosGroupID, ""),
	}
}
