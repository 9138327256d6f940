package config

const (
	envPort        = "PORT"
	envCORSOrigins = "CORS_ORIGINS"

	envBusKey       = "CTA_BUS_KEY"
	envBusBaseURL   = "CTA_BUS_BASE_URL"
	envTrainKey     = "CTA_TRAIN_KEY"
	envTrainBaseURL = "CTA_TRAIN_BASE_URL"

	envBdlBaseURL  = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey   = "BALLDONTLIE_API_KEY"
	envESPNBaseURL = "ESPN_BASE_URL"

	envSonosClientID     = "SONOS_CLIENT_ID"
	envSonosClientSecret = "SONOS_CLIENT_SECRET"
	envSonosRefreshToken = "SONOS_REFRESH_TOKEN"
	envSonosRedirectURI  = "SONOS_REDIRECT_URI"
	envSonosHouseholdID  = "SONOS_HOUSEHOLD_ID"
	envSonosGroupID      = "SONOS_GROUP_ID"

	envPullupsDB = "PULLUPS_DATABASE"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "3000"
	defaultMetricsPort = "9090"
	defaultPullupsDB   = "data/pullups.db"
)

var defaultCORSOrigins = []string{"*"}
