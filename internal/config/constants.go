package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envSeason       = "SEASON"
	envRecentWindow = "RECENT_WINDOW"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	defaultPort     = "5000"
	defaultProvider = ProviderBalldontlie
	defaultSeason   = 2024
	// Trailing window for /recent-games.
	defaultRecentWindow = 7 * 24 * Duration(time.Hour)
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nba-playoffs-service"
	defaultCORSOrigins  = "*"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderBalldontlie = "balldontlie"
	ProviderFixture     = "fixture"
)
