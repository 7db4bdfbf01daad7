package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envTargetCap     = "POLL_TARGET_CAP"
	envFeedBaseURL   = "FEED_BASE_URL"
	envDisplayOffset = "DISPLAY_GMT_OFFSET"
	envScopes        = "SCOPES"
	envDetailRate    = "FEED_DETAIL_RATE"
	envDetailBurst   = "FEED_DETAIL_BURST"
	envLoadRetry     = "AGENDA_LOAD_RETRY_INTERVAL"
	envCORSOrigins   = "CORS_ALLOW_ORIGINS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "8080"
	// Observed live-overlay cadence; cycles complete well inside this.
	defaultPollInterval = 20 * Duration(time.Second)
	defaultTargetCap    = 12
	// Guatemala: fixed UTC-6, no DST.
	defaultDisplayOffset = -6.0
	defaultScopes        = "domestic-league,confederation-qualifiers"
	defaultDetailRate    = 8.0
	defaultDetailBurst   = 4
	defaultLoadRetry     = 30 * Duration(time.Second)
	defaultMetricsPort   = "9090"
)
