package config

import (
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port              string
	PollInterval      Duration
	TargetCap         int
	LoadRetryInterval Duration
	Scopes            []string
	CORSOrigins       []string
	Feed              FeedConfig
	Metrics           MetricsConfig
}

// FeedConfig controls how the upstream schedule/detail feeds are reached.
type FeedConfig struct {
	BaseURL       string
	DisplayOffset float64 // display timezone fixed UTC offset in hours
	DetailRate    float64 // detail requests per second
	DetailBurst   int
}

// Load reads configuration from the environment (and a .env file when
// present) with sensible defaults.
func Load() Config {
	// Absent .env is the normal production case.
	_ = godotenv.Load()

	return Config{
		Port:              envOrDefault(envPort, defaultPort),
		PollInterval:      durationEnvOrDefault(envPollInterval, defaultPollInterval),
		TargetCap:         intEnvOrDefault(envTargetCap, defaultTargetCap),
		LoadRetryInterval: durationEnvOrDefault(envLoadRetry, defaultLoadRetry),
		Scopes:            listEnvOrDefault(envScopes, defaultScopes),
		CORSOrigins:       listEnvOrDefault(envCORSOrigins, "*"),
		Feed: FeedConfig{
			BaseURL:       envOrDefault(envFeedBaseURL, ""),
			DisplayOffset: floatEnvOrDefault(envDisplayOffset, defaultDisplayOffset),
			DetailRate:    floatEnvOrDefault(envDetailRate, defaultDetailRate),
			DetailBurst:   intEnvOrDefault(envDetailBurst, defaultDetailBurst),
		},
		Metrics: loadMetrics(),
	}
}
