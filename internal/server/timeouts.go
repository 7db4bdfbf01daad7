package server

import "time"

const (
	// Requests carry at most a tiny JSON body (tab activation).
	readTimeout = 5 * time.Second
	// Refresh proxies an agenda fetch through the retrying provider; the
	// write timeout must outlast its worst case (attempts x client timeout
	// plus backoff).
	writeTimeout = 35 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
