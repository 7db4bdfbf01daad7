package ligadata

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLimiter(r float64, burst int) *rate.Limiter {
	if r <= 0 {
		r = defaultDetailRate
	}
	if burst <= 0 {
		burst = defaultDetailBurst
	}
	return rate.NewLimiter(rate.Limit(r), burst)
}
