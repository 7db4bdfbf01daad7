package ligadata

import "time"

const (
	providerName = "ligadata"

	defaultBaseURL     = "https://feeds.ligadata.gt/v2"
	defaultHTTPTimeout = 10 * time.Second

	// Guatemala has no DST; the display offset is a fixed UTC-6.
	defaultDisplayOffset = -6.0

	// Detail requests fan out in parallel per poll cycle; the limiter keeps a
	// burst of targets from hammering the CDN.
	defaultDetailRate  = 8.0 // requests per second
	defaultDetailBurst = 4
)
