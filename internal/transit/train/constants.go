package train

import "time"

const (
	upstreamName = "cta-train"

	defaultBaseURL     = "http://lapi.transitchicago.com/api/1.0"
	defaultHTTPTimeout = 10 * time.Second

	userAgent = "wallboard/1.0"
)
