package bus

import "time"

const (
	upstreamName = "cta-bus"

	defaultBaseURL     = "https://www.ctabustracker.com/bustime/api/v3"
	defaultRoute       = "77"
	defaultTop         = "6"
	defaultHTTPTimeout = 10 * time.Second

	userAgent = "wallboard/1.0"
)
