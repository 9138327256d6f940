package balldontlie

import "time"

const (
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 50
	defaultHTTPTimeout = 10 * time.Second

	userAgent = "wallboard/1.0"
)
