package sonos

import "time"

const (
	defaultAuthBaseURL    = "https://api.sonos.com"
	defaultControlBaseURL = "https://api.ws.sonos.com/control/api/v1"

	authorizePath = "/login/v3/oauth/authorize"
	tokenPath     = "/login/v3/oauth/access"

	// oauthScope covers playback read and control, which is everything the
	// wall display needs.
	oauthScope = "playback-control-all"

	// statePlaying is the transport state the control API reports while a
	// group is actively playing.
	statePlaying = "PLAYBACK_STATE_PLAYING"

	defaultHTTPTimeout = 10 * time.Second

	upstreamName = "sonos"
)
