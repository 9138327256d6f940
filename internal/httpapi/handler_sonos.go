package httpapi

import (
	"fmt"
	"net/http"
)

// SonosLogin redirects the operator to the Sonos authorization page.
// GET /api/sonos/login
func (h *Handler) SonosLogin(w http.ResponseWriter, r *http.Request) {
	target, err := h.sonos.LoginURL()
	if err != nil {
		writeError(w, r, err, loggerFromRequest(r, h.logger))
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// SonosCallback exchanges the authorization code and shows the refresh token
// once so the operator can copy it into configuration.
// GET /api/sonos/callback?code=...
func (h *Handler) SonosCallback(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)

	tokens, err := h.sonos.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprintf(w, `<pre style="font:14px/1.4 monospace">
Access token (temporary): %s

REFRESH TOKEN (save as SONOS_REFRESH_TOKEN):
%s

After saving it, restart the server, then visit /api/sonos/now-playing.
</pre>`, tokens.AccessToken, tokens.RefreshToken)
}

// SonosNowPlaying reports what the speakers are doing right now.
// GET /api/sonos/now-playing
func (h *Handler) SonosNowPlaying(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)

	np, err := h.sonos.NowPlaying(r.Context())
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, np, logger)
}
