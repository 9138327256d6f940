// Package sonos talks to the Sonos cloud control API: an operator-facing
// OAuth bootstrap (login redirect + code exchange) and the runtime
// now-playing lookup driven by a long-lived refresh token.
package sonos

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"wallboard/internal/apperr"
	"wallboard/internal/config"
)

// Config controls how the client reaches the Sonos cloud.
type Config struct {
	Credentials config.SonosConfig
	// AuthBaseURL and ControlBaseURL override the Sonos endpoints, used by
	// tests.
	AuthBaseURL    string
	ControlBaseURL string
	HTTPClient     *http.Client
}

// Client performs OAuth flows and control API calls against the Sonos cloud.
type Client struct {
	creds          config.SonosConfig
	authBaseURL    string
	controlBaseURL string
	httpClient     httpDoer
	newState       func() string
}

// NewClient constructs a Sonos client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		creds:          cfg.Credentials,
		authBaseURL:    normalizeBaseURL(cfg.AuthBaseURL, defaultAuthBaseURL),
		controlBaseURL: normalizeBaseURL(cfg.ControlBaseURL, defaultControlBaseURL),
		httpClient:     resolveHTTPClient(cfg.HTTPClient),
		newState:       uuid.NewString,
	}
}

// LoginURL builds the authorization redirect target with a fresh anti-forgery
// state token. The state is not persisted; the callback does not verify it.
func (c *Client) LoginURL() (string, error) {
	if c.creds.ClientID == "" {
		return "", apperr.MissingConfig("SONOS_CLIENT_ID")
	}
	if c.creds.RedirectURI == "" {
		return "", apperr.MissingConfig("SONOS_REDIRECT_URI")
	}

	params := url.Values{
		"client_id":     {c.creds.ClientID},
		"response_type": {"code"},
		"redirect_uri":  {c.creds.RedirectURI},
		"scope":         {oauthScope},
		"state":         {c.newState()},
	}
	return c.authBaseURL + authorizePath + "?" + params.Encode(), nil
}

// ExchangeCode trades an authorization code for an access/refresh token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Tokens, error) {
	if code == "" {
		return nil, apperr.BadRequest("Missing code")
	}
	return c.tokenGrant(ctx, url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.creds.RedirectURI},
	})
}

// RefreshAccessToken obtains a fresh access token from the configured
// long-lived refresh token.
func (c *Client) RefreshAccessToken(ctx context.Context) (*Tokens, error) {
	if c.creds.RefreshToken == "" {
		return nil, apperr.MissingConfig("SONOS_REFRESH_TOKEN")
	}
	return c.tokenGrant(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.creds.RefreshToken},
	})
}

func (c *Client) tokenGrant(ctx context.Context, form url.Values) (*Tokens, error) {
	if c.creds.ClientID == "" {
		return nil, apperr.MissingConfig("SONOS_CLIENT_ID")
	}
	if c.creds.ClientSecret == "" {
		return nil, apperr.MissingConfig("SONOS_CLIENT_SECRET")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.authBaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.creds.ClientID + ":" + c.creds.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.UpstreamStatus(upstreamName, resp.StatusCode, string(raw))
	}

	var tokens Tokens
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, apperr.UpstreamBody(upstreamName, string(raw))
	}
	return &tokens, nil
}

// controlGet performs one bearer-authorized GET against the control API.
func (c *Client) controlGet(ctx context.Context, token, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.controlBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apperr.UpstreamStatus(upstreamName, resp.StatusCode, string(raw))
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperr.UpstreamBody(upstreamName, string(raw))
	}
	return nil
}
