// Package bus translates CTA Bus Tracker v3 queries for the dashboard.
package bus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"wallboard/internal/apperr"
)

// Config controls how the bus client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches predictions, directions and stops from the CTA Bus Tracker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a bus client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Predictions returns upcoming arrivals at a stop. The embedded upstream
// error message, if any, is returned alongside the rows: CTA reports "no
// service" conditions inside a 200 response and the dashboard renders them.
func (c *Client) Predictions(ctx context.Context, stopID, route, top string) ([]Prediction, string, error) {
	if stopID == "" {
		return nil, "", apperr.BadRequest("Missing stpid")
	}
	if route == "" {
		route = defaultRoute
	}
	if top == "" {
		top = defaultTop
	}

	body, err := c.get(ctx, "/getpredictions", url.Values{
		"rt":    {route},
		"stpid": {stopID},
		"top":   {top},
	})
	if err != nil {
		return nil, "", err
	}
	return body.Predictions, body.firstError(), nil
}

// Directions lists the travel directions a route serves.
func (c *Client) Directions(ctx context.Context, route string) ([]Direction, string, error) {
	if route == "" {
		route = defaultRoute
	}

	body, err := c.get(ctx, "/getdirections", url.Values{"rt": {route}})
	if err != nil {
		return nil, "", err
	}
	return body.Directions, body.firstError(), nil
}

// Stops lists the stops for a route, optionally narrowed to one direction.
func (c *Client) Stops(ctx context.Context, route, direction string) ([]Stop, string, error) {
	if route == "" {
		route = defaultRoute
	}

	params := url.Values{"rt": {route}}
	if direction != "" {
		params.Set("dir", direction)
	}

	body, err := c.get(ctx, "/getstops", params)
	if err != nil {
		return nil, "", err
	}
	return body.Stops, body.firstError(), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*responseBody, error) {
	if c.apiKey == "" {
		return nil, apperr.MissingConfig("CTA_BUS_KEY")
	}

	params.Set("format", "json")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

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

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperr.UpstreamBody("CTA", string(raw))
	}

	body := env.body()
	if body == nil {
		return nil, apperr.UpstreamBody("CTA", string(raw))
	}
	return body, nil
}
