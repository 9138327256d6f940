// Package train translates CTA Train Tracker station arrival queries.
package train

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"wallboard/internal/apperr"
)

// Config controls how the train client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches station arrivals from the CTA Train Tracker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a train client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Arrivals returns predicted arrivals for a station (mapid). The upstream
// speaks XML by default; outputType=JSON asks for JSON directly. An errCd
// other than "0" is surfaced as the embedded error message.
func (c *Client) Arrivals(ctx context.Context, mapID, max string) ([]Arrival, string, error) {
	if mapID == "" {
		return nil, "", apperr.BadRequest("Missing mapid")
	}
	if c.apiKey == "" {
		return nil, "", apperr.MissingConfig("CTA_TRAIN_KEY")
	}

	params := url.Values{
		"key":        {c.apiKey},
		"mapid":      {mapID},
		"outputType": {"JSON"},
	}
	if max != "" {
		params.Set("max", max)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ttarrivals.aspx?"+params.Encode(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", apperr.UpstreamStatus(upstreamName, resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Ctatt == nil {
		return nil, "", apperr.UpstreamBody("CTA", string(raw))
	}

	var apiErr string
	if env.Ctatt.ErrorCode != "" && env.Ctatt.ErrorCode != "0" {
		apiErr = env.Ctatt.ErrorName
		if apiErr == "" {
			apiErr = "Train Tracker error " + env.Ctatt.ErrorCode
		}
	}

	etas := env.Ctatt.etas()
	rows := make([]Arrival, 0, len(etas))
	for _, e := range etas {
		rows = append(rows, mapArrival(e))
	}
	return rows, apiErr, nil
}
