// Package espn reads the ESPN site scoreboard and team schedule feeds.
package espn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"wallboard/internal/apperr"
)

// Config controls how the ESPN client reaches the site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches league scoreboards and team schedules. The site API needs
// no key.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Scoreboard fetches the current day's scoreboard for a league path such as
// "football/nfl".
func (c *Client) Scoreboard(ctx context.Context, league string) (*scoreboardResponse, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, "/"+league+"/scoreboard", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TeamSchedule fetches a team's schedule resource.
func (c *Client) TeamSchedule(ctx context.Context, league, teamID string) (*scheduleResponse, error) {
	var payload scheduleResponse
	if err := c.getJSON(ctx, "/"+league+"/teams/"+teamID+"/schedule", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

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
		return apperr.UpstreamStatus("espn", resp.StatusCode, string(raw))
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperr.UpstreamBody("ESPN", string(raw))
	}
	return nil
}
