// Package balldontlie reads the balldontlie NBA stats API. The free tier
// only exposes past and same-day games, so the bulls chain backs this source
// with a static schedule table.
package balldontlie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wallboard/internal/apperr"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches teams and games from balldontlie.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FindTeam locates a team by full name or abbreviation.
func (c *Client) FindTeam(ctx context.Context, names ...string) (*teamResponse, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}

	for i := range payload.Data {
		team := &payload.Data[i]
		for _, n := range names {
			if strings.EqualFold(team.FullName, n) || strings.EqualFold(team.Abbreviation, n) {
				return team, nil
			}
		}
	}
	return nil, nil
}

// GamesForTeam fetches a team's games on one date (YYYY-MM-DD).
func (c *Client) GamesForTeam(ctx context.Context, teamID int, date string) ([]gameResponse, error) {
	params := url.Values{
		"team_ids[]": {strconv.Itoa(teamID)},
		"dates[]":    {date},
		"per_page":   {strconv.Itoa(defaultPerPage)},
	}

	var payload gamesResponse
	if err := c.getJSON(ctx, "/games", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	if c.apiKey == "" {
		return apperr.MissingConfig("BALLDONTLIE_API_KEY")
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
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
		return apperr.UpstreamStatus("balldontlie", resp.StatusCode, string(raw))
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperr.UpstreamBody("balldontlie", string(raw))
	}
	return nil
}
