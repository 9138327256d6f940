package espn

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// The site API is loosely typed: numeric fields arrive as numbers or
// strings depending on league and event state, and several fields exist only
// for some sports. Everything here decodes tolerantly and exposes explicit
// "absent" values instead of failing.

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type scheduleResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	Competitions []competition `json:"competitions"`
	Status       *eventStatus  `json:"status"`
}

type competition struct {
	Date        string       `json:"date"`
	Competitors []competitor `json:"competitors"`
	Status      *eventStatus `json:"status"`
}

type competitor struct {
	HomeAway   string      `json:"homeAway"`
	Team       teamInfo    `json:"team"`
	Score      scoreField  `json:"score"`
	Linescores []linescore `json:"linescores"`
	Statistics []statistic `json:"statistics"`
}

type teamInfo struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Location         string `json:"location"`
	Logo             string `json:"logo"`
	Logos            []logo `json:"logos"`
}

type logo struct {
	Href string `json:"href"`
}

type linescore struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type statistic struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type eventStatus struct {
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	ShortDetail string `json:"shortDetail"`
}

// scoreField tolerates a score encoded as a JSON string, a number, or an
// object with a displayValue. Absent or unparsable values are simply "unset".
type scoreField struct {
	value float64
	set   bool
}

func (s *scoreField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		s.value, s.set = asNumber, true
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(asString), 64); err == nil {
			s.value, s.set = v, true
		}
		return nil
	}

	var asObject struct {
		Value        *float64 `json:"value"`
		DisplayValue string   `json:"displayValue"`
	}
	if err := json.Unmarshal(data, &asObject); err == nil {
		if asObject.Value != nil {
			s.value, s.set = *asObject.Value, true
		} else if v, err := strconv.ParseFloat(strings.TrimSpace(asObject.DisplayValue), 64); err == nil {
			s.value, s.set = v, true
		}
	}
	return nil
}

// points resolves a competitor's score, trying in order: the direct score
// field, the sum of per-period linescores, then a statistic named "points".
// The second return reports whether any alternative yielded a finite number.
func (c competitor) points() (int, bool) {
	if c.Score.set && !math.IsNaN(c.Score.value) && !math.IsInf(c.Score.value, 0) {
		return int(c.Score.value), true
	}

	if len(c.Linescores) > 0 {
		sum := 0.0
		found := false
		for _, ls := range c.Linescores {
			if ls.Value != 0 || ls.DisplayValue != "" {
				found = true
			}
			if ls.Value != 0 {
				sum += ls.Value
			} else if v, err := strconv.ParseFloat(strings.TrimSpace(ls.DisplayValue), 64); err == nil {
				sum += v
			}
		}
		if found {
			return int(sum), true
		}
	}

	for _, st := range c.Statistics {
		if !strings.EqualFold(st.Name, pointsStatisticKey) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(st.DisplayValue), 64); err == nil {
			return int(v), true
		}
	}

	return 0, false
}

// matchesTeam reports whether this competitor is the target team, by
// display name, location, or abbreviation.
func (c competitor) matchesTeam(names []string) bool {
	for _, n := range names {
		if strings.EqualFold(c.Team.DisplayName, n) ||
			strings.EqualFold(c.Team.ShortDisplayName, n) ||
			strings.EqualFold(c.Team.Location, n) ||
			strings.EqualFold(c.Team.Abbreviation, n) {
			return true
		}
	}
	return false
}

func (t teamInfo) logoURL() string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}

// eventTime parses ESPN's "2006-01-02T15:04Z" timestamps, tolerating full
// RFC3339 as well.
func eventTime(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// status prefers the competition-level status, falling back to the event.
func (e event) status() *eventStatus {
	if len(e.Competitions) > 0 && e.Competitions[0].Status != nil {
		return e.Competitions[0].Status
	}
	return e.Status
}

func (e event) competitors() []competitor {
	if len(e.Competitions) == 0 {
		return nil
	}
	return e.Competitions[0].Competitors
}

func (e event) startTime() (time.Time, bool) {
	if len(e.Competitions) > 0 && e.Competitions[0].Date != "" {
		if t, ok := eventTime(e.Competitions[0].Date); ok {
			return t, true
		}
	}
	return eventTime(e.Date)
}
