package sports

import (
	"context"
	"log/slog"
	"time"

	"wallboard/internal/logging"
	"wallboard/internal/metrics"
)

// Source is one strategy for resolving a team's status. A (nil, nil) return
// means the source had nothing to say and the chain should move on; an error
// is treated the same way unless every source in the chain errors.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*Status, error)
}

// Chain tries sources in order and stops at the first usable result.
type Chain struct {
	team    string
	sources []Source
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewChain builds a fallback chain for one team.
func NewChain(team string, logger *slog.Logger, recorder *metrics.Recorder, sources ...Source) *Chain {
	return &Chain{
		team:    team,
		sources: sources,
		logger:  logger,
		metrics: recorder,
	}
}

// Resolve walks the chain. Per-source failures are logged and swallowed so a
// dead scoreboard feed cannot hide a working schedule feed. Only when every
// source fails does the last error propagate; sources that merely found
// nothing yield the terminal "no data" status.
func (c *Chain) Resolve(ctx context.Context) (Status, error) {
	var lastErr error
	failures := 0

	for _, src := range c.sources {
		start := time.Now()
		status, err := src.Fetch(ctx)
		c.metrics.RecordUpstreamAttempt(src.Name(), time.Since(start), err)

		if err != nil {
			failures++
			lastErr = err
			logging.Warn(c.logger, "sports source failed, trying next",
				slog.String(logging.FieldTeam, c.team),
				slog.String("source", src.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if status != nil {
			return *status, nil
		}
	}

	if len(c.sources) > 0 && failures == len(c.sources) {
		return Status{}, lastErr
	}
	return Status{}, nil
}
