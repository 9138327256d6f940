package sports

import "context"

// Supported team keys as the front end sends them.
const (
	TeamBulls     = "bulls"
	TeamBears     = "bears"
	TeamCreighton = "creighton"
)

// Service routes a team key to its fallback chain.
type Service struct {
	chains map[string]*Chain
}

// NewService builds a service from per-team chains.
func NewService(chains map[string]*Chain) *Service {
	return &Service{chains: chains}
}

// Status resolves the display status for a team key. An unrecognized key is
// not an error: it yields the empty status and recognized=false so the
// handler can return `{live: null, next: null}`.
func (s *Service) Status(ctx context.Context, team string) (Status, bool, error) {
	chain, ok := s.chains[team]
	if !ok {
		return Status{}, false, nil
	}
	status, err := chain.Resolve(ctx)
	return status, true, err
}
