package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"wallboard/internal/config"
	"wallboard/internal/pullups"
	"wallboard/internal/sports"
	"wallboard/internal/testutil"
)

type stubHTTPServer struct {
	mu            sync.Mutex
	addr          string
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
	block         chan struct{}
	started       chan struct{}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	if s.started != nil {
		close(s.started)
	}
	if s.block != nil {
		<-s.block
	}
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdownCalls++
	if s.block != nil {
		select {
		case <-s.block:
		default:
			close(s.block)
		}
	}
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.Port = "0"
	cfg.Metrics.Enabled = false
	cfg.Pullups.DatabasePath = filepath.Join(t.TempDir(), "pullups.db")
	return cfg
}

func TestNewWiresRoutesAndStore(t *testing.T) {
	srv, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer srv.store.Close()

	router := srv.httpServer.Handler()
	if router == nil {
		t.Fatal("expected a wired router")
	}

	rr := testutil.Serve(router, http.MethodGet, "/api/ping", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertNoStore(t, rr)

	rr = testutil.Serve(router, http.MethodGet, "/api/pullups", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestNewFailsOnUnusableDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	// A parent that is a regular file makes os.MkdirAll in pullups.Open
	// fail with ENOTDIR.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}
	cfg.Pullups.DatabasePath = filepath.Join(blocker, "pullups.db")

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected open error for unusable path")
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	store, err := pullups.Open(cfg.Pullups.DatabasePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	srv := newServerWithStore(cfg, nil, store)
	stub := &stubHTTPServer{addr: ":0", block: make(chan struct{}), started: make(chan struct{})}
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-stub.started:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not start")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.listenCalls != 1 || stub.shutdownCalls != 1 {
		t.Fatalf("unexpected lifecycle calls: listen=%d shutdown=%d", stub.listenCalls, stub.shutdownCalls)
	}
}

func TestSportsChainsCoverAllTeams(t *testing.T) {
	cfg := testConfig(t)
	// Point the feeds at a dead endpoint; chains swallow fetch failures
	// and recognition is what is under test.
	cfg.Sports.ESPNBaseURL = "http://127.0.0.1:1"
	cfg.Sports.BalldontlieBaseURL = "http://127.0.0.1:1"
	svc := buildSportsService(cfg.Sports, nil, nil)

	for _, team := range []string{sports.TeamBulls, sports.TeamBears, sports.TeamCreighton} {
		if _, recognized, _ := svc.Status(context.Background(), team); !recognized {
			t.Fatalf("expected chain for %s", team)
		}
	}
	if _, recognized, _ := svc.Status(context.Background(), "cubs"); recognized {
		t.Fatal("unexpected chain for unknown team")
	}
}
