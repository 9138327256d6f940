package pullups

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"wallboard/internal/apperr"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "pullups.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTodayDefaultsToZero(t *testing.T) {
	store := openStore(t)

	counts, err := store.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Date == "" {
		t.Fatal("expected a date")
	}
	for _, person := range Persons {
		if counts.Persons[person] != 0 {
			t.Fatalf("expected zero for %s, got %d", person, counts.Persons[person])
		}
	}
}

func TestIncrementCreatesAndBumpsRow(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		m, err := store.Increment(ctx, "colin")
		if err != nil {
			t.Fatalf("increment %d: %v", want, err)
		}
		if m.Count != want || m.Person != "colin" {
			t.Fatalf("expected count %d for colin, got %+v", want, m)
		}
	}

	counts, err := store.Today(ctx)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if counts.Persons["colin"] != 3 || counts.Persons["lucas"] != 0 {
		t.Fatalf("unexpected counts %+v", counts.Persons)
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	m, err := store.Decrement(ctx, "lucas")
	if err != nil {
		t.Fatalf("decrement fresh row: %v", err)
	}
	if m.Count != 0 {
		t.Fatalf("expected floor at zero, got %d", m.Count)
	}

	if _, err := store.Increment(ctx, "lucas"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	for i := 0; i < 3; i++ {
		if m, err = store.Decrement(ctx, "lucas"); err != nil {
			t.Fatalf("decrement %d: %v", i, err)
		}
	}
	if m.Count != 0 {
		t.Fatalf("expected repeated decrements to stay at zero, got %d", m.Count)
	}
}

func TestInvalidPersonIsRejectedWithoutWrite(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "mallory")
	var reqErr *apperr.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected request error, got %v", err)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM pullup_counts").Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected no rows written, found %d", rows)
	}
}

func TestPersonNameIsCaseInsensitive(t *testing.T) {
	store := openStore(t)

	m, err := store.Increment(context.Background(), "Colin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Person != "colin" || m.Count != 1 {
		t.Fatalf("expected normalized person, got %+v", m)
	}
}

func TestConcurrentIncrementsDontLoseTaps(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	const taps = 20
	var wg sync.WaitGroup
	errs := make(chan error, taps)
	for i := 0; i < taps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Increment(ctx, "colin"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent increment: %v", err)
	}

	counts, err := store.Today(ctx)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if counts.Persons["colin"] != taps {
		t.Fatalf("expected %d taps recorded, got %d", taps, counts.Persons["colin"])
	}
}
