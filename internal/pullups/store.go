// Package pullups persists the per-day pull-up counter. One row per
// (date, person); a missing row reads as zero and decrements floor at zero.
package pullups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"wallboard/internal/apperr"
	"wallboard/internal/timeutil"
)

// Persons is the closed set of people the counter tracks.
var Persons = []string{"colin", "lucas"}

const schema = `
CREATE TABLE IF NOT EXISTS pullup_counts (
	date    TEXT NOT NULL,
	person  TEXT NOT NULL,
	count   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (date, person)
)`

// Counts is one day's reading for every known person.
type Counts struct {
	Date    string
	Persons map[string]int
}

// Mutation reports the row state after an increment or decrement.
type Mutation struct {
	Person string `json:"person"`
	Count  int    `json:"count"`
	Date   string `json:"date"`
}

// Store wraps the SQLite database backing the counter.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates (if needed) and opens the counter database, bootstrapping the
// schema. The parent directory is created on first run.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open counter db: %w", err)
	}

	// One writer at a time keeps SQLite happy under concurrent requests;
	// the contention here is two people tapping a wall display.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Today reads every known person's count for the current Chicago date.
// Absent rows are zero, not errors.
func (s *Store) Today(ctx context.Context) (Counts, error) {
	date := timeutil.Today(s.now())
	out := Counts{Date: date, Persons: make(map[string]int, len(Persons))}

	for _, person := range Persons {
		var count int
		err := s.db.QueryRowContext(ctx,
			"SELECT count FROM pullup_counts WHERE date = ? AND person = ?",
			date, person).Scan(&count)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return Counts{}, fmt.Errorf("read count for %s: %w", person, err)
		}
		out.Persons[person] = count
	}
	return out, nil
}

// Increment adds one to the person's count for today.
func (s *Store) Increment(ctx context.Context, person string) (Mutation, error) {
	return s.apply(ctx, person, 1)
}

// Decrement removes one from the person's count for today, never dropping
// below zero.
func (s *Store) Decrement(ctx context.Context, person string) (Mutation, error) {
	return s.apply(ctx, person, -1)
}

// apply performs the mutation as one atomic upsert so concurrent taps on the
// same (date, person) key serialize inside SQLite instead of racing in a
// read-then-write.
func (s *Store) apply(ctx context.Context, person string, delta int) (Mutation, error) {
	person = strings.ToLower(person)
	if !ValidPerson(person) {
		return Mutation{}, apperr.BadRequest("Invalid person")
	}

	date := timeutil.Today(s.now())
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pullup_counts (date, person, count) VALUES (?, ?, MAX(0, ?))
		ON CONFLICT(date, person) DO UPDATE SET count = MAX(0, count + ?)`,
		date, person, delta, delta)
	if err != nil {
		return Mutation{}, fmt.Errorf("upsert count for %s: %w", person, err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT count FROM pullup_counts WHERE date = ? AND person = ?",
		date, person).Scan(&count); err != nil {
		return Mutation{}, fmt.Errorf("read back count for %s: %w", person, err)
	}
	return Mutation{Person: person, Count: count, Date: date}, nil
}

// ValidPerson reports whether the name belongs to the tracked set.
func ValidPerson(person string) bool {
	for _, p := range Persons {
		if p == person {
			return true
		}
	}
	return false
}
