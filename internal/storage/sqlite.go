// Package storage provides SQLite-based persistence for meta-progression
// records and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/catfish/internal/progress"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished run in the history table.
type Run struct {
	ID          string
	Profile     string
	Score       int
	CoinsEarned int
	Duration    time.Duration
	Seed        int64
	CreatedAt   time.Time
}

// Profile is a stored meta-progression record.
type Profile struct {
	Name      string
	Meta      progress.Meta
	UpdatedAt time.Time
}

// ProfileStats aggregates the run history of one profile.
type ProfileStats struct {
	Profile    string
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalCoins int
	PlayTime   time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Writers from several sessions share one database; a busy lock waits
	// instead of failing the write.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot enable WAL: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins_earned INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(profile, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadMeta returns the record stored for profile.
// A missing profile yields progress.Default() and no error. A corrupt record
// also yields progress.Default(), together with an error wrapping
// progress.ErrCorruptRecord that callers may log and ignore.
func (s *Store) LoadMeta(profile string) (progress.Meta, error) {
	var record string
	err := s.db.QueryRow("SELECT record FROM profiles WHERE name = ?", profile).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Default(), nil
	}
	if err != nil {
		return progress.Default(), fmt.Errorf("storage: cannot load profile %s: %w", profile, err)
	}

	meta, err := progress.Decode([]byte(record))
	if err != nil {
		return meta, fmt.Errorf("storage: profile %s: %w", profile, err)
	}
	return meta, nil
}

// SaveMeta stores the record for profile, replacing any previous one.
func (s *Store) SaveMeta(profile string, m progress.Meta) error {
	data, err := progress.Encode(m)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (name, record, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET record = excluded.record, updated_at = CURRENT_TIMESTAMP`,
		profile, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", profile, err)
	}
	return nil
}

// Profiles lists every stored profile by name. Corrupt records are listed
// with the default record.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query("SELECT name, record, updated_at FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var record string
		var updatedAt any
		if err := rows.Scan(&p.Name, &record, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Meta, _ = progress.Decode([]byte(record))
		p.UpdatedAt = parseTime(updatedAt)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// RecordRun appends a finished run to the history and returns its ID.
// A missing ID is generated.
func (s *Store) RecordRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, profile, score, coins_earned, duration_ms, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Profile, run.Score, run.CoinsEarned, run.Duration.Milliseconds(), run.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best N runs for profile, highest score first.
func (s *Store) TopRuns(profile string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, profile, score, coins_earned, duration_ms, seed, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		profile, limit,
	)
}

// RecentRuns retrieves the last N runs for profile, newest first.
func (s *Store) RecentRuns(profile string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, profile, score, coins_earned, duration_ms, seed, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		profile, limit,
	)
}

func (s *Store) queryRuns(query, profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(query, profile, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Score, &r.CoinsEarned, &durationMS, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates the run history of profile.
func (s *Store) Stats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	var playMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(coins_earned), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalCoins, &playMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes the run history of profile. The meta record is kept.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles SQLite datetimes returned as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
