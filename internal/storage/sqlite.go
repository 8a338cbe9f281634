// Package storage provides SQLite-based persistence for player profiles and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/game"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

// Store manages the SQLite database connection. It is safe for concurrent
// use; every SSH session shares one Store.
type Store struct {
	db *sql.DB
}

// ProfileRecord is the persisted state of one player.
type ProfileRecord struct {
	Name      string
	Settings  config.Settings
	Highscore int
	Coins     int
	Inventory game.Inventory
	Cosmetics game.Cosmetics
	UpdatedAt time.Time
}

// RunEntry is a single finished run.
type RunEntry struct {
	ID           int64
	RunID        string
	Profile      string
	Score        int
	CorrectCount int
	Difficulty   config.Difficulty
	Mode         config.MathMode
	Reason       string
	Duration     time.Duration
	CreatedAt    time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
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
			settings TEXT NOT NULL DEFAULT '',
			highscore INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			inventory TEXT NOT NULL DEFAULT '',
			cosmetics TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			correct_count INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL,
			mode TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(profile, score DESC);

		CREATE TABLE IF NOT EXISTS completions (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, key)
		);
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

// EnsureProfile creates the profile row if it is missing.
func (s *Store) EnsureProfile(name string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO profiles (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("storage: cannot create profile %s: %w", name, err)
	}
	return nil
}

// Profiles returns every profile name in order.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}

// LoadProfile reads a profile, creating it if needed. Settings that fail to
// parse fall back to the defaults; the parse error is returned alongside the
// record so callers can report it.
func (s *Store) LoadProfile(name string) (ProfileRecord, error) {
	if err := s.EnsureProfile(name); err != nil {
		return ProfileRecord{}, err
	}

	rec := ProfileRecord{Name: name}
	var settings, inventory, cosmetic string
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT settings, highscore, coins, inventory, cosmetics, updated_at
		 FROM profiles WHERE name = ?`,
		name,
	).Scan(&settings, &rec.Highscore, &rec.Coins, &inventory, &cosmetic, &updatedAt)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("storage: cannot query profile %s: %w", name, err)
	}
	rec.UpdatedAt = parseTime(updatedAt)

	if err := yaml.Unmarshal([]byte(inventory), &rec.Inventory); err != nil {
		return ProfileRecord{}, fmt.Errorf("storage: cannot decode inventory: %w", err)
	}
	if err := yaml.Unmarshal([]byte(cosmetic), &rec.Cosmetics); err != nil {
		return ProfileRecord{}, fmt.Errorf("storage: cannot decode cosmetics: %w", err)
	}
	rec.Cosmetics.Completions, err = s.Completions(name)
	if err != nil {
		return ProfileRecord{}, err
	}

	var settingsErr error
	if settings == "" {
		rec.Settings = config.DefaultSettings()
	} else {
		rec.Settings, settingsErr = config.DecodeSettings([]byte(settings), config.FormatYAML)
		if settingsErr != nil {
			settingsErr = fmt.Errorf("storage: profile %s: %w", name, settingsErr)
		}
	}
	return rec, settingsErr
}

// SaveSettings stores normalized settings for a profile.
func (s *Store) SaveSettings(name string, settings config.Settings) error {
	data, err := config.EncodeSettings(settings.Normalize(), config.FormatYAML)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	return s.update(name, "settings", string(data))
}

// SaveHighscore stores the profile's best score.
func (s *Store) SaveHighscore(name string, score int) error {
	return s.update(name, "highscore", score)
}

// SaveCoins stores the profile's coin balance.
func (s *Store) SaveCoins(name string, coins int) error {
	return s.update(name, "coins", coins)
}

// SaveInventory stores the profile's consumable charges.
func (s *Store) SaveInventory(name string, inv game.Inventory) error {
	data, err := yaml.Marshal(inv)
	if err != nil {
		return fmt.Errorf("storage: cannot encode inventory: %w", err)
	}
	return s.update(name, "inventory", string(data))
}

// SaveCosmetics stores equipped items on the profile and the completion
// counters in their own table.
func (s *Store) SaveCosmetics(name string, c game.Cosmetics) error {
	completions := c.Completions
	c.Completions = nil
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("storage: cannot encode cosmetics: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR IGNORE INTO profiles (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("storage: cannot create profile %s: %w", name, err)
	}
	if _, err := tx.Exec(
		"UPDATE profiles SET cosmetics = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		string(data), name,
	); err != nil {
		return fmt.Errorf("storage: cannot save cosmetics: %w", err)
	}
	for key, count := range completions {
		if _, err := tx.Exec(
			`INSERT INTO completions (profile, key, count) VALUES (?, ?, ?)
			 ON CONFLICT(profile, key) DO UPDATE SET count = excluded.count`,
			name, key, count,
		); err != nil {
			return fmt.Errorf("storage: cannot save completion %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit cosmetics: %w", err)
	}
	return nil
}

// Completions returns the boss-clear counters of a profile.
func (s *Store) Completions(name string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT key, count FROM completions WHERE profile = ?", name)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// update sets one profile column. Column names come from this package only.
func (s *Store) update(name, column string, value any) error {
	if err := s.EnsureProfile(name); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"UPDATE profiles SET "+column+" = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		value, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", column, err)
	}
	return nil
}

// SaveRun records a finished run and returns its generated run ID.
func (s *Store) SaveRun(profile string, r game.RunSummary) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, profile, score, correct_count, difficulty, mode, reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		profile,
		r.Score,
		r.CorrectCount,
		string(r.Difficulty),
		string(r.Mode),
		r.Reason,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopRuns retrieves the top N runs, for one profile or for everyone when
// profile is empty. Results are ordered by score descending.
func (s *Store) TopRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, profile, score, correct_count, difficulty, mode, reason, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		profile, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e          RunEntry
			difficulty string
			mode       string
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Profile, &e.Score, &e.CorrectCount,
			&difficulty, &mode, &e.Reason, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Difficulty = config.Difficulty(difficulty)
		e.Mode = config.MathMode(mode)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the highest recorded score for a profile.
// Returns 0 if no runs exist.
func (s *Store) BestRun(profile string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE profile = ?",
		profile,
	).Scan(&score)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the run history of a profile, or of everyone when
// profile is empty.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR profile = ?", profile, profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
