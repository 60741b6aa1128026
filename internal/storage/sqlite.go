// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flow/internal/engine"
)

// DefaultPlayer is the progress owner for local play.
const DefaultPlayer = "local"

// Store manages the SQLite database connection for level progress.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// SolvedLevel represents a single solved level record.
type SolvedLevel struct {
	Player   string
	LevelID  string
	SolvedAt time.Time
}

// PlayerStats contains aggregated progress of one player.
type PlayerStats struct {
	Player     string
	Solved     int
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; SSH sessions share this store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS solved_levels (
			player TEXT NOT NULL,
			level_id TEXT NOT NULL,
			solved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, level_id)
		);
		CREATE INDEX IF NOT EXISTS idx_solved_levels_player ON solved_levels(player, solved_at);
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

// MarkSolved records that the player solved the level.
// Marking an already solved level keeps its original timestamp.
func (s *Store) MarkSolved(player, levelID string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO solved_levels (player, level_id) VALUES (?, ?)",
		player, levelID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark level solved: %w", err)
	}
	return nil
}

// IsSolved reports whether the player has solved the level.
func (s *Store) IsSolved(player, levelID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM solved_levels WHERE player = ? AND level_id = ?",
		player, levelID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	return n > 0, nil
}

// SolvedLevels retrieves every level the player solved, oldest first.
func (s *Store) SolvedLevels(player string) ([]SolvedLevel, error) {
	rows, err := s.db.Query(
		`SELECT player, level_id, solved_at
		 FROM solved_levels
		 WHERE player = ?
		 ORDER BY solved_at, level_id`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	var entries []SolvedLevel
	for rows.Next() {
		var e SolvedLevel
		var solvedAt any
		if err := rows.Scan(&e.Player, &e.LevelID, &solvedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.SolvedAt = parseTime(solvedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SolvedSet returns the IDs of the levels the player solved.
func (s *Store) SolvedSet(player string) (map[string]bool, error) {
	entries, err := s.SolvedLevels(player)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e.LevelID] = true
	}
	return set, nil
}

// ClearProgress deletes every solved flag of the player.
func (s *Store) ClearProgress(player string) error {
	_, err := s.db.Exec("DELETE FROM solved_levels WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// AllPlayerStats retrieves progress statistics for every player, most solved first.
func (s *Store) AllPlayerStats() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT player, COUNT(*), MAX(solved_at)
		 FROM solved_levels
		 GROUP BY player
		 ORDER BY COUNT(*) DESC, player`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var ps PlayerStats
		var last any
		if err := rows.Scan(&ps.Player, &ps.Solved, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastSolved = parseTime(last)
		stats = append(stats, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
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

// PlayerProgress binds the store to one player so a session can record wins.
type PlayerProgress struct {
	store  *Store
	player string
}

// ForPlayer returns the progress tracker of a player.
func (s *Store) ForPlayer(player string) *PlayerProgress {
	if player == "" {
		player = DefaultPlayer
	}
	return &PlayerProgress{store: s, player: player}
}

// Player returns the bound player name.
func (p *PlayerProgress) Player() string {
	return p.player
}

// IsSolved implements engine.ProgressTracker.
func (p *PlayerProgress) IsSolved(levelID string) (bool, error) {
	return p.store.IsSolved(p.player, levelID)
}

// MarkSolved implements engine.ProgressTracker.
func (p *PlayerProgress) MarkSolved(levelID string) error {
	return p.store.MarkSolved(p.player, levelID)
}

// Solved returns the set of level IDs the player solved.
func (p *PlayerProgress) Solved() (map[string]bool, error) {
	return p.store.SolvedSet(p.player)
}

// Ensure PlayerProgress implements ProgressTracker
var _ engine.ProgressTracker = (*PlayerProgress)(nil)
