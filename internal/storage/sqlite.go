// Package storage provides SQLite-based persistence for pong match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/match"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Record is one stored match.
type Record struct {
	ID         int64
	MatchID    string
	Player     string
	LeftScore  int
	RightScore int
	Winner     string // "left", "right" or empty
	EndReason  string // "completed" or "abandoned"
	Rounds     int
	Ticks      int64
	DurationMS int64
	CreatedAt  time.Time
}

// Duration returns the stored match length.
func (r Record) Duration() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			end_reason TEXT NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r Record) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player, left_score, right_score, winner, end_reason, rounds, ticks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.Player,
		r.LeftScore,
		r.RightScore,
		nullString(r.Winner),
		r.EndReason,
		r.Rounds,
		r.Ticks,
		r.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatchResult implements match.ResultSaver.
func (s *Store) SaveMatchResult(result match.Result) error {
	_, err := s.SaveMatch(RecordFromResult(result))
	return err
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

// RecordFromResult converts a tracked match to its stored form.
func RecordFromResult(result match.Result) Record {
	return Record{
		MatchID:    string(result.ID),
		Player:     result.Player,
		LeftScore:  result.LeftScore,
		RightScore: result.RightScore,
		Winner:     result.Winner.String(),
		EndReason:  result.Reason.String(),
		Rounds:     result.Rounds,
		Ticks:      int64(result.Ticks), //nolint:gosec // tick counts stay far below MaxInt64
		DurationMS: result.Duration.Milliseconds(),
	}
}

const selectColumns = `SELECT id, match_id, player, left_score, right_score, winner,
		        end_reason, rounds, ticks, duration_ms, created_at
		 FROM matches`

// MatchByID retrieves a match by its match ID.
// Returns nil without error when no such match exists.
func (s *Store) MatchByID(matchID string) (*Record, error) {
	row := s.db.QueryRow(selectColumns+` WHERE match_id = ?`, matchID)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches of all players.
func (s *Store) RecentMatches(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectColumns+` ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return collect(rows)
}

// PlayerHistory retrieves the most recent matches of one player.
func (s *Store) PlayerHistory(player string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectColumns+` WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player matches: %w", err)
	}
	return collect(rows)
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all stored matches.
type Stats struct {
	Matches     int
	LeftWins    int
	RightWins   int
	Abandoned   int
	AvgDuration time.Duration
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics over all stored matches.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var avgMS float64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'abandoned' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.LeftWins, &stats.RightWins, &stats.Abandoned, &avgMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.AvgDuration = time.Duration(avgMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var winner sql.NullString
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.MatchID,
		&r.Player,
		&r.LeftScore,
		&r.RightScore,
		&winner,
		&r.EndReason,
		&r.Rounds,
		&r.Ticks,
		&r.DurationMS,
		&createdAt,
	)
	if err != nil {
		return r, err
	}

	if winner.Valid {
		r.Winner = winner.String
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collect(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
