// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// History is an audit log. Nothing here feeds back into a running game's
// best score.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout sorts lexically in the same order as time.
const timeLayout = "2006-01-02 15:04:05.000000"

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string
	Size      int
	Score     int
	MaxTile   int
	Moves     int
	Reason    string // "no_moves" or "ended"
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one board size.
type Stats struct {
	Size       int
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestTile   int
	TotalMoves int64
	LastPlayed time.Time
}

// DefaultDBPath returns ~/.tilemerge/history.db.
func DefaultDBPath() string {
	return filepath.Join("~", ".tilemerge", "history.db")
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath()
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(size, score DESC);
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

// SaveGame records a finished game and returns its ID. A missing ID or
// timestamp is filled in.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, size, score, max_tile, moves, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Size, rec.Score, rec.MaxTile, rec.Moves, rec.Reason,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return rec.ID, nil
}

// RecentGames returns the latest games for a board size, or for all sizes
// when size is 0, newest first.
func (s *Store) RecentGames(size, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, size, score, max_tile, moves, reason, created_at
		 FROM games
		 WHERE ? = 0 OR size = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent games: %w", err)
	}
	return scanGames(rows)
}

// TopGames returns the highest scoring games for a board size, or for all
// sizes when size is 0.
func (s *Store) TopGames(size, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, score, max_tile, moves, reason, created_at
		 FROM games
		 WHERE ? = 0 OR size = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top games: %w", err)
	}
	return scanGames(rows)
}

// Game returns the record with the given ID, or nil if there is none.
func (s *Store) Game(id string) (*GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, size, score, max_tile, moves, reason, created_at
		 FROM games WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	games, err := scanGames(rows)
	if err != nil || len(games) == 0 {
		return nil, err
	}
	return &games[0], nil
}

// Stats aggregates history for a board size, or for all sizes when size is 0.
func (s *Store) Stats(size int) (*Stats, error) {
	stats := &Stats{Size: size}

	var last sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM games WHERE ? = 0 OR size = ?`,
		size, size,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestTile, &stats.TotalMoves, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if last.Valid {
		stats.LastPlayed = parseTime(last.String)
	}
	return stats, nil
}

// ClearGames deletes history for a board size, or everything when size is 0.
// Returns the number of deleted records.
func (s *Store) ClearGames(size int) (int64, error) {
	res, err := s.db.Exec("DELETE FROM games WHERE ? = 0 OR size = ?", size, size)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear games: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared games: %w", err)
	}
	return n, nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Size, &g.Score, &g.MaxTile, &g.Moves, &g.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// parseTime reads a stored timestamp. Unparseable values yield the zero time.
func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
