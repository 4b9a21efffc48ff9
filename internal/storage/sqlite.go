// Package storage provides SQLite-based persistence for solved stages.
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
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed stage.
type Solve struct {
	ID        int64
	StageID   string
	Mode      string // Game ID the stage was played in
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// StageStats aggregates all solves of one stage.
type StageStats struct {
	StageID      string
	Solves       int
	BestMoves    int
	BestDuration time.Duration
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_stage_id ON solves(stage_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(stage_id, moves, duration_ms);
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

// SaveSolve records a completed stage.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(stageID, mode string, moves int, d time.Duration) (int64, error) {
	if stageID == "" {
		return 0, errors.New("storage: stage id is required")
	}
	result, err := s.db.Exec(
		"INSERT INTO solves (stage_id, mode, moves, duration_ms) VALUES (?, ?, ?, ?)",
		stageID, mode, moves, d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestSolves retrieves the best N solves for a stage.
// Fewer moves rank first; ties go to the faster solve.
func (s *Store) BestSolves(stageID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, stage_id, mode, moves, duration_ms, created_at
		 FROM solves
		 WHERE stage_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		stageID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var ms int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.StageID, &e.Mode, &e.Moves, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solves, nil
}

// BestSolve returns the best solve of a stage, or nil if it was never solved.
func (s *Store) BestSolve(stageID string) (*Solve, error) {
	solves, err := s.BestSolves(stageID, 1)
	if err != nil {
		return nil, err
	}
	if len(solves) == 0 {
		return nil, nil
	}
	return &solves[0], nil
}

// AllStats retrieves statistics for every stage that has been solved,
// keyed by stage ID.
func (s *Store) AllStats() (map[string]*StageStats, error) {
	rows, err := s.db.Query(
		`SELECT stage_id, COUNT(*), MIN(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY stage_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stage stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StageStats)
	for rows.Next() {
		var st StageStats
		var ms int64
		var lastPlayed any
		if err := rows.Scan(&st.StageID, &st.Solves, &st.BestMoves, &ms, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestDuration = time.Duration(ms) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.StageID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSolves deletes all solves for the given stage.
func (s *Store) ClearSolves(stageID string) error {
	if _, err := s.db.Exec("DELETE FROM solves WHERE stage_id = ?", stageID); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
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
