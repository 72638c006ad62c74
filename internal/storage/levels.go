package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LevelResult is one rated level of a run.
type LevelResult struct {
	ID        int64
	RunID     string
	GameID    string
	Level     int // 0-based
	Category  string
	Stars     int
	Found     int
	Total     int
	CreatedAt time.Time
}

// NewRunID returns an identifier grouping the level results of one run.
func NewRunID() string {
	return uuid.NewString()
}

// SaveLevelResult records a rated level.
func (s *Store) SaveLevelResult(r LevelResult) (int64, error) {
	if r.RunID == "" {
		return 0, fmt.Errorf("storage: level result has no run ID")
	}
	res, err := s.db.Exec(
		`INSERT INTO level_results (run_id, game_id, level, category, stars, found, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Level, r.Category, r.Stars, r.Found, r.Total,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RunResults returns a run's level results in level order.
func (s *Store) RunResults(runID string) ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, level, category, stars, found, total, created_at
		 FROM level_results
		 WHERE run_id = ?
		 ORDER BY level`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Level, &r.Category,
			&r.Stars, &r.Found, &r.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestStars returns the best rating per level index for a game.
// Levels never rated are absent from the map.
func (s *Store) BestStars(gameID string) (map[int]int, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(stars)
		 FROM level_results
		 WHERE game_id = ?
		 GROUP BY level`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best stars: %w", err)
	}
	defer rows.Close()

	best := make(map[int]int)
	for rows.Next() {
		var level, stars int
		if err := rows.Scan(&level, &stars); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[level] = stars
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}
