package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// StarsKey is the progress key holding a game's latest star array.
func StarsKey(gameID string) string {
	return gameID + ".stars"
}

// SaveProgress stores value under key, replacing any previous value.
func (s *Store) SaveProgress(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress %s: %w", key, err)
	}
	return nil
}

// LoadProgress returns the value under key. ok is false when nothing is stored.
func (s *Store) LoadProgress(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM progress WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot load progress %s: %w", key, err)
	}
	return value, true, nil
}

// SaveStars stores a star array as JSON under the game's stars key.
func (s *Store) SaveStars(gameID string, stars []int) error {
	if stars == nil {
		stars = []int{}
	}
	data, err := json.Marshal(stars)
	if err != nil {
		return fmt.Errorf("storage: cannot encode stars: %w", err)
	}
	return s.SaveProgress(StarsKey(gameID), string(data))
}

// LoadStars returns the game's saved star array, or nil if none is stored.
func (s *Store) LoadStars(gameID string) ([]int, error) {
	value, ok, err := s.LoadProgress(StarsKey(gameID))
	if err != nil || !ok {
		return nil, err
	}
	var stars []int
	if err := json.Unmarshal([]byte(value), &stars); err != nil {
		return nil, fmt.Errorf("storage: corrupt stars for %s: %w", gameID, err)
	}
	return stars, nil
}

// RaiseStars records stars for a level, keeping the higher of the stored and
// new rating, and returns the updated array. The read and the write happen
// in one transaction.
func (s *Store) RaiseStars(gameID string, level, stars int) ([]int, error) {
	if level < 0 {
		return nil, fmt.Errorf("storage: negative level %d", level)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	key := StarsKey(gameID)
	var current []int
	var value string
	err = tx.QueryRow(`SELECT value FROM progress WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot load progress %s: %w", key, err)
	default:
		if err := json.Unmarshal([]byte(value), &current); err != nil {
			return nil, fmt.Errorf("storage: corrupt stars for %s: %w", gameID, err)
		}
	}

	for len(current) <= level {
		current = append(current, 0)
	}
	if stars <= current[level] {
		return current, nil
	}
	current[level] = stars

	data, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode stars: %w", err)
	}
	_, err = tx.Exec(
		`INSERT INTO progress (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save progress %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: cannot commit stars: %w", err)
	}
	return current, nil
}
