package database

import (
	"database/sql"
	"fmt"
)

// ProgressRepository handles database operations for persisted progress
// records: one serialized aggregate per key.
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Load returns the serialized record stored under key, or nil when no
// record exists.
func (r *ProgressRepository) Load(key string) ([]byte, error) {
	var data string
	err := DB.Get(&data, "SELECT data FROM progress_records WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress record: %v", err)
	}
	return []byte(data), nil
}

// Save upserts the serialized record under key.
func (r *ProgressRepository) Save(key string, data []byte) error {
	var query string
	if Type() == "sqlite" {
		// SQLite uses CURRENT_TIMESTAMP instead of NOW()
		query = `
			INSERT INTO progress_records (key, data, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET
				data = excluded.data,
				updated_at = CURRENT_TIMESTAMP
		`
	} else {
		query = `
			INSERT INTO progress_records (key, data, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = NOW()
		`
	}

	if _, err := DB.Exec(query, key, string(data)); err != nil {
		return fmt.Errorf("failed to save progress record: %v", err)
	}
	return nil
}

// Delete removes the record stored under key.
func (r *ProgressRepository) Delete(key string) error {
	if _, err := DB.Exec("DELETE FROM progress_records WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete progress record: %v", err)
	}
	return nil
}
