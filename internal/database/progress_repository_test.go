package database

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the package-level connection at an in-memory
// SQLite database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "sqlite")

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	prev := DB
	DB = db
	require.NoError(t, initializeSchema())

	t.Cleanup(func() {
		db.Close()
		DB = prev
	})
}

func TestProgressRepositoryRoundTrip(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	data, err := repo.Load("japanese_learning_progress")
	require.NoError(t, err)
	assert.Nil(t, data, "missing records load as nil without an error")

	require.NoError(t, repo.Save("japanese_learning_progress", []byte(`{"userId":"default_user"}`)))

	data, err = repo.Load("japanese_learning_progress")
	require.NoError(t, err)
	assert.Equal(t, `{"userId":"default_user"}`, string(data))
}

func TestProgressRepositoryUpsert(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	require.NoError(t, repo.Save("key", []byte(`{"v":1}`)))
	require.NoError(t, repo.Save("key", []byte(`{"v":2}`)))

	data, err := repo.Load("key")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	var count int
	require.NoError(t, DB.Get(&count, "SELECT COUNT(*) FROM progress_records"))
	assert.Equal(t, 1, count, "saving twice keeps a single row per key")
}

func TestProgressRepositoryDelete(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	require.NoError(t, repo.Save("key", []byte(`{}`)))
	require.NoError(t, repo.Delete("key"))

	data, err := repo.Load("key")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting a missing key is not an error.
	require.NoError(t, repo.Delete("key"))
}

func TestTypeDefaultsToSQLite(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	assert.Equal(t, "sqlite", Type())

	t.Setenv("DB_TYPE", "postgres")
	assert.Equal(t, "postgres", Type())
}
