package history

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a fresh store backed by a temp database file
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	store := setupTestStore(t)

	t.Run("Record assigns an ID", func(t *testing.T) {
		id, err := store.Record("write chapter one", "## Chapter 1\n\nText.", "offline", "")
		require.NoError(t, err)
		assert.NotZero(t, id)
	})

	t.Run("Get retrieves the full entry", func(t *testing.T) {
		id, err := store.Record("a prompt", "an output", "anthropic", "claude-3-5-sonnet-20240620")
		require.NoError(t, err)

		entry, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "a prompt", entry.Prompt)
		assert.Equal(t, "an output", entry.Output)
		assert.Equal(t, "anthropic", entry.Provider)
		assert.Equal(t, "claude-3-5-sonnet-20240620", entry.Model)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoreList(t *testing.T) {
	store := setupTestStore(t)

	first, err := store.Record("first prompt", "first output", "offline", "")
	require.NoError(t, err)
	second, err := store.Record("second prompt", "second output", "openai", "gpt-4o-mini")
	require.NoError(t, err)
	third, err := store.Record("third prompt", "third output", "gemini", "gemini-1.5-flash")
	require.NoError(t, err)

	t.Run("most recent first", func(t *testing.T) {
		summaries, total, err := store.List(0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, summaries, 3)
		assert.Equal(t, third, summaries[0].ID)
		assert.Equal(t, second, summaries[1].ID)
		assert.Equal(t, first, summaries[2].ID)
	})

	t.Run("limit and offset page through entries", func(t *testing.T) {
		summaries, total, err := store.List(1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, summaries, 1)
		assert.Equal(t, second, summaries[0].ID)
	})

	t.Run("long prompts are excerpted", func(t *testing.T) {
		long := strings.Repeat("é", 200)
		_, err := store.Record(long, "output", "offline", "")
		require.NoError(t, err)

		summaries, _, err := store.List(1, 0)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, 80, len([]rune(summaries[0].PromptExcerpt)))
	})
}

func TestStoreCheckpoint(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Record("prompt", "output", "offline", "")
	require.NoError(t, err)

	require.NoError(t, store.Checkpoint())

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
