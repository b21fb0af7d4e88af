package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore(t *testing.T) {
	t.Run("starts empty without a file", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		_, ok := store.Get(KeyDocsDir)
		assert.False(t, ok)
		assert.Empty(t, store.GetString(KeyDocsDir))
		assert.False(t, store.GetBool("verbose"))
	})

	t.Run("set persists and reloads", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(KeyDocsDir, "/srv/docs"))
		require.NoError(t, store.Set("verbose", true))

		reloaded, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "/srv/docs", reloaded.GetString(KeyDocsDir))
		assert.True(t, reloaded.GetBool("verbose"))
	})

	t.Run("flattens nested tables", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[docs]\ndir = \"/opt/docs\"\n"), 0600))

		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "/opt/docs", store.GetString("docs.dir"))
		assert.Equal(t, path, store.Path())
	})

	t.Run("wrong type returns zero value", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Set("docs.dir", 42))

		assert.Empty(t, store.GetString("docs.dir"))
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

		_, err := NewConfigStore(dir)
		assert.Error(t, err)
	})
}
