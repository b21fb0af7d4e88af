package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("loads whitelisted text files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "sessions.md", "# Sessions\n\nBody.")
		writeFile(t, dir, "notes.txt", "plain notes")
		writeFile(t, dir, "guide.mdx", "mdx guide")
		writeFile(t, dir, "logo.png", "not text")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))

		docs, err := NewStore(dir).Load(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)

		names := make(map[string]bool)
		for _, doc := range docs {
			names[doc.Name] = true
			assert.NotEmpty(t, doc.ID)
			assert.Equal(t, filepath.Join(dir, doc.Name), doc.Path)
		}
		assert.True(t, names["sessions.md"])
		assert.True(t, names["notes.txt"])
		assert.True(t, names["guide.mdx"])
		assert.False(t, names["logo.png"])
	})

	t.Run("splits lines on LF and CRLF", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "mixed.md", "one\r\ntwo\nthree")

		docs, err := NewStore(dir).Load(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []string{"one", "two", "three"}, docs[0].Lines)
		// Content keeps the raw bytes.
		assert.Equal(t, "one\r\ntwo\nthree", docs[0].Content)
	})

	t.Run("missing directory yields empty corpus", func(t *testing.T) {
		docs, err := NewStore(filepath.Join(t.TempDir(), "nope")).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("caches the first load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.md", "alpha")

		store := NewStore(dir)
		first, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		// New files after the first load are not picked up.
		writeFile(t, dir, "b.md", "beta")
		second, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
	})
}
