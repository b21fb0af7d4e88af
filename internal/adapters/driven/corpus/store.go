// Package corpus provides the filesystem implementation of driven.CorpusStore.
// It reads plain-text documentation files from a single directory once per
// process and serves the loaded snapshot from memory thereafter.
package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driven"
	"github.com/custodia-labs/authdocs-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// textExtensions is the whitelist of plain-text corpus file extensions.
var textExtensions = map[string]bool{
	".md":  true,
	".mdx": true,
	".txt": true,
}

// Store loads documents from a local directory.
//
// The load happens lazily on the first Load call and the result is
// cached for the process lifetime. There is no invalidation: the
// corpus is assumed static while the process runs.
type Store struct {
	dir string

	once sync.Once
	docs []domain.Document
}

// NewStore creates a corpus store over the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the corpus documents, reading the directory on first use.
// A missing or unreadable directory yields an empty corpus, not an
// error; unreadable files are skipped so one bad file cannot take down
// retrieval.
func (s *Store) Load(_ context.Context) ([]domain.Document, error) {
	s.once.Do(func() {
		s.docs = readDir(s.dir)
	})
	return s.docs, nil
}

func readDir(dir string) []domain.Document {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Directory absent is a supported configuration: empty corpus.
		logger.Debug("Corpus directory %s unavailable: %v", dir, err)
		return nil
	}

	var docs []domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !textExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable corpus file %s: %v", path, err)
			continue
		}

		content := string(data)
		docs = append(docs, domain.Document{
			ID:      uuid.New().String(),
			Path:    path,
			Name:    name,
			Content: content,
			Lines:   splitLines(content),
		})
	}

	logger.Info("Corpus loaded: %d documents from %s", len(docs), dir)
	return docs
}

// splitLines splits content on line breaks, accepting both \n and \r\n.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
