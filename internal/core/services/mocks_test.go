package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

// stubCorpus is an in-memory implementation of driven.CorpusStore.
// It counts Load calls so tests can assert when the corpus is touched.
type stubCorpus struct {
	docs  []domain.Document
	err   error
	loads int
}

func (s *stubCorpus) Load(_ context.Context) ([]domain.Document, error) {
	s.loads++
	return s.docs, s.err
}

// makeDoc builds a corpus document from raw content.
func makeDoc(name, content string) domain.Document {
	return domain.Document{
		ID:      "doc-" + name,
		Path:    "/docs/" + name,
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}
