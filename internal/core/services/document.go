package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driven"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService exposes the loaded corpus for browsing.
type DocumentService struct {
	corpus driven.CorpusStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(corpus driven.CorpusStore) *DocumentService {
	return &DocumentService{corpus: corpus}
}

// List returns all corpus documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.corpus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return docs, nil
}

// GetContent returns the raw content of a document by ID.
func (s *DocumentService) GetContent(ctx context.Context, documentID string) (string, error) {
	docs, err := s.corpus.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load corpus: %w", err)
	}
	for i := range docs {
		if docs[i].ID == documentID {
			return docs[i].Content, nil
		}
	}
	return "", fmt.Errorf("document %s: %w", documentID, domain.ErrNotFound)
}
