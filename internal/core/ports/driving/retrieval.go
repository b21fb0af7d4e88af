package driving

import (
	"context"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

// RetrievalService answers free-text questions from the local docs corpus.
type RetrievalService interface {
	// Retrieve selects relevant paragraphs for the question and assembles
	// a bounded answer with citations and a confidence estimate.
	// The topic hint is optional and only narrows candidate documents.
	// A blank question is rejected with domain.ErrInvalidInput before
	// any corpus access.
	Retrieve(ctx context.Context, topic, question string) (*domain.RetrievalResult, error)
}

// DocumentService exposes the loaded corpus for browsing.
type DocumentService interface {
	// List returns all corpus documents.
	List(ctx context.Context) ([]domain.Document, error)

	// GetContent returns the raw content of a document by ID.
	GetContent(ctx context.Context, documentID string) (string, error)
}
