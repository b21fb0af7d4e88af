package driven

import (
	"context"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

// CorpusStore loads the local docs corpus.
//
// Load is cached: the first call reads the filesystem, subsequent calls
// return the same snapshot for the remainder of the process lifetime.
// A missing corpus directory is not an error; it yields an empty corpus.
type CorpusStore interface {
	// Load returns every corpus document.
	Load(ctx context.Context) ([]domain.Document, error)
}
