package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/authdocs-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/authdocs-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/authdocs-cli/internal/core/services"
)

// setupTestServices wires the command tree against a temp-dir corpus
// and config store, and returns a cleanup that restores the globals.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	origRetrieval := retrievalService
	origRegistry := registryService
	origSnippets := snippetService
	origDocuments := documentService
	origConfig := configStore

	store := corpus.NewStore(t.TempDir())
	retrievalService = services.NewRetrievalService(store)
	documentService = services.NewDocumentService(store)
	registryService = services.NewRegistryService()

	snippets, err := services.NewSnippetService()
	require.NoError(t, err)
	snippetService = snippets

	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = cfg

	return func() {
		retrievalService = origRetrieval
		registryService = origRegistry
		snippetService = origSnippets
		documentService = origDocuments
		configStore = origConfig
	}
}
