package mcp

import (
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval answers questions from the docs corpus.
	Retrieval driving.RetrievalService

	// Registry serves the static reference tables.
	Registry driving.RegistryService

	// Snippets renders templated setup snippets.
	Snippets driving.SnippetService

	// Documents exposes the loaded corpus for browsing.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	// Registry, Snippets, and Documents are optional; their tools and
	// resources are simply not registered when absent.
	return nil
}
