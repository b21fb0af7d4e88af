// Package domain defines the core business entities for authdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A corpus document with line-addressable content
//   - Paragraph: A maximal run of non-blank lines within a document
//   - ScoredSnippet: A paragraph with its relevance score
//   - RetrievalResult: The assembled answer returned to callers
//   - Provider, Adapter, Plugin: static Better Auth reference entries
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
