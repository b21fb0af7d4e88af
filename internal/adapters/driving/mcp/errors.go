// Package mcp provides an MCP (Model Context Protocol) server adapter for
// authdocs. It lets AI assistants ask questions about Better Auth against
// the local docs corpus and read the static reference tables.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
