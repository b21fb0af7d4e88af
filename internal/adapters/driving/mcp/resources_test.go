package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "authdocs://documents/doc-456",
			expected: "doc-456",
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/doc-456",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_tableResources(t *testing.T) {
	ctx := context.Background()

	registry := &mockRegistryService{
		providers: []domain.Provider{{ID: "github", Name: "GitHub", DocsPath: "authentication/github.md"}},
		adapters:  []domain.Adapter{{ID: "prisma", Package: "better-auth/adapters/prisma"}},
		plugins:   []domain.Plugin{{ID: "jwt", Name: "JWT", ServerImport: "better-auth/plugins"}},
	}
	server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}, Registry: registry})
	require.NoError(t, err)

	t.Run("providers resource", func(t *testing.T) {
		result, err := server.handleProvidersResource(ctx, makeReadResourceRequest("authdocs://providers"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"github"`)
		assert.Contains(t, result.Contents[0].Text, "authentication/github.md")
	})

	t.Run("adapters resource", func(t *testing.T) {
		result, err := server.handleAdaptersResource(ctx, makeReadResourceRequest("authdocs://adapters"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "better-auth/adapters/prisma")
	})

	t.Run("plugins resource", func(t *testing.T) {
		result, err := server.handlePluginsResource(ctx, makeReadResourceRequest("authdocs://plugins"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"jwt"`)
	})
}

func TestServer_documentResources(t *testing.T) {
	ctx := context.Background()

	t.Run("lists documents", func(t *testing.T) {
		docs := &mockDocumentService{
			documents: []domain.Document{{ID: "doc-1", Name: "sessions.md", Path: "/docs/sessions.md"}},
		}
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}, Documents: docs})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("authdocs://documents"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "sessions.md")
	})

	t.Run("returns document content", func(t *testing.T) {
		docs := &mockDocumentService{content: "# Sessions\n\nBody."}
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}, Documents: docs})
		require.NoError(t, err)

		result, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("authdocs://documents/doc-1"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "# Sessions\n\nBody.", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("malformed document URI returns not found", func(t *testing.T) {
		docs := &mockDocumentService{}
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}, Documents: docs})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("authdocs://invalid/uri"))
		require.Error(t, err)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		docs := &mockDocumentService{err: errors.New("corpus unavailable")}
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}, Documents: docs})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx, makeReadResourceRequest("authdocs://documents"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}
