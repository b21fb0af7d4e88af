package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for authdocs resources.
const uriScheme = "authdocs://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Registry != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "providers",
			Name:        "providers",
			Description: "Social sign-on provider configuration table",
			MIMEType:    "application/json",
		}, s.handleProvidersResource)

		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "adapters",
			Name:        "adapters",
			Description: "Database adapter table",
			MIMEType:    "application/json",
		}, s.handleAdaptersResource)

		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "plugins",
			Name:        "plugins",
			Description: "Plugin table with import paths",
			MIMEType:    "application/json",
		}, s.handlePluginsResource)
	}

	if s.ports.Documents != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "documents",
			Name:        "documents",
			Description: "List of loaded corpus documents",
			MIMEType:    "application/json",
		}, s.handleDocumentsResource)

		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "documents/{documentId}",
			Name:        "document-content",
			Description: "Raw content of one corpus document",
			MIMEType:    "text/plain",
		}, s.handleDocumentContentResource)
	}
}

// jsonResource marshals v into a single JSON resource payload.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleProvidersResource returns the provider table.
func (s *Server) handleProvidersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	providers := s.ports.Registry.Providers()
	infos := make([]ProviderOutput, len(providers))
	for i := range providers {
		infos[i] = providerOutput(&providers[i])
	}
	return jsonResource(req.Params.URI, infos)
}

// handleAdaptersResource returns the adapter table.
func (s *Server) handleAdaptersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	adapters := s.ports.Registry.Adapters()
	infos := make([]AdapterOutput, len(adapters))
	for i, a := range adapters {
		infos[i] = AdapterOutput{ID: a.ID, Package: a.Package, Dialects: a.Dialects, Notes: a.Notes}
	}
	return jsonResource(req.Params.URI, infos)
}

// handlePluginsResource returns the plugin table.
func (s *Server) handlePluginsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	plugins := s.ports.Registry.Plugins()
	infos := make([]PluginOutput, len(plugins))
	for i := range plugins {
		infos[i] = pluginOutput(&plugins[i])
	}
	return jsonResource(req.Params.URI, infos)
}

// handleDocumentsResource returns the list of loaded corpus documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type docInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Path string `json:"path"`
	}
	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{ID: docs[i].ID, Name: docs[i].Name, Path: docs[i].Path}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleDocumentContentResource returns the content of a specific document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Documents.GetContent(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     content,
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like
// authdocs://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
