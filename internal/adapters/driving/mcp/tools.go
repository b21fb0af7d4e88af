package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask_docs tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the free-text question to answer from the Better Auth docs"`
	Topic    string `json:"topic,omitempty" jsonschema:"optional topic hint to narrow candidate documents (e.g. authentication, plugins, database)"`
}

// AskOutput is the output schema for the ask_docs tool.
type AskOutput struct {
	Answer     string           `json:"answer"`
	Confidence float64          `json:"confidence"`
	Citations  []CitationOutput `json:"citations"`
	Snippets   []SnippetOutput  `json:"snippets"`
}

// CitationOutput points at the corpus location an answer was drawn from.
type CitationOutput struct {
	File      string `json:"file"`
	LineRange string `json:"line_range"`
}

// SnippetOutput is one selected paragraph with its score.
type SnippetOutput struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	File  string  `json:"file"`
}

// ProvidersInput is the input schema for the list_providers tool.
type ProvidersInput struct{}

// ProvidersOutput is the output schema for the list_providers tool.
type ProvidersOutput struct {
	Providers []ProviderOutput `json:"providers"`
	Count     int              `json:"count"`
}

// ProviderOutput represents one social provider entry.
type ProviderOutput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	RequiredKeys []string `json:"required_keys"`
	DocsPath     string   `json:"docs_path"`
	Notes        string   `json:"notes,omitempty"`
}

// ProviderInput is the input schema for the get_provider tool.
type ProviderInput struct {
	ID string `json:"id" jsonschema:"the provider slug, e.g. google or github"`
}

// AdaptersInput is the input schema for the list_adapters tool.
type AdaptersInput struct{}

// AdaptersOutput is the output schema for the list_adapters tool.
type AdaptersOutput struct {
	Adapters []AdapterOutput `json:"adapters"`
	Count    int             `json:"count"`
}

// AdapterOutput represents one database adapter entry.
type AdapterOutput struct {
	ID       string   `json:"id"`
	Package  string   `json:"package"`
	Dialects []string `json:"dialects"`
	Notes    string   `json:"notes,omitempty"`
}

// PluginsInput is the input schema for the list_plugins tool.
type PluginsInput struct{}

// PluginsOutput is the output schema for the list_plugins tool.
type PluginsOutput struct {
	Plugins []PluginOutput `json:"plugins"`
	Count   int            `json:"count"`
}

// PluginOutput represents one plugin entry.
type PluginOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ServerImport string `json:"server_import"`
	ClientImport string `json:"client_import,omitempty"`
	Description  string `json:"description"`
}

// PluginInput is the input schema for the get_plugin tool.
type PluginInput struct {
	ID string `json:"id" jsonschema:"the plugin slug, e.g. two-factor or passkey"`
}

// SnippetInput is the input schema for the get_setup_snippet tool.
type SnippetInput struct {
	Name           string `json:"name" jsonschema:"snippet name: install, server-init, provider, or plugin-setup"`
	Provider       string `json:"provider,omitempty" jsonschema:"provider slug for the provider snippet"`
	Plugin         string `json:"plugin,omitempty" jsonschema:"plugin slug for the plugin-setup snippet"`
	PackageManager string `json:"package_manager,omitempty" jsonschema:"npm, pnpm, or bun (default npm)"`
}

// SnippetCodeOutput is the output schema for the get_setup_snippet tool.
type SnippetCodeOutput struct {
	Code string `json:"code"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_docs",
		Description: "Answer a question from the local Better Auth documentation corpus",
	}, s.handleAsk)

	if s.ports.Registry != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_providers",
			Description: "List the supported social sign-on providers and their required configuration",
		}, s.handleListProviders)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_provider",
			Description: "Get configuration details for one social provider",
		}, s.handleGetProvider)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_adapters",
			Description: "List the supported database adapters",
		}, s.handleListAdapters)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_plugins",
			Description: "List the available Better Auth plugins",
		}, s.handleListPlugins)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_plugin",
			Description: "Get import paths and description for one plugin",
		}, s.handleGetPlugin)
	}

	if s.ports.Snippets != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_setup_snippet",
			Description: "Render a templated Better Auth setup code snippet",
		}, s.handleGetSnippet)
	}
}

// handleAsk handles the ask_docs tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	// Required-parameter validation happens at the boundary, before
	// retrieval (and so before any corpus access).
	if strings.TrimSpace(input.Question) == "" {
		return nil, AskOutput{}, fmt.Errorf("question is required: %w", domain.ErrInvalidInput)
	}

	result, err := s.ports.Retrieval.Retrieve(ctx, input.Topic, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Citations:  make([]CitationOutput, len(result.Sources)),
		Snippets:   make([]SnippetOutput, len(result.Snippets)),
	}
	for i, src := range result.Sources {
		output.Citations[i] = CitationOutput{File: src.File, LineRange: src.LineRange}
	}
	for i, sn := range result.Snippets {
		output.Snippets[i] = SnippetOutput{
			Text:  sn.Paragraph.Text,
			Score: sn.Score,
			File:  sn.DocumentName,
		}
	}

	return nil, output, nil
}

// handleListProviders handles the list_providers tool invocation.
func (s *Server) handleListProviders(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ProvidersInput,
) (*mcp.CallToolResult, ProvidersOutput, error) {
	providers := s.ports.Registry.Providers()
	output := ProvidersOutput{
		Providers: make([]ProviderOutput, len(providers)),
		Count:     len(providers),
	}
	for i := range providers {
		output.Providers[i] = providerOutput(&providers[i])
	}
	return nil, output, nil
}

// handleGetProvider handles the get_provider tool invocation.
func (s *Server) handleGetProvider(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ProviderInput,
) (*mcp.CallToolResult, ProviderOutput, error) {
	provider, err := s.ports.Registry.Provider(input.ID)
	if err != nil {
		return nil, ProviderOutput{}, err
	}
	return nil, providerOutput(provider), nil
}

// handleListAdapters handles the list_adapters tool invocation.
func (s *Server) handleListAdapters(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ AdaptersInput,
) (*mcp.CallToolResult, AdaptersOutput, error) {
	adapters := s.ports.Registry.Adapters()
	output := AdaptersOutput{
		Adapters: make([]AdapterOutput, len(adapters)),
		Count:    len(adapters),
	}
	for i, a := range adapters {
		output.Adapters[i] = AdapterOutput{
			ID:       a.ID,
			Package:  a.Package,
			Dialects: a.Dialects,
			Notes:    a.Notes,
		}
	}
	return nil, output, nil
}

// handleListPlugins handles the list_plugins tool invocation.
func (s *Server) handleListPlugins(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ PluginsInput,
) (*mcp.CallToolResult, PluginsOutput, error) {
	plugins := s.ports.Registry.Plugins()
	output := PluginsOutput{
		Plugins: make([]PluginOutput, len(plugins)),
		Count:   len(plugins),
	}
	for i := range plugins {
		output.Plugins[i] = pluginOutput(&plugins[i])
	}
	return nil, output, nil
}

// handleGetPlugin handles the get_plugin tool invocation.
func (s *Server) handleGetPlugin(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PluginInput,
) (*mcp.CallToolResult, PluginOutput, error) {
	plugin, err := s.ports.Registry.Plugin(input.ID)
	if err != nil {
		return nil, PluginOutput{}, err
	}
	return nil, pluginOutput(plugin), nil
}

func providerOutput(p *domain.Provider) ProviderOutput {
	return ProviderOutput{
		ID:           p.ID,
		Name:         p.Name,
		RequiredKeys: p.RequiredKeys,
		DocsPath:     p.DocsPath,
		Notes:        p.Notes,
	}
}

func pluginOutput(p *domain.Plugin) PluginOutput {
	return PluginOutput{
		ID:           p.ID,
		Name:         p.Name,
		ServerImport: p.ServerImport,
		ClientImport: p.ClientImport,
		Description:  p.Description,
	}
}

// handleGetSnippet handles the get_setup_snippet tool invocation.
func (s *Server) handleGetSnippet(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SnippetInput,
) (*mcp.CallToolResult, SnippetCodeOutput, error) {
	code, err := s.ports.Snippets.Render(input.Name, driving.SnippetParams{
		Provider:       input.Provider,
		Plugin:         input.Plugin,
		PackageManager: input.PackageManager,
	})
	if err != nil {
		return nil, SnippetCodeOutput{}, err
	}
	return nil, SnippetCodeOutput{Code: code}, nil
}
