package mcp

import (
	"context"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	result *domain.RetrievalResult
	err    error
	calls  int
}

func (m *mockRetrievalService) Retrieve(
	_ context.Context,
	_ string,
	_ string,
) (*domain.RetrievalResult, error) {
	m.calls++
	return m.result, m.err
}

// mockRegistryService is a mock implementation of driving.RegistryService.
type mockRegistryService struct {
	providers []domain.Provider
	adapters  []domain.Adapter
	plugins   []domain.Plugin
	err       error
}

func (m *mockRegistryService) Providers() []domain.Provider {
	return m.providers
}

func (m *mockRegistryService) Provider(id string) (*domain.Provider, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.providers {
		if m.providers[i].ID == id {
			return &m.providers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistryService) Adapters() []domain.Adapter {
	return m.adapters
}

func (m *mockRegistryService) Plugins() []domain.Plugin {
	return m.plugins
}

func (m *mockRegistryService) Plugin(id string) (*domain.Plugin, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.plugins {
		if m.plugins[i].ID == id {
			return &m.plugins[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockSnippetService is a mock implementation of driving.SnippetService.
type mockSnippetService struct {
	code  string
	names []string
	err   error
}

func (m *mockSnippetService) Render(_ string, _ driving.SnippetParams) (string, error) {
	return m.code, m.err
}

func (m *mockSnippetService) Names() []string {
	return m.names
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	content   string
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) GetContent(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}
