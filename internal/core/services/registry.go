package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// providers is the static social-provider table, ordered for display.
var providers = []domain.Provider{
	{
		ID:           "google",
		Name:         "Google",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/google.md",
		Notes:        "Redirect URI must be registered in the Google Cloud console.",
	},
	{
		ID:           "github",
		Name:         "GitHub",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/github.md",
		Notes:        "Requires the user:email scope to read the primary email.",
	},
	{
		ID:           "apple",
		Name:         "Apple",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/apple.md",
		Notes:        "The client secret is a signed JWT that expires and must be rotated.",
	},
	{
		ID:           "discord",
		Name:         "Discord",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/discord.md",
		Notes:        "",
	},
	{
		ID:           "facebook",
		Name:         "Facebook",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/facebook.md",
		Notes:        "",
	},
	{
		ID:           "microsoft",
		Name:         "Microsoft",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/microsoft.md",
		Notes:        "Tenant defaults to \"common\"; set tenantId for single-tenant apps.",
	},
	{
		ID:           "twitter",
		Name:         "X (Twitter)",
		RequiredKeys: []string{"clientId", "clientSecret"},
		DocsPath:     "authentication/twitter.md",
		Notes:        "Uses OAuth 2.0 with PKCE.",
	},
}

// adapters is the static database-adapter table.
var adapters = []domain.Adapter{
	{
		ID:       "drizzle",
		Package:  "better-auth/adapters/drizzle",
		Dialects: []string{"postgresql", "mysql", "sqlite"},
		Notes:    "Pass the drizzle instance and provider dialect.",
	},
	{
		ID:       "prisma",
		Package:  "better-auth/adapters/prisma",
		Dialects: []string{"postgresql", "mysql", "sqlite", "mongodb"},
		Notes:    "Run the schema generator after changing plugins.",
	},
	{
		ID:       "kysely",
		Package:  "better-auth",
		Dialects: []string{"postgresql", "mysql", "sqlite", "mssql"},
		Notes:    "Built in: pass a Kysely dialect or connection directly as database.",
	},
	{
		ID:       "mongodb",
		Package:  "better-auth/adapters/mongodb",
		Dialects: []string{"mongodb"},
		Notes:    "No migration step; collections are created on demand.",
	},
	{
		ID:       "memory",
		Package:  "better-auth/adapters/memory",
		Dialects: []string{"in-memory"},
		Notes:    "Development only; state is lost on restart.",
	},
}

// plugins is the static plugin table.
var plugins = []domain.Plugin{
	{
		ID:           "two-factor",
		Name:         "Two Factor",
		ServerImport: "better-auth/plugins",
		ClientImport: "better-auth/client/plugins",
		Description:  "TOTP and OTP second-factor authentication.",
	},
	{
		ID:           "username",
		Name:         "Username",
		ServerImport: "better-auth/plugins",
		ClientImport: "better-auth/client/plugins",
		Description:  "Username and password sign-in alongside email.",
	},
	{
		ID:           "magic-link",
		Name:         "Magic Link",
		ServerImport: "better-auth/plugins",
		ClientImport: "better-auth/client/plugins",
		Description:  "Passwordless sign-in links sent by email.",
	},
	{
		ID:           "passkey",
		Name:         "Passkey",
		ServerImport: "better-auth/plugins/passkey",
		ClientImport: "better-auth/client/plugins",
		Description:  "WebAuthn passkey registration and sign-in.",
	},
	{
		ID:           "organization",
		Name:         "Organization",
		ServerImport: "better-auth/plugins",
		ClientImport: "better-auth/client/plugins",
		Description:  "Organizations, members, invitations, and roles.",
	},
	{
		ID:           "admin",
		Name:         "Admin",
		ServerImport: "better-auth/plugins",
		ClientImport: "better-auth/client/plugins",
		Description:  "User administration: ban, impersonate, manage roles.",
	},
	{
		ID:           "bearer",
		Name:         "Bearer",
		ServerImport: "better-auth/plugins",
		ClientImport: "",
		Description:  "Bearer-token session authentication for non-browser clients.",
	},
	{
		ID:           "jwt",
		Name:         "JWT",
		ServerImport: "better-auth/plugins",
		ClientImport: "",
		Description:  "Issue JWTs for services that cannot share session cookies.",
	},
}

// Ensure RegistryService implements the interface.
var _ driving.RegistryService = (*RegistryService)(nil)

// RegistryService serves the static Better Auth reference tables.
type RegistryService struct{}

// NewRegistryService creates a new RegistryService.
func NewRegistryService() *RegistryService {
	return &RegistryService{}
}

// Providers returns all known social providers.
func (r *RegistryService) Providers() []domain.Provider {
	result := make([]domain.Provider, len(providers))
	copy(result, providers)
	return result
}

// Provider returns one provider by ID.
func (r *RegistryService) Provider(id string) (*domain.Provider, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i := range providers {
		if providers[i].ID == id {
			p := providers[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("provider %q: %w", id, domain.ErrNotFound)
}

// Adapters returns all known database adapters.
func (r *RegistryService) Adapters() []domain.Adapter {
	result := make([]domain.Adapter, len(adapters))
	copy(result, adapters)
	return result
}

// Plugins returns all known plugins.
func (r *RegistryService) Plugins() []domain.Plugin {
	result := make([]domain.Plugin, len(plugins))
	copy(result, plugins)
	return result
}

// Plugin returns one plugin by ID.
func (r *RegistryService) Plugin(id string) (*domain.Plugin, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i := range plugins {
		if plugins[i].ID == id {
			p := plugins[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("plugin %q: %w", id, domain.ErrNotFound)
}
