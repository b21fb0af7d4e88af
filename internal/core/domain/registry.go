package domain

// Provider describes a Better Auth social sign-on provider.
type Provider struct {
	// ID is the lower-case provider slug (e.g. "google", "github").
	ID string

	// Name is the human-readable provider name.
	Name string

	// RequiredKeys are the configuration keys the provider needs
	// (typically clientId and clientSecret).
	RequiredKeys []string

	// DocsPath is the corpus-relative documentation path.
	DocsPath string

	// Notes holds setup caveats worth surfacing alongside config.
	Notes string
}

// Adapter describes a Better Auth database adapter.
type Adapter struct {
	// ID is the lower-case adapter slug (e.g. "drizzle", "prisma").
	ID string

	// Package is the import path or npm package providing the adapter.
	Package string

	// Dialects lists the supported database dialects.
	Dialects []string

	// Notes holds usage caveats.
	Notes string
}

// Plugin describes a Better Auth plugin and its import surface.
type Plugin struct {
	// ID is the lower-case plugin slug (e.g. "two-factor").
	ID string

	// Name is the human-readable plugin name.
	Name string

	// ServerImport is the server-side import path.
	ServerImport string

	// ClientImport is the client-side import path, empty when the
	// plugin has no client component.
	ClientImport string

	// Description is a one-line summary.
	Description string
}
