package driving

// SnippetParams parameterises a setup snippet template.
type SnippetParams struct {
	// Provider is a social provider slug (for provider snippets).
	Provider string

	// Plugin is a plugin slug (for plugin snippets).
	Plugin string

	// PackageManager selects the install command ("npm", "pnpm", "bun").
	// Defaults to "npm" when empty.
	PackageManager string
}

// SnippetService renders templated Better Auth setup snippets.
type SnippetService interface {
	// Render renders the named snippet with the given parameters.
	// Returns domain.ErrUnknownSnippet for unregistered names.
	Render(name string, params SnippetParams) (string, error)

	// Names returns the registered snippet names, sorted.
	Names() []string
}
