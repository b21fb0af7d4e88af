package services

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

// Snippet template names.
const (
	SnippetInstall     = "install"
	SnippetServerInit  = "server-init"
	SnippetProvider    = "provider"
	SnippetPluginSetup = "plugin-setup"
)

// snippetTemplates holds the embedded setup snippet templates.
//
//nolint:lll // Snippet content is intentionally long and should not be wrapped.
var snippetTemplates = map[string]string{
	SnippetInstall: `{{.PackageManager}} install better-auth`,

	SnippetServerInit: `import { betterAuth } from "better-auth";

export const auth = betterAuth({
  emailAndPassword: {
    enabled: true,
  },
});`,

	SnippetProvider: `import { betterAuth } from "better-auth";

export const auth = betterAuth({
  socialProviders: {
    {{camel .Provider}}: {
      clientId: process.env.{{env .Provider}}_CLIENT_ID as string,
      clientSecret: process.env.{{env .Provider}}_CLIENT_SECRET as string,
    },
  },
});`,

	SnippetPluginSetup: `import { betterAuth } from "better-auth";
import { {{camel .Plugin}} } from "better-auth/plugins";

export const auth = betterAuth({
  plugins: [{{camel .Plugin}}()],
});`,
}

// templateFuncs are the helpers available inside snippet templates.
var templateFuncs = template.FuncMap{
	// camel converts a kebab-case slug to lowerCamelCase.
	"camel": func(slug string) string {
		parts := strings.Split(slug, "-")
		for i := 1; i < len(parts); i++ {
			if parts[i] == "" {
				continue
			}
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
		return strings.Join(parts, "")
	},
	// env converts a slug to an environment variable prefix.
	"env": func(slug string) string {
		return strings.ToUpper(strings.ReplaceAll(slug, "-", "_"))
	},
}

// Ensure SnippetService implements the interface.
var _ driving.SnippetService = (*SnippetService)(nil)

// SnippetService renders templated Better Auth setup snippets.
type SnippetService struct {
	templates map[string]*template.Template
}

// NewSnippetService parses the embedded snippet templates.
func NewSnippetService() (*SnippetService, error) {
	templates := make(map[string]*template.Template, len(snippetTemplates))
	for name, text := range snippetTemplates {
		tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse snippet %q: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &SnippetService{templates: templates}, nil
}

// Render renders the named snippet with the given parameters.
func (s *SnippetService) Render(name string, params driving.SnippetParams) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("snippet %q: %w", name, domain.ErrUnknownSnippet)
	}

	if params.PackageManager == "" {
		params.PackageManager = "npm"
	}
	switch name {
	case SnippetProvider:
		if strings.TrimSpace(params.Provider) == "" {
			return "", fmt.Errorf("snippet %q needs a provider: %w", name, domain.ErrInvalidInput)
		}
	case SnippetPluginSetup:
		if strings.TrimSpace(params.Plugin) == "" {
			return "", fmt.Errorf("snippet %q needs a plugin: %w", name, domain.ErrInvalidInput)
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, params); err != nil {
		return "", fmt.Errorf("render snippet %q: %w", name, err)
	}
	return b.String(), nil
}

// Names returns the registered snippet names, sorted.
func (s *SnippetService) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
