// Package cli provides the cobra command tree for authdocs.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/authdocs-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/authdocs-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
	"github.com/custodia-labs/authdocs-cli/internal/core/services"
	"github.com/custodia-labs/authdocs-cli/internal/logger"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "0.1.0"

// Services shared across commands. Wired by initServices; tests may
// inject mocks before running a command.
var (
	retrievalService driving.RetrievalService
	registryService  driving.RegistryService
	snippetService   driving.SnippetService
	documentService  driving.DocumentService

	configStore *file.ConfigStore
)

var (
	flagVerbose bool
	flagDocsDir string
)

var rootCmd = &cobra.Command{
	Use:   "authdocs",
	Short: "Answer Better Auth questions from a local docs corpus",
	Long: `authdocs answers questions about the Better Auth framework.

Answers are retrieved from a local documentation corpus (plain markdown
and text files); provider, adapter, and plugin reference tables and
setup snippets are built in. The same services are exposed to AI
assistants over the Model Context Protocol via 'authdocs mcp serve'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDocsDir, "docs-dir", "", "corpus directory (overrides the configured docs.dir)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires adapters into services. Services that are already
// set (by tests) are left alone.
func initServices() error {
	if retrievalService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	configStore = cfg

	dir := flagDocsDir
	if dir == "" {
		dir = cfg.GetString(file.KeyDocsDir)
	}
	if dir == "" {
		dir = defaultDocsDir()
	}
	logger.Debug("Using corpus directory %s", dir)

	store := corpus.NewStore(dir)
	retrievalService = services.NewRetrievalService(store)
	documentService = services.NewDocumentService(store)
	registryService = services.NewRegistryService()

	snippets, err := services.NewSnippetService()
	if err != nil {
		return fmt.Errorf("init snippets: %w", err)
	}
	snippetService = snippets

	return nil
}

// defaultDocsDir is used when no corpus directory is configured.
func defaultDocsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docs"
	}
	return filepath.Join(home, ".authdocs", "docs")
}
