package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
)

var (
	snippetProvider string
	snippetPlugin   string
	snippetPM       string
)

var snippetCmd = &cobra.Command{
	Use:   "snippet [name]",
	Short: "Render a setup code snippet",
	Long: `Renders a templated Better Auth setup snippet.

Without arguments, lists the available snippet names.

Examples:
  authdocs snippet install --pm pnpm
  authdocs snippet server-init
  authdocs snippet provider --provider github
  authdocs snippet plugin-setup --plugin two-factor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnippet,
}

func init() {
	snippetCmd.Flags().StringVar(&snippetProvider, "provider", "", "provider slug for the provider snippet")
	snippetCmd.Flags().StringVar(&snippetPlugin, "plugin", "", "plugin slug for the plugin-setup snippet")
	snippetCmd.Flags().StringVar(&snippetPM, "pm", "", "package manager: npm, pnpm, or bun (default npm)")
	rootCmd.AddCommand(snippetCmd)
}

func runSnippet(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	if len(args) == 0 {
		cmd.Printf("Available snippets: %s\n", strings.Join(snippetService.Names(), ", "))
		return nil
	}

	code, err := snippetService.Render(args[0], driving.SnippetParams{
		Provider:       snippetProvider,
		Plugin:         snippetPlugin,
		PackageManager: snippetPM,
	})
	if err != nil {
		return err
	}

	cmd.Println(code)
	return nil
}
