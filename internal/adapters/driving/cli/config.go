package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/authdocs-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configDocsDirCmd = &cobra.Command{
	Use:   "docs-dir [path]",
	Short: "Get or set the corpus directory",
	Long: `Gets or sets the docs.dir configuration key, the directory the
retrieval corpus is loaded from.

Examples:
  authdocs config docs-dir
  authdocs config docs-dir ~/better-auth/docs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigDocsDir,
}

func init() {
	configCmd.AddCommand(configDocsDirCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigDocsDir(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if len(args) == 0 {
		dir := configStore.GetString(file.KeyDocsDir)
		if dir == "" {
			cmd.Println("docs.dir is not set")
			return nil
		}
		cmd.Println(dir)
		return nil
	}

	if err := configStore.Set(file.KeyDocsDir, args[0]); err != nil {
		return err
	}
	cmd.Printf("docs.dir set to %s\n", args[0])
	return nil
}
