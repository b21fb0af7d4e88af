package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers [id]",
	Short: "List social providers or show one",
	Long: `Lists the supported social sign-on providers, or shows the
configuration details for one provider.

Examples:
  authdocs providers
  authdocs providers github`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProviders,
}

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List database adapters",
	RunE:  runAdapters,
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins [id]",
	Short: "List plugins or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlugins,
}

func init() {
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(adaptersCmd)
	rootCmd.AddCommand(pluginsCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	if len(args) == 1 {
		provider, err := registryService.Provider(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%s (%s)\n", provider.Name, provider.ID)
		cmd.Printf("  Required keys: %s\n", strings.Join(provider.RequiredKeys, ", "))
		cmd.Printf("  Docs: %s\n", provider.DocsPath)
		if provider.Notes != "" {
			cmd.Printf("  Notes: %s\n", provider.Notes)
		}
		return nil
	}

	for _, p := range registryService.Providers() {
		cmd.Printf("  %-12s %s\n", p.ID, p.Name)
	}
	return nil
}

func runAdapters(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	for _, a := range registryService.Adapters() {
		cmd.Printf("  %-10s %s (%s)\n", a.ID, a.Package, strings.Join(a.Dialects, ", "))
	}
	return nil
}

func runPlugins(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	if len(args) == 1 {
		plugin, err := registryService.Plugin(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%s (%s)\n", plugin.Name, plugin.ID)
		cmd.Printf("  %s\n", plugin.Description)
		cmd.Printf("  Server import: %s\n", plugin.ServerImport)
		if plugin.ClientImport != "" {
			cmd.Printf("  Client import: %s\n", plugin.ClientImport)
		}
		return nil
	}

	for _, p := range registryService.Plugins() {
		cmd.Printf("  %-14s %s\n", p.ID, p.Description)
	}
	return nil
}
