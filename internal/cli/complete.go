package cli

import (
	"slices"

	"github.com/arthur-debert/dolink/pkg/config"
	"github.com/spf13/cobra"
)

// itemNamesCompletion completes item names from the configuration,
// leaving out names already on the command line.
func itemNamesCompletion(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// PersistentPreRunE does not run for completion requests
		if opts.settings == (config.Settings{}) {
			if settings, err := config.LoadSettings(); err == nil {
				opts.settings = settings
			}
		}

		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var available []string
		for _, name := range cfg.ItemNames() {
			if !slices.Contains(args, name) {
				available = append(available, name)
			}
		}
		return available, cobra.ShellCompDirectiveNoFileComp
	}
}
