// internal/cli/show_config.go
package llmcompare

import (
	"github.com/mwiater/llmcompare/internal/appconfig"
	"github.com/spf13/cobra"
)

// configCmd prints the merged configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  `The 'config' subcommand prints the configuration after merging the config file, environment overrides and flags, including the default view state every command starts from.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		appconfig.ShowConfig(cmd.OutOrStdout(), getConfig())
	},
}

func init() {
	showCmd.AddCommand(configCmd)
}
