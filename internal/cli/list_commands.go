// internal/cli/list_commands.go
package llmcompare

import "github.com/spf13/cobra"

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(cmd, rootCmd)
	},
}

// categoriesCmd implements 'list categories', the category color legend.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List model categories with their colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListCategories(cmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
	listCmd.AddCommand(categoriesCmd)
}
