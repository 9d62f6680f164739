package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/cmd/termipaper/cmd/category"
	"github.com/agentstation/termipaper/cmd/termipaper/cmd/database"
	"github.com/agentstation/termipaper/cmd/termipaper/cmd/owner"
	"github.com/agentstation/termipaper/cmd/termipaper/cmd/papers"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Paper commands
	rootCmd.AddCommand(papers.NewAddCommand(a))
	rootCmd.AddCommand(papers.NewEditCommand(a))
	rootCmd.AddCommand(papers.NewRemoveCommand(a))
	rootCmd.AddCommand(papers.NewListCommand(a))
	rootCmd.AddCommand(papers.NewShowCommand(a))
	rootCmd.AddCommand(papers.NewOpenCommand(a))

	// Catalog commands
	rootCmd.AddCommand(database.NewInitCommand(a))
	rootCmd.AddCommand(database.NewActivateCommand(a))
	rootCmd.AddCommand(database.NewInfoCommand(a))
	rootCmd.AddCommand(category.NewCommand(a))
	rootCmd.AddCommand(owner.NewCommand(a))

	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("termipaper %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
