package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/pkg/logging"
)

// Execute runs the termipaper CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "termipaper",
		Short:   "Academic paper catalog for the terminal",
		Version: a.version,
		Long: `Termipaper keeps a catalog of academic papers in a plain directory.

Every directory holds an index.termipaper.yml describing its papers and
sub-categories, next to the paper files themselves. The catalog used is
taken from --dir, then the activated catalog, then the default data
directory.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "papers",
		Title: "Paper Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "database",
		Title: "Catalog Commands:",
	})

	// Defaults come from the loaded config so flags only override what they set.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.termipaper.yaml)")
	flags.StringVarP(&a.config.Dir, "dir", "d", a.config.Dir, "catalog directory to use")
	flags.StringVar(&a.config.Profile, "profile", a.config.Profile, "profile file (default is $XDG_CONFIG_HOME/termipaper/config.yml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("termipaper {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd); err != nil {
			return err
		}
	}
	if a.config.Format != "" {
		if _, err := output.ParseFormat(a.config.Format); err != nil {
			return err
		}
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)
	ctx := logging.WithLogger(cmd.Context(), a.logger)
	if a.config.Dir != "" {
		ctx = logging.WithCatalog(ctx, a.config.Dir)
	}
	cmd.SetContext(ctx)

	return nil
}

// reloadConfig re-reads configuration from the file named by --config,
// keeping the values of every flag given explicitly.
func (a *App) reloadConfig(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.config.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = a.config.Dir
	}
	if flags.Changed("profile") {
		cfg.Profile = a.config.Profile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.config.Verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = a.config.Quiet
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.config.NoColor
	}
	if flags.Changed("format") {
		cfg.Format = a.config.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.config.LogLevel
	}

	a.config = cfg
	return nil
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
