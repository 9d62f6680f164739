// Package database provides the commands that create, select and describe
// catalog directories.
package database

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/internal/cmd/table"
	"github.com/agentstation/termipaper/internal/profile"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// NewInitCommand creates the init command.
func NewInitCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "init [DIR]",
		GroupID: "database",
		Short:   "Create a catalog directory",
		Long: `Init creates DIR with an empty index and records it in the profile.
Without DIR the directory given by --dir, the activated catalog or the
default data directory is used. An existing index is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := app.Termipaper()
			if err != nil {
				return err
			}
			dir, err := tp.Init(optionalArg(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Initialized catalog in %s\n", emoji.Success, dir)
			return err
		},
	}
}

// NewActivateCommand creates the activate command.
func NewActivateCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "activate [DIR]",
		GroupID: "database",
		Short:   "Use a catalog directory by default",
		Long: `Activate makes DIR the catalog used when --dir is not given. Without DIR
the default data directory is activated again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := app.Termipaper()
			if err != nil {
				return err
			}
			dir, err := tp.Activate(optionalArg(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Activated %s\n", emoji.Success, dir)
			return err
		},
	}
}

// Info is the structured form of `info`.
type Info struct {
	Catalog   catalog.Summary      `json:"catalog" yaml:"catalog"`
	Source    termipaper.DirSource `json:"source" yaml:"source"`
	Created   string               `json:"date_created,omitempty" yaml:"date_created,omitempty"`
	Activated string               `json:"activated,omitempty" yaml:"activated,omitempty"`
	Owner     profile.Owner        `json:"owner" yaml:"owner"`
	Databases []string             `json:"databases" yaml:"databases"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		GroupID: "database",
		Short:   "Describe the current catalog and profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tp, err := app.Termipaper()
			if err != nil {
				return err
			}
			_, source, err := tp.Dir()
			if err != nil {
				return err
			}
			cat, err := tp.Catalog()
			if err != nil {
				return err
			}
			p, err := tp.Profile()
			if err != nil {
				return err
			}

			info := Info{
				Catalog:   cat.Info(),
				Source:    source,
				Created:   p.Databases[cat.Dir()].DateCreated,
				Activated: p.Activated,
				Owner:     p.Owner,
				Databases: p.Dirs(),
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, infoTable(info), info)
		},
	}
}

func infoTable(info Info) table.Data {
	data := table.SummaryToTableData(info.Catalog)
	data.Rows = append(data.Rows,
		[]string{table.Title("source"), string(info.Source)},
		[]string{table.Title("date_created"), orDash(info.Created)},
		[]string{table.Title("owner"), orDash(info.Owner.Name)},
	)
	if info.Owner.Email != "" {
		data.Rows = append(data.Rows, []string{table.Title("email"), info.Owner.Email})
	}
	if info.Owner.Affiliation != "" {
		data.Rows = append(data.Rows, []string{table.Title("affiliation"), info.Owner.Affiliation})
	}
	if info.Owner.Link != "" {
		data.Rows = append(data.Rows, []string{table.Title("link"), info.Owner.Link})
	}
	return data
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func orDash(s string) string {
	if s == "" {
		return table.Placeholder
	}
	return s
}
