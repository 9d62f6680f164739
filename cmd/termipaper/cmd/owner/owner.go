// Package owner provides the commands that manage the profile owner.
package owner

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/internal/cmd/table"
	"github.com/agentstation/termipaper/internal/profile"
)

// NewCommand creates the owner command and its subcommands.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "owner",
		GroupID: "database",
		Short:   "Show or set the catalog owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return show(cmd, app)
		},
	}

	cmd.AddCommand(newSetCommand(app))

	return cmd
}

func newSetCommand(app appcontext.Interface) *cobra.Command {
	var o profile.Owner

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Record the owner's identity",
		Example: `  termipaper owner set --name "Ada Lovelace" --email ada@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tp, err := app.Termipaper()
			if err != nil {
				return err
			}
			if err := tp.SetOwner(o); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Owner set to %s\n", emoji.Success, o.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&o.Name, "name", "", "owner name (required)")
	cmd.Flags().StringVar(&o.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&o.Affiliation, "affiliation", "", "institution or organization")
	cmd.Flags().StringVar(&o.Link, "link", "", "homepage URL")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func show(cmd *cobra.Command, app appcontext.Interface) error {
	tp, err := app.Termipaper()
	if err != nil {
		return err
	}
	p, err := tp.Profile()
	if err != nil {
		return err
	}

	o := p.Owner
	data := table.KeyValue([][]string{
		{table.Title("name"), table.FormatString(&o.Name)},
		{table.Title("email"), table.FormatString(&o.Email)},
		{table.Title("affiliation"), table.FormatString(&o.Affiliation)},
		{table.Title("link"), table.FormatString(&o.Link)},
	})

	format := output.DetectFormat(app.OutputFormat())
	return output.Write(cmd.OutOrStdout(), format, data, o)
}
