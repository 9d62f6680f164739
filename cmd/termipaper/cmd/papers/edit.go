package papers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/pkg/errors"
)

// NewEditCommand creates the edit command.
func NewEditCommand(app appcontext.Interface) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:     "edit ID",
		GroupID: "papers",
		Short:   "Change the metadata or file of a paper",
		Long: `Edit updates only the fields given on the command line; everything else
is kept. Passing --file replaces the stored paper file.`,
		Example: `  termipaper edit vaswani2017 --year 2017
  termipaper edit vaswani2017 -f ~/Downloads/attention-v7.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			update, err := flags.entry(cmd)
			if err != nil {
				return err
			}
			if update.Title == nil && update.Authors == nil && update.Year == nil && update.DOI == nil && update.File == "" {
				return errors.NewValidationError("flags", nil, "nothing to change; pass at least one of --file, --title, --author, --year, --doi")
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if err := cat.Edit(id, update, target(flags.category)...); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s\n", emoji.Success, displayID(flags.category, id))
			return err
		},
	}

	flags.register(cmd)

	return cmd
}
