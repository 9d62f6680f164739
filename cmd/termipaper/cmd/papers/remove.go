package papers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/pkg/errors"
	"github.com/agentstation/termipaper/pkg/logging"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(app appcontext.Interface) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "remove ID",
		GroupID: "papers",
		Aliases: []string{"rm"},
		Short:   "Remove a paper and its stored file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			err = cat.Remove(id, target(category)...)
			if err != nil && !errors.IsIO(err) {
				return err
			}
			if err != nil {
				logging.FromContext(logging.WithEntry(cmd.Context(), id)).Error().Err(err).Msg("remove incomplete")
				if c, cerr := cat.Category(CategoryPath(category)...); cerr == nil && !c.Has(id) {
					// the entry is gone but its file could not be deleted
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s Removed %s, but its file could not be deleted\n", emoji.Warning, displayID(category, id))
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n", emoji.Success, displayID(category, id))
			return err
		},
	}

	addCategoryFlag(cmd, &category)

	return cmd
}
