package papers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/pkg/logging"
)

// NewAddCommand creates the add command.
func NewAddCommand(app appcontext.Interface) *cobra.Command {
	var (
		flags entryFlags
		force bool
	)

	cmd := &cobra.Command{
		Use:     "add ID",
		GroupID: "papers",
		Short:   "Add a paper to the catalog",
		Long: `Add files a new entry under ID. With --file the paper is copied into the
catalog directory and stored as ID plus the file's extension.`,
		Example: `  termipaper add vaswani2017 -f ~/Downloads/1706.03762.pdf -t "Attention Is All You Need" -y 2017
  termipaper add vaswani2017 -a Vaswani -a Shazeer --force
  termipaper add he2016 -f resnet.pdf --category vision`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			entry, err := flags.entry(cmd)
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if err := cat.Add(id, entry, force, target(flags.category)...); err != nil {
				return err
			}

			ctx := logging.WithCategory(logging.WithEntry(cmd.Context(), id), CategoryPath(flags.category))
			logging.FromContext(ctx).Debug().Bool("force", force).Msg("entry added")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s\n", emoji.Success, displayID(flags.category, id))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing entry with the same ID")

	return cmd
}
