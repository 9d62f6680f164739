package papers

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/internal/cmd/table"
	"github.com/agentstation/termipaper/pkg/catalog"
	"github.com/agentstation/termipaper/pkg/errors"
)

// detail is the structured form of `show`.
type detail struct {
	catalog.Record `yaml:",inline"`
	Stored         *catalog.StoredFile `json:"stored,omitempty" yaml:"stored,omitempty"`
}

// NewShowCommand creates the show command.
func NewShowCommand(app appcontext.Interface) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "show ID",
		GroupID: "papers",
		Short:   "Show the details of a paper",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			c, err := cat.Category(CategoryPath(category)...)
			if err != nil {
				return err
			}

			entry, ok := c.Entry(id)
			if !ok {
				return errors.NewNotFoundError(catalog.ResourceEntry, id)
			}

			var stored *catalog.StoredFile
			if entry.HasFile() {
				stored, err = c.StoredFile(id)
				if err != nil {
					app.Logger().Warn().Err(err).Str("id", id).Msg("stored file unavailable")
				}
			}

			format := output.DetectFormat(app.OutputFormat())
			raw := detail{Record: catalog.Record{ID: id, Entry: entry}, Stored: stored}
			return output.Write(cmd.OutOrStdout(), format, table.EntryToTableData(id, entry, stored), raw)
		},
	}

	addCategoryFlag(cmd, &category)

	return cmd
}
