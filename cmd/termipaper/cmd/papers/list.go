package papers

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/filter"
	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/internal/cmd/table"
	"github.com/agentstation/termipaper/internal/matcher"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// NewListCommand creates the list command.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	var (
		category string
		pattern  string
		f        filter.PaperFilter
	)

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "papers",
		Aliases: []string{"ls"},
		Short:   "List the papers in a category",
		Example: `  termipaper list
  termipaper list --category ml/nlp -o json
  termipaper list --author turing --year 1936
  termipaper list --match 'smith*'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pattern != "" {
				m, err := matcher.New(matcher.Auto, pattern)
				if err != nil {
					return err
				}
				f.ID = m
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			c, err := cat.Category(CategoryPath(category)...)
			if err != nil {
				return err
			}

			records := f.Apply(c.List())
			files := storedFiles(c, records, app.Logger())

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, table.EntriesToTableData(records, files), records)
		},
	}

	addCategoryFlag(cmd, &category)
	cmd.Flags().StringVar(&f.Author, "author", "", "only papers with a matching author")
	cmd.Flags().Uint32Var(&f.Year, "year", 0, "only papers published in this year")
	cmd.Flags().BoolVar(&f.HasFile, "with-file", false, "only papers with a stored file")
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "only papers whose id matches a glob or regex")
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "only papers whose id, title or DOI contains the text")

	return cmd
}

// storedFiles looks up the stored file of every record that has one.
// Unreadable files are logged and left out.
func storedFiles(c *catalog.Category, records []catalog.Record, logger *zerolog.Logger) map[string]*catalog.StoredFile {
	files := make(map[string]*catalog.StoredFile, len(records))
	for _, r := range records {
		if !r.HasFile() {
			continue
		}
		f, err := c.StoredFile(r.ID)
		if err != nil {
			logger.Warn().Err(err).Str("id", r.ID).Msg("stored file unavailable")
			continue
		}
		files[r.ID] = f
	}
	return files
}
