// Package category provides the commands that manage sub-categories.
package category

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/cmd/termipaper/cmd/papers"
	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/cmd/emoji"
	"github.com/agentstation/termipaper/internal/cmd/output"
	"github.com/agentstation/termipaper/internal/cmd/table"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// NewCommand creates the category command and its subcommands.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		GroupID: "database",
		Aliases: []string{"cat"},
		Short:   "Manage sub-categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newListCommand(app))

	return cmd
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:     "add NAME",
		Short:   "Create a sub-category",
		Example: `  termipaper category add ml
  termipaper category add nlp --parent ml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			var opts []catalog.TargetOption
			if path := papers.CategoryPath(parent); len(path) > 0 {
				opts = append(opts, catalog.In(path...))
			}

			c, err := cat.AddCategory(args[0], opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Created category %s\n", emoji.Success, strings.Join(c.Path(), "/"))
			return err
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent category path")

	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sub-categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			path := papers.CategoryPath(parent)
			c, err := cat.Category(path...)
			if err != nil {
				return err
			}

			summaries := make([]catalog.Summary, 0)
			for _, name := range c.SubCategories() {
				sub, err := cat.Category(append(append([]string{}, path...), name)...)
				if err != nil {
					return err
				}
				summaries = append(summaries, sub.Summary())
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, table.CategoriesToTableData(summaries), summaries)
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent category path")

	return cmd
}
