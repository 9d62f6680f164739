// Package papers provides the commands that add, change, inspect and open
// catalog entries.
package papers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/termipaper/internal/paths"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// entryFlags are the metadata flags shared by add and edit.
type entryFlags struct {
	file     string
	title    string
	authors  []string
	year     uint32
	doi      string
	category string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "paper file to copy into the catalog")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "paper title")
	cmd.Flags().StringArrayVarP(&f.authors, "author", "a", nil, "author name (repeat for each author, in order)")
	cmd.Flags().Uint32VarP(&f.year, "year", "y", 0, "publication year")
	cmd.Flags().StringVar(&f.doi, "doi", "", "digital object identifier")
	addCategoryFlag(cmd, &f.category)
}

// entry builds a payload holding only the flags the user set.
func (f *entryFlags) entry(cmd *cobra.Command) (catalog.Entry, error) {
	var e catalog.Entry
	flags := cmd.Flags()
	if flags.Changed("title") {
		e.Title = catalog.Ptr(f.title)
	}
	if flags.Changed("author") {
		e.Authors = append([]string{}, f.authors...)
	}
	if flags.Changed("year") {
		e.Year = catalog.Ptr(f.year)
	}
	if flags.Changed("doi") {
		e.DOI = catalog.Ptr(f.doi)
	}
	if flags.Changed("file") {
		file, err := paths.Expand(f.file)
		if err != nil {
			return catalog.Entry{}, err
		}
		e.File = file
	}
	return e, nil
}

func addCategoryFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "category", "c", "", "sub-category path, e.g. ml/nlp")
}

// CategoryPath splits a slash separated category path.
func CategoryPath(s string) []string {
	var path []string
	for _, part := range strings.Split(s, "/") {
		if part != "" {
			path = append(path, part)
		}
	}
	return path
}

func target(category string) []catalog.TargetOption {
	path := CategoryPath(category)
	if len(path) == 0 {
		return nil
	}
	return []catalog.TargetOption{catalog.In(path...)}
}

func displayID(category, id string) string {
	if path := CategoryPath(category); len(path) > 0 {
		return strings.Join(path, "/") + "/" + id
	}
	return id
}
