// Package table converts catalog data into rows for tabular output.
package table

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/termipaper/pkg/catalog"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data is a table ready to render.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder fills cells with no value.
const Placeholder = "-"

var caser = cases.Title(language.English)

// Title turns a snake_case key into a column or property label.
func Title(key string) string {
	return caser.String(strings.ReplaceAll(key, "_", " "))
}

// EntriesToTableData lists entries one per row. files holds the stored file
// of each entry that has one; entries missing from it show no size.
func EntriesToTableData(records []catalog.Record, files map[string]*catalog.StoredFile) Data {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		size := Placeholder
		if f, ok := files[r.ID]; ok && f != nil {
			size = humanize.Bytes(uint64(f.Size))
		}
		rows = append(rows, []string{
			r.ID,
			FormatString(r.Title),
			FormatAuthors(r.Authors),
			FormatYear(r.Year),
			orPlaceholder(r.File),
			size,
		})
	}

	return Data{
		Headers:         []string{"ID", "Title", "Authors", "Year", "File", "Size"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight},
	}
}

// EntryToTableData renders one entry as property/value rows.
func EntryToTableData(id string, e catalog.Entry, file *catalog.StoredFile) Data {
	rows := [][]string{
		{Title("id"), id},
		{Title("title"), FormatString(e.Title)},
		{Title("authors"), FormatAuthors(e.Authors)},
		{Title("year"), FormatYear(e.Year)},
		{"DOI", FormatString(e.DOI)},
		{Title("file"), orPlaceholder(e.File)},
	}
	if file != nil {
		rows = append(rows,
			[]string{Title("path"), file.Path},
			[]string{Title("size"), humanize.Bytes(uint64(file.Size))},
			[]string{Title("type"), file.MIME},
		)
	}
	return KeyValue(rows)
}

// SummaryToTableData renders a category summary as property/value rows.
func SummaryToTableData(s catalog.Summary) Data {
	return KeyValue([][]string{
		{Title("dir"), s.Dir},
		{Title("index_file"), s.IndexFile},
		{Title("entries"), humanize.Comma(int64(s.Entries))},
		{Title("with_file"), humanize.Comma(int64(s.WithFile))},
		{Title("sub_categories"), orPlaceholder(strings.Join(s.SubCategories, ", "))},
	})
}

// CategoriesToTableData lists categories with their entry counts.
func CategoriesToTableData(summaries []catalog.Summary) Data {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strings.Join(s.Path, "/"),
			strconv.Itoa(s.Entries),
			strconv.Itoa(len(s.SubCategories)),
		})
	}
	return Data{
		Headers:         []string{"Category", "Entries", "Sub-categories"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight},
	}
}

// KeyValue builds a two-column property table.
func KeyValue(rows [][]string) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// FormatString returns the value or a placeholder.
func FormatString(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

// FormatYear returns the year or a placeholder.
func FormatYear(y *uint32) string {
	if y == nil {
		return Placeholder
	}
	return strconv.FormatUint(uint64(*y), 10)
}

// FormatAuthors joins authors, abbreviating long lists.
func FormatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return Placeholder
	case 1, 2, 3:
		return strings.Join(authors, ", ")
	default:
		return authors[0] + " et al."
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
