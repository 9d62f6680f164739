// Package filter narrows paper listings by author, year and free text.
package filter

import (
	"strings"

	"github.com/agentstation/termipaper/internal/matcher"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// PaperFilter applies filters to paper lists.
type PaperFilter struct {
	Author  string
	Year    uint32
	HasFile bool
	Search  string // matched against id, title and DOI
	ID      matcher.Matcher
}

// Apply filters a slice of records, keeping their order.
func (f *PaperFilter) Apply(records []catalog.Record) []catalog.Record {
	if f == nil || f.isEmpty() {
		return records
	}

	filtered := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (f *PaperFilter) isEmpty() bool {
	return f.Author == "" &&
		f.Year == 0 &&
		!f.HasFile &&
		f.Search == "" &&
		f.ID == nil
}

func (f *PaperFilter) matches(r catalog.Record) bool {
	if f.ID != nil && !f.ID.Match(r.ID) {
		return false
	}
	if f.Author != "" && !f.matchesAuthor(r) {
		return false
	}
	if f.Year != 0 && (r.Year == nil || *r.Year != f.Year) {
		return false
	}
	if f.HasFile && !r.HasFile() {
		return false
	}
	if f.Search != "" && !f.matchesSearch(r) {
		return false
	}
	return true
}

// matchesAuthor is a case-insensitive substring match on any author.
func (f *PaperFilter) matchesAuthor(r catalog.Record) bool {
	needle := strings.ToLower(f.Author)
	for _, author := range r.Authors {
		if strings.Contains(strings.ToLower(author), needle) {
			return true
		}
	}
	return false
}

func (f *PaperFilter) matchesSearch(r catalog.Record) bool {
	needle := strings.ToLower(f.Search)
	fields := []string{r.ID}
	if r.Title != nil {
		fields = append(fields, *r.Title)
	}
	if r.DOI != nil {
		fields = append(fields, *r.DOI)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
