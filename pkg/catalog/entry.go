package catalog

import "slices"

// Entry is the metadata record for one paper.
//
// On a stored entry File is the base name of the paper's file inside the
// owning category directory. On a payload passed to Add or Edit, File is the
// external path to ingest; it is replaced by the stored name on success.
type Entry struct {
	DOI     *string  `json:"doi,omitempty" yaml:"doi,omitempty"`         // Digital Object Identifier
	Title   *string  `json:"title,omitempty" yaml:"title,omitempty"`     // Paper title
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"` // Ordered author list
	Year    *uint32  `json:"year,omitempty" yaml:"year,omitempty"`       // Publication year
	File    string   `json:"file,omitempty" yaml:"file,omitempty"`       // Stored file name (or external path on payloads)
}

// Ptr returns a pointer to v. It keeps payload literals short:
//
//	catalog.Entry{Title: catalog.Ptr("Attention Is All You Need"), Year: catalog.Ptr[uint32](2017)}
func Ptr[T any](v T) *T {
	return &v
}

// HasFile reports whether the entry references a stored file.
func (e Entry) HasFile() bool {
	return e.File != ""
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := Entry{File: e.File}
	if e.DOI != nil {
		out.DOI = Ptr(*e.DOI)
	}
	if e.Title != nil {
		out.Title = Ptr(*e.Title)
	}
	if e.Authors != nil {
		out.Authors = slices.Clone(e.Authors)
	}
	if e.Year != nil {
		out.Year = Ptr(*e.Year)
	}
	return out
}

// Merge applies the metadata fields present in update. Absent fields keep
// their current value. File is not merged; it only changes through ingestion.
func (e *Entry) Merge(update Entry) {
	if update.DOI != nil {
		e.DOI = Ptr(*update.DOI)
	}
	if update.Title != nil {
		e.Title = Ptr(*update.Title)
	}
	if update.Authors != nil {
		e.Authors = slices.Clone(update.Authors)
	}
	if update.Year != nil {
		e.Year = Ptr(*update.Year)
	}
}

// Record pairs an entry with its identifier for ordered listings.
type Record struct {
	ID    string `json:"id" yaml:"id"`
	Entry `yaml:",inline"`
}
