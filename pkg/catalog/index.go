package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/internal/atomicfile"
	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Index is the on-disk form of one category: its entries keyed by identifier
// and the names of its direct sub-categories.
type Index struct {
	Papers        map[string]Entry `json:"papers" yaml:"papers"`
	SubCategories []string         `json:"sub_categories" yaml:"sub_categories"`
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		Papers:        make(map[string]Entry),
		SubCategories: []string{},
	}
}

// IndexPath returns the location of the index file for a category directory.
func IndexPath(dir string) string {
	return filepath.Join(dir, constants.IndexFileName)
}

// LoadIndex reads the index file of dir. A missing file yields an empty
// index; unreadable or malformed content is reported as a ResourceError.
func LoadIndex(fsys afero.Fs, dir string) (*Index, error) {
	path := IndexPath(dir)

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewIndex(), nil
		}
		return nil, errors.WrapResource("load", ResourceIndex, path, errors.WrapIO("read", path, err))
	}

	idx := NewIndex()
	if err := yaml.Unmarshal(data, idx); err != nil {
		return nil, errors.WrapResource("load", ResourceIndex, path, errors.WrapParse("yaml", path, err))
	}
	// explicit nulls in the file clear the defaults
	if idx.Papers == nil {
		idx.Papers = make(map[string]Entry)
	}
	if idx.SubCategories == nil {
		idx.SubCategories = []string{}
	}
	slices.Sort(idx.SubCategories)
	idx.SubCategories = slices.Compact(idx.SubCategories)

	return idx, nil
}

// SaveIndex writes idx as the index file of dir. The previous index is
// replaced atomically, so a failed write never leaves a truncated file, and
// content that would not decode back to the same entries is never written.
func SaveIndex(fsys afero.Fs, dir string, idx *Index) error {
	path := IndexPath(dir)

	data, err := yaml.MarshalWithOptions(idx, yaml.IndentSequence(true))
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := verifyIndex(data, idx); err != nil {
		return errors.NewParseError("yaml", path, "encoded index does not load back: "+err.Error(), err)
	}

	return atomicfile.Write(fsys, path, constants.IndexTempPattern, data)
}

// verifyIndex decodes data and checks it holds the identifiers and
// sub-categories of want.
func verifyIndex(data []byte, want *Index) error {
	got := NewIndex()
	if err := yaml.Unmarshal(data, got); err != nil {
		return err
	}
	if len(got.Papers) != len(want.Papers) {
		return fmt.Errorf("decoded %d entries, want %d", len(got.Papers), len(want.Papers))
	}
	for id := range want.Papers {
		if _, ok := got.Papers[id]; !ok {
			return fmt.Errorf("entry %q is lost", id)
		}
	}
	if !slices.Equal(got.SubCategories, want.SubCategories) {
		return fmt.Errorf("sub-categories decode as %v", got.SubCategories)
	}
	return nil
}
