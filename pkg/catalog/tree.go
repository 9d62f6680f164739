package catalog

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// tree is an arena of categories. Nodes are appended as they are first
// reached and never move, so a NodeID stays valid for the catalog's lifetime.
type tree struct {
	nodes    []*Category
	children []map[string]NodeID

	fs     afero.Fs
	logger zerolog.Logger
}

func newTree(fsys afero.Fs, logger zerolog.Logger, root *Category) *tree {
	return &tree{
		nodes:    []*Category{root},
		children: []map[string]NodeID{{}},
		fs:       fsys,
		logger:   logger,
	}
}

func (t *tree) node(id NodeID) (*Category, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[id], true
}

// resolve walks path from the root, loading each category on first visit.
func (t *tree) resolve(path []string) (*Category, error) {
	cur := t.nodes[RootID]
	for i, name := range path {
		if err := ValidateCategoryName(name); err != nil {
			return nil, err
		}
		if id, ok := t.children[cur.id][name]; ok {
			cur = t.nodes[id]
			continue
		}
		if !cur.HasSubCategory(name) {
			return nil, errors.NewNotFoundError(ResourceCategory, strings.Join(path[:i+1], "/"))
		}
		child, err := t.load(cur, name)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}

func (t *tree) load(parent *Category, name string) (*Category, error) {
	dir := filepath.Join(parent.dir, name)
	if err := t.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	idx, err := LoadIndex(t.fs, dir)
	if err != nil {
		return nil, err
	}

	path := append(parent.Path(), name)
	id := NodeID(len(t.nodes))
	child := newCategory(t.fs, t.logger, id, parent.id, path, dir, idx)
	t.nodes = append(t.nodes, child)
	t.children = append(t.children, map[string]NodeID{})
	t.children[parent.id][name] = id

	t.logger.Debug().Str("dir", dir).Int("entries", len(idx.Papers)).Msg("loaded category")
	return child, nil
}
