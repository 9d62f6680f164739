// Package catalog implements the paper catalog engine: a directory tree of
// categories, each holding a YAML index of paper entries alongside the paper
// files copied into it.
//
// A Catalog is opened on a root directory. Every mutation validates its
// inputs, ingests any file, writes the category index and only then updates
// the in-memory state, so a failed index write leaves the catalog as it was
// last saved. A file replacing a stored file of the same name is staged
// beside it and moved into place after the index is written.
//
//	cat, err := catalog.Open(dir)
//	if err != nil {
//		return err
//	}
//	err = cat.Add("vaswani2017", catalog.Entry{
//		Title: catalog.Ptr("Attention Is All You Need"),
//		File:  "/home/ada/Downloads/1706.03762.pdf",
//	}, false)
package catalog

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Catalog is the root of a paper catalog.
type Catalog struct {
	mu sync.Mutex // serializes mutations and tree growth

	dir    string
	fs     afero.Fs
	logger zerolog.Logger
	tree   *tree
	hooks  hooks
}

// Open loads the catalog rooted at dir, creating the directory when it does
// not exist. A missing index is an empty catalog.
func Open(dir string, opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if dir == "" {
		return nil, errors.NewValidationError("dir", dir, "catalog directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapIO("resolve", dir, err)
	}

	if err := o.fs.MkdirAll(abs, constants.DirPermissions); err != nil {
		return nil, errors.WrapResource("open", "catalog", abs, errors.WrapIO("create", abs, err))
	}
	info, err := o.fs.Stat(abs)
	if err != nil {
		return nil, errors.WrapResource("open", "catalog", abs, errors.WrapIO("read", abs, err))
	}
	if !info.IsDir() {
		return nil, errors.NewValidationError("dir", abs, "not a directory")
	}

	idx, err := LoadIndex(o.fs, abs)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With().Str("catalog", abs).Logger()
	root := newCategory(o.fs, logger, RootID, RootID, nil, abs, idx)

	logger.Debug().Int("entries", len(idx.Papers)).Int("sub_categories", len(idx.SubCategories)).Msg("opened catalog")

	return &Catalog{
		dir:    abs,
		fs:     o.fs,
		logger: logger,
		tree:   newTree(o.fs, logger, root),
	}, nil
}

// Dir returns the absolute root directory.
func (c *Catalog) Dir() string { return c.dir }

// Fs returns the filesystem the catalog is stored on.
func (c *Catalog) Fs() afero.Fs { return c.fs }

// Root returns the top-level category.
func (c *Catalog) Root() *Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.nodes[RootID]
}

// Category returns the category at path, loading it on first access.
// An empty path is the root.
func (c *Catalog) Category(path ...string) (*Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.resolve(path)
}

// Node returns a previously resolved category by its NodeID.
func (c *Catalog) Node(id NodeID) (*Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.node(id)
}

// Parent returns the parent of cat, or false for the root.
func (c *Catalog) Parent(cat *Category) (*Category, bool) {
	if cat == nil || cat.id == RootID {
		return nil, false
	}
	return c.Node(cat.parent)
}

// Info summarizes the top-level category.
func (c *Catalog) Info() Summary {
	return c.Root().Summary()
}

// Add files entry under id. When entry.File is set, that external file is
// copied into the category directory first. An existing id is rejected
// unless force is set, in which case the entry is replaced. A replacement
// file of the same stored name only overwrites the old one after the index
// is saved; if that final move fails the entry is still updated and an
// IOError is returned.
func (c *Catalog) Add(id string, entry Entry, force bool, opts ...TargetOption) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	c.mu.Lock()
	cat, err := c.tree.resolve(applyTarget(opts).path)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	old, added, committed, err := cat.add(id, entry, force)
	c.mu.Unlock()
	if !committed {
		return err
	}

	c.hooks.added(Event{Category: cat.Path(), ID: id, Old: old, New: &added})
	return err
}

// Edit merges the metadata present in update into the entry filed under id.
// When update.File is set, that file is ingested and replaces the stored one,
// with the same guarantees as Add.
func (c *Catalog) Edit(id string, update Entry, opts ...TargetOption) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	c.mu.Lock()
	cat, err := c.tree.resolve(applyTarget(opts).path)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	old, edited, committed, err := cat.edit(id, update)
	c.mu.Unlock()
	if !committed {
		return err
	}

	c.hooks.updated(Event{Category: cat.Path(), ID: id, Old: &old, New: &edited})
	return err
}

// Remove deletes the entry filed under id along with its stored file. If the
// file cannot be deleted the entry is still gone and an IOError is returned.
func (c *Catalog) Remove(id string, opts ...TargetOption) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	c.mu.Lock()
	cat, err := c.tree.resolve(applyTarget(opts).path)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	old, committed, err := cat.remove(id)
	c.mu.Unlock()
	if !committed {
		return err
	}

	c.hooks.removed(Event{Category: cat.Path(), ID: id, Old: &old})
	return err
}

// AddCategory creates a sub-category directory under the targeted category
// and records it in that category's index.
func (c *Catalog) AddCategory(name string, opts ...TargetOption) (*Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	parent, err := c.tree.resolve(applyTarget(opts).path)
	if err != nil {
		return nil, err
	}
	if err := parent.addSubCategory(name); err != nil {
		return nil, err
	}
	return c.tree.resolve(append(parent.Path(), name))
}
