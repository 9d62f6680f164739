package catalog

import (
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// NodeID addresses a category inside its catalog's tree. The root is 0.
type NodeID int

// RootID is the NodeID of a catalog's root category.
const RootID NodeID = 0

// Category is one directory of the catalog: the entries filed there and the
// names of its direct sub-categories. Reads are safe for concurrent use;
// mutations go through the owning Catalog.
type Category struct {
	mu sync.RWMutex

	id     NodeID
	parent NodeID
	name   string
	path   []string
	dir    string

	entries       map[string]Entry
	subCategories []string

	fs     afero.Fs
	logger zerolog.Logger
}

func newCategory(fsys afero.Fs, logger zerolog.Logger, id, parent NodeID, path []string, dir string, idx *Index) *Category {
	name := ""
	if len(path) > 0 {
		name = path[len(path)-1]
	}
	return &Category{
		id:            id,
		parent:        parent,
		name:          name,
		path:          path,
		dir:           dir,
		entries:       idx.Papers,
		subCategories: idx.SubCategories,
		fs:            fsys,
		logger:        logger.With().Str("category", "/"+filepath.ToSlash(filepath.Join(path...))).Logger(),
	}
}

// ID returns the category's node in the catalog tree.
func (c *Category) ID() NodeID { return c.id }

// Parent returns the parent node. The root is its own parent.
func (c *Category) Parent() NodeID { return c.parent }

// Name returns the directory name, empty for the root.
func (c *Category) Name() string { return c.name }

// Path returns the sub-category names leading from the root to c.
func (c *Category) Path() []string { return slices.Clone(c.path) }

// Dir returns the category directory.
func (c *Category) Dir() string { return c.dir }

// IndexPath returns the category's index file.
func (c *Category) IndexPath() string { return IndexPath(c.dir) }

// Len returns the number of entries.
func (c *Category) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entry returns a copy of the entry filed under id.
func (c *Category) Entry(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	return e.Clone(), true
}

// Has reports whether id is filed in c.
func (c *Category) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[id]
	return ok
}

// IDs returns the entry identifiers in ascending order.
func (c *Category) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.entries))
}

// Entries returns a copy of all entries keyed by identifier.
func (c *Category) Entries() map[string]Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Entry, len(c.entries))
	for id, e := range c.entries {
		out[id] = e.Clone()
	}
	return out
}

// List returns all entries ordered by identifier.
func (c *Category) List() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	records := make([]Record, 0, len(c.entries))
	for _, id := range slices.Sorted(maps.Keys(c.entries)) {
		records = append(records, Record{ID: id, Entry: c.entries[id].Clone()})
	}
	return records
}

// SubCategories returns the names of the direct sub-categories, sorted.
func (c *Category) SubCategories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.subCategories)
}

// HasSubCategory reports whether name is a direct sub-category of c.
func (c *Category) HasSubCategory(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, found := slices.BinarySearch(c.subCategories, name)
	return found
}

// FilePath returns the full path of the file stored for id.
func (c *Category) FilePath(id string) (string, error) {
	e, ok := c.Entry(id)
	if !ok {
		return "", errors.NewNotFoundError(ResourceEntry, id)
	}
	if !e.HasFile() {
		return "", errors.NewNotFoundError(ResourceStoredFile, id)
	}
	return filepath.Join(c.dir, e.File), nil
}

// StoredFile describes the file kept for an entry.
type StoredFile struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
	MIME string `json:"mime" yaml:"mime"`
}

// StoredFile inspects the file stored for id. The MIME type is sniffed from
// the content and is informational only.
func (c *Category) StoredFile(id string) (*StoredFile, error) {
	path, err := c.FilePath(id)
	if err != nil {
		return nil, err
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer func() { _ = f.Close() }()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	return &StoredFile{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
		MIME: mtype.String(),
	}, nil
}

// Summary is an overview of one category.
type Summary struct {
	Path          []string `json:"path" yaml:"path"`
	Dir           string   `json:"dir" yaml:"dir"`
	IndexFile     string   `json:"index_file" yaml:"index_file"`
	Entries       int      `json:"entries" yaml:"entries"`
	WithFile      int      `json:"with_file" yaml:"with_file"`
	SubCategories []string `json:"sub_categories" yaml:"sub_categories"`
}

// Summary reports counts and locations for c.
func (c *Category) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	withFile := 0
	for _, e := range c.entries {
		if e.HasFile() {
			withFile++
		}
	}
	return Summary{
		Path:          slices.Clone(c.path),
		Dir:           c.dir,
		IndexFile:     IndexPath(c.dir),
		Entries:       len(c.entries),
		WithFile:      withFile,
		SubCategories: slices.Clone(c.subCategories),
	}
}

// mutations; callers hold the catalog write lock and have validated inputs

// persist writes the candidate state. Memory is only updated by the caller
// once this succeeds.
func (c *Category) persist(entries map[string]Entry, subs []string) error {
	return SaveIndex(c.fs, c.dir, &Index{Papers: entries, SubCategories: subs})
}

// fileOwner returns the identifier whose entry references name, if any.
func (c *Category) fileOwner(name string) string {
	for id, e := range c.entries {
		if e.File == name {
			return id
		}
	}
	return ""
}

// pendingFile is an ingested file awaiting the index write. A file replacing
// one of the same name sits at staged until the index is saved.
type pendingFile struct {
	name   string
	staged string
}

// prepareFile ingests source for id. An empty source is a no-op.
func (c *Category) prepareFile(id, source string) (pendingFile, error) {
	if source == "" {
		return pendingFile{}, nil
	}
	name := StoredName(id, source)
	if err := checkStoredName(name); err != nil {
		return pendingFile{}, err
	}
	if owner := c.fileOwner(name); owner != "" && owner != id {
		return pendingFile{}, errors.NewAlreadyExistsError(ResourceStoredFile, name)
	}
	staged, err := ingest(c.fs, c.dir, source, name)
	if err != nil {
		return pendingFile{}, err
	}
	c.logger.Debug().Str("id", id).Str("source", source).Str("file", name).Bool("staged", staged != "").Msg("ingested file")
	return pendingFile{name: name, staged: staged}, nil
}

// abandon drops a pending file after a failed index write. prev is the file
// the committed entry still references.
func (c *Category) abandon(p pendingFile, prev string) {
	switch {
	case p.staged != "":
		if err := c.fs.Remove(p.staged); err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn().Err(err).Str("file", p.staged).Msg("failed to remove staged file")
		}
	case p.name != "" && p.name != prev:
		c.discard(p.name)
	}
}

// place moves a staged replacement over the stored file.
func (c *Category) place(p pendingFile) error {
	if p.staged == "" {
		return nil
	}
	dest := filepath.Join(c.dir, p.name)
	if err := c.fs.Rename(p.staged, dest); err != nil {
		_ = c.fs.Remove(p.staged)
		return errors.WrapIO("rename", dest, err)
	}
	return nil
}

// discard removes a stored file no committed entry references anymore.
// Failures are logged; the index is already consistent.
func (c *Category) discard(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(c.dir, name)
	if err := c.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.logger.Warn().Err(err).Str("file", path).Msg("failed to remove superseded file")
	}
}

// add reports whether the entry was committed; the error may still be set
// when only moving a staged replacement file into place failed.
func (c *Category) add(id string, entry Entry, force bool) (*Entry, Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, exists := c.entries[id]
	if exists && !force {
		return nil, Entry{}, false, errors.NewAlreadyExistsError(ResourceEntry, id)
	}

	pending, err := c.prepareFile(id, entry.File)
	if err != nil {
		return nil, Entry{}, false, err
	}

	next := entry.Clone()
	next.File = pending.name

	entries := maps.Clone(c.entries)
	entries[id] = next
	if err := c.persist(entries, c.subCategories); err != nil {
		c.abandon(pending, prev.File)
		return nil, Entry{}, false, err
	}
	c.entries = entries
	placeErr := c.place(pending)

	var old *Entry
	if exists {
		old = &prev
		if prev.File != pending.name {
			c.discard(prev.File)
		}
	}
	c.logger.Debug().Str("id", id).Bool("replaced", exists).Msg("added entry")
	return old, next.Clone(), true, placeErr
}

// edit reports commitment the same way add does.
func (c *Category) edit(id string, update Entry) (Entry, Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.entries[id]
	if !ok {
		return Entry{}, Entry{}, false, errors.NewNotFoundError(ResourceEntry, id)
	}

	pending, err := c.prepareFile(id, update.File)
	if err != nil {
		return Entry{}, Entry{}, false, err
	}

	next := cur.Clone()
	next.Merge(update)
	if pending.name != "" {
		next.File = pending.name
	}

	entries := maps.Clone(c.entries)
	entries[id] = next
	if err := c.persist(entries, c.subCategories); err != nil {
		c.abandon(pending, cur.File)
		return Entry{}, Entry{}, false, err
	}
	c.entries = entries
	placeErr := c.place(pending)

	if pending.name != "" && cur.File != pending.name {
		c.discard(cur.File)
	}
	c.logger.Debug().Str("id", id).Msg("edited entry")
	return cur, next.Clone(), true, placeErr
}

// remove reports whether the entry was committed as removed; the error may
// still be set when only the file deletion failed.
func (c *Category) remove(id string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.entries[id]
	if !ok {
		return Entry{}, false, errors.NewNotFoundError(ResourceEntry, id)
	}

	entries := maps.Clone(c.entries)
	delete(entries, id)
	if err := c.persist(entries, c.subCategories); err != nil {
		return Entry{}, false, err
	}
	c.entries = entries
	c.logger.Debug().Str("id", id).Msg("removed entry")

	if cur.HasFile() {
		path := filepath.Join(c.dir, cur.File)
		if err := c.fs.Remove(path); err != nil {
			return cur, true, errors.WrapIO("delete", path, err)
		}
	}
	return cur, true, nil
}

func (c *Category) addSubCategory(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, found := slices.BinarySearch(c.subCategories, name)
	if found {
		return errors.NewAlreadyExistsError(ResourceCategory, name)
	}

	dir := filepath.Join(c.dir, name)
	if err := c.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	subs := slices.Insert(slices.Clone(c.subCategories), pos, name)
	if err := c.persist(c.entries, subs); err != nil {
		return err
	}
	c.subCategories = subs
	c.logger.Debug().Str("sub_category", name).Msg("added sub-category")
	return nil
}
