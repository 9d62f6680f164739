package catalog

import "sync"

// Event describes a committed change to one entry.
type Event struct {
	Category []string // path of the category the entry is filed in
	ID       string
	Old      *Entry // nil when the entry did not exist before
	New      *Entry // nil when the entry was removed
}

// Hook is called after a change has been persisted.
type Hook func(Event)

type hooks struct {
	mu        sync.RWMutex
	onAdded   []Hook
	onUpdated []Hook
	onRemoved []Hook
}

// OnEntryAdded registers fn for committed adds, including forced overwrites.
// Like the other hooks it fires whenever the index was saved, even if a
// stored file could not be moved or deleted afterwards.
func (c *Catalog) OnEntryAdded(fn Hook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onAdded = append(c.hooks.onAdded, fn)
}

// OnEntryUpdated registers fn for committed edits.
func (c *Catalog) OnEntryUpdated(fn Hook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onUpdated = append(c.hooks.onUpdated, fn)
}

// OnEntryRemoved registers fn for removals. It also fires when the entry was
// removed from the index but its stored file could not be deleted.
func (c *Catalog) OnEntryRemoved(fn Hook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onRemoved = append(c.hooks.onRemoved, fn)
}

func (h *hooks) fire(list func(*hooks) []Hook, ev Event) {
	h.mu.RLock()
	fns := list(h)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (h *hooks) added(ev Event)   { h.fire(func(h *hooks) []Hook { return h.onAdded }, ev) }
func (h *hooks) updated(ev Event) { h.fire(func(h *hooks) []Hook { return h.onUpdated }, ev) }
func (h *hooks) removed(ev Event) { h.fire(func(h *hooks) []Hook { return h.onRemoved }, ev) }
