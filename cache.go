package assetbook

import (
	"slices"
	"sync"
)

// Ticket orders fetches: a fetch takes a ticket before sending its request
// and presents it when applying the answer.
type Ticket uint64

// Cache is the client's mirror of the server collection.
//
// It is only ever replaced as a whole, by Replace. A result is dropped if a
// fetch started later has already been applied, so a slow answer never
// overwrites a newer one.
type Cache struct {
	mu      sync.Mutex
	assets  []Asset
	issued  Ticket
	applied Ticket
}

// Begin returns the ticket of a new fetch.
func (c *Cache) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Replace installs assets as the new content if t is newer than the ticket of
// the current content. It reports whether the content was replaced.
func (c *Cache) Replace(t Ticket, assets []Asset) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t <= c.applied {
		return false
	}
	c.applied = t
	c.assets = slices.Clone(assets)
	return true
}

// Snapshot returns a copy of the content, in order.
func (c *Cache) Snapshot() []Asset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.assets)
}

// Len returns the number of cached assets.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.assets)
}

// Find returns the cached asset with id.
func (c *Cache) Find(id ID) (Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return Asset{}, false
	}
	return c.assets[i], true
}
