package repository

import (
	"sync"

	"github.com/deppfellow/grubdash/internal/model"
)

// Collection is an insertion-ordered, mutex-guarded list of records.
//
// The lock keeps each call memory safe; it does not isolate a request's
// load from its later mutation.
type Collection[T model.Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates a collection holding items in order.
func NewCollection[T model.Record](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// List returns every record in insertion order. Never nil.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FindByID returns the first record whose id matches exactly.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Contains reports whether a record with id exists.
func (c *Collection[T]) Contains(id string) bool {
	_, ok := c.FindByID(id)
	return ok
}

// Append adds a record at the end.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// Update replaces the stored record that has item's id, keeping its position.
func (c *Collection[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(item.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = item
	return true
}

// Remove deletes the record with id, preserving the order of the rest.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// indexOf must be called with the lock held.
func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
