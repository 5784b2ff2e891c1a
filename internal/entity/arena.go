// internal/entity/arena.go
package entity

import "cake-defense/internal/types"

// Arena stores entities of one kind under stable IDs. Iteration follows
// insertion order, so a run with a fixed seed always visits entities in the
// same order. Removal is deferred: entities are marked and dropped by Sweep.
type Arena[T any] struct {
	ids   []types.EntityID
	items []*T
	index map[types.EntityID]int
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{index: make(map[types.EntityID]int)}
}

// Add appends item under id. Adding an ID that is already present replaces
// the stored item in place.
func (a *Arena[T]) Add(id types.EntityID, item *T) {
	if i, ok := a.index[id]; ok {
		a.items[i] = item
		return
	}
	a.index[id] = len(a.items)
	a.ids = append(a.ids, id)
	a.items = append(a.items, item)
}

// Get looks an entity up by ID.
func (a *Arena[T]) Get(id types.EntityID) (*T, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.items[i], true
}

func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Each visits entities in insertion order until fn returns false. Entities
// added during the walk are not visited.
func (a *Arena[T]) Each(fn func(id types.EntityID, item *T) bool) {
	n := len(a.items)
	for i := 0; i < n && i < len(a.items); i++ {
		if !fn(a.ids[i], a.items[i]) {
			return
		}
	}
}

// Items returns a snapshot of the stored entities in insertion order.
func (a *Arena[T]) Items() []*T {
	return append([]*T(nil), a.items...)
}

// Sweep drops every entity for which dead returns true, keeping the order
// of the survivors, and returns the number removed.
func (a *Arena[T]) Sweep(dead func(item *T) bool) int {
	kept := 0
	for i, item := range a.items {
		id := a.ids[i]
		if dead(item) {
			delete(a.index, id)
			continue
		}
		a.ids[kept] = id
		a.items[kept] = item
		a.index[id] = kept
		kept++
	}
	removed := len(a.items) - kept
	clear(a.items[kept:])
	a.ids = a.ids[:kept]
	a.items = a.items[:kept]
	return removed
}

// Remove drops a single entity right away. Used for player actions that
// happen between ticks, never while a tick is iterating.
func (a *Arena[T]) Remove(id types.EntityID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	delete(a.index, id)
	copy(a.ids[i:], a.ids[i+1:])
	copy(a.items[i:], a.items[i+1:])
	last := len(a.items) - 1
	a.items[last] = nil
	a.ids = a.ids[:last]
	a.items = a.items[:last]
	for j := i; j < last; j++ {
		a.index[a.ids[j]] = j
	}
	return true
}

// Clear empties the arena.
func (a *Arena[T]) Clear() {
	a.ids = nil
	a.items = nil
	clear(a.index)
}
