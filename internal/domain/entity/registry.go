package entity

import (
	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/btree"
)

// Registry owns every live entity, ordered by ID.
//
// Removing entries while iterating with Each is not supported. Collect the
// IDs during the pass and remove them afterwards.
type Registry struct {
	tree *btree.Tree[ID, *Entity]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tree: btree.New[ID, *Entity](g.Less[ID])}
}

// Insert stores e and returns the entity previously held under the same ID,
// if any.
func (r *Registry) Insert(e *Entity) (*Entity, bool) {
	prev, ok := r.tree.Get(e.ID)
	if ok {
		// Put counts every call, so drop the old entry first to keep Size exact.
		r.tree.Remove(e.ID)
	}
	r.tree.Put(e.ID, e)
	return prev, ok
}

// Remove takes the entity with the given ID out of the registry.
func (r *Registry) Remove(id ID) (*Entity, bool) {
	e, ok := r.tree.Get(id)
	if !ok {
		return nil, false
	}
	r.tree.Remove(id)
	return e, true
}

// Get returns the entity with the given ID without removing it.
func (r *Registry) Get(id ID) (*Entity, bool) {
	return r.tree.Get(id)
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.tree.Size()
}

// Each visits every entity in ascending ID order. fn may mutate the entity.
func (r *Registry) Each(fn func(e *Entity)) {
	r.tree.Each(func(_ ID, e *Entity) {
		fn(e)
	})
}

// FirstCollision returns the lowest-ID entity whose bounds intersect rect.
func (r *Registry) FirstCollision(rect Rect) (*Entity, bool) {
	var hit *Entity
	r.tree.Each(func(_ ID, e *Entity) {
		if hit == nil && e.Intersects(rect) {
			hit = e
		}
	})
	return hit, hit != nil
}

// Clear drops every entity.
func (r *Registry) Clear() {
	r.tree = btree.New[ID, *Entity](g.Less[ID])
}
