// Package ecs provides the minimal entity and component storage the prefab
// layer attaches into: versioned entities and one map-backed storage per
// component type.
package ecs

import (
	"errors"
	"fmt"
)

// ErrDeadEntity is returned when a component is inserted for an entity
// that was never created or has been destroyed.
var ErrDeadEntity = errors.New("entity is not alive")

// Entity identifies an object in a World. The version guards against
// stale references to recycled IDs; the zero Entity is never alive.
type Entity struct {
	ID      uint32
	Version uint32
}

// World allocates entities and tracks which are alive.
type World struct {
	versions []uint32
	free     []uint32
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Create allocates a new entity, recycling destroyed IDs.
func (w *World) Create() Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		return Entity{ID: id, Version: w.versions[id]}
	}
	id := uint32(len(w.versions))
	w.versions = append(w.versions, 1)
	return Entity{ID: id, Version: 1}
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return e.Version != 0 &&
		e.ID < uint32(len(w.versions)) &&
		w.versions[e.ID] == e.Version
}

// Destroy removes the entity; its ID may be reused with a new version.
func (w *World) Destroy(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.versions[e.ID]++
	w.free = append(w.free, e.ID)
}

// Storage holds one component type keyed by entity.
type Storage[T any] struct {
	world *World
	data  map[Entity]T
}

// NewStorage creates a storage bound to the world that validates inserts.
func NewStorage[T any](w *World) *Storage[T] {
	return &Storage[T]{world: w, data: make(map[Entity]T)}
}

// Insert sets the entity's component, overwriting any existing value.
func (s *Storage[T]) Insert(e Entity, value T) error {
	if !s.world.Alive(e) {
		return fmt.Errorf("inserting component for entity %d (v%d): %w", e.ID, e.Version, ErrDeadEntity)
	}
	s.data[e] = value
	return nil
}

// Get returns the entity's component.
func (s *Storage[T]) Get(e Entity) (T, bool) {
	v, ok := s.data[e]
	return v, ok
}

// Remove deletes the entity's component, reporting whether one existed.
func (s *Storage[T]) Remove(e Entity) bool {
	if _, ok := s.data[e]; !ok {
		return false
	}
	delete(s.data, e)
	return true
}

// Len returns the number of stored components.
func (s *Storage[T]) Len() int {
	return len(s.data)
}
