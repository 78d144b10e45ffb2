// Package assets provides shared-handle asset storage and raw file loading.
package assets

import "sync"

// Handle is a shared reference to an asset held in a Storage. Handles are
// comparable: two handles are equal exactly when they refer to the same
// slot of the same storage.
type Handle[T any] struct {
	id      uint32
	storage *Storage[T]
}

// Valid reports whether the handle points at a storage.
func (h Handle[T]) Valid() bool {
	return h.storage != nil
}

// ID returns the handle's slot id, for logging.
func (h Handle[T]) ID() uint32 {
	return h.id
}

// Get returns the asset the handle refers to.
func (h Handle[T]) Get() (T, bool) {
	if h.storage == nil {
		var zero T
		return zero, false
	}
	return h.storage.Get(h)
}

type slot[T any] struct {
	value T
	refs  int
}

// Storage owns assets of one type and hands out reference-counted handles.
// Dropping the last reference via Release frees the slot; the prefab layer
// never releases, it only shares handles it was given.
type Storage[T any] struct {
	mu    sync.RWMutex
	next  uint32
	slots map[uint32]*slot[T]
}

// NewStorage creates an empty storage.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{slots: make(map[uint32]*slot[T])}
}

// Load registers value and returns a handle holding one reference. The
// load is recorded on progress as started and immediately finished; pass
// nil to skip tracking.
func (s *Storage[T]) Load(value T, progress *ProgressCounter) Handle[T] {
	if progress != nil {
		progress.Start(1)
		defer progress.Finish(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.slots[id] = &slot[T]{value: value, refs: 1}
	return Handle[T]{id: id, storage: s}
}

// Get returns the asset behind h, if the slot is still live.
func (s *Storage[T]) Get(h Handle[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[h.id]; ok && h.storage == s {
		return sl.value, true
	}
	var zero T
	return zero, false
}

// Retain adds a reference to the handle's slot.
func (s *Storage[T]) Retain(h Handle[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.slots[h.id]; ok {
		sl.refs++
	}
}

// Release drops one reference, freeing the slot when none remain.
func (s *Storage[T]) Release(h Handle[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[h.id]
	if !ok {
		return
	}
	sl.refs--
	if sl.refs <= 0 {
		delete(s.slots, h.id)
	}
}

// Len returns the number of live slots.
func (s *Storage[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}
