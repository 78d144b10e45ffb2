package prefab

import "github.com/Faultbox/spriteforge/internal/assets"

type loadedSheet struct {
	name   string
	handle assets.Handle[SpriteSheet]
}

// LoadedSet is the ordered registry of sheets resolved during one loading
// session. Sheets are appended as they resolve; references look them up by
// insertion index or by first matching name. Unnamed sheets are only
// reachable by index.
type LoadedSet struct {
	entries []loadedSheet
}

// Push appends a resolved sheet.
func (s *LoadedSet) Push(name string, handle assets.Handle[SpriteSheet]) {
	s.entries = append(s.entries, loadedSheet{name: name, handle: handle})
}

// Get looks up a sheet by reference.
func (s *LoadedSet) Get(ref Reference) (assets.Handle[SpriteSheet], bool) {
	switch {
	case ref.index != nil:
		i := *ref.index
		if i < 0 || i >= len(s.entries) {
			return assets.Handle[SpriteSheet]{}, false
		}
		return s.entries[i].handle, true
	case ref.name != nil:
		for _, e := range s.entries {
			if e.name != "" && e.name == *ref.name {
				return e.handle, true
			}
		}
	}
	return assets.Handle[SpriteSheet]{}, false
}

// Len returns the number of loaded sheets.
func (s *LoadedSet) Len() int {
	return len(s.entries)
}

// Reset clears the set for a new loading session.
func (s *LoadedSet) Reset() {
	s.entries = s.entries[:0]
}
