package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Loader reads raw asset files from a prioritized list of search roots.
// Roots are searched in reverse order (last added = highest priority) and
// reads are cached.
type Loader struct {
	mu    sync.RWMutex
	roots []string
	cache map[string][]byte

	hits   int
	misses int
}

// NewLoader creates a loader over the given search roots.
func NewLoader(roots ...string) *Loader {
	return &Loader{
		roots: roots,
		cache: make(map[string][]byte),
	}
}

// AddRoot appends a search root with highest priority.
func (l *Loader) AddRoot(path string) {
	l.mu.Lock()
	l.roots = append(l.roots, path)
	l.mu.Unlock()
}

// Read loads a file by its asset path, searching all roots.
func (l *Loader) Read(path string) ([]byte, error) {
	l.mu.Lock()
	if data, ok := l.cache[path]; ok {
		l.hits++
		l.mu.Unlock()
		return data, nil
	}
	l.misses++
	roots := make([]string, len(l.roots))
	copy(roots, l.roots)
	l.mu.Unlock()

	for i := len(roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(roots[i], path))
		if err == nil {
			l.mu.Lock()
			l.cache[path] = data
			l.mu.Unlock()
			return data, nil
		}
	}
	return nil, fmt.Errorf("asset not found: %s", path)
}

// Stats returns cache hit and miss counts.
func (l *Loader) Stats() (hits, misses int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hits, l.misses
}
