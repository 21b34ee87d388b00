package mesh

import "sync"

// Library builds each mesh once and hands out the cached copy afterwards.
// Meshes are immutable, so sharing them between draws is safe.
type Library struct {
	mu     sync.Mutex
	meshes map[Key]*Mesh
	builds int
}

// NewLibrary creates an empty mesh cache.
func NewLibrary() *Library {
	return &Library{meshes: make(map[Key]*Mesh)}
}

// Get returns the mesh for key, building it on first use.
func (l *Library) Get(key Key) (*Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.meshes[key]; ok {
		return m, nil
	}
	m, err := Build(key)
	if err != nil {
		return nil, err
	}
	l.meshes[key] = m
	l.builds++
	return m, nil
}

// Len returns the number of cached meshes.
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.meshes)
}

// Builds returns how many meshes were built, for cache diagnostics.
func (l *Library) Builds() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.builds
}
