// Package texture provides texture stores that resolve texture ids to
// pixel data for backends.
//
// Stores are read-only from a backend's point of view: backends only ever
// call Texture. Images handed to a store must not be mutated afterwards;
// reloading a texture replaces its entry.
package texture

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/gogpu/uidriver"
)

// Store resolves a texture id to its pixels.
type Store interface {
	// Texture returns the image for id, or an error wrapping
	// uidriver.ErrResourceNotFound.
	Texture(id string) (image.Image, error)
}

// MemoryStore is a Store backed by a map. It is safe for concurrent use so
// a Watcher can replace entries while a backend reads them.
type MemoryStore struct {
	mu       sync.RWMutex
	textures map[string]image.Image
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{textures: make(map[string]image.Image)}
}

// Put adds or replaces the texture for id.
func (s *MemoryStore) Put(id string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textures[id] = img
}

// Remove deletes the texture for id, if present.
func (s *MemoryStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.textures, id)
}

// Texture implements Store.
func (s *MemoryStore) Texture(id string) (image.Image, error) {
	s.mu.RLock()
	img, ok := s.textures[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("texture %q: %w", id, uidriver.ErrResourceNotFound)
	}
	return img, nil
}

// IDs returns the registered texture ids in sorted order.
func (s *MemoryStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.textures))
	for id := range s.textures {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of textures.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.textures)
}
