package store

import (
	"sync"

	"github.com/getmockd/intercept/pkg/mock"
)

// InMemoryRepository is a thread-safe in-memory implementation of Repository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	overrides map[mock.Signature]mock.Descriptor
	observed  map[mock.Signature]mock.Descriptor
}

// NewInMemoryRepository creates an empty InMemoryRepository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		overrides: make(map[mock.Signature]mock.Descriptor),
		observed:  make(map[mock.Signature]mock.Descriptor),
	}
}

// SaveOverride stores or replaces the override for a signature.
func (r *InMemoryRepository) SaveOverride(sig mock.Signature, d mock.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[sig] = d
}

// GetOverride returns the override for a signature, if any.
func (r *InMemoryRepository) GetOverride(sig mock.Signature) (mock.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.overrides[sig]
	return d, ok
}

// RemoveOverride deletes the override for a signature.
// Returns true if an entry existed.
func (r *InMemoryRepository) RemoveOverride(sig mock.Signature) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.overrides[sig]; ok {
		delete(r.overrides, sig)
		return true
	}
	return false
}

// AllOverrides returns a snapshot copy of all overrides.
func (r *InMemoryRepository) AllOverrides() map[mock.Signature]mock.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyEntries(r.overrides)
}

// CacheObserved stores the most recently observed real response for a
// signature, replacing any prior entry.
func (r *InMemoryRepository) CacheObserved(sig mock.Signature, d mock.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed[sig] = d
}

// GetObserved returns the cached real response for a signature, if any.
func (r *InMemoryRepository) GetObserved(sig mock.Signature) (mock.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.observed[sig]
	return d, ok
}

// AllObserved returns a snapshot copy of all observed entries.
func (r *InMemoryRepository) AllObserved() map[mock.Signature]mock.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyEntries(r.observed)
}

// ClearOverrides removes all overrides.
func (r *InMemoryRepository) ClearOverrides() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = make(map[mock.Signature]mock.Descriptor)
}

// ClearObserved removes all observed entries.
func (r *InMemoryRepository) ClearObserved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed = make(map[mock.Signature]mock.Descriptor)
}

// ClearAll removes all overrides and all observed entries.
func (r *InMemoryRepository) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = make(map[mock.Signature]mock.Descriptor)
	r.observed = make(map[mock.Signature]mock.Descriptor)
}

// OverrideCount returns the number of stored overrides.
func (r *InMemoryRepository) OverrideCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.overrides)
}

// ObservedCount returns the number of stored observed entries.
func (r *InMemoryRepository) ObservedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observed)
}

func copyEntries(src map[mock.Signature]mock.Descriptor) map[mock.Signature]mock.Descriptor {
	out := make(map[mock.Signature]mock.Descriptor, len(src))
	for sig, d := range src {
		out[sig] = d
	}
	return out
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
