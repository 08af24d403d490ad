package store

import (
	"github.com/getmockd/intercept/pkg/mock"
)

// Repository defines the contract for override and observed-response storage.
type Repository interface {
	// SaveOverride stores or replaces the override for a signature.
	SaveOverride(sig mock.Signature, d mock.Descriptor)

	// GetOverride returns the override for a signature, if any.
	GetOverride(sig mock.Signature) (mock.Descriptor, bool)

	// RemoveOverride deletes the override for a signature.
	// Returns true if an entry existed.
	RemoveOverride(sig mock.Signature) bool

	// AllOverrides returns a snapshot copy of all overrides.
	AllOverrides() map[mock.Signature]mock.Descriptor

	// CacheObserved stores the most recently observed real response for a
	// signature, unconditionally replacing any prior entry (last write wins).
	CacheObserved(sig mock.Signature, d mock.Descriptor)

	// GetObserved returns the cached real response for a signature, if any.
	GetObserved(sig mock.Signature) (mock.Descriptor, bool)

	// AllObserved returns a snapshot copy of all observed entries.
	AllObserved() map[mock.Signature]mock.Descriptor

	// ClearOverrides removes all overrides. Observed entries are untouched.
	ClearOverrides()

	// ClearObserved removes all observed entries. Overrides are untouched.
	ClearObserved()

	// ClearAll removes all overrides and all observed entries.
	ClearAll()

	// OverrideCount returns the number of stored overrides.
	OverrideCount() int

	// ObservedCount returns the number of stored observed entries.
	ObservedCount() int
}

// Promote copies the observed entry for a signature into the overrides
// mapping, so a captured real response is served as a substitute from then
// on. The observed entry itself is left in place. Returns false if no
// observed entry exists for the signature.
func Promote(r Repository, sig mock.Signature) bool {
	d, ok := r.GetObserved(sig)
	if !ok {
		return false
	}
	r.SaveOverride(sig, d)
	return true
}

// PromoteAll copies every observed entry into the overrides mapping and
// returns the number of entries promoted. Existing overrides for the same
// signatures are replaced.
func PromoteAll(r Repository) int {
	observed := r.AllObserved()
	for sig, d := range observed {
		r.SaveOverride(sig, d)
	}
	return len(observed)
}
