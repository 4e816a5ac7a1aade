package isin

import (
	"fmt"
	"sync"
)

var (
	registry   = make(map[CasePolicy]*Codec)
	registryMu sync.RWMutex
)

// Use returns a cached codec for the given case policy, building one
// on first use. Returns an error for unknown policies.
func Use(policy CasePolicy) (*Codec, error) {
	if !IsValidCasePolicy(policy) {
		return nil, fmt.Errorf("unknown case policy %q", policy)
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[policy]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[policy]; ok {
		return cached, nil
	}

	codec := New(WithCasePolicy(policy))
	registry[policy] = codec
	return codec, nil
}

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[CasePolicy]*Codec)
}
