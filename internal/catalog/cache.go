// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import "sync"

var (
	// Global singleton cache for the example bank.
	// Lives only in process memory and is cleared when the CLI exits.
	// Written once by Load; read-only afterwards.
	globalCache     []Example
	globalCacheLock sync.RWMutex
)

// getCached returns the cached examples from RAM, or nil if not loaded.
func getCached() []Example {
	globalCacheLock.RLock()
	defer globalCacheLock.RUnlock()
	return globalCache
}

// setCached stores the examples in RAM.
func setCached(examples []Example) {
	globalCacheLock.Lock()
	defer globalCacheLock.Unlock()
	globalCache = examples
}

// ClearCache removes the examples from RAM (primarily for testing).
func ClearCache() {
	globalCacheLock.Lock()
	defer globalCacheLock.Unlock()
	globalCache = nil
}
