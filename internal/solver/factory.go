// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package solver

import "time"

// New creates a solver API implementation for the given base URL.
// Returns the HTTP client (real solver).
func New(baseURL string, timeout time.Duration) API {
	return newHTTP(baseURL, timeout)
}
