package catalog

import (
	"context"
)

// Load fetches the example bank once and caches it for the process lifetime.
// Loading is best-effort: on failure the store stays empty and the returned
// error is informational only (callers surface it at most in verbose mode).
// Repeated calls after a successful load are no-ops.
func Load(ctx context.Context, baseURL string) error {
	if getCached() != nil {
		return nil
	}

	examples, err := fetchFromServer(ctx, baseURL)
	if err != nil {
		return err
	}

	setCached(examples)
	return nil
}

// Select returns the text of the example at idx and true when idx is within
// bounds. Out-of-range indices and an empty store yield ("", false) with no
// other effect.
func Select(idx int) (string, bool) {
	examples := getCached()
	if idx < 0 || idx >= len(examples) {
		return "", false
	}
	return examples[idx].Text, true
}

// Len returns the number of loaded examples (0 when the store is empty).
func Len() int {
	return len(getCached())
}

// All returns a copy of the loaded examples for listing.
func All() []Example {
	examples := getCached()
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}
