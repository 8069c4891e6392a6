// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// The solver proxies an LLM provider, so error text coming back over the wire
// can embed bearer tokens or API keys; everything shown to the user passes
// through Mask first.
package logging

import (
	"regexp"
	"strings"
)

var (
	reToken  = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;&]+)`)
	reURLKey = regexp.MustCompile(`(?i)(key=)([A-Za-z0-9._-]{8,})`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	out = reURLKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"PERPLEXITY_API_KEY", "OPENAI_API_KEY", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
