// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package solver provides the client for the remote neuro-symbolic solver service.
// It defines the API contract for task solving and health checking.
// The package includes both the interface definition and an HTTP-based implementation.
package solver

import "context"

// API defines solver operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type API interface {
	// Solve submits a task description and returns the solver's structured
	// reply. Every HTTP status is parsed identically; the response's Error
	// field is the only application-level failure signal. A non-nil error
	// means no response body was obtained (transport failure or unreadable
	// body).
	Solve(ctx context.Context, task string) (*SolveResponse, error)
	// Health probes the solver's health endpoint and returns its
	// self-reported status and message.
	Health(ctx context.Context) (status string, message string, err error)
}
