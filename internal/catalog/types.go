// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog handles the bank of ready-made example tasks served by the solver.
package catalog

// Example is one ready-made task from the solver's example bank.
// The payload may carry additional fields; only these are used.
type Example struct {
	Title string `json:"title"` // e.g., "Сократ"
	Text  string `json:"text"`  // the task text placed into the input
}
