// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package solver

// SolveRequest is the body of POST /api/solve, built fresh per submission.
type SolveRequest struct {
	Task string `json:"task"`
}

// SolveResponse mirrors the solver's reply. Every field is optional on the
// wire (the solver may return partial data or JSON null), so zero values
// stand in for absent fields and are never treated as a failure by callers.
type SolveResponse struct {
	Formulas    []string `json:"formulas"`
	Goal        string   `json:"goal"`
	Proven      bool     `json:"proven"`
	ProofSteps  []string `json:"proof_steps"`
	Explanation string   `json:"explanation"`
	Error       string   `json:"error"`
}
