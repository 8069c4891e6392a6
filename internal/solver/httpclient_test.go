// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSolveDecodesFullResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/solve" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Task != "Все люди смертны." {
			t.Errorf("task = %q", req.Task)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"formulas": ["∀x (Человек(x) → Смертен(x))", "Человек(Сократ)"],
			"goal": "Смертен(Сократ)",
			"proven": true,
			"proof_steps": ["[КНФ] ...", "резолюция 1+2"],
			"explanation": "Доказательство от противного.",
			"error": null
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, 5*time.Second).Solve(context.Background(), "Все люди смертны.")
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if len(resp.Formulas) != 2 || resp.Goal != "Смертен(Сократ)" {
		t.Errorf("formulas/goal = %v / %q", resp.Formulas, resp.Goal)
	}
	if !resp.Proven || len(resp.ProofSteps) != 2 {
		t.Errorf("proven/steps = %v / %v", resp.Proven, resp.ProofSteps)
	}
	if resp.Explanation == "" || resp.Error != "" {
		t.Errorf("explanation/error = %q / %q", resp.Explanation, resp.Error)
	}
}

// The solver reports application errors with non-2xx statuses; the body must
// still be decoded rather than rejected on status.
func TestSolveParsesErrorBodyOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Пустые формулы"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, 5*time.Second).Solve(context.Background(), "чепуха")
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if resp.Error != "Пустые формулы" {
		t.Errorf("Error = %q, want %q", resp.Error, "Пустые формулы")
	}
	if len(resp.Formulas) != 0 || resp.Proven {
		t.Errorf("missing fields must default to zero values: %+v", resp)
	}
}

func TestSolveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	if _, err := New(srv.URL, time.Second).Solve(context.Background(), "x"); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}

func TestSolveRejectsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, time.Second).Solve(context.Background(), "x"); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok", "message": "Сервер работает"}`))
	}))
	defer srv.Close()

	status, message, err := New(srv.URL, time.Second).Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if status != "ok" || message != "Сервер работает" {
		t.Errorf("Health() = (%q, %q)", status, message)
	}
}
