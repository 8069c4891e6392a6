package session

import (
	"errors"
	"testing"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/solver"
)

func TestBuildRegions(t *testing.T) {
	tests := []struct {
		name string
		resp solver.SolveResponse
		want Regions
	}{
		{
			name: "formulas with goal",
			resp: solver.SolveResponse{
				Formulas: []string{"A implies B", "B"},
				Goal:     "A",
			},
			want: Regions{
				Formulas:    "- A implies B\n- B\nЦель: A",
				ProofResult: "✗ Не доказано",
				StepsCount:  "0 шагов",
			},
		},
		{
			name: "proven with steps",
			resp: solver.SolveResponse{
				Proven:     true,
				ProofSteps: []string{"s1", "s2", "s3"},
			},
			want: Regions{
				ProofResult: "✓ Доказано",
				StepsCount:  "3 шагов",
				Steps:       "s1\ns2\ns3",
			},
		},
		{
			name: "goal without formulas",
			resp: solver.SolveResponse{Goal: "A"},
			want: Regions{
				Formulas:    "Цель: A",
				ProofResult: "✗ Не доказано",
				StepsCount:  "0 шагов",
			},
		},
		{
			name: "application error",
			resp: solver.SolveResponse{Error: "bad input"},
			want: Regions{
				ProofResult:  "✗ Не доказано",
				StepsCount:   "0 шагов",
				Error:        "bad input",
				ErrorVisible: true,
			},
		},
		{
			name: "explanation verbatim",
			resp: solver.SolveResponse{Explanation: "Доказательство от противного.\nВторой абзац."},
			want: Regions{
				ProofResult: "✗ Не доказано",
				StepsCount:  "0 шагов",
				Explanation: "Доказательство от противного.\nВторой абзац.",
			},
		},
		{
			name: "empty response",
			resp: solver.SolveResponse{},
			want: Regions{
				ProofResult: "✗ Не доказано",
				StepsCount:  "0 шагов",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRegions(&tt.resp)
			if got != tt.want {
				t.Errorf("BuildRegions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildTransportFailure(t *testing.T) {
	got := BuildTransportFailure(errors.New("connection refused"))
	want := Regions{
		Error:        "Ошибка: connection refused",
		ErrorVisible: true,
	}
	if got != want {
		t.Errorf("BuildTransportFailure() = %+v, want %+v", got, want)
	}
}

func TestBuildTransportFailureMasksSecrets(t *testing.T) {
	got := BuildTransportFailure(errors.New("proxy rejected token=pplx-secret"))
	if got.Error != "Ошибка: proxy rejected token=***" {
		t.Errorf("Error = %q, secrets must be masked", got.Error)
	}
}
