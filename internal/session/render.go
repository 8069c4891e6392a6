package session

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/logging"
	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/solver"
)

// Fixed texts of the result page.
const (
	provenText    = "✓ Доказано"
	notProvenText = "✗ Не доказано"
	goalPrefix    = "Цель: "
	errorContext  = "Ошибка"
)

// Regions holds the named output areas of the result page. Every settlement
// builds a fresh Regions value, so rendering always replaces prior content
// instead of appending to it.
type Regions struct {
	// Formulas lists the extracted formulas, one bulleted line each,
	// followed by the goal line when a goal is present.
	Formulas string
	// ProofResult is the fixed proven/not-proven verdict text.
	ProofResult string
	// StepsCount reads "<n> шагов".
	StepsCount string
	// Steps lists the proof steps, one per line, in solver order.
	Steps string
	// Explanation carries the solver's explanation verbatim.
	Explanation string
	// Error is the error region text; shown only when ErrorVisible is set.
	Error string
	// ErrorVisible controls the error region. Hidden means prior error
	// content is irrelevant and must not block future renders.
	ErrorVisible bool
}

// BuildRegions maps a solver response onto the output regions.
// Absent response fields render as empty defaults, never as a failure.
func BuildRegions(resp *solver.SolveResponse) Regions {
	var formulas []string
	for _, f := range resp.Formulas {
		formulas = append(formulas, "- "+f)
	}
	if resp.Goal != "" {
		formulas = append(formulas, goalPrefix+resp.Goal)
	}

	verdict := notProvenText
	if resp.Proven {
		verdict = provenText
	}

	return Regions{
		Formulas:     strings.Join(formulas, "\n"),
		ProofResult:  verdict,
		StepsCount:   fmt.Sprintf("%d шагов", len(resp.ProofSteps)),
		Steps:        strings.Join(resp.ProofSteps, "\n"),
		Explanation:  resp.Explanation,
		Error:        resp.Error,
		ErrorVisible: resp.Error != "",
	}
}

// BuildTransportFailure maps a failed request (no response obtained) onto the
// regions: only the error region is populated, with the masked failure
// description behind the error prefix.
func BuildTransportFailure(err error) Regions {
	return Regions{
		Error:        logging.PresentError(errorContext, err),
		ErrorVisible: true,
	}
}

// Renderer prints regions to the terminal.
type Renderer struct{}

// NewRenderer creates a renderer instance.
func NewRenderer() *Renderer { return &Renderer{} }

// Render prints one settled result. Empty regions are skipped so a
// transport failure shows only the error box.
func (r *Renderer) Render(reg Regions) {
	if reg.Formulas != "" {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Формулы:"))
		pterm.Println(reg.Formulas)
	}
	if reg.ProofResult != "" {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Результат:  ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(reg.ProofResult))
	}
	if reg.Steps != "" {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Шаги:       ") + reg.StepsCount)
		pterm.Println(reg.Steps)
	}
	if reg.Explanation != "" {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Объяснение:"))
		pterm.Println(reg.Explanation)
	}
	if reg.ErrorVisible {
		pterm.Error.Println(reg.Error)
	}
}
