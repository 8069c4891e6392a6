// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/catalog"
	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/session"

	"github.com/spf13/cobra"
)

var (
	exampleIdx int
)

// solveCmd represents the solve command for one-shot task submission.
// It sends the task text to the remote solver and renders the extracted
// formulas, the proof verdict with its steps, and the explanation.
var solveCmd = &cobra.Command{
	Use:   "solve [задача...]",
	Short: "Отправить задачу решателю и показать доказательство",
	Long: `The solve command submits a natural-language task to the solver and renders
the structured result: extracted predicate-logic formulas, the goal, the
resolution verdict with proof steps, and a human-readable explanation.

The task is taken from the arguments, or from the example bank with
--example N (see 'neurosym examples' for the list).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		api, baseURL := newSolver()

		raw := strings.Join(args, " ")
		if exampleIdx >= 0 {
			// Quick-fill from the example bank; the catalog load is
			// best-effort and its failure stays silent.
			_ = catalog.Load(ctx, baseURL)
			text, ok := catalog.Select(exampleIdx)
			if !ok {
				fmt.Printf("⚠️  Пример %d не найден (загружено примеров: %d).\n", exampleIdx, catalog.Len())
				return nil
			}
			raw = text
		}

		ctrl := session.NewController(api)

		stopSpinner := startBusySpinner("Решаем задачу")
		regions, err := ctrl.Submit(ctx, raw)
		stopSpinner()

		if errors.Is(err, session.ErrEmptyTask) {
			fmt.Println("⚠️  Пустая задача — введите текст.")
			fmt.Println("   Например: neurosym solve \"Все люди смертны. Сократ — человек.\"")
			return nil
		}
		if err != nil {
			return err
		}

		session.NewRenderer().Render(regions)
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVar(&exampleIdx, "example", -1, "Номер примера из банка задач вместо текста")
	rootCmd.AddCommand(solveCmd)
}
