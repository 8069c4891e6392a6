// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/catalog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// examplesCmd represents the examples command for listing the example bank.
// The bank is served by the solver and fetched once per process.
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Показать банк готовых примеров задач",
	Long: `The examples command lists the ready-made example tasks served by the solver.
Use the printed index with 'neurosym solve --example N' or with ':N' inside
'neurosym run' to submit an example without retyping it.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		_, baseURL := newSolver()

		if err := catalog.Load(cmd.Context(), baseURL); err != nil {
			// Listing is the one place where an empty bank is worth a hint.
			fmt.Println("⚠️  Банк примеров недоступен — решатель не ответил.")
			fmt.Println("   Задачу можно отправить и без примеров: neurosym solve \"...\"")
			return nil
		}

		for i, ex := range catalog.All() {
			title := ex.Title
			if title == "" {
				title = "без названия"
			}
			pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprintf("[%d] ", i) + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(title))
			pterm.Println("    " + ex.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
