// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/httperrors"

	"github.com/spf13/cobra"
)

// healthCmd represents the health command for probing solver availability.
// It calls the solver's health endpoint and reports the self-described status.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность решателя",
	Long: `The health command probes the solver's health endpoint and prints its
self-reported status. Use it to verify connectivity before submitting tasks.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		api, baseURL := newSolver()

		status, message, err := api.Health(cmd.Context())
		if err != nil {
			return httperrors.FormatNetworkError(err, "проверке решателя "+httperrors.ExtractHostFromURL(baseURL))
		}

		if status == "ok" {
			fmt.Printf("✅ Решатель доступен: %s\n", message)
		} else {
			fmt.Printf("⚠️  Решатель отвечает, но статус %q: %s\n", status, message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
