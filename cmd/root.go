// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the neurosym client.
// It implements subcommands for solving tasks, browsing the example bank, and
// checking solver availability using the Cobra CLI framework, with a terminal
// UI built on pterm spinners and styled output.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/config"
	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/solver"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	serverFlag  string
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the neurosym CLI application.
var rootCmd = &cobra.Command{
	Use:   "neurosym",
	Short: "Клиент нейро-символического решателя логических задач",
	Long: `neurosym — терминальный клиент решателя, который переводит текстовые задачи
в логику предикатов, доказывает цель методом резолюций и объясняет доказательство.

Решение выполняется удалённым сервисом; клиент отправляет задачу на два его
HTTP-эндпоинта и отображает результат.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("neurosym %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadClientConfig resolves the solver base URL and request timeout.
// Priority: --server flag, then NEUROSYM_SERVER (applied inside config.Load),
// then the config file, then the built-in default.
func loadClientConfig() (baseURL string, timeout time.Duration) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file must not make the client unusable
		cfg = config.Config{ServerURL: config.DefaultServerURL, TimeoutSeconds: 60}
	}
	baseURL = cfg.ServerURL
	if v := strings.TrimSpace(serverFlag); v != "" {
		baseURL = strings.TrimRight(v, "/")
	}
	return baseURL, time.Duration(cfg.TimeoutSeconds) * time.Second
}

// newSolver builds the solver client from the resolved configuration.
func newSolver() (solver.API, string) {
	baseURL, timeout := loadClientConfig()
	return solver.New(baseURL, timeout), baseURL
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Solver base URL (overrides NEUROSYM_SERVER and config)")
}
