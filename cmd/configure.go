// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command for inspecting and storing the
// solver address in the XDG config file.
var configCmd = &cobra.Command{
	Use:   "config [server-url]",
	Short: "Показать или сохранить адрес решателя",
	Long: `Without arguments the config command prints the resolved solver address and
request timeout. With an argument it validates the URL and stores it in the
config file, so every later invocation uses it by default.

NEUROSYM_SERVER and --server still override the stored value per run.`,
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			baseURL, timeout := loadClientConfig()
			fmt.Printf("Сервер:  %s\n", baseURL)
			fmt.Printf("Таймаут: %s\n", timeout)
			return nil
		}

		raw := strings.TrimRight(strings.TrimSpace(args[0]), "/")
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			fmt.Println("⚠️  Нужен полный URL, например: http://localhost:5009")
			return fmt.Errorf("invalid server URL %q", args[0])
		}

		cfg, err := config.Load()
		if err != nil {
			cfg = config.Config{TimeoutSeconds: 60}
		}
		cfg.ServerURL = raw
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Printf("✅ Сервер сохранён: %s\n", raw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
