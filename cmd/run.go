// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/catalog"
	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/session"
	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const runPrompt = "задача> "

// runCmd represents the run command: an interactive session against the
// solver. The example bank is loaded once at startup, then the session loops
// between an idle prompt and an in-flight request until the user exits.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Интерактивная сессия с решателем",
	Long: `The run command starts an interactive session. At startup it loads the
example bank from the solver (best-effort; a failure keeps the bank empty and
is not reported). The session then repeats: read a task at the prompt, submit
it, render the result, and return to the prompt.

Prompt input:
  <текст задачи>  отправить задачу решателю
  :N              отправить пример номер N из банка
  exit            завершить сессию (также Ctrl+D)`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		api, baseURL := newSolver()

		// Catalog loading is best-effort: an unreachable solver at startup
		// must not prevent typing a task by hand.
		_ = catalog.Load(ctx, baseURL)

		pterm.Println(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Нейро-символический решатель"))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Сервер: ") + baseURL)
		printExampleBank()
		pterm.Println()

		ctrl := session.NewController(api)
		renderer := session.NewRenderer()
		reader := bufio.NewReader(os.Stdin)

		for {
			fmt.Print(runPrompt)
			line, err := reader.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Println()
					return nil
				}
				return err
			}

			input := strings.TrimSpace(line)
			switch input {
			case "exit", "quit", "выход":
				return nil
			}

			task, ok := expandExampleRef(input)
			if !ok {
				fmt.Println("⚠️  Такого примера нет. Список: neurosym examples")
				continue
			}

			// Replace the raw input with a uniform task line
			terminal.ClearPreviousLines(len(runPrompt) + len(line))
			if strings.TrimSpace(task) != "" {
				pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Задача: ") + strings.TrimSpace(task))
			}

			stopSpinner := startBusySpinner("Решаем задачу")
			regions, err := ctrl.Submit(ctx, task)
			stopSpinner()

			if errors.Is(err, session.ErrEmptyTask) {
				fmt.Println("⚠️  Пустая задача — введите текст или :N для примера.")
				continue
			}
			if err != nil {
				// ErrBusy cannot happen in this single prompt loop; anything
				// else is unexpected enough to end the session.
				return err
			}

			renderer.Render(regions)
			pterm.Println()
		}
	},
}

// printExampleBank lists the loaded examples, if any.
func printExampleBank() {
	examples := catalog.All()
	if len(examples) == 0 {
		return
	}
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Примеры:"))
	for i, ex := range examples {
		pterm.Printf("  :%d  %s\n", i, ex.Text)
	}
}

// expandExampleRef resolves ":N" input to the example bank entry N.
// Non-reference input is returned unchanged; an out-of-range or unloaded
// reference yields ok=false.
func expandExampleRef(input string) (task string, ok bool) {
	if !strings.HasPrefix(input, ":") {
		return input, true
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(input, ":"))
	if err != nil {
		// Not a number after ':' — treat as a literal task
		return input, true
	}
	return catalog.Select(idx)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
