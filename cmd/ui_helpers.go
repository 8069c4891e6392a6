// Package cmd provides CLI commands for the neurosym client.
// This file contains helper functions for the busy indicator shown while a
// request is in flight.
package cmd

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// spinnerFrames animate the pending indicator while the solver works.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// startBusySpinner shows an animated pending line in its own terminal area
// for the duration of an in-flight request. It hides the cursor, starts a
// goroutine that updates the animation frames, and returns a function that
// stops the animation, removes the line, and restores the cursor.
//
// The returned stop function must be called exactly once on every settlement
// path so the terminal is left clean regardless of outcome.
func startBusySpinner(text string) func() {
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text))
				i++
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		wg.Wait()
		area.Stop()
		cursor.Show()
	}
}
