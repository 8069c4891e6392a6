// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// examplesPath is the catalog endpoint on the solver.
const examplesPath = "/api/examples"

// fetchFromServer retrieves the example bank from the solver.
func fetchFromServer(ctx context.Context, baseURL string) ([]Example, error) {
	client := &http.Client{Timeout: 15 * time.Second}

	url := strings.TrimRight(baseURL, "/") + examplesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "neurosym-cli/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch examples: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var examples []Example
	if err := json.Unmarshal(body, &examples); err != nil {
		return nil, fmt.Errorf("parse examples JSON: %w", err)
	}

	return examples, nil
}
