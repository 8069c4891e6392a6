package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	solvePath  = "/api/solve"
	healthPath = "/api/health"
)

// HTTP implements the API over the solver's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://localhost:5009")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and request timeout.
func newHTTP(baseURL string, timeout time.Duration) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Solve calls POST /api/solve with the task text.
// The solver reports application failures in the body's "error" field and may
// do so with any HTTP status, so the body is decoded regardless of status and
// no distinct non-2xx handling exists.
func (h *HTTP) Solve(ctx context.Context, task string) (*SolveResponse, error) {
	payload, err := json.Marshal(SolveRequest{Task: task})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+solvePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	h.setStandardHeaders(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out SolveResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parse solve response: %w", err)
	}
	return &out, nil
}

// Health calls GET /api/health and returns the solver's self-reported state.
func (h *HTTP) Health(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+healthPath, nil)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	h.setStandardHeaders(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", fmt.Errorf("parse health response: %w", err)
	}
	return out.Status, out.Message, nil
}

// setStandardHeaders applies headers common to all solver requests.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "neurosym-cli/1.0")
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
}
