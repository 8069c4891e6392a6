package session

import (
	"context"
	"errors"
	"strings"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/solver"
)

var (
	// ErrEmptyTask rejects a submission that is empty after trimming.
	// No request is issued and the state does not change.
	ErrEmptyTask = errors.New("empty task")
	// ErrBusy rejects a submission while another one is in flight.
	ErrBusy = errors.New("solve already in progress")
)

// Controller drives the solve request/response cycle. It owns the busy/idle
// state and turns every settlement, success or failure, into a fresh set of
// output regions.
type Controller struct {
	api   solver.API
	state *State
}

// NewController creates a controller in Idle over the given solver client.
func NewController(api solver.API) *Controller {
	return &Controller{api: api, state: NewState()}
}

// State exposes the affordance state for callers that show a busy indicator.
func (c *Controller) State() *State {
	return c.state
}

// Submit trims raw and drives one full request cycle, returning the regions
// of the settled result. ErrEmptyTask and ErrBusy are the only error
// returns; a transport failure settles into an error-region-only Regions
// value. Idle is restored on every path out of the Busy section.
func (c *Controller) Submit(ctx context.Context, raw string) (Regions, error) {
	task := strings.TrimSpace(raw)
	if task == "" {
		return Regions{}, ErrEmptyTask
	}

	if !c.state.Begin() {
		return Regions{}, ErrBusy
	}
	defer c.state.End()

	resp, err := c.api.Solve(ctx, task)
	if err != nil {
		return BuildTransportFailure(err), nil
	}
	return BuildRegions(resp), nil
}
