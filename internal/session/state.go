// Package session provides the state machine and rendering for one solve
// session: the busy/idle lifecycle of the submit affordance and the named
// output regions a settlement produces.
package session

import "sync"

// UIState enumerates the submit affordance states.
type UIState int

const (
	// Idle means the affordance accepts a submission.
	Idle UIState = iota
	// Busy means a request is in flight and submissions are rejected.
	Busy
)

// State guards the busy/idle lifecycle. Exactly one of Idle/Busy holds at
// any time; transitions happen only at request start and settlement.
type State struct {
	mu sync.Mutex
	ui UIState
}

// NewState creates a State in Idle.
func NewState() *State {
	return &State{ui: Idle}
}

// Begin attempts the Idle→Busy transition. It returns false when the state
// is already Busy, which rejects a second submission while one is in flight.
func (s *State) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ui == Busy {
		return false
	}
	s.ui = Busy
	return true
}

// End restores Idle. It runs on every settlement path and is safe to call
// in any state.
func (s *State) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui = Idle
}

// Current returns the state at the time of the call.
func (s *State) Current() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui
}
