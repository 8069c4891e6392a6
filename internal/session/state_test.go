package session

import "testing"

func TestStateLifecycle(t *testing.T) {
	s := NewState()
	if s.Current() != Idle {
		t.Fatal("new state must start Idle")
	}
	if !s.Begin() {
		t.Fatal("Begin() from Idle must succeed")
	}
	if s.Current() != Busy {
		t.Fatal("state must be Busy after Begin()")
	}
	if s.Begin() {
		t.Fatal("Begin() from Busy must be rejected")
	}
	s.End()
	if s.Current() != Idle {
		t.Fatal("state must be Idle after End()")
	}
	if !s.Begin() {
		t.Fatal("Begin() must succeed again after End()")
	}
}

func TestEndIsIdempotent(t *testing.T) {
	s := NewState()
	s.End()
	s.End()
	if s.Current() != Idle {
		t.Fatal("repeated End() must leave state Idle")
	}
}
