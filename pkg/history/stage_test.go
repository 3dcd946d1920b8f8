package history

import "testing"

func TestStageLifecycle(t *testing.T) {
	var s Stage
	if s.State() != StageCreated {
		t.Fatalf("initial state = %v, want created", s.State())
	}

	s.Start()
	if s.State() != StageStarted {
		t.Fatalf("state after Start = %v, want started", s.State())
	}

	s.Finish()
	if s.State() != StageEnded {
		t.Fatalf("state after Finish = %v, want ended", s.State())
	}
}

func TestStageDoubleStartPanics(t *testing.T) {
	var s Stage
	s.Start()

	defer func() {
		if recover() == nil {
			t.Error("second Start did not panic")
		}
	}()
	s.Start()
}

func TestStageFinishBeforeStartPanics(t *testing.T) {
	var s Stage

	defer func() {
		if recover() == nil {
			t.Error("Finish before Start did not panic")
		}
	}()
	s.Finish()
}

func TestStageDoubleFinishPanics(t *testing.T) {
	var s Stage
	s.Start()
	s.Finish()

	defer func() {
		if recover() == nil {
			t.Error("second Finish did not panic")
		}
	}()
	s.Finish()
}

func TestStageStateString(t *testing.T) {
	tests := []struct {
		state StageState
		want  string
	}{
		{state: StageCreated, want: "created"},
		{state: StageStarted, want: "started"},
		{state: StageEnded, want: "ended"},
		{state: StageState(9), want: "StageState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("StageState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
