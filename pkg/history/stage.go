package history

import "fmt"

// StageState is a staged action's position in its lifecycle.
type StageState int

const (
	// StageCreated is the state before Begin.
	StageCreated StageState = iota
	// StageStarted is the state between Begin and End.
	StageStarted
	// StageEnded is the terminal state after End.
	StageEnded
)

// String returns "created", "started", or "ended".
func (s StageState) String() string {
	switch s {
	case StageCreated:
		return "created"
	case StageStarted:
		return "started"
	case StageEnded:
		return "ended"
	default:
		return fmt.Sprintf("StageState(%d)", int(s))
	}
}

// Stage enforces the lifecycle contract of a [Staged] action: Begin
// exactly once, then End exactly once. Actions embed a Stage and call
// [Stage.Start] from Begin and [Stage.Finish] from End.
//
// Contract violations panic, like misuse of sync primitives: a double
// Begin or an End without Begin is a bug in the driving code, not a
// runtime condition to handle.
type Stage struct {
	state StageState
}

// State returns the current lifecycle state.
func (s *Stage) State() StageState { return s.state }

// Start transitions Created to Started. It panics when the action has
// already started or ended.
func (s *Stage) Start() {
	if s.state != StageCreated {
		panic("history: Begin of " + s.state.String() + " action")
	}
	s.state = StageStarted
}

// Finish transitions Started to Ended. It panics when the action never
// started or already ended.
func (s *Stage) Finish() {
	if s.state != StageStarted {
		panic("history: End of " + s.state.String() + " action")
	}
	s.state = StageEnded
}
