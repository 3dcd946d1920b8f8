// Package history provides the undo history and the two-phase action
// contract the patch editor records edits with.
//
// # Overview
//
// Editor gestures rarely map one-to-one onto input events: a node drag is
// dozens of motion events, a wire drag is a press, a hover, and a release.
// The [Staged] contract collapses such a gesture into a single history
// entry with an explicit lifecycle: Begin when the gesture starts, End
// when it concludes. End reports whether anything worth undoing actually
// happened, and an aborted gesture rolls its speculative state back
// before reporting, so the history only ever holds committed effects.
//
// # Basic Usage
//
// Single-step edits implement [Action] and are pushed once applied:
//
//	h := history.New(0)
//	h.Push(action)
//	h.Undo()
//
// Gestures implement [Staged] and are driven through [History.Finish],
// which records the action only on commit:
//
//	a.Begin()
//	// ... feed the gesture as events arrive ...
//	if h.Finish(a) {
//	    // the gesture is now one undoable entry
//	}
//
// # Lifecycle Enforcement
//
// The embeddable [Stage] state machine enforces the exactly-once contract
// and panics on violations, the same way sync primitives treat unlocking
// an unlocked mutex: a second Begin or a stray End is a bug in the
// driving code, never data-dependent behavior.
package history
