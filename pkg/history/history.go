package history

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyHistory is returned by [History.Undo] and [History.Redo]
	// when the corresponding stack is empty.
	ErrEmptyHistory = errors.New("history is empty")
)

// Action is a committed, reversible edit. Undo and Redo must be inverse
// to each other and repeatable in alternation.
type Action interface {
	// Name is a short human-readable label ("connect", "move node") used
	// in status lines and logs.
	Name() string

	// Undo reverses the action's effect.
	Undo() error

	// Redo applies the action's effect again after an Undo.
	Redo() error
}

// Staged is an action whose effect accumulates between an explicit Begin
// and End, so a gesture spanning many input events lands in the history
// as a single entry. End reports whether the gesture committed a real,
// undoable effect; an aborted gesture has rolled its speculative state
// back by the time End returns false.
type Staged interface {
	Action

	// Begin is called exactly once when the gesture starts.
	Begin()

	// End is called exactly once when the gesture concludes. It returns
	// true when the action committed an effect worth recording.
	End() bool
}

// DefaultLimit is the undo depth a History created with limit <= 0 keeps.
const DefaultLimit = 100

// History holds the undo and redo stacks of committed actions. Only
// committed effects belong here: hand staged actions to [History.Finish]
// and let it decide, and push plain actions only after they applied.
//
// A History is not safe for concurrent use; like the patch it records
// edits for, it lives on the editor's single goroutine.
type History struct {
	limit int
	undo  []Action
	redo  []Action
}

// New creates a history that keeps at most limit undoable actions.
// A limit <= 0 means [DefaultLimit].
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records a committed action. Any redoable actions are discarded:
// a fresh edit forks the timeline. When the undo stack exceeds the limit
// the oldest entries fall off.
func (h *History) Push(a Action) {
	h.undo = append(h.undo, a)
	h.redo = h.redo[:0]
	if len(h.undo) > h.limit {
		h.undo = slices.Delete(h.undo, 0, len(h.undo)-h.limit)
	}
}

// Finish ends a staged action and records it only when it committed.
// It returns what End reported.
func (h *History) Finish(a Staged) bool {
	if !a.End() {
		return false
	}
	h.Push(a)
	return true
}

// Undo reverses the most recent action and moves it to the redo stack.
// The undone action is returned for status display. When the action's
// Undo fails the stacks are left untouched.
func (h *History) Undo() (Action, error) {
	if len(h.undo) == 0 {
		return nil, ErrEmptyHistory
	}
	a := h.undo[len(h.undo)-1]
	if err := a.Undo(); err != nil {
		return nil, fmt.Errorf("undo %s: %w", a.Name(), err)
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, a)
	return a, nil
}

// Redo reapplies the most recently undone action and moves it back to
// the undo stack. When the action's Redo fails the stacks are left
// untouched.
func (h *History) Redo() (Action, error) {
	if len(h.redo) == 0 {
		return nil, ErrEmptyHistory
	}
	a := h.redo[len(h.redo)-1]
	if err := a.Redo(); err != nil {
		return nil, fmt.Errorf("redo %s: %w", a.Name(), err)
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, a)
	return a, nil
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undoable actions.
func (h *History) Len() int { return len(h.undo) }

// Clear drops both stacks, typically after loading a document.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
