package patch

import (
	"encoding/json"
	"fmt"
)

// Direction distinguishes the two kinds of knobs on a node.
type Direction int

const (
	// DirectionInput marks a knob that receives a wire. An input holds at
	// most one source at a time.
	DirectionInput Direction = iota
	// DirectionOutput marks a knob that feeds wires. An output fans out to
	// any number of inputs.
	DirectionOutput
)

// String returns "in" or "out".
func (d Direction) String() string {
	if d == DirectionOutput {
		return "out"
	}
	return "in"
}

// MarshalJSON encodes the direction as its string form.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes "in" or "out".
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "in":
		*d = DirectionInput
	case "out":
		*d = DirectionOutput
	default:
		return fmt.Errorf("invalid direction %q", s)
	}
	return nil
}

// KnobRef identifies a knob by its owning node's ID, direction, and index
// within that node's knob list. Refs are how knobs point at each other and
// at their owners: holding a ref never keeps a node alive, and a ref held
// across edits resolves through [Patch.Knob] to the current knob or to
// nothing at all.
//
// The zero value refers to no knob.
type KnobRef struct {
	Node  string    `json:"node"`
	Dir   Direction `json:"dir"`
	Index int       `json:"index"`
}

// IsZero reports whether the ref refers to no knob.
func (r KnobRef) IsZero() bool { return r.Node == "" }

// Knob is a typed connection endpoint on a node. Knobs are created through
// [Node.AddInput] and [Node.AddOutput] and are owned by their node; the
// patch wires them together with [Patch.Connect].
type Knob struct {
	name  string
	node  string // owning node ID
	dir   Direction
	index int

	// source is the connected output, inputs only. Zero when unconnected.
	source KnobRef
}

// Name returns the knob's display name.
func (k *Knob) Name() string { return k.name }

// SetName updates the knob's display name.
func (k *Knob) SetName(name string) { k.name = name }

// NodeID returns the ID of the node that owns the knob.
func (k *Knob) NodeID() string { return k.node }

// Direction returns whether the knob is an input or an output.
func (k *Knob) Direction() Direction { return k.dir }

// Index returns the knob's position in its node's input or output list.
func (k *Knob) Index() int { return k.index }

// Ref returns the reference identifying this knob.
func (k *Knob) Ref() KnobRef {
	return KnobRef{Node: k.node, Dir: k.dir, Index: k.index}
}

// Connected reports whether an input knob has a source.
// It is always false for outputs; use [Patch.Fanout] to inspect an
// output's connections.
func (k *Knob) Connected() bool { return !k.source.IsZero() }

// Source returns the ref of the connected output, or the zero ref when
// the knob is unconnected or an output.
func (k *Knob) Source() KnobRef { return k.source }

// render draws the knob into its half of a knob row: a square connector
// handle on the node's edge and the name label beside it. Connected inputs
// render their handle in the wire color so live connections are visible
// without tracing wires.
func (k *Knob) render(s Surface, th *Theme, half Rect) error {
	handle := th.Knob
	if k.Connected() {
		handle = th.KnobConnected
	}

	hy := half.Y + (half.Height-knobHandle)/2
	var handleRect, labelRect Rect
	if k.dir == DirectionInput {
		handleRect = Rect{X: half.X + knobInset, Y: hy, Width: knobHandle, Height: knobHandle}
		labelRect = Rect{
			X:      handleRect.Right() + knobInset,
			Y:      half.Y,
			Width:  half.Right() - handleRect.Right() - knobInset,
			Height: half.Height,
		}
	} else {
		handleRect = Rect{X: half.Right() - knobInset - knobHandle, Y: hy, Width: knobHandle, Height: knobHandle}
		labelRect = Rect{
			X:      half.X,
			Y:      half.Y,
			Width:  handleRect.X - knobInset - half.X,
			Height: half.Height,
		}
	}

	if err := s.LabeledBox(handleRect, "", handle); err != nil {
		return err
	}
	if k.name == "" || labelRect.Width <= 0 {
		return nil
	}
	return s.LabeledBox(labelRect, k.name, th.KnobLabel)
}
