package patch

import (
	"fmt"

	"github.com/tessvane/patchboard/pkg/history"
)

// Compile-time interface checks for the action set.
var (
	_ history.Staged = (*ConnectAction)(nil)
	_ history.Staged = (*MoveAction)(nil)
	_ history.Staged = (*ResizeAction)(nil)
	_ history.Action = (*AddNodeAction)(nil)
	_ history.Action = (*RemoveNodeAction)(nil)
	_ history.Action = (*DisconnectAction)(nil)
	_ history.Action = (*RenameAction)(nil)
)

// =============================================================================
// ConnectAction - Staged Wire Drag
// =============================================================================

// ConnectAction is the staged gesture behind a wire drag: Begin when the
// drag grabs a knob, [ConnectAction.Drop] when the wire is released over
// a target, End when the gesture concludes. A drag that never dropped on
// a valid target ends without commit, and a cancelled drag rolls back the
// wire Drop made.
//
// The action records refs, not pointers, so Undo and Redo resolve against
// whatever knobs are live when they run.
type ConnectAction struct {
	history.Stage

	patch     *Patch
	from      KnobRef // grab end, either direction
	out, in   KnobRef // resolved ends, set by Drop
	displaced KnobRef // the input's previous source, if any
	connected bool
	cancelled bool
}

// NewConnectAction starts building a wire drag from the given knob.
// The gesture has not begun until [ConnectAction.Begin].
func NewConnectAction(p *Patch, from *Knob) *ConnectAction {
	return &ConnectAction{patch: p, from: from.Ref()}
}

// Name returns "connect".
func (a *ConnectAction) Name() string { return "connect" }

// From returns the ref of the knob the drag started on.
func (a *ConnectAction) From() KnobRef { return a.from }

// Begin marks the gesture as started.
func (a *ConnectAction) Begin() { a.Start() }

// Drop tries to complete the wire at target. On success the patch holds
// the new connection and a later abort or Undo knows what it displaced.
// On failure the patch is untouched and the gesture simply continues; the
// host may retry another target or give up.
//
// A second successful Drop replaces the first, rolling the earlier wire
// back before connecting, so a gesture commits at most one wire.
func (a *ConnectAction) Drop(target *Knob) error {
	if a.State() != history.StageStarted {
		panic("patch: Drop on " + a.State().String() + " connect action")
	}
	if target == nil {
		return ErrNilKnob
	}
	if a.connected {
		a.rollback()
		a.connected = false
	}

	from, ok := a.patch.Knob(a.from)
	if !ok {
		return ErrUnknownKnob
	}
	if from.Direction() == target.Direction() {
		return ErrSameDirection
	}
	out, in := from, target
	if out.Direction() == DirectionInput {
		out, in = in, out
	}

	displaced := in.Source()
	if err := a.patch.Connect(out, in); err != nil {
		return err
	}
	a.out, a.in = out.Ref(), in.Ref()
	a.displaced = displaced
	a.connected = true
	return nil
}

// Cancel abandons the gesture. The following End rolls back any wire made
// by Drop and reports no commit.
func (a *ConnectAction) Cancel() { a.cancelled = true }

// End concludes the gesture and reports whether a wire was committed.
func (a *ConnectAction) End() bool {
	a.Finish()
	if a.cancelled && a.connected {
		a.rollback()
		a.connected = false
	}
	return a.connected
}

// rollback reverses the wire made by Drop: best effort, used inside a
// single gesture where the recorded refs cannot have gone stale.
func (a *ConnectAction) rollback() {
	in, ok := a.patch.Knob(a.in)
	if !ok {
		return
	}
	_ = a.patch.Disconnect(in)
	if prev, ok := a.patch.Knob(a.displaced); ok {
		_ = a.patch.Connect(prev, in)
	}
}

// Undo removes the committed wire and restores the one it displaced.
func (a *ConnectAction) Undo() error {
	in, ok := a.patch.Knob(a.in)
	if !ok {
		return fmt.Errorf("undo connect: %w", ErrUnknownKnob)
	}
	if err := a.patch.Disconnect(in); err != nil {
		return fmt.Errorf("undo connect: %w", err)
	}
	if a.displaced.IsZero() {
		return nil
	}
	prev, ok := a.patch.Knob(a.displaced)
	if !ok {
		return fmt.Errorf("undo connect: %w", ErrUnknownKnob)
	}
	if err := a.patch.Connect(prev, in); err != nil {
		return fmt.Errorf("undo connect: %w", err)
	}
	return nil
}

// Redo reconnects the committed wire.
func (a *ConnectAction) Redo() error {
	out, okOut := a.patch.Knob(a.out)
	in, okIn := a.patch.Knob(a.in)
	if !okOut || !okIn {
		return fmt.Errorf("redo connect: %w", ErrUnknownKnob)
	}
	if err := a.patch.Connect(out, in); err != nil {
		return fmt.Errorf("redo connect: %w", err)
	}
	return nil
}

// =============================================================================
// MoveAction - Staged Node Drag
// =============================================================================

// MoveAction is the staged gesture behind dragging a node across the
// canvas. Begin captures the original position, [MoveAction.MoveTo]
// applies each motion event live, End commits only when the node actually
// ended up somewhere else.
type MoveAction struct {
	history.Stage

	patch     *Patch
	node      string
	from, to  Point
	valid     bool // node existed at Begin
	moved     bool
	cancelled bool
}

// NewMoveAction starts building a drag of the given node.
func NewMoveAction(p *Patch, nodeID string) *MoveAction {
	return &MoveAction{patch: p, node: nodeID}
}

// Name returns "move node".
func (a *MoveAction) Name() string { return "move node" }

// NodeID returns the dragged node's ID.
func (a *MoveAction) NodeID() string { return a.node }

// Begin captures the node's current position as the rollback point.
func (a *MoveAction) Begin() {
	a.Start()
	if n, ok := a.patch.Node(a.node); ok {
		r := n.Rect()
		a.from = Point{X: r.X, Y: r.Y}
		a.to = a.from
		a.valid = true
	}
}

// MoveTo places the node at (x, y). Motion on a node removed mid-gesture
// is dropped silently; the gesture then ends without commit.
func (a *MoveAction) MoveTo(x, y float64) {
	if a.State() != history.StageStarted {
		panic("patch: MoveTo on " + a.State().String() + " move action")
	}
	n, ok := a.patch.Node(a.node)
	if !a.valid || !ok {
		return
	}
	n.MoveTo(x, y)
	a.to = Point{X: x, Y: y}
	a.moved = a.to != a.from
}

// Cancel abandons the gesture. The following End puts the node back and
// reports no commit.
func (a *MoveAction) Cancel() { a.cancelled = true }

// End concludes the gesture, reporting commit only when the node moved.
func (a *MoveAction) End() bool {
	a.Finish()
	if a.cancelled && a.moved {
		if n, ok := a.patch.Node(a.node); ok {
			n.MoveTo(a.from.X, a.from.Y)
		}
		a.moved = false
	}
	return a.valid && a.moved
}

// Undo puts the node back at its position before the drag.
func (a *MoveAction) Undo() error { return a.place(a.from) }

// Redo puts the node at the drag's final position.
func (a *MoveAction) Redo() error { return a.place(a.to) }

func (a *MoveAction) place(pt Point) error {
	n, ok := a.patch.Node(a.node)
	if !ok {
		return fmt.Errorf("%s %s: %w", a.Name(), a.node, ErrUnknownNode)
	}
	n.MoveTo(pt.X, pt.Y)
	return nil
}

// =============================================================================
// ResizeAction - Staged Node Resize
// =============================================================================

// ResizeAction is the staged gesture behind dragging a node's border.
// Sizes pass through [Node.Resize], so the recorded result is the clamped
// size actually applied, never the raw pointer position.
type ResizeAction struct {
	history.Stage

	patch        *Patch
	node         string
	fromW, fromH float64
	toW, toH     float64
	valid        bool
	resized      bool
	cancelled    bool
}

// NewResizeAction starts building a resize of the given node.
func NewResizeAction(p *Patch, nodeID string) *ResizeAction {
	return &ResizeAction{patch: p, node: nodeID}
}

// Name returns "resize node".
func (a *ResizeAction) Name() string { return "resize node" }

// NodeID returns the resized node's ID.
func (a *ResizeAction) NodeID() string { return a.node }

// Begin captures the node's current size as the rollback point.
func (a *ResizeAction) Begin() {
	a.Start()
	if n, ok := a.patch.Node(a.node); ok {
		r := n.Rect()
		a.fromW, a.fromH = r.Width, r.Height
		a.toW, a.toH = r.Width, r.Height
		a.valid = true
	}
}

// ResizeTo applies a new size, clamped by the node's layout minimums.
func (a *ResizeAction) ResizeTo(width, height float64) {
	if a.State() != history.StageStarted {
		panic("patch: ResizeTo on " + a.State().String() + " resize action")
	}
	n, ok := a.patch.Node(a.node)
	if !a.valid || !ok {
		return
	}
	n.Resize(width, height)
	r := n.Rect()
	a.toW, a.toH = r.Width, r.Height
	a.resized = a.toW != a.fromW || a.toH != a.fromH
}

// Cancel abandons the gesture. The following End restores the original
// size and reports no commit.
func (a *ResizeAction) Cancel() { a.cancelled = true }

// End concludes the gesture, reporting commit only when the size changed.
func (a *ResizeAction) End() bool {
	a.Finish()
	if a.cancelled && a.resized {
		if n, ok := a.patch.Node(a.node); ok {
			n.Resize(a.fromW, a.fromH)
		}
		a.resized = false
	}
	return a.valid && a.resized
}

// Undo restores the size from before the gesture.
func (a *ResizeAction) Undo() error { return a.size(a.fromW, a.fromH) }

// Redo applies the gesture's final size.
func (a *ResizeAction) Redo() error { return a.size(a.toW, a.toH) }

func (a *ResizeAction) size(w, h float64) error {
	n, ok := a.patch.Node(a.node)
	if !ok {
		return fmt.Errorf("%s %s: %w", a.Name(), a.node, ErrUnknownNode)
	}
	n.Resize(w, h)
	return nil
}

// =============================================================================
// Single-Stage Actions
// =============================================================================

// AddNodeAction creates a node. Call [AddNodeAction.Do] to apply, then
// push the action once it succeeded.
type AddNodeAction struct {
	patch *Patch
	name  string
	at    Point
	node  *Node
	index int
}

// NewAddNodeAction builds an action that creates a node named name with
// its top-left corner at position at.
func NewAddNodeAction(p *Patch, name string, at Point) *AddNodeAction {
	return &AddNodeAction{patch: p, name: name, at: at}
}

// Name returns "add node".
func (a *AddNodeAction) Name() string { return "add node" }

// Do creates the node and returns it for further setup.
func (a *AddNodeAction) Do() *Node {
	a.node = a.patch.NewNode(a.name)
	a.node.MoveTo(a.at.X, a.at.Y)
	a.index = a.patch.nodeIndex(a.node.id)
	return a.node
}

// Undo removes the created node. By the time this runs, later actions
// have already been undone, so the node carries no wires.
func (a *AddNodeAction) Undo() error {
	if err := a.patch.RemoveNode(a.node.id); err != nil {
		return fmt.Errorf("undo add node: %w", err)
	}
	return nil
}

// Redo reattaches the same node at its original draw-order position, so
// every recorded ref into it stays valid.
func (a *AddNodeAction) Redo() error {
	if _, exists := a.patch.Node(a.node.id); exists {
		return fmt.Errorf("redo add node: %w", ErrDuplicateNodeID)
	}
	a.patch.attach(a.node, min(a.index, len(a.patch.order)))
	return nil
}

// RemoveNodeAction deletes a node and remembers everything needed to
// bring it back: the node itself, its draw-order position, and every wire
// that touched it.
type RemoveNodeAction struct {
	patch *Patch
	id    string
	node  *Node
	index int
	wires []Connection
}

// NewRemoveNodeAction builds an action that deletes the given node.
func NewRemoveNodeAction(p *Patch, nodeID string) *RemoveNodeAction {
	return &RemoveNodeAction{patch: p, id: nodeID}
}

// Name returns "remove node".
func (a *RemoveNodeAction) Name() string { return "remove node" }

// Do captures the node's wires and removes it from the patch.
func (a *RemoveNodeAction) Do() error {
	n, ok := a.patch.Node(a.id)
	if !ok {
		return ErrUnknownNode
	}
	a.node = n
	a.index = a.patch.nodeIndex(a.id)
	a.wires = a.captureWires()
	return a.patch.RemoveNode(a.id)
}

// captureWires collects every wire touching the node: sources of its own
// inputs plus the fanout of its outputs.
func (a *RemoveNodeAction) captureWires() []Connection {
	var wires []Connection
	for _, in := range a.node.inputs {
		if in.Connected() {
			wires = append(wires, Connection{From: in.Source(), To: in.Ref()})
		}
	}
	for _, out := range a.node.outputs {
		for _, in := range a.patch.Fanout(out) {
			wires = append(wires, Connection{From: out.Ref(), To: in.Ref()})
		}
	}
	return wires
}

// Undo reattaches the node and reconnects the captured wires.
func (a *RemoveNodeAction) Undo() error {
	if _, exists := a.patch.Node(a.id); exists {
		return fmt.Errorf("undo remove node: %w", ErrDuplicateNodeID)
	}
	a.patch.attach(a.node, min(a.index, len(a.patch.order)))
	for _, w := range a.wires {
		out, okOut := a.patch.Knob(w.From)
		in, okIn := a.patch.Knob(w.To)
		if !okOut || !okIn {
			return fmt.Errorf("undo remove node: %w", ErrUnknownKnob)
		}
		if err := a.patch.Connect(out, in); err != nil {
			return fmt.Errorf("undo remove node: %w", err)
		}
	}
	return nil
}

// Redo removes the node again.
func (a *RemoveNodeAction) Redo() error {
	if err := a.patch.RemoveNode(a.id); err != nil {
		return fmt.Errorf("redo remove node: %w", err)
	}
	return nil
}

// DisconnectAction removes the wire into one input.
type DisconnectAction struct {
	patch *Patch
	in    KnobRef
	from  KnobRef
}

// NewDisconnectAction builds an action that unwires the given input.
func NewDisconnectAction(p *Patch, in *Knob) *DisconnectAction {
	return &DisconnectAction{patch: p, in: in.Ref()}
}

// Name returns "disconnect".
func (a *DisconnectAction) Name() string { return "disconnect" }

// Do captures the input's source and removes the wire.
func (a *DisconnectAction) Do() error {
	in, ok := a.patch.Knob(a.in)
	if !ok {
		return ErrUnknownKnob
	}
	a.from = in.Source()
	return a.patch.Disconnect(in)
}

// Undo restores the removed wire.
func (a *DisconnectAction) Undo() error {
	out, okOut := a.patch.Knob(a.from)
	in, okIn := a.patch.Knob(a.in)
	if !okOut || !okIn {
		return fmt.Errorf("undo disconnect: %w", ErrUnknownKnob)
	}
	if err := a.patch.Connect(out, in); err != nil {
		return fmt.Errorf("undo disconnect: %w", err)
	}
	return nil
}

// Redo removes the wire again.
func (a *DisconnectAction) Redo() error {
	in, ok := a.patch.Knob(a.in)
	if !ok {
		return fmt.Errorf("redo disconnect: %w", ErrUnknownKnob)
	}
	if err := a.patch.Disconnect(in); err != nil {
		return fmt.Errorf("redo disconnect: %w", err)
	}
	return nil
}

// RenameAction changes a node's display name. Hosts should skip the
// action entirely when the new name equals the old one.
type RenameAction struct {
	patch    *Patch
	node     string
	from, to string
}

// NewRenameAction builds an action that renames the given node to name.
func NewRenameAction(p *Patch, nodeID, name string) *RenameAction {
	return &RenameAction{patch: p, node: nodeID, to: name}
}

// Name returns "rename node".
func (a *RenameAction) Name() string { return "rename node" }

// Do captures the old name and applies the new one.
func (a *RenameAction) Do() error {
	n, ok := a.patch.Node(a.node)
	if !ok {
		return ErrUnknownNode
	}
	a.from = n.Name()
	n.SetName(a.to)
	return nil
}

// Undo restores the previous name.
func (a *RenameAction) Undo() error { return a.rename(a.from) }

// Redo applies the new name again.
func (a *RenameAction) Redo() error { return a.rename(a.to) }

func (a *RenameAction) rename(name string) error {
	n, ok := a.patch.Node(a.node)
	if !ok {
		return fmt.Errorf("%s %s: %w", a.Name(), a.node, ErrUnknownNode)
	}
	n.SetName(name)
	return nil
}
