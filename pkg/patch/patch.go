package patch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrInvalidNodeID is returned by [Patch.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Patch.AddNode] when a node with
	// the same ID already exists in the patch. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Patch.RemoveNode] when no node with
	// the given ID exists in the patch.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNilKnob is returned by [Patch.Connect] and [Patch.Disconnect]
	// when an endpoint is nil.
	ErrNilKnob = errors.New("knob must not be nil")

	// ErrSameDirection is returned by [Patch.Connect] when both endpoints
	// are inputs or both are outputs. Wires always run output to input.
	ErrSameDirection = errors.New("knobs have the same direction")

	// ErrForeignKnob is returned by [Patch.Connect] and [Patch.Disconnect]
	// when an endpoint is not owned by a node in this patch.
	ErrForeignKnob = errors.New("knob belongs to a different patch")

	// ErrPolicyRejected is returned by [Patch.Connect] when the installed
	// [ConnectionPolicy] vetoes the connection. The policy's own error
	// text is appended for display.
	ErrPolicyRejected = errors.New("connection rejected by policy")

	// ErrNotInput is returned by [Patch.Disconnect] when the knob is an
	// output. Only inputs hold a source to disconnect.
	ErrNotInput = errors.New("knob is not an input")

	// ErrNotConnected is returned by [Patch.Disconnect] when the input has
	// no source.
	ErrNotConnected = errors.New("input has no connection")

	// ErrUnknownKnob is returned by action Undo and Redo when a recorded
	// [KnobRef] no longer resolves to a live knob.
	ErrUnknownKnob = errors.New("knob no longer exists")
)

// ConnectionPolicy validates a proposed connection before it is committed.
// The patch calls the policy after resolving direction and ownership but
// before any state changes, so a veto leaves the patch untouched. Policies
// decide graph-level rules the connection mechanism itself stays neutral
// on, such as whether cycles or self-loops are allowed.
type ConnectionPolicy func(p *Patch, out, in *Knob) error

// Connection is one wire in the patch, described by refs to its two ends.
type Connection struct {
	From KnobRef `json:"from"` // output end
	To   KnobRef `json:"to"`   // input end
}

// Patch is a canvas of nodes and the wires between their knobs. It owns
// its nodes exclusively: nodes are created and removed through the patch,
// and wires only form between knobs of the same patch.
//
// The zero value is not usable - use [New] to create a patch. A Patch is
// not safe for concurrent use; the editor model drives all mutation from
// a single goroutine.
type Patch struct {
	nodes  map[string]*Node
	order  []string // node IDs in insertion order, drives z-order
	policy ConnectionPolicy
}

// New creates an empty patch with no connection policy installed.
func New() *Patch {
	return &Patch{nodes: make(map[string]*Node)}
}

// SetPolicy installs the connection policy consulted by [Patch.Connect].
// A nil policy accepts every direction-valid connection.
func (p *Patch) SetPolicy(policy ConnectionPolicy) { p.policy = policy }

// =============================================================================
// Node Management
// =============================================================================

// NewNode creates a node with a generated ID at the default size and adds
// it to the patch.
func (p *Patch) NewNode(name string) *Node {
	n, err := p.AddNode(uuid.NewString(), name)
	if err != nil {
		// Generated UUIDs are non-empty and unique.
		panic(fmt.Sprintf("patch: add generated node: %v", err))
	}
	return n
}

// AddNode creates a node with an explicit ID and adds it to the patch.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists. Explicit IDs exist for document
// loading; interactive callers use [Patch.NewNode].
func (p *Patch) AddNode(id, name string) (*Node, error) {
	if id == "" {
		return nil, ErrInvalidNodeID
	}
	if _, exists := p.nodes[id]; exists {
		return nil, ErrDuplicateNodeID
	}
	n := &Node{
		id:   id,
		name: name,
		rect: Rect{Width: DefaultNodeWidth, Height: DefaultNodeHeight},
	}
	p.attach(n, len(p.order))
	return n, nil
}

// attach inserts an existing node at position pos in the draw order.
// The node's ID must not already be present.
func (p *Patch) attach(n *Node, pos int) {
	p.nodes[n.id] = n
	p.order = slices.Insert(p.order, pos, n.id)
}

// RemoveNode removes the node and tears down every wire touching it: the
// sources of its own inputs and the wires from its outputs into other
// nodes' inputs. Owners of disconnected inputs are notified as usual.
// Returns ErrUnknownNode if no such node exists.
func (p *Patch) RemoveNode(id string) error {
	n, ok := p.nodes[id]
	if !ok {
		return ErrUnknownNode
	}

	for _, in := range n.inputs {
		if in.Connected() {
			p.clearSource(in)
		}
	}
	for _, out := range n.outputs {
		for _, in := range p.Fanout(out) {
			p.clearSource(in)
		}
	}

	delete(p.nodes, id)
	p.order = slices.DeleteFunc(p.order, func(s string) bool { return s == id })
	return nil
}

// Node returns the node with the given ID and true, or nil and false if
// not found.
func (p *Patch) Node(id string) (*Node, bool) {
	n, ok := p.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. Insertion order is also
// draw order: later nodes render on top of earlier ones.
func (p *Patch) Nodes() []*Node {
	nodes := make([]*Node, 0, len(p.order))
	for _, id := range p.order {
		nodes = append(nodes, p.nodes[id])
	}
	return nodes
}

// NodeCount returns the number of nodes in the patch.
func (p *Patch) NodeCount() int { return len(p.nodes) }

// nodeIndex returns the node's position in the draw order, or -1.
func (p *Patch) nodeIndex(id string) int {
	return slices.Index(p.order, id)
}

// NodeAt returns the topmost node containing the canvas point (x, y) and
// true, or nil and false when the point is over empty canvas.
func (p *Patch) NodeAt(x, y float64) (*Node, bool) {
	for i := len(p.order) - 1; i >= 0; i-- {
		n := p.nodes[p.order[i]]
		if n.Contains(x, y) {
			return n, true
		}
	}
	return nil, false
}

// =============================================================================
// Connection Management
// =============================================================================

// Knob resolves a ref to the live knob it identifies and true, or nil and
// false when the node is gone or the index is out of range.
func (p *Patch) Knob(ref KnobRef) (*Knob, bool) {
	n, ok := p.nodes[ref.Node]
	if !ok {
		return nil, false
	}
	if ref.Dir == DirectionInput {
		return n.Input(ref.Index)
	}
	return n.Output(ref.Index)
}

// owns reports whether k is a live knob of this patch. A knob from
// another patch can carry the same ref, so the resolved knob must be
// pointer-identical.
func (p *Patch) owns(k *Knob) bool {
	live, ok := p.Knob(k.Ref())
	return ok && live == k
}

// Connect wires an output to an input. The endpoints may be passed in
// either order; the patch resolves which end is which, so a wire drag
// can start from either side.
//
// Connect rejects without touching the patch when both knobs have the
// same direction (ErrSameDirection), when either knob belongs to another
// patch (ErrForeignKnob), or when the installed policy vetoes the pair
// (ErrPolicyRejected). On success, an input that already had a source is
// disconnected from it first: the input's single slot always holds the
// most recent connection.
func (p *Patch) Connect(a, b *Knob) error {
	if a == nil || b == nil {
		return ErrNilKnob
	}
	if a.dir == b.dir {
		return ErrSameDirection
	}
	out, in := a, b
	if out.dir == DirectionInput {
		out, in = in, out
	}
	if !p.owns(out) || !p.owns(in) {
		return ErrForeignKnob
	}
	if p.policy != nil {
		if err := p.policy(p, out, in); err != nil {
			return fmt.Errorf("%w: %v", ErrPolicyRejected, err)
		}
	}

	if in.Connected() {
		p.clearSource(in)
	}
	in.source = out.Ref()
	p.notifyConnected(in)
	return nil
}

// Disconnect removes the wire into the given input and notifies the
// input's owning node. Returns ErrNotInput for outputs, ErrForeignKnob
// for knobs of another patch, and ErrNotConnected when there is no wire
// to remove.
func (p *Patch) Disconnect(in *Knob) error {
	if in == nil {
		return ErrNilKnob
	}
	if in.dir != DirectionInput {
		return ErrNotInput
	}
	if !p.owns(in) {
		return ErrForeignKnob
	}
	if !in.Connected() {
		return ErrNotConnected
	}
	p.clearSource(in)
	return nil
}

// clearSource removes the input's wire and notifies its owning node.
func (p *Patch) clearSource(in *Knob) {
	in.source = KnobRef{}
	p.notifyDisconnected(in)
}

// Source returns the output knob feeding the given input and true, or
// nil and false when the input is unconnected or its source no longer
// resolves.
func (p *Patch) Source(in *Knob) (*Knob, bool) {
	if in == nil || !in.Connected() {
		return nil, false
	}
	return p.Knob(in.source)
}

// Fanout returns every input fed by the given output, in draw order and
// input index order. Outputs keep no reverse list, so this is a scan
// over the patch.
func (p *Patch) Fanout(out *Knob) []*Knob {
	if out == nil || out.dir != DirectionOutput {
		return nil
	}
	ref := out.Ref()
	var ins []*Knob
	for _, id := range p.order {
		for _, in := range p.nodes[id].inputs {
			if in.source == ref {
				ins = append(ins, in)
			}
		}
	}
	return ins
}

// Connections returns every wire in the patch, in draw order and input
// index order of the To end.
func (p *Patch) Connections() []Connection {
	var conns []Connection
	for _, id := range p.order {
		for _, in := range p.nodes[id].inputs {
			if in.Connected() {
				conns = append(conns, Connection{From: in.source, To: in.Ref()})
			}
		}
	}
	return conns
}

// ConnectionCount returns the number of wires in the patch.
func (p *Patch) ConnectionCount() int {
	count := 0
	for _, id := range p.order {
		for _, in := range p.nodes[id].inputs {
			if in.Connected() {
				count++
			}
		}
	}
	return count
}

// =============================================================================
// Notification
// =============================================================================

// notifyConnected tells the input's owning node about a new wire, if its
// body cares.
func (p *Patch) notifyConnected(in *Knob) {
	if obs, ok := p.observer(in); ok {
		obs.InputConnected(in)
	}
}

// notifyDisconnected tells the input's owning node about a removed wire,
// if its body cares.
func (p *Patch) notifyDisconnected(in *Knob) {
	if obs, ok := p.observer(in); ok {
		obs.InputDisconnected(in)
	}
}

func (p *Patch) observer(in *Knob) (ConnectionObserver, bool) {
	n, ok := p.nodes[in.node]
	if !ok || n.body == nil {
		return nil, false
	}
	obs, ok := n.body.(ConnectionObserver)
	return obs, ok
}

// =============================================================================
// Policies
// =============================================================================

// RejectSelfLoops is a [ConnectionPolicy] that vetoes wires from a node
// back into one of its own inputs. It is the editor default; embedders
// with feedback-capable graphs can install their own policy or none.
func RejectSelfLoops(p *Patch, out, in *Knob) error {
	if out.NodeID() == in.NodeID() {
		return errors.New("wire loops back into its own node")
	}
	return nil
}
