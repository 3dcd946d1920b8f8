package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tessvane/patchboard/pkg/patch"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Body kinds. Only kinds listed here round-trip through the codec.
const (
	BodyEnvelope = "envelope"
)

// =============================================================================
// Document - On-Disk Form
// =============================================================================

// DocumentJSON is the on-disk form of a [Document].
type DocumentJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Patch     PatchJSON `json:"patch"`
}

// =============================================================================
// Patch - Canonical Serialization Format
// =============================================================================

// PatchJSON is the canonical serialization format for patches.
//
// The format is human-readable and designed for round-trip fidelity:
// save → load produces a patch with the same nodes, knobs, wires, and
// stacking order.
type PatchJSON struct {
	Nodes []NodeJSON `json:"nodes"`
	Wires []WireJSON `json:"wires"`
}

// NodeJSON carries one node with its position, knobs, and body.
type NodeJSON struct {
	ID      string     `json:"id"`
	Name    string     `json:"name,omitempty"`
	Rect    patch.Rect `json:"rect"`
	Inputs  []PortJSON `json:"inputs,omitempty"`
	Outputs []PortJSON `json:"outputs,omitempty"`
	Body    *BodyJSON  `json:"body,omitempty"`
}

// PortJSON carries one knob. Direction and index are implied by the list
// the port appears in.
type PortJSON struct {
	Name string `json:"name"`
}

// WireJSON is one connection, referencing its two knobs the same way the
// live patch does.
type WireJSON struct {
	From patch.KnobRef `json:"from"` // output end
	To   patch.KnobRef `json:"to"`   // input end
}

// BodyJSON carries a node body by kind. Bodies the codec does not know
// are dropped on save, so a document never holds a kind it cannot load.
type BodyJSON struct {
	Kind   string        `json:"kind"`
	Points []patch.Point `json:"points,omitempty"`
}

// =============================================================================
// Patch ↔ JSON Conversion
// =============================================================================

// FromPatch converts a patch to its serialization format.
// Nodes are written in draw order so stacking survives a round trip.
func FromPatch(p *patch.Patch) PatchJSON {
	nodes := p.Nodes()
	conns := p.Connections()

	out := PatchJSON{
		Nodes: make([]NodeJSON, len(nodes)),
		Wires: make([]WireJSON, len(conns)),
	}

	for i, n := range nodes {
		out.Nodes[i] = nodeToJSON(n)
	}

	for i, c := range conns {
		out.Wires[i] = WireJSON{From: c.From, To: c.To}
	}

	return out
}

// ToPatch converts a serialized patch back to a live one.
// Returns an error if the structure violates patch constraints, wrapping
// [ErrInvalidDocument] for defects the patch itself cannot name, such as
// an unknown body kind or a wire to a missing knob.
//
// Wires are re-connected through [patch.Patch.Connect], so bodies that
// observe their inputs see the same notifications a live edit would
// produce.
func ToPatch(pj PatchJSON) (*patch.Patch, error) {
	p := patch.New()

	for _, nj := range pj.Nodes {
		n, err := p.AddNode(nj.ID, nj.Name)
		if err != nil {
			return nil, fmt.Errorf("add node %s: %w", nj.ID, err)
		}
		if err := ConfigureNode(n, nj); err != nil {
			return nil, err
		}
		n.MoveTo(nj.Rect.X, nj.Rect.Y)
	}

	for _, wj := range pj.Wires {
		from, ok := p.Knob(wj.From)
		if !ok {
			return nil, fmt.Errorf("%w: wire %s→%s names a missing knob", ErrInvalidDocument, wj.From.Node, wj.To.Node)
		}
		to, ok := p.Knob(wj.To)
		if !ok {
			return nil, fmt.Errorf("%w: wire %s→%s names a missing knob", ErrInvalidDocument, wj.From.Node, wj.To.Node)
		}
		if err := p.Connect(from, to); err != nil {
			return nil, fmt.Errorf("connect %s→%s: %w", wj.From.Node, wj.To.Node, err)
		}
	}

	return p, nil
}

// ConfigureNode applies a serialized node's knobs, body, and size to a
// live node, in that order so the size clamp sees the final knob rows.
// The node's position is left alone; callers place it.
func ConfigureNode(n *patch.Node, nj NodeJSON) error {
	for _, port := range nj.Inputs {
		n.AddInput(port.Name)
	}
	for _, port := range nj.Outputs {
		n.AddOutput(port.Name)
	}
	if err := bodyFromJSON(n, nj.Body); err != nil {
		return fmt.Errorf("node %s: %w", n.ID(), err)
	}
	n.Resize(nj.Rect.Width, nj.Rect.Height)
	return nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

func nodeToJSON(n *patch.Node) NodeJSON {
	nj := NodeJSON{
		ID:   n.ID(),
		Name: n.Name(),
		Rect: n.Rect(),
		Body: bodyToJSON(n.Body()),
	}
	for _, k := range n.Inputs() {
		nj.Inputs = append(nj.Inputs, PortJSON{Name: k.Name()})
	}
	for _, k := range n.Outputs() {
		nj.Outputs = append(nj.Outputs, PortJSON{Name: k.Name()})
	}
	return nj
}

// bodyToJSON converts a body to its serialized form, or nil for bodies
// this package does not know how to persist.
func bodyToJSON(b patch.Body) *BodyJSON {
	switch body := b.(type) {
	case *patch.EnvelopeBody:
		return &BodyJSON{Kind: BodyEnvelope, Points: body.Points()}
	default:
		return nil
	}
}

func bodyFromJSON(n *patch.Node, bj *BodyJSON) error {
	if bj == nil {
		return nil
	}
	switch bj.Kind {
	case BodyEnvelope:
		b := patch.NewEnvelopeBody()
		if len(bj.Points) > 0 {
			if err := b.SetPoints(bj.Points); err != nil {
				return fmt.Errorf("envelope points: %w", err)
			}
		}
		n.SetBody(b)
		return nil
	default:
		return fmt.Errorf("%w: unknown body kind %q", ErrInvalidDocument, bj.Kind)
	}
}

func fromDocument(d *Document) DocumentJSON {
	return DocumentJSON{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Patch:     FromPatch(d.Patch),
	}
}

func toDocument(dj DocumentJSON) (*Document, error) {
	p, err := ToPatch(dj.Patch)
	if err != nil {
		return nil, err
	}
	return &Document{
		ID:        dj.ID,
		Name:      dj.Name,
		CreatedAt: dj.CreatedAt,
		UpdatedAt: dj.UpdatedAt,
		Patch:     p,
	}, nil
}
