package patch

// Body adds content to a node beyond the generic frame, header, and knob
// rows. Implementations reserve extra vertical space with Height and draw
// into it during [Node.Render].
//
// A body that also implements [ConnectionObserver] is notified when wires
// on its node's inputs change.
type Body interface {
	// Height returns the extra vertical space the body needs below the
	// knob rows, in canvas units. The value must stay constant between
	// knob or wire changes so [Node.FitToKnobs] is deterministic.
	Height() float64

	// Render draws the body content into r on the surface.
	Render(s Surface, th *Theme, r Rect) error
}

// ConnectionObserver is implemented by bodies that want to know when a
// wire on one of their node's inputs is made or removed. The patch checks
// for the capability on the input's owning node only; fan-out sources are
// not tracked and their owners are not notified.
type ConnectionObserver interface {
	InputConnected(k *Knob)
	InputDisconnected(k *Knob)
}

// Node is a single box on the patch canvas: a header with the display
// name, a column of knob rows, and optionally a body. Nodes are created
// through [Patch.NewNode] or [Patch.AddNode] and are owned by their
// patch; the node in turn owns its knobs.
type Node struct {
	id      string
	name    string
	rect    Rect
	inputs  []*Knob
	outputs []*Knob
	body    Body
}

// ID returns the node's stable identifier.
func (n *Node) ID() string { return n.id }

// Name returns the node's display name.
func (n *Node) Name() string { return n.name }

// SetName updates the node's display name.
func (n *Node) SetName(name string) { n.name = name }

// Rect returns the node's rectangle in canvas coordinates.
func (n *Node) Rect() Rect { return n.rect }

// MoveTo places the node's top-left corner at (x, y).
func (n *Node) MoveTo(x, y float64) {
	n.rect.X = x
	n.rect.Y = y
}

// Resize sets the node's size, clamped to [MinNodeWidth] and to the
// minimum height required by the current knob rows and body.
func (n *Node) Resize(width, height float64) {
	n.rect.Width = max(width, MinNodeWidth)
	n.rect.Height = max(height, n.MinHeight())
}

// Body returns the node's body, or nil for a plain node.
func (n *Node) Body() Body { return n.body }

// SetBody installs a body. Callers that change the body after knobs are
// laid out should follow up with [Node.FitToKnobs] since the body's
// height participates in the fit.
func (n *Node) SetBody(b Body) { n.body = b }

// AddInput appends an input knob with the given name and returns it.
func (n *Node) AddInput(name string) *Knob {
	k := &Knob{name: name, node: n.id, dir: DirectionInput, index: len(n.inputs)}
	n.inputs = append(n.inputs, k)
	return k
}

// AddOutput appends an output knob with the given name and returns it.
func (n *Node) AddOutput(name string) *Knob {
	k := &Knob{name: name, node: n.id, dir: DirectionOutput, index: len(n.outputs)}
	n.outputs = append(n.outputs, k)
	return k
}

// Input returns the input knob at index i and true, or nil and false when
// i is out of range.
func (n *Node) Input(i int) (*Knob, bool) {
	if i < 0 || i >= len(n.inputs) {
		return nil, false
	}
	return n.inputs[i], true
}

// Output returns the output knob at index i and true, or nil and false
// when i is out of range.
func (n *Node) Output(i int) (*Knob, bool) {
	if i < 0 || i >= len(n.outputs) {
		return nil, false
	}
	return n.outputs[i], true
}

// Inputs returns the node's input knobs in index order.
// The returned slice is a copy; the knobs are not.
func (n *Node) Inputs() []*Knob {
	out := make([]*Knob, len(n.inputs))
	copy(out, n.inputs)
	return out
}

// Outputs returns the node's output knobs in index order.
// The returned slice is a copy; the knobs are not.
func (n *Node) Outputs() []*Knob {
	out := make([]*Knob, len(n.outputs))
	copy(out, n.outputs)
	return out
}

// InputCount returns the number of input knobs.
func (n *Node) InputCount() int { return len(n.inputs) }

// OutputCount returns the number of output knobs.
func (n *Node) OutputCount() int { return len(n.outputs) }

// Rows returns the number of knob rows the node renders: one row per
// input/output pair, so max(inputs, outputs).
func (n *Node) Rows() int {
	return max(len(n.inputs), len(n.outputs))
}

// bodyHeight returns the body's extra height, or 0 without a body.
func (n *Node) bodyHeight() float64 {
	if n.body == nil {
		return 0
	}
	return n.body.Height()
}

// MinHeight returns the smallest height that fits the header, every knob
// row, the body, and the footer padding.
func (n *Node) MinHeight() float64 {
	return fitHeight(n.Rows(), n.bodyHeight())
}

// FitToKnobs resizes the node's height to exactly fit its knob rows and
// body. Call it after adding or removing knobs, or after installing a
// body; the width is left alone apart from the [MinNodeWidth] clamp.
// Repeated calls without a knob or body change are no-ops.
func (n *Node) FitToKnobs() {
	n.rect.Width = max(n.rect.Width, MinNodeWidth)
	n.rect.Height = n.MinHeight()
}

// =============================================================================
// Geometry Queries
// =============================================================================

// HeaderRect returns the title bar rectangle at the top of the node.
func (n *Node) HeaderRect() Rect {
	return Rect{X: n.rect.X, Y: n.rect.Y, Width: n.rect.Width, Height: HeaderHeight}
}

// HeaderBottom returns the canvas y coordinate of the header's bottom
// edge, where the first knob row starts.
func (n *Node) HeaderBottom() float64 { return n.rect.Y + HeaderHeight }

// KnobRowRect returns the rectangle of knob row i. Row 0 sits directly
// under the header; rows are valid for 0 <= i < [Node.Rows] but the
// geometry is computed for any i.
func (n *Node) KnobRowRect(i int) Rect {
	return Rect{
		X:      n.rect.X,
		Y:      n.HeaderBottom() + float64(i)*(KnobHeight+KnobSpacing),
		Width:  n.rect.Width,
		Height: KnobHeight,
	}
}

// BodyRect returns the rectangle reserved for the body, directly under
// the last knob row. The zero rect is returned for nodes without a body.
func (n *Node) BodyRect() Rect {
	if n.body == nil {
		return Rect{}
	}
	rows := n.Rows()
	if rows < 1 {
		rows = 1
	}
	last := n.KnobRowRect(rows - 1)
	return Rect{X: n.rect.X, Y: last.Bottom(), Width: n.rect.Width, Height: n.body.Height()}
}

// KnobAnchor returns the point on the node's edge where a wire attached
// to k visually starts or ends: the vertical center of the knob's row, on
// the left edge for inputs and the right edge for outputs.
func (n *Node) KnobAnchor(k *Knob) Point {
	row := n.KnobRowRect(k.index)
	if k.dir == DirectionInput {
		return Point{X: n.rect.X, Y: row.Y + row.Height/2}
	}
	return Point{X: n.rect.Right(), Y: row.Y + row.Height/2}
}

// Contains reports whether the canvas point (x, y) lies inside the node.
func (n *Node) Contains(x, y float64) bool { return n.rect.Contains(x, y) }

// KnobAt returns the knob whose half of a knob row contains (x, y), or
// nil when the point is outside every knob's area. Points in the left
// half of row i hit input i, points in the right half hit output i.
func (n *Node) KnobAt(x, y float64) *Knob {
	if !n.rect.Contains(x, y) {
		return nil
	}
	for i := 0; i < n.Rows(); i++ {
		row := n.KnobRowRect(i)
		if !row.Contains(x, y) {
			continue
		}
		if x < row.X+row.Width/2 {
			if i < len(n.inputs) {
				return n.inputs[i]
			}
			return nil
		}
		if i < len(n.outputs) {
			return n.outputs[i]
		}
		return nil
	}
	return nil
}
