package patch

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// EnvelopeBodyHeight is the extra node height an envelope body reserves.
const EnvelopeBodyHeight = 64.0

// envelopeMarker is the side length of a breakpoint marker box.
const envelopeMarker = 6.0

var (
	// ErrPointIndex is returned by [EnvelopeBody.MovePoint] and
	// [EnvelopeBody.RemovePoint] for an out-of-range breakpoint index.
	ErrPointIndex = errors.New("breakpoint index out of range")

	// ErrEndpointRemoval is returned by [EnvelopeBody.RemovePoint] when
	// removal would leave fewer than two breakpoints. An envelope always
	// spans its full domain.
	ErrEndpointRemoval = errors.New("envelope needs at least two breakpoints")
)

// EnvelopeBody is a piecewise-linear curve editor living inside a node:
// the concrete content kind shipped with the editor, and the reference
// for writing others. Breakpoints live on the unit square, stay sorted by
// x, and values are clamped to [0, 1].
//
// The body implements [ConnectionObserver]: while the node's first input
// is wired, the curve is driven externally and renders dimmed.
type EnvelopeBody struct {
	points []Point
	driven bool
}

// NewEnvelopeBody creates an envelope with the identity ramp: a
// breakpoint at (0, 0) and one at (1, 1).
func NewEnvelopeBody() *EnvelopeBody {
	return &EnvelopeBody{points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
}

// NewEnvelopeNode creates a node in p carrying an envelope body with one
// input, one output, and a height fitted to its content.
func NewEnvelopeNode(p *Patch, name string) *Node {
	n := p.NewNode(name)
	n.AddInput("gate")
	n.AddOutput("level")
	n.SetBody(NewEnvelopeBody())
	n.FitToKnobs()
	return n
}

// Height returns [EnvelopeBodyHeight].
func (b *EnvelopeBody) Height() float64 { return EnvelopeBodyHeight }

// Points returns a copy of the breakpoints in x order.
func (b *EnvelopeBody) Points() []Point { return slices.Clone(b.points) }

// Driven reports whether the envelope is currently fed by a wire.
func (b *EnvelopeBody) Driven() bool { return b.driven }

// clamp01 clamps v to the unit interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AddPoint inserts a breakpoint at (x, y), clamped to the unit square,
// and returns its index in the sorted list.
func (b *EnvelopeBody) AddPoint(x, y float64) int {
	pt := Point{X: clamp01(x), Y: clamp01(y)}
	i := sort.Search(len(b.points), func(i int) bool { return b.points[i].X > pt.X })
	b.points = slices.Insert(b.points, i, pt)
	return i
}

// MovePoint moves breakpoint i to (x, y). The x value is clamped between
// the neighboring breakpoints so the list stays sorted, and both
// coordinates are clamped to the unit square.
func (b *EnvelopeBody) MovePoint(i int, x, y float64) error {
	if i < 0 || i >= len(b.points) {
		return fmt.Errorf("move breakpoint %d: %w", i, ErrPointIndex)
	}
	lo, hi := 0.0, 1.0
	if i > 0 {
		lo = b.points[i-1].X
	}
	if i < len(b.points)-1 {
		hi = b.points[i+1].X
	}
	x = clamp01(x)
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	b.points[i] = Point{X: x, Y: clamp01(y)}
	return nil
}

// RemovePoint deletes breakpoint i. The envelope keeps at least two
// breakpoints so it always spans the domain.
func (b *EnvelopeBody) RemovePoint(i int) error {
	if i < 0 || i >= len(b.points) {
		return fmt.Errorf("remove breakpoint %d: %w", i, ErrPointIndex)
	}
	if len(b.points) <= 2 {
		return ErrEndpointRemoval
	}
	b.points = slices.Delete(b.points, i, i+1)
	return nil
}

// SetPoints replaces all breakpoints, clamping to the unit square and
// sorting by x. At least two points are required.
func (b *EnvelopeBody) SetPoints(pts []Point) error {
	if len(pts) < 2 {
		return ErrEndpointRemoval
	}
	clamped := make([]Point, len(pts))
	for i, pt := range pts {
		clamped[i] = Point{X: clamp01(pt.X), Y: clamp01(pt.Y)}
	}
	sort.SliceStable(clamped, func(i, j int) bool { return clamped[i].X < clamped[j].X })
	b.points = clamped
	return nil
}

// ValueAt evaluates the curve at x by linear interpolation between the
// surrounding breakpoints. Outside the outermost breakpoints the curve
// holds their values.
func (b *EnvelopeBody) ValueAt(x float64) float64 {
	x = clamp01(x)
	if x <= b.points[0].X {
		return b.points[0].Y
	}
	last := b.points[len(b.points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(b.points); i++ {
		p0, p1 := b.points[i-1], b.points[i]
		if x > p1.X {
			continue
		}
		if p1.X == p0.X {
			return p1.Y
		}
		t := (x - p0.X) / (p1.X - p0.X)
		return p0.Y + t*(p1.Y-p0.Y)
	}
	return last.Y
}

// InputConnected marks the envelope as externally driven.
func (b *EnvelopeBody) InputConnected(*Knob) { b.driven = true }

// InputDisconnected returns the envelope to local editing.
func (b *EnvelopeBody) InputDisconnected(*Knob) { b.driven = false }

// Render draws the curve area and one marker box per breakpoint, mapped
// from the unit square into r. Marker y grows downward on canvas, so the
// curve's 1 is the top of the body area. A driven envelope renders its
// markers in the base body style instead of the knob style, visually
// receding behind the wire that controls it.
func (b *EnvelopeBody) Render(s Surface, th *Theme, r Rect) error {
	area := r.Inset(knobInset)
	if area.Width <= 0 || area.Height <= 0 {
		return nil
	}
	if err := s.LabeledBox(area, "", BoxStyle{Border: th.Body.Text}); err != nil {
		return fmt.Errorf("envelope area: %w", err)
	}

	marker := th.Knob
	if b.driven {
		marker = th.Body
	}
	for i, pt := range b.points {
		mx := area.X + pt.X*(area.Width-envelopeMarker)
		my := area.Y + (1-pt.Y)*(area.Height-envelopeMarker)
		box := Rect{X: mx, Y: my, Width: envelopeMarker, Height: envelopeMarker}
		if err := s.LabeledBox(box, "", marker); err != nil {
			return fmt.Errorf("envelope breakpoint %d: %w", i, err)
		}
	}
	return nil
}

var _ ConnectionObserver = (*EnvelopeBody)(nil)
