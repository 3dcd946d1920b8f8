package render

import (
	"errors"
	"fmt"

	"github.com/tessvane/patchboard/pkg/patch"
)

// ErrEmptyPatch is returned by the image sinks when the patch holds no
// nodes: there is nothing to frame.
var ErrEmptyPatch = errors.New("patch has no nodes")

// Export renders the patch in the given format. It is the single entry
// point the CLI dispatches on; callers wanting one specific sink use
// [SVG], [PNG], or [ToDOT] directly.
func Export(p *patch.Patch, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return SVG(p, opts)
	case FormatPNG:
		return PNG(p, opts)
	case FormatGraphvizSVG:
		return GraphvizSVG(ToDOT(p))
	default:
		return []byte(ToDOT(p)), nil
	}
}

// bounds returns the canvas rectangle framing every node plus the margin.
func bounds(p *patch.Patch, pad float64) patch.Rect {
	nodes := p.Nodes()
	r := nodes[0].Rect()
	minX, minY := r.X, r.Y
	maxX, maxY := r.Right(), r.Bottom()
	for _, n := range nodes[1:] {
		r := n.Rect()
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Right() > maxX {
			maxX = r.Right()
		}
		if r.Bottom() > maxY {
			maxY = r.Bottom()
		}
	}
	return patch.Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// wire is a resolved connection with both anchors in canvas space.
type wire struct {
	from, to patch.Point
}

// wires resolves every connection to its knob anchors, output edge to
// input edge, in the patch's stable connection order.
func wires(p *patch.Patch) []wire {
	conns := p.Connections()
	ws := make([]wire, 0, len(conns))
	for _, c := range conns {
		out, okOut := p.Knob(c.From)
		in, okIn := p.Knob(c.To)
		if !okOut || !okIn {
			continue
		}
		src, okSrc := p.Node(out.NodeID())
		dst, okDst := p.Node(in.NodeID())
		if !okSrc || !okDst {
			continue
		}
		ws = append(ws, wire{from: src.KnobAnchor(out), to: dst.KnobAnchor(in)})
	}
	return ws
}

// fitLabel truncates a label to the given width in canvas units, using
// the monospace advance the sinks draw with. Truncation keeps the front
// of the label and marks the cut.
func fitLabel(label string, width float64) string {
	if width <= 0 {
		return ""
	}
	limit := int(width / charWidth)
	if limit < 1 {
		return ""
	}
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// renderNodes draws every node onto the surface in patch order.
func renderNodes(p *patch.Patch, s patch.Surface, th *patch.Theme) error {
	for _, n := range p.Nodes() {
		if err := n.Render(s, th); err != nil {
			return fmt.Errorf("render patch: %w", err)
		}
	}
	return nil
}
