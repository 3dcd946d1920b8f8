package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessvane/patchboard/pkg/patch"
)

// SVG renders the patch as a standalone SVG document: canvas background,
// wires underneath, then every node in patch order. The frame is sized to
// the patch content plus the configured padding.
func SVG(p *patch.Patch, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	if p.NodeCount() == 0 {
		return nil, fmt.Errorf("render svg: %w", ErrEmptyPatch)
	}

	frame := bounds(p, opts.Padding)
	th := opts.Theme

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frame.X, frame.Y, frame.Width, frame.Height, frame.Width, frame.Height)

	if th.Background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			frame.X, frame.Y, frame.Width, frame.Height, th.Background)
	}

	for _, w := range wires(p) {
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`+"\n",
			w.from.X, w.from.Y, w.to.X, w.to.Y, th.Wire)
	}

	s := &svgSurface{buf: &buf}
	if err := renderNodes(p, s, th); err != nil {
		return nil, err
	}

	opts.Logger.Debug("rendered svg", "nodes", p.NodeCount(), "wires", p.ConnectionCount(), "bytes", buf.Len())

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// svgSurface emits patch draw calls as SVG elements. Groups become <g>
// elements so the node structure survives into the markup.
type svgSurface struct {
	buf *bytes.Buffer

	textColors  []lipgloss.Color
	labelWidths []float64
}

var _ patch.Surface = (*svgSurface)(nil)

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func (s *svgSurface) LabeledBox(r patch.Rect, label string, st patch.BoxStyle) error {
	if st.Fill != "" || st.Border != "" {
		fill := "none"
		if st.Fill != "" {
			fill = string(st.Fill)
		}
		stroke := ""
		if st.Border != "" {
			stroke = fmt.Sprintf(` stroke="%s"`, st.Border)
		}
		fmt.Fprintf(s.buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"%s/>`+"\n",
			r.X, r.Y, r.Width, r.Height, fill, stroke)
	}

	label = fitLabel(label, s.labelWidth(r.Width))
	if label == "" {
		return nil
	}
	c := st.Text
	if len(s.textColors) > 0 {
		c = s.textColors[len(s.textColors)-1]
	}
	if c == "" {
		return nil
	}
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	fmt.Fprintf(s.buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
		cx, cy, FontFamily, fontSize, c, svgEscaper.Replace(label))
	return nil
}

func (s *svgSurface) BeginVertical(r patch.Rect) { s.buf.WriteString("  <g>\n") }

func (s *svgSurface) EndVertical() { s.buf.WriteString("  </g>\n") }

func (s *svgSurface) BeginHorizontal(r patch.Rect) { s.buf.WriteString("  <g>\n") }

func (s *svgSurface) EndHorizontal() { s.buf.WriteString("  </g>\n") }

// Spacer is deliberate empty space; the markup needs no element for it.
func (s *svgSurface) Spacer(w float64) {}

func (s *svgSurface) PushTextColor(c lipgloss.Color) {
	s.textColors = append(s.textColors, c)
}

func (s *svgSurface) PopTextColor() {
	s.textColors = s.textColors[:len(s.textColors)-1]
}

func (s *svgSurface) PushLabelWidth(w float64) {
	s.labelWidths = append(s.labelWidths, w)
}

func (s *svgSurface) PopLabelWidth() {
	s.labelWidths = s.labelWidths[:len(s.labelWidths)-1]
}

// labelWidth returns the width available to a label inside a box: the
// box width, tightened by the innermost pushed constraint.
func (s *svgSurface) labelWidth(boxWidth float64) float64 {
	w := boxWidth
	if len(s.labelWidths) > 0 && s.labelWidths[len(s.labelWidths)-1] < w {
		w = s.labelWidths[len(s.labelWidths)-1]
	}
	return w
}
