package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"

	"github.com/tessvane/patchboard/pkg/patch"
)

// PNG rasterizes the patch: canvas background, wires with arrowheads at
// the input end, then every node in patch order. The image covers the
// patch content plus padding, scaled by Options.Scale.
func PNG(p *patch.Patch, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	if p.NodeCount() == 0 {
		return nil, fmt.Errorf("render png: %w", ErrEmptyPatch)
	}

	frame := bounds(p, opts.Padding)
	th := opts.Theme

	dc := gg.NewContext(int(frame.Width*opts.Scale), int(frame.Height*opts.Scale))
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(-frame.X, -frame.Y)

	face, err := labelFace()
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	dc.SetFontFace(face)

	if th.Background != "" {
		dc.SetHexColor(string(th.Background))
		dc.Clear()
	}

	// Wires first so nodes draw over them.
	for _, w := range wires(p) {
		drawWire(dc, w, th.Wire)
	}

	s := &pngSurface{dc: dc}
	if err := renderNodes(p, s, th); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("render png: encode: %w", err)
	}

	opts.Logger.Debug("rendered png", "nodes", p.NodeCount(), "wires", p.ConnectionCount(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// drawWire draws a straight wire with a filled arrowhead at the input
// end.
func drawWire(dc *gg.Context, w wire, c lipgloss.Color) {
	if c == "" {
		return
	}
	dc.SetHexColor(string(c))
	dc.SetLineWidth(1.5)
	dc.DrawLine(w.from.X, w.from.Y, w.to.X, w.to.Y)
	dc.Stroke()

	dx := w.to.X - w.from.X
	dy := w.to.Y - w.from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	const arrowSize = 6.0
	const arrowAngle = 0.5 // radians

	dc.MoveTo(w.to.X, w.to.Y)
	dc.LineTo(w.to.X-arrowSize*dx+arrowSize*dy*arrowAngle, w.to.Y-arrowSize*dy-arrowSize*dx*arrowAngle)
	dc.LineTo(w.to.X-arrowSize*dx-arrowSize*dy*arrowAngle, w.to.Y-arrowSize*dy+arrowSize*dx*arrowAngle)
	dc.ClosePath()
	dc.Fill()
}

// pngSurface rasterizes patch draw calls onto a gg context. Groups carry
// no pixels, so only the boxes and labels touch the canvas.
type pngSurface struct {
	dc *gg.Context

	textColors  []lipgloss.Color
	labelWidths []float64
}

var _ patch.Surface = (*pngSurface)(nil)

func (s *pngSurface) LabeledBox(r patch.Rect, label string, st patch.BoxStyle) error {
	if st.Fill != "" {
		s.dc.SetHexColor(string(st.Fill))
		s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		s.dc.Fill()
	}
	if st.Border != "" {
		s.dc.SetHexColor(string(st.Border))
		s.dc.SetLineWidth(1.0)
		s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		s.dc.Stroke()
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
	s.dc.SetHexColor(string(c))
	s.dc.DrawStringAnchored(label, r.X+r.Width/2, r.Y+r.Height/2, 0.5, 0.35)
	return nil
}

func (s *pngSurface) BeginVertical(r patch.Rect) {}

func (s *pngSurface) EndVertical() {}

func (s *pngSurface) BeginHorizontal(r patch.Rect) {}

func (s *pngSurface) EndHorizontal() {}

func (s *pngSurface) Spacer(w float64) {}

func (s *pngSurface) PushTextColor(c lipgloss.Color) {
	s.textColors = append(s.textColors, c)
}

func (s *pngSurface) PopTextColor() {
	s.textColors = s.textColors[:len(s.textColors)-1]
}

func (s *pngSurface) PushLabelWidth(w float64) {
	s.labelWidths = append(s.labelWidths, w)
}

func (s *pngSurface) PopLabelWidth() {
	s.labelWidths = s.labelWidths[:len(s.labelWidths)-1]
}

func (s *pngSurface) labelWidth(boxWidth float64) float64 {
	w := boxWidth
	if len(s.labelWidths) > 0 && s.labelWidths[len(s.labelWidths)-1] < w {
		w = s.labelWidths[len(s.labelWidths)-1]
	}
	return w
}
