package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessvane/patchboard/pkg/patch"
)

// Recorder is a Surface that captures the draw call stream as readable
// op lines instead of pixels. Hosts use it to snapshot what a render
// pass would draw, and tests assert on the recorded ops.
//
// The zero value is ready to use.
type Recorder struct {
	ops []string

	textColors  []lipgloss.Color
	labelWidths []float64
	groupDepth  int
}

var _ patch.Surface = (*Recorder)(nil)

// Ops returns the recorded op lines in draw order.
func (r *Recorder) Ops() []string { return r.ops }

// Balanced reports whether every group and style push was matched by its
// end or pop. An unbalanced recorder after a render pass means the
// renderer broke the surface contract.
func (r *Recorder) Balanced() bool {
	return r.groupDepth == 0 && len(r.textColors) == 0 && len(r.labelWidths) == 0
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.textColors = r.textColors[:0]
	r.labelWidths = r.labelWidths[:0]
	r.groupDepth = 0
}

func (r *Recorder) record(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *Recorder) LabeledBox(rect patch.Rect, label string, st patch.BoxStyle) error {
	r.record("box %g,%g %gx%g %q", rect.X, rect.Y, rect.Width, rect.Height, label)
	return nil
}

func (r *Recorder) BeginVertical(rect patch.Rect) {
	r.record("vgroup %g,%g %gx%g", rect.X, rect.Y, rect.Width, rect.Height)
	r.groupDepth++
}

func (r *Recorder) EndVertical() {
	r.record("end")
	r.groupDepth--
}

func (r *Recorder) BeginHorizontal(rect patch.Rect) {
	r.record("hgroup %g,%g %gx%g", rect.X, rect.Y, rect.Width, rect.Height)
	r.groupDepth++
}

func (r *Recorder) EndHorizontal() {
	r.record("end")
	r.groupDepth--
}

func (r *Recorder) Spacer(w float64) {
	r.record("spacer %g", w)
}

func (r *Recorder) PushTextColor(c lipgloss.Color) {
	r.record("pushcolor %s", c)
	r.textColors = append(r.textColors, c)
}

func (r *Recorder) PopTextColor() {
	r.record("popcolor")
	r.textColors = r.textColors[:len(r.textColors)-1]
}

func (r *Recorder) PushLabelWidth(w float64) {
	r.record("pushwidth %g", w)
	r.labelWidths = append(r.labelWidths, w)
}

func (r *Recorder) PopLabelWidth() {
	r.record("popwidth")
	r.labelWidths = r.labelWidths[:len(r.labelWidths)-1]
}
