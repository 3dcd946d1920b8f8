package patch

import "github.com/charmbracelet/lipgloss"

// BoxStyle describes how a [Surface.LabeledBox] call should be painted.
// Zero-value colors leave the corresponding part unpainted, so a style
// with only Text set renders a plain label and a style with only Border
// set renders an empty outline.
type BoxStyle struct {
	Fill   lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
}

// Surface is the immediate-mode drawing target nodes render onto.
// The core issues calls in a fixed order each frame and retains nothing
// between frames; implementations own all pixels, cells, or markup.
//
// Group calls bracket related boxes: a node brackets its whole frame in a
// vertical group and each knob row in a horizontal group. Surfaces that
// emit structured output (SVG groups, debug recordings) use the brackets;
// pixel and cell surfaces may ignore them.
//
// The push/pop pairs scope style overrides. A pushed text color replaces
// the Text of every BoxStyle until popped; a pushed label width truncates
// labels to that many canvas units until popped. Callers must pop exactly
// what they pushed, popping on all paths including failures.
type Surface interface {
	// LabeledBox draws rectangle r painted per st, with label centered
	// inside it when non-empty.
	LabeledBox(r Rect, label string, st BoxStyle) error

	// BeginVertical opens a vertical group covering r.
	BeginVertical(r Rect)
	// EndVertical closes the innermost vertical group.
	EndVertical()

	// BeginHorizontal opens a horizontal group covering r.
	BeginHorizontal(r Rect)
	// EndHorizontal closes the innermost horizontal group.
	EndHorizontal()

	// Spacer records w canvas units of deliberate empty space inside the
	// current group.
	Spacer(w float64)

	// PushTextColor overrides the text color of subsequent boxes.
	PushTextColor(c lipgloss.Color)
	// PopTextColor removes the most recent text color override.
	PopTextColor()

	// PushLabelWidth constrains subsequent labels to w canvas units.
	PushLabelWidth(w float64)
	// PopLabelWidth removes the most recent label width constraint.
	PopLabelWidth()
}
