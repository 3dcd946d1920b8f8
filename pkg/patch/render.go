package patch

import "fmt"

// Render draws the node onto the surface: the frame, the header, each
// knob row pairing input i with output i, and finally the body. A nil
// theme falls back to [DefaultTheme].
//
// The call order is fixed so every surface sees the same shape: frame
// first, then top to bottom inside a vertical group, with each knob row
// bracketed by a horizontal group. Body content draws inside a scoped
// style context; the overrides are popped even when the body fails, so a
// broken body never bleeds style into its siblings.
func (n *Node) Render(s Surface, th *Theme) error {
	if th == nil {
		th = DefaultTheme()
	}

	if err := s.LabeledBox(n.rect, "", th.Frame); err != nil {
		return fmt.Errorf("render node %s: %w", n.id, err)
	}

	s.BeginVertical(n.rect)
	defer s.EndVertical()

	if err := s.LabeledBox(n.HeaderRect(), n.name, th.Header); err != nil {
		return fmt.Errorf("render node %s header: %w", n.id, err)
	}

	for i := 0; i < n.Rows(); i++ {
		if err := n.renderRow(s, th, i); err != nil {
			return fmt.Errorf("render node %s row %d: %w", n.id, i, err)
		}
	}

	if n.body != nil {
		if err := n.renderBody(s, th); err != nil {
			return fmt.Errorf("render node %s body: %w", n.id, err)
		}
	}
	return nil
}

// renderRow draws knob row i: the input half on the left, the output
// half on the right, and a spacer between them. Rows past the end of one
// list leave that half empty, so a node with three inputs and one output
// draws two rows with a blank right half.
func (n *Node) renderRow(s Surface, th *Theme, i int) error {
	row := n.KnobRowRect(i)
	half := row.Width / 2

	s.BeginHorizontal(row)
	defer s.EndHorizontal()

	if i < len(n.inputs) {
		left := Rect{X: row.X, Y: row.Y, Width: half, Height: row.Height}
		if err := n.inputs[i].render(s, th, left); err != nil {
			return err
		}
	} else {
		s.Spacer(half)
	}

	if i < len(n.outputs) {
		right := Rect{X: row.X + half, Y: row.Y, Width: half, Height: row.Height}
		return n.outputs[i].render(s, th, right)
	}
	s.Spacer(half)
	return nil
}

// renderBody draws the body inside its reserved rectangle with the body
// text color and a label width matching the usable body width pushed.
// Both are popped on every path, including body failure.
func (n *Node) renderBody(s Surface, th *Theme) error {
	r := n.BodyRect()

	s.PushTextColor(th.Body.Text)
	defer s.PopTextColor()
	s.PushLabelWidth(r.Width - 2*knobInset)
	defer s.PopLabelWidth()

	return n.body.Render(s, th, r)
}
