package patch

// Layout constants shared by every node. All values are canvas units.
const (
	// HeaderHeight is the height of the title bar drawn at the top of a node.
	HeaderHeight = 24.0

	// KnobHeight is the height of a single knob row.
	KnobHeight = 24.0

	// KnobSpacing is the vertical gap between consecutive knob rows.
	KnobSpacing = 4.0

	// FooterHeight is the padding below the last knob row (and below the
	// body, when present).
	FooterHeight = HeaderHeight / 2

	// MinNodeWidth is the narrowest a node can be resized to.
	MinNodeWidth = 100.0

	// DefaultNodeWidth and DefaultNodeHeight are the size newly created
	// nodes start at, before any call to [Node.FitToKnobs].
	DefaultNodeWidth  = 140.0
	DefaultNodeHeight = 110.0
)

// Knob handle geometry inside a row.
const (
	// knobHandle is the side length of the square connector handle.
	knobHandle = 8.0

	// knobInset is the horizontal gap between the node border and a handle,
	// and between a handle and its label.
	knobInset = 6.0
)

// fitHeight computes the minimum node height for the given knob row count
// and extra body height. Nodes with no knobs still reserve one row so the
// frame never collapses to a bare header.
func fitHeight(rows int, bodyHeight float64) float64 {
	if rows < 1 {
		rows = 1
	}
	h := HeaderHeight + float64(rows)*KnobHeight + float64(rows-1)*KnobSpacing + FooterHeight
	if bodyHeight > 0 {
		h += bodyHeight
	}
	return h
}
