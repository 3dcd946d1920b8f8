package patch

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme collects the styles a patch renders with. Render calls take the
// theme as an explicit handle, so two surfaces can draw the same patch
// with different themes in the same process.
//
// All colors are hex strings wrapped in [lipgloss.Color]: terminals map
// them to the nearest profile color, and the SVG and PNG sinks use them
// verbatim.
type Theme struct {
	Name string

	// Background fills the canvas behind all nodes.
	Background lipgloss.Color

	// Frame outlines a node's full rectangle.
	Frame BoxStyle
	// Header paints the title bar at the top of a node.
	Header BoxStyle
	// Body is the base style for node body content.
	Body BoxStyle

	// Knob paints an unconnected connector handle, KnobConnected a
	// handle with a live wire, and KnobLabel the name beside a handle.
	Knob          BoxStyle
	KnobConnected BoxStyle
	KnobLabel     BoxStyle

	// Wire is the color of connection wires between knobs.
	Wire lipgloss.Color

	// Selection outlines the node or knob the editor has focused.
	Selection lipgloss.Color
}

var (
	defaultTheme     *Theme
	defaultThemeOnce sync.Once
)

// DefaultTheme returns the process-wide default theme, derived once on
// first use and shared by every caller afterwards. The theme is never
// torn down; callers that need different styling build their own Theme
// and pass it explicitly.
func DefaultTheme() *Theme {
	defaultThemeOnce.Do(func() {
		var (
			ink    = lipgloss.Color("#c9d1d9") // Soft white - labels, borders
			accent = lipgloss.Color("#2f81f7") // Blue - headers, wires
			panel  = lipgloss.Color("#161b22") // Near-black - fills
			canvas = lipgloss.Color("#0d1117") // Background
			knob   = lipgloss.Color("#8b949e") // Gray - idle handles
			live   = lipgloss.Color("#3fb950") // Green - connected handles
			focus  = lipgloss.Color("#d29922") // Amber - selection
		)
		defaultTheme = &Theme{
			Name:       "slate",
			Background: canvas,
			Frame:      BoxStyle{Fill: panel, Border: ink},
			Header:     BoxStyle{Fill: accent, Text: panel},
			Body:       BoxStyle{Text: ink},
			Knob:       BoxStyle{Fill: knob, Border: knob},
			KnobConnected: BoxStyle{
				Fill:   live,
				Border: live,
			},
			KnobLabel: BoxStyle{Text: ink},
			Wire:      accent,
			Selection: focus,
		}
	})
	return defaultTheme
}
