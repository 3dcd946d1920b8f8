package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tessvane/patchboard/pkg/patch"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Sinks
// =============================================================================

const (
	// DefaultPadding is the canvas margin around the patch content, in
	// canvas units.
	DefaultPadding = 16.0

	// DefaultScale is the PNG pixel scale factor (2x for high-DPI output).
	DefaultScale = 2.0
)

// Format constants for export formats. FormatGraphvizSVG runs the patch
// through Graphviz layout instead of using the stored node positions.
const (
	FormatSVG         = "svg"
	FormatPNG         = "png"
	FormatDOT         = "dot"
	FormatGraphvizSVG = "gv-svg"
)

// ValidFormats is the set of supported export formats.
var ValidFormats = map[string]bool{
	FormatSVG:         true,
	FormatPNG:         true,
	FormatDOT:         true,
	FormatGraphvizSVG: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot, gv-svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Export Configuration
// =============================================================================

// Options configures patch export. The zero value is usable: every sink
// calls [Options.ValidateAndSetDefaults] before rendering.
type Options struct {
	// Theme selects the palette. Nil means [patch.DefaultTheme].
	Theme *patch.Theme

	// Padding is the margin around the patch bounding box in canvas units.
	Padding float64

	// Scale is the PNG pixel scale factor.
	Scale float64

	// Logger receives per-sink debug output. Nil discards.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults applies defaults for every unset field. It is
// idempotent, so sinks call it unconditionally.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %v", o.Padding)
	}
	if o.Scale < 0 {
		return fmt.Errorf("scale must be > 0, got %v", o.Scale)
	}
	if o.Theme == nil {
		o.Theme = patch.DefaultTheme()
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
