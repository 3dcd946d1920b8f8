package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessvane/patchboard/pkg/patch"
)

// Canvas units per terminal cell. A text cell is roughly twice as tall as
// it is wide, so the grid keeps node proportions close to the image sinks.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cell is one character of the grid with its colors. A zero rune renders
// as a blank; zero colors leave the terminal defaults.
type cell struct {
	r  rune
	fg lipgloss.Color
	bg lipgloss.Color
}

// termSurface renders a patch onto a grid of terminal cells. It implements
// [patch.Surface] by quantizing canvas rectangles to cells: full-size boxes
// get box-drawing borders, and boxes smaller than a cell (knob handles,
// envelope breakpoints) collapse to a single colored dot.
//
// The surface draws no canvas background; the terminal's own colors show
// through empty cells. The editor owns the draw order: wires first, then
// nodes back to front, then overlays.
type termSurface struct {
	cols, rows int
	cells      []cell

	// origin is the canvas coordinate of the top-left cell, moved by pans.
	originX, originY float64

	textColors  []lipgloss.Color
	labelWidths []float64
}

var _ patch.Surface = (*termSurface)(nil)

// newTermSurface creates a cleared grid of the given size.
func newTermSurface(cols, rows int) *termSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &termSurface{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// Size returns the grid dimensions in cells.
func (s *termSurface) Size() (cols, rows int) { return s.cols, s.rows }

// Resize recreates the grid at a new size, clearing it.
func (s *termSurface) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

// Clear blanks every cell, keeping the origin.
func (s *termSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

// SetOrigin sets the canvas coordinate of the top-left cell.
func (s *termSurface) SetOrigin(x, y float64) {
	s.originX, s.originY = x, y
}

// Origin returns the canvas coordinate of the top-left cell.
func (s *termSurface) Origin() (x, y float64) { return s.originX, s.originY }

// =============================================================================
// Coordinate Mapping
// =============================================================================

// CellAt maps a canvas point to the cell containing it. The result may
// lie outside the grid; drawing clips per cell.
func (s *termSurface) CellAt(x, y float64) (col, row int) {
	col = int(math.Floor((x - s.originX) / cellWidth))
	row = int(math.Floor((y - s.originY) / cellHeight))
	return col, row
}

// CellCenter maps grid coordinates to the canvas point at the middle of
// that cell, which is what cursor hit-testing probes with.
func (s *termSurface) CellCenter(col, row int) (x, y float64) {
	x = s.originX + (float64(col)+0.5)*cellWidth
	y = s.originY + (float64(row)+0.5)*cellHeight
	return x, y
}

// cellRect quantizes a canvas rectangle to a cell rectangle at least one
// cell in each dimension.
func (s *termSurface) cellRect(r patch.Rect) (col, row, w, h int) {
	col, row = s.CellAt(r.X, r.Y)
	right, bottom := s.CellAt(r.Right(), r.Bottom())
	w = max(right-col, 1)
	h = max(bottom-row, 1)
	return col, row, w, h
}

// =============================================================================
// Cell Writes
// =============================================================================

// SetCell writes one cell, clipping silently outside the grid. A zero fg
// keeps the color already in the cell, so overlays can recolor in place.
func (s *termSurface) SetCell(col, row int, r rune, fg lipgloss.Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	i := row*s.cols + col
	s.cells[i].r = r
	if fg != "" {
		s.cells[i].fg = fg
	}
}

// CellRune returns the rune at a grid position, 0 when blank or outside.
func (s *termSurface) CellRune(col, row int) rune {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return 0
	}
	return s.cells[row*s.cols+col].r
}

func (s *termSurface) fill(col, row, w, h int, bg lipgloss.Color) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
				continue
			}
			i := y*s.cols + x
			if s.cells[i].r == 0 {
				s.cells[i].r = ' '
			}
			s.cells[i].bg = bg
		}
	}
}

func (s *termSurface) text(col, row int, text string, fg lipgloss.Color) {
	for i, r := range []rune(text) {
		s.SetCell(col+i, row, r, fg)
	}
}

// =============================================================================
// patch.Surface
// =============================================================================

// LabeledBox draws the rectangle as bordered cells. Boxes a single cell
// in size become one dot; single-row boxes draw only fill and label.
func (s *termSurface) LabeledBox(r patch.Rect, label string, st patch.BoxStyle) error {
	col, row, w, h := s.cellRect(r)

	if w == 1 && h == 1 {
		s.renderDot(col, row, label, st)
		return nil
	}

	if st.Fill != "" {
		s.fill(col, row, w, h, st.Fill)
	}
	if st.Border != "" && h >= 2 {
		s.border(col, row, w, h, st.Border)
	}
	if label != "" {
		if c := s.textColor(st); c != "" {
			s.label(col, row, w, h, label, c)
		}
	}
	return nil
}

// renderDot paints a sub-cell box as a single rune: a handle dot when the
// style carries a fill or border, else the label's first rune.
func (s *termSurface) renderDot(col, row int, label string, st patch.BoxStyle) {
	switch {
	case st.Fill != "":
		s.SetCell(col, row, '●', st.Fill)
	case st.Border != "":
		s.SetCell(col, row, '○', st.Border)
	case label != "":
		if c := s.textColor(st); c != "" {
			s.SetCell(col, row, []rune(label)[0], c)
		}
	}
}

func (s *termSurface) border(col, row, w, h int, c lipgloss.Color) {
	right, bottom := col+w-1, row+h-1
	s.SetCell(col, row, '┌', c)
	s.SetCell(right, row, '┐', c)
	s.SetCell(col, bottom, '└', c)
	s.SetCell(right, bottom, '┘', c)
	for x := col + 1; x < right; x++ {
		s.SetCell(x, row, '─', c)
		s.SetCell(x, bottom, '─', c)
	}
	for y := row + 1; y < bottom; y++ {
		s.SetCell(col, y, '│', c)
		s.SetCell(right, y, '│', c)
	}
}

func (s *termSurface) label(col, row, w, h int, label string, c lipgloss.Color) {
	maxCells := w
	if w > 2 && h > 1 {
		maxCells = w - 2 // keep off the vertical borders
	}
	if lw := s.labelWidth(); lw > 0 {
		maxCells = min(maxCells, int(lw/cellWidth))
	}
	text := truncateLabel(label, maxCells)
	if text == "" {
		return
	}

	tCol := col + (w-len([]rune(text)))/2
	tRow := row + (h-1)/2
	s.text(tCol, tRow, text, c)
}

// truncateLabel fits a label into maxCells cells, marking cuts with an
// ellipsis.
func truncateLabel(label string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	runes := []rune(label)
	if len(runes) <= maxCells {
		return label
	}
	if maxCells == 1 {
		return "…"
	}
	return string(runes[:maxCells-1]) + "…"
}

// Groups order drawing but carry no state a cell grid needs.

func (s *termSurface) BeginVertical(r patch.Rect) {}

func (s *termSurface) EndVertical() {}

func (s *termSurface) BeginHorizontal(r patch.Rect) {}

func (s *termSurface) EndHorizontal() {}

func (s *termSurface) Spacer(w float64) {}

func (s *termSurface) PushTextColor(c lipgloss.Color) {
	s.textColors = append(s.textColors, c)
}

func (s *termSurface) PopTextColor() {
	s.textColors = s.textColors[:len(s.textColors)-1]
}

func (s *termSurface) PushLabelWidth(w float64) {
	s.labelWidths = append(s.labelWidths, w)
}

func (s *termSurface) PopLabelWidth() {
	s.labelWidths = s.labelWidths[:len(s.labelWidths)-1]
}

func (s *termSurface) textColor(st patch.BoxStyle) lipgloss.Color {
	if len(s.textColors) > 0 {
		return s.textColors[len(s.textColors)-1]
	}
	return st.Text
}

func (s *termSurface) labelWidth() float64 {
	if len(s.labelWidths) > 0 {
		return s.labelWidths[len(s.labelWidths)-1]
	}
	return 0
}

// =============================================================================
// Wires and Overlays
// =============================================================================

// DrawWire routes an orthogonal wire between two canvas points: out along
// the source row, a vertical run at the midpoint column, then into the
// target row.
func (s *termSurface) DrawWire(from, to patch.Point, c lipgloss.Color) {
	c0, r0 := s.CellAt(from.X, from.Y)
	c1, r1 := s.CellAt(to.X, to.Y)

	if r0 == r1 {
		s.hline(min(c0, c1)+1, max(c0, c1)-1, r0, c)
		return
	}

	mid := (c0 + c1) / 2
	if mid == c0 {
		// Degenerate horizontal room; bend right next to the source.
		mid = c0 + 1
	}
	s.hline(min(c0, mid)+1, max(c0, mid)-1, r0, c)
	s.vline(min(r0, r1)+1, max(r0, r1)-1, mid, c)
	s.SetCell(mid, r0, wireCorner(c0 < mid, r1 > r0), c)
	s.SetCell(mid, r1, wireCorner(c1 < mid, r1 < r0), c)
	s.hline(min(mid, c1)+1, max(mid, c1)-1, r1, c)
}

// wireCorner picks the box-drawing corner for a bend. fromLeft is whether
// the horizontal arm sits left of the bend, down whether the vertical arm
// goes below it.
func wireCorner(fromLeft, down bool) rune {
	switch {
	case fromLeft && down:
		return '┐'
	case fromLeft && !down:
		return '┘'
	case !fromLeft && down:
		return '┌'
	default:
		return '└'
	}
}

func (s *termSurface) hline(from, to, row int, c lipgloss.Color) {
	for x := from; x <= to; x++ {
		s.SetCell(x, row, '─', c)
	}
}

func (s *termSurface) vline(from, to, col int, c lipgloss.Color) {
	for y := from; y <= to; y++ {
		s.SetCell(col, y, '│', c)
	}
}

// OutlineRect recolors the border of a canvas rectangle, used for the
// selection highlight after nodes have drawn.
func (s *termSurface) OutlineRect(r patch.Rect, c lipgloss.Color) {
	col, row, w, h := s.cellRect(r)
	if w >= 2 && h >= 2 {
		s.border(col, row, w, h, c)
	}
}

// =============================================================================
// Output
// =============================================================================

// View renders the grid as styled terminal lines.
func (s *termSurface) View() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		s.renderRow(&b, row)
	}
	return b.String()
}

// Line returns one row as plain text without styling.
func (s *termSurface) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	runes := make([]rune, s.cols)
	for col := 0; col < s.cols; col++ {
		r := s.cells[row*s.cols+col].r
		if r == 0 {
			r = ' '
		}
		runes[col] = r
	}
	return string(runes)
}

// renderRow batches runs of identically styled cells into single style
// renders to keep the frame cheap.
func (s *termSurface) renderRow(b *strings.Builder, row int) {
	var run []rune
	var fg, bg lipgloss.Color

	flush := func() {
		if len(run) == 0 {
			return
		}
		text := string(run)
		if fg == "" && bg == "" {
			b.WriteString(text)
		} else {
			st := lipgloss.NewStyle()
			if fg != "" {
				st = st.Foreground(fg)
			}
			if bg != "" {
				st = st.Background(bg)
			}
			b.WriteString(st.Render(text))
		}
		run = run[:0]
	}

	for col := 0; col < s.cols; col++ {
		c := s.cells[row*s.cols+col]
		if c.r == 0 {
			c.r = ' '
			c.fg, c.bg = "", ""
		}
		if c.fg != fg || c.bg != bg {
			flush()
			fg, bg = c.fg, c.bg
		}
		run = append(run, c.r)
	}
	flush()
}
