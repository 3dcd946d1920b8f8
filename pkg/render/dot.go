package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tessvane/patchboard/pkg/patch"
)

// ToDOT converts a patch to Graphviz DOT. Nodes become record shapes
// whose cells mirror the knob lists, with a port per knob, so wires
// attach to the exact knob they leave from and land on. The resulting
// DOT renders with any Graphviz install, or in-process via
// [GraphvizSVG].
func ToDOT(p *patch.Patch) string {
	var buf bytes.Buffer
	buf.WriteString("digraph patch {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=record, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range p.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=\"%s\"];\n", n.ID(), recordLabel(n))
	}

	buf.WriteString("\n")
	for _, c := range p.Connections() {
		fmt.Fprintf(&buf, "  %q:o%d -> %q:i%d;\n", c.From.Node, c.From.Index, c.To.Node, c.To.Index)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// recordLabel builds the record layout for one node: the input cells,
// the name, then the output cells, stacked left to right under
// rankdir=LR.
func recordLabel(n *patch.Node) string {
	var parts []string
	if inputs := portCell(n.Inputs(), "i"); inputs != "" {
		parts = append(parts, inputs)
	}
	parts = append(parts, dotEscape(n.Name()))
	if outputs := portCell(n.Outputs(), "o"); outputs != "" {
		parts = append(parts, outputs)
	}
	return "{" + strings.Join(parts, "|") + "}"
}

// portCell renders one knob list as a stacked record cell with a port
// per knob ("<i0> gate|<i1> sync").
func portCell(knobs []*patch.Knob, prefix string) string {
	if len(knobs) == 0 {
		return ""
	}
	cells := make([]string, len(knobs))
	for i, k := range knobs {
		cells[i] = fmt.Sprintf("<%s%d> %s", prefix, i, dotEscape(k.Name()))
	}
	return "{" + strings.Join(cells, "|") + "}"
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"{", `\{`,
	"}", `\}`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
)

// dotEscape quotes the characters the record label syntax reserves.
func dotEscape(s string) string { return dotEscaper.Replace(s) }

// GraphvizSVG lays out and renders a DOT graph to SVG in-process.
// Returns the SVG bytes ready for display or saving next to the
// patch-faithful [SVG] output.
func GraphvizSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's point-based svg element into one
// with a zero-origin viewBox and pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
