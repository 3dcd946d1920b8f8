// Package render exports patches as images and graphs.
//
// # Overview
//
// This package contains the export sinks that turn a [patch.Patch] into
// shareable artifacts. It provides:
//
//   - SVG export drawn with the patch's own theme ([SVG])
//   - PNG rasterization via fogleman/gg ([PNG])
//   - Graphviz DOT with per-knob record ports ([ToDOT], [GraphvizSVG])
//   - An op-recording surface for hosts and tests ([Recorder])
//
// Every sink consumes the core's Surface contract: the patch issues the
// draw calls, the sink decides what a box or a label becomes. The SVG
// and PNG sinks share one set of label metrics, so the same patch
// occupies the same canvas space in both.
//
// # Usage
//
// Configure an export with [Options] and pick a sink:
//
//	opts := render.Options{}
//	svg, err := render.SVG(p, opts)
//	png, err := render.PNG(p, opts)
//
// Or dispatch on a format name the way the CLI does:
//
//	out, err := render.Export(p, render.FormatPNG, opts)
//
// # DOT Output
//
// [ToDOT] flattens the patch into a left-to-right record graph: each
// node is a record with one port per knob, and each wire connects its
// exact output port to its exact input port. [GraphvizSVG] lays the
// result out in-process with goccy/go-graphviz; the DOT text also feeds
// any external Graphviz toolchain.
//
// [patch.Patch]: github.com/tessvane/patchboard/pkg/patch
package render
