// Package patch provides the node-graph data model at the heart of
// patchboard: nodes as resizable boxes, knobs as typed connection
// endpoints, and wires running from outputs to inputs.
//
// # Overview
//
// A [Patch] owns a set of [Node] values and the wires between their
// knobs. Each node renders as a header, a column of knob rows, and an
// optional [Body]; each [Knob] is either an input, which holds at most
// one source, or an output, which fans out freely. The package also
// carries the editor's undoable actions, which record gestures against
// the model using [KnobRef] identities rather than pointers.
//
// # Basic Usage
//
// Create a patch, add nodes, grow their knobs, and wire them up:
//
//	p := patch.New()
//	osc := p.NewNode("osc")
//	sig := osc.AddOutput("sig")
//	osc.FitToKnobs()
//
//	amp := p.NewNode("amp")
//	in := amp.AddInput("in")
//	amp.AddOutput("out")
//	amp.FitToKnobs()
//
//	if err := p.Connect(sig, in); err != nil {
//	    log.Fatal(err)
//	}
//
// [Patch.Connect] accepts its endpoints in either order and resolves
// which end is the output. Connecting to an input that already has a
// source displaces the old wire: the single slot always holds the most
// recent connection.
//
// # Layout
//
// [Node.FitToKnobs] sizes a node's height to exactly fit its content:
// the header, one row per input/output pair, the body's extra height,
// and the footer padding. The computation is deterministic, so fitting
// twice without a knob change is a no-op. Widths are free above
// [MinNodeWidth].
//
// # Rendering
//
// [Node.Render] walks the node's parts in a fixed order and draws them
// through the [Surface] interface, an immediate-mode target implemented
// by the terminal editor and the SVG and PNG sinks. Styling comes from a
// [Theme] passed explicitly to every render call; [DefaultTheme] is a
// process-wide handle derived once on first use.
//
// # Ownership
//
// The patch exclusively owns its nodes and each node its knobs. Knobs
// refer to their owner by node ID, and wires are stored as refs, so no
// back-pointers keep removed nodes alive. Refs held across edits resolve
// through [Patch.Knob] to the current knob or to nothing.
//
// # Policy
//
// The connection mechanism is deliberately neutral about graph shape:
// whether cycles or self-loops are legal is the embedding editor's call.
// Install a [ConnectionPolicy] with [Patch.SetPolicy] to veto proposed
// wires before they commit; [RejectSelfLoops] is the stock policy the
// editor installs.
//
// # Concurrency
//
// Patch instances are not safe for concurrent use. The editor drives all
// mutation and rendering from its single update loop, and nothing in
// this package locks.
package patch
