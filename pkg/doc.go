// Package pkg provides the core libraries for Patchboard node-graph editing.
//
// # Overview
//
// Patchboard edits patches: graphs of nodes (boxes with named input and
// output knobs) joined by wires, in the style of modular synth and
// dataflow editors. The pkg directory is organized into four main areas:
//
//  1. [patch] - Domain logic (nodes, knobs, wires, geometry, themed rendering)
//  2. [history] - Undo/redo over one-shot and staged editing actions
//  3. [session] - Documents and their JSON persistence
//  4. [render] - Image export sinks (SVG, PNG, DOT, Graphviz layout)
//
// # Architecture
//
// The typical data flow through Patchboard:
//
//	Stored Document (JSON)
//	         ↓
//	    [session] package (load into a Document)
//	         ↓
//	    [patch] package (edit nodes and wires via actions)
//	         ↓
//	    [history] package (undo/redo of those actions)
//	         ↓
//	    [render] package (export) or a terminal surface (interactive)
//
// # Quick Start
//
// Build a patch, wire it, and export an SVG:
//
//	import (
//	    "github.com/tessvane/patchboard/pkg/patch"
//	    "github.com/tessvane/patchboard/pkg/render"
//	)
//
//	// 1. Build the graph
//	p := patch.New()
//	lfo := p.NewNode("lfo")
//	out := lfo.AddOutput("out")
//	vca := p.NewNode("vca")
//	in := vca.AddInput("gain")
//	vca.MoveTo(240, 0)
//
//	// 2. Wire it
//	if err := p.Connect(out, in); err != nil {
//	    log.Fatal(err)
//	}
//
//	// 3. Export
//	data, _ := render.Export(p, render.FormatSVG, render.Options{})
//	os.WriteFile("patch.svg", data, 0o644)
//
// # Main Packages
//
// ## Domain Logic
//
// [patch] - The patch graph: nodes, knobs, wires, canvas geometry, and
// themed rendering onto any [patch.Surface]. Editing runs through action
// types (connect, move, resize, add, remove, rename) that carry their own
// undo, so hosts stay a thin dispatch layer.
//
// [history] - Bounded undo/redo stacks over [history.Action]. Staged
// actions (drag-like gestures) enter the history only when they commit.
//
// ## Persistence
//
// [session] - Documents pair a patch with identity and timestamps.
// [session.FileStore] persists them as JSON files in a data directory;
// node snippets support clipboard copy/paste across sessions.
//
// ## Visualization
//
// [render] - Export sinks sharing one geometry: SVG markup, rasterized
// PNG, Graphviz DOT source, and an auto-laid-out SVG computed by a
// bundled Graphviz. [render.Recorder] captures draw calls for tests.
//
// ## Instrumentation
//
// [observability] - Hook interfaces for gesture, graph, and store events,
// with no-op defaults. Register implementations at startup; the libraries
// stay free of backend dependencies.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Common Workflows
//
// Make an edit undoable:
//
//	act := patch.NewRemoveNodeAction(p, id)
//	if err := act.Do(); err != nil {
//	    return err
//	}
//	hist.Push(act)
//
// Run a drag gesture:
//
//	move := patch.NewMoveAction(p, id)
//	move.Begin()
//	move.MoveTo(x, y) // repeatedly, as the pointer moves
//	hist.Finish(move) // or move.Cancel() first to roll back
//
// Persist a document:
//
//	doc := session.NewDocument("drone")
//	doc.Patch = p
//	store, _ := session.NewFileStore(dir)
//	err := store.Save(ctx, doc)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/patch/...     # Specific package
//	go test -run Example        # Examples only
//
// [patch]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/patch
// [history]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/history
// [session]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/session
// [render]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/render
// [observability]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/buildinfo
// [patch.Surface]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/patch#Surface
// [history.Action]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/history#Action
// [session.FileStore]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/session#FileStore
// [render.Recorder]: https://pkg.go.dev/github.com/tessvane/patchboard/pkg/render#Recorder
package pkg
