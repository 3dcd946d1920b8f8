// Package session persists patches as named documents.
//
// # Overview
//
// A [Document] wraps a [patch.Patch] with identity and timestamps so a
// patch can be saved, listed, and reopened across editing sessions. The
// package provides:
//
//   - A JSON codec for whole documents ([MarshalDocument], [ReadDocument])
//     and for bare patches ([FromPatch], [ToPatch])
//   - A [Store] interface with a file-backed implementation ([FileStore])
//     that keeps one JSON file per document under the user data dir
//
// # Document Format
//
// Documents serialize to human-readable JSON designed for round-trip
// fidelity: save → load produces a patch with the same nodes, knobs,
// wires, and stacking order. Nodes are written in draw order; wires
// reference their knobs by node ID, direction, and index, the same way
// the live patch does. Connection policies are behavior, not data, and
// are reattached by the host after load.
//
// # Usage
//
// Open the default store and save the current patch:
//
//	store, err := session.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	doc := session.NewDocument("drone")
//	doc.Patch = p
//	if err := store.Save(ctx, doc); err != nil {
//	    return err
//	}
//
// Reopen it later by name:
//
//	doc, err := store.FindByName(ctx, "drone")
//
// [patch.Patch]: github.com/tessvane/patchboard/pkg/patch
package session
