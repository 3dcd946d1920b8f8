package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Editor hooks
	e := NoopEditorHooks{}
	e.OnActionStarted(ctx, "connect")
	e.OnActionCommitted(ctx, "connect", time.Second)
	e.OnActionAborted(ctx, "move node")
	e.OnUndo(ctx, "connect", nil)
	e.OnRedo(ctx, "connect", nil)

	// Graph hooks
	g := NoopGraphHooks{}
	g.OnConnect(ctx, "osc", "amp")
	g.OnDisconnect(ctx, "osc", "amp")
	g.OnNodeAdded(ctx, "osc")
	g.OnNodeRemoved(ctx, "osc")

	// Store hooks
	s := NoopStoreHooks{}
	s.OnSave(ctx, "doc-1", 1024, time.Second, nil)
	s.OnLoad(ctx, "doc-1", time.Second, nil)
	s.OnDelete(ctx, "doc-1", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Editor() should return NoopEditorHooks by default")
	}
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Graph() should return NoopGraphHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customEditor := &testEditorHooks{}
	SetEditorHooks(customEditor)
	if Editor() != customEditor {
		t.Error("SetEditorHooks should set custom hooks")
	}

	customGraph := &testGraphHooks{}
	SetGraphHooks(customGraph)
	if Graph() != customGraph {
		t.Error("SetGraphHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Reset() should restore NoopEditorHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEditorHooks{}
	SetEditorHooks(custom)

	// Setting nil should be ignored
	SetEditorHooks(nil)

	if Editor() != custom {
		t.Error("SetEditorHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingGraphHooks{}
	SetGraphHooks(rec)

	ctx := context.Background()
	Graph().OnConnect(ctx, "osc", "amp")
	Graph().OnNodeRemoved(ctx, "osc")

	want := []string{"connect osc amp", "remove osc"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

// Test implementations
type testEditorHooks struct{ NoopEditorHooks }
type testGraphHooks struct{ NoopGraphHooks }
type testStoreHooks struct{ NoopStoreHooks }

type recordingGraphHooks struct {
	NoopGraphHooks
	events []string
}

func (r *recordingGraphHooks) OnConnect(_ context.Context, from, to string) {
	r.events = append(r.events, "connect "+from+" "+to)
}

func (r *recordingGraphHooks) OnNodeRemoved(_ context.Context, id string) {
	r.events = append(r.events, "remove "+id)
}
