package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/tessvane/patchboard/pkg/observability"
	"github.com/tessvane/patchboard/pkg/patch"
	"github.com/tessvane/patchboard/pkg/session"
)

// testEditor builds an editor over a fresh document with no store.
func testEditor(t *testing.T) editorModel {
	t.Helper()
	doc := session.NewDocument("bench")
	return newEditorModel(context.Background(), DefaultConfig(), patch.DefaultTheme(), nil, doc, newLogger(io.Discard, log.InfoLevel))
}

// key builds the KeyMsg a terminal would deliver for the given key name.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update and returns the resulting model.
func press(t *testing.T, m editorModel, keys ...string) editorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(editorModel)
	}
	return m
}

func TestEditorModeString(t *testing.T) {
	tests := []struct {
		mode editorMode
		want string
	}{
		{modeNormal, "NORMAL"},
		{modeConnect, "CONNECT"},
		{modeMove, "MOVE"},
		{modeResize, "RESIZE"},
		{modeName, "NAME"},
		{modeConfirm, "CONFIRM"},
		{modeHelp, "HELP"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("mode %d String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestKeyDelta(t *testing.T) {
	tests := []struct {
		key    string
		dx, dy int
		fast   bool
		ok     bool
	}{
		{"h", -1, 0, false, true},
		{"j", 0, 1, false, true},
		{"k", 0, -1, false, true},
		{"l", 1, 0, false, true},
		{"left", -1, 0, false, true},
		{"down", 0, 1, false, true},
		{"H", -1, 0, true, true},
		{"shift+right", 1, 0, true, true},
		{"x", 0, 0, false, false},
		{"enter", 0, 0, false, false},
	}
	for _, tt := range tests {
		dx, dy, fast, ok := keyDelta(tt.key)
		if dx != tt.dx || dy != tt.dy || fast != tt.fast || ok != tt.ok {
			t.Errorf("keyDelta(%q) = (%d, %d, %v, %v), want (%d, %d, %v, %v)",
				tt.key, dx, dy, fast, ok, tt.dx, tt.dy, tt.fast, tt.ok)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestEditorCursorMovement(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "l", "l", "j")
	if m.cursorCol != 2 || m.cursorRow != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", m.cursorCol, m.cursorRow)
	}

	// Shifted keys jump by the fast step.
	m = press(t, m, "L")
	if m.cursorCol != 2+m.cfg.Editor.FastStep {
		t.Errorf("cursorCol = %d, want %d", m.cursorCol, 2+m.cfg.Editor.FastStep)
	}

	// The cursor stops at the grid edge.
	m.cursorCol, m.cursorRow = 0, 0
	m = press(t, m, "h", "k")
	if m.cursorCol != 0 || m.cursorRow != 0 {
		t.Errorf("cursor = (%d, %d), want clamped to (0, 0)", m.cursorCol, m.cursorRow)
	}
}

func TestEditorWindowResizeClampsCursor(t *testing.T) {
	m := testEditor(t)
	m.cursorCol, m.cursorRow = 70, 20

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	m = next.(editorModel)

	cols, rows := m.surface.Size()
	if cols != 40 || rows != 10 {
		t.Errorf("surface = %dx%d, want 40x10 (one row kept for status)", cols, rows)
	}
	if m.cursorCol != 39 || m.cursorRow != 9 {
		t.Errorf("cursor = (%d, %d), want clamped to (39, 9)", m.cursorCol, m.cursorRow)
	}
}

func TestEditorPanning(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "z", "l", "j")
	if !m.panning {
		t.Fatal("z should enable panning")
	}
	ox, oy := m.surface.Origin()
	if ox != cellWidth || oy != cellHeight {
		t.Errorf("origin = (%v, %v), want (%v, %v)", ox, oy, cellWidth, cellHeight)
	}
	if m.cursorCol != 0 || m.cursorRow != 0 {
		t.Errorf("cursor moved to (%d, %d) while panning", m.cursorCol, m.cursorRow)
	}

	m = press(t, m, "z")
	if m.panning {
		t.Error("z should toggle panning off")
	}
}

func TestEditorAddNode(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "a")
	if m.mode != modeName {
		t.Fatalf("mode = %v, want name mode", m.mode)
	}

	m = press(t, m, "osc", "enter")
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after commit", m.mode)
	}

	p := m.doc.Patch
	if p.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", p.NodeCount())
	}
	n := p.Nodes()[0]
	if n.Name() != "osc" {
		t.Errorf("node name = %q, want %q", n.Name(), "osc")
	}
	if n.InputCount() != 1 || n.OutputCount() != 1 {
		t.Errorf("knobs = %d in, %d out, want 1 and 1", n.InputCount(), n.OutputCount())
	}
	if n.Rect().Height != n.MinHeight() {
		t.Errorf("height = %v, want fitted %v", n.Rect().Height, n.MinHeight())
	}
	if !m.dirty {
		t.Error("adding a node should mark the document dirty")
	}

	// The whole add is one undo step.
	m = press(t, m, "u")
	if p.NodeCount() != 0 {
		t.Errorf("NodeCount after undo = %d, want 0", p.NodeCount())
	}
	m = press(t, m, "U")
	if p.NodeCount() != 1 {
		t.Errorf("NodeCount after redo = %d, want 1", p.NodeCount())
	}
}

func TestEditorAddNodeEmptyName(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "a", "enter")
	if m.doc.Patch.NodeCount() != 0 {
		t.Error("an empty name should not add a node")
	}
	if !m.statusErr {
		t.Error("empty name should set an error status")
	}
}

func TestEditorNameModeEditing(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "a", "osc", "backspace", "backspace")
	if m.nameBuf != "o" {
		t.Errorf("nameBuf = %q, want %q", m.nameBuf, "o")
	}

	m = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after esc", m.mode)
	}
	if m.doc.Patch.NodeCount() != 0 {
		t.Error("cancelled name mode should not add a node")
	}
}

func TestEditorRename(t *testing.T) {
	m := testEditor(t)
	n := m.doc.Patch.NewNode("osc")

	m = press(t, m, "e")
	if m.mode != modeName {
		t.Fatalf("mode = %v, want name mode", m.mode)
	}
	if m.nameBuf != "osc" {
		t.Errorf("nameBuf = %q, want prefilled %q", m.nameBuf, "osc")
	}

	m = press(t, m, "backspace", "backspace", "backspace", "vca", "enter")
	if n.Name() != "vca" {
		t.Errorf("node name = %q, want %q", n.Name(), "vca")
	}

	m = press(t, m, "u")
	if n.Name() != "osc" {
		t.Errorf("node name after undo = %q, want %q", n.Name(), "osc")
	}
}

func TestEditorRenameUnchangedSkipsHistory(t *testing.T) {
	m := testEditor(t)
	m.doc.Patch.NewNode("osc")

	m = press(t, m, "e", "enter")
	if m.status != "name unchanged" {
		t.Errorf("status = %q, want %q", m.status, "name unchanged")
	}

	m = press(t, m, "u")
	if m.status != "nothing to undo" {
		t.Errorf("status = %q, want empty history", m.status)
	}
}

func TestEditorConnect(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch

	lfo := p.NewNode("lfo")
	lfo.AddOutput("out")
	vca := p.NewNode("vca")
	vca.AddInput("in")
	vca.MoveTo(240, 0)

	// Over the output half of lfo's first knob row.
	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "c")
	if m.mode != modeConnect {
		t.Fatalf("mode = %v, want connect; status %q", m.mode, m.status)
	}

	// Over the input half of vca's first knob row.
	m.cursorCol, m.cursorRow = 31, 2
	m = press(t, m, "enter")
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after drop", m.mode)
	}
	if p.ConnectionCount() != 1 {
		t.Fatalf("ConnectionCount = %d, want 1", p.ConnectionCount())
	}
	in, _ := vca.Input(0)
	if !in.Connected() {
		t.Error("vca input should be connected")
	}

	m = press(t, m, "u")
	if p.ConnectionCount() != 0 {
		t.Errorf("ConnectionCount after undo = %d, want 0", p.ConnectionCount())
	}
	m = press(t, m, "U")
	if p.ConnectionCount() != 1 {
		t.Errorf("ConnectionCount after redo = %d, want 1", p.ConnectionCount())
	}
}

func TestEditorConnectSurvivesBadDrop(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch

	lfo := p.NewNode("lfo")
	lfo.AddOutput("out")

	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "c")

	// Dropping on empty canvas keeps the gesture open.
	m.cursorCol, m.cursorRow = 40, 10
	m = press(t, m, "enter")
	if m.mode != modeConnect {
		t.Errorf("mode = %v, want connect to survive a miss", m.mode)
	}

	// Dropping on the grabbed knob fails too; outputs cannot pair.
	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "enter")
	if m.mode != modeConnect {
		t.Errorf("mode = %v, want connect to survive a bad target", m.mode)
	}
	if !m.statusErr {
		t.Error("a bad drop should set an error status")
	}

	m = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after cancel", m.mode)
	}
	if p.ConnectionCount() != 0 {
		t.Errorf("ConnectionCount = %d, want 0", p.ConnectionCount())
	}
}

func TestEditorConnectFromInput(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch

	lfo := p.NewNode("lfo")
	lfo.AddOutput("out")
	vca := p.NewNode("vca")
	vca.AddInput("in")
	vca.MoveTo(240, 0)

	// Grabbing the input first works the same; the patch sorts out which
	// end is which.
	m.cursorCol, m.cursorRow = 31, 2
	m = press(t, m, "c")
	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "enter")

	if p.ConnectionCount() != 1 {
		t.Fatalf("ConnectionCount = %d, want 1", p.ConnectionCount())
	}
	in, _ := vca.Input(0)
	out, _ := lfo.Output(0)
	if in.Source() != out.Ref() {
		t.Errorf("input source = %+v, want %+v", in.Source(), out.Ref())
	}
}

func TestEditorDeleteWithConfirm(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch
	n := p.NewNode("osc")

	m = press(t, m, "d")
	if m.mode != modeConfirm {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	if !strings.Contains(m.confirmPrompt(), `"osc"`) {
		t.Errorf("confirm prompt = %q, should name the node", m.confirmPrompt())
	}

	m = press(t, m, "y")
	if p.NodeCount() != 0 {
		t.Errorf("NodeCount = %d, want 0 after confirmed delete", p.NodeCount())
	}

	m = press(t, m, "u")
	if p.NodeCount() != 1 {
		t.Errorf("NodeCount after undo = %d, want 1", p.NodeCount())
	}
	if got, ok := p.Node(n.ID()); !ok || got.Name() != "osc" {
		t.Error("undo should restore the deleted node")
	}
}

func TestEditorDeleteDeclined(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch
	p.NewNode("osc")

	m = press(t, m, "d", "n")
	if p.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1 after declined delete", p.NodeCount())
	}
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
}

func TestEditorDeleteWithoutConfirmations(t *testing.T) {
	m := testEditor(t)
	m.cfg.Editor.Confirmations = false
	p := m.doc.Patch
	p.NewNode("osc")

	m = press(t, m, "d")
	if p.NodeCount() != 0 {
		t.Errorf("NodeCount = %d, want 0", p.NodeCount())
	}
}

func TestEditorDisconnect(t *testing.T) {
	m := testEditor(t)
	p := m.doc.Patch

	lfo := p.NewNode("lfo")
	out := lfo.AddOutput("out")
	vca := p.NewNode("vca")
	in := vca.AddInput("in")
	vca.MoveTo(240, 0)
	if err := p.Connect(out, in); err != nil {
		t.Fatal(err)
	}

	// x on the output end refuses; the wire belongs to its input.
	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "x")
	if p.ConnectionCount() != 1 {
		t.Fatalf("ConnectionCount = %d, want 1 after refusing output end", p.ConnectionCount())
	}
	if !m.statusErr {
		t.Error("disconnecting an output should set an error status")
	}

	m.cursorCol, m.cursorRow = 31, 2
	m = press(t, m, "x")
	if p.ConnectionCount() != 0 {
		t.Errorf("ConnectionCount = %d, want 0", p.ConnectionCount())
	}

	m = press(t, m, "u")
	if p.ConnectionCount() != 1 {
		t.Errorf("ConnectionCount after undo = %d, want 1", p.ConnectionCount())
	}
}

func TestEditorMoveNode(t *testing.T) {
	m := testEditor(t)
	n := m.doc.Patch.NewNode("osc")

	m = press(t, m, "m")
	if m.mode != modeMove {
		t.Fatalf("mode = %v, want move", m.mode)
	}

	m = press(t, m, "l", "j", "enter")
	r := n.Rect()
	if r.X != cellWidth || r.Y != cellHeight {
		t.Errorf("node at (%v, %v), want (%v, %v)", r.X, r.Y, cellWidth, cellHeight)
	}
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after drop", m.mode)
	}

	m = press(t, m, "u")
	if r := n.Rect(); r.X != 0 || r.Y != 0 {
		t.Errorf("node at (%v, %v) after undo, want (0, 0)", r.X, r.Y)
	}
}

func TestEditorMoveCancelRestores(t *testing.T) {
	m := testEditor(t)
	n := m.doc.Patch.NewNode("osc")

	m = press(t, m, "m", "l", "l", "esc")
	if r := n.Rect(); r.X != 0 {
		t.Errorf("node X = %v after cancel, want 0", r.X)
	}
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
}

func TestEditorMoveWithoutMovement(t *testing.T) {
	m := testEditor(t)
	m.doc.Patch.NewNode("osc")

	m = press(t, m, "m", "enter")
	if m.status != "node not moved" {
		t.Errorf("status = %q, want %q", m.status, "node not moved")
	}

	m = press(t, m, "u")
	if m.status != "nothing to undo" {
		t.Errorf("status = %q, want empty history", m.status)
	}
}

func TestEditorResizeNode(t *testing.T) {
	m := testEditor(t)
	n := m.doc.Patch.NewNode("osc")
	n.AddInput("in")
	n.FitToKnobs()
	base := n.Rect()

	m = press(t, m, "r")
	if m.mode != modeResize {
		t.Fatalf("mode = %v, want resize", m.mode)
	}

	m = press(t, m, "l", "j", "enter")
	r := n.Rect()
	if r.Width != base.Width+cellWidth {
		t.Errorf("width = %v, want %v", r.Width, base.Width+cellWidth)
	}
	if r.Height != base.Height+cellHeight {
		t.Errorf("height = %v, want %v", r.Height, base.Height+cellHeight)
	}

	m = press(t, m, "u")
	if r := n.Rect(); r.Width != base.Width || r.Height != base.Height {
		t.Errorf("size = %vx%v after undo, want %vx%v", r.Width, r.Height, base.Width, base.Height)
	}
}

func TestEditorAddKnobs(t *testing.T) {
	m := testEditor(t)
	n := m.doc.Patch.NewNode("osc")

	m = press(t, m, "i", "o", "i")
	if n.InputCount() != 2 || n.OutputCount() != 1 {
		t.Errorf("knobs = %d in, %d out, want 2 and 1", n.InputCount(), n.OutputCount())
	}
	if k, _ := n.Input(1); k.Name() != "in 1" {
		t.Errorf("second input name = %q, want %q", k.Name(), "in 1")
	}
	if !m.dirty {
		t.Error("adding knobs should mark the document dirty")
	}
}

func TestEditorUndoRedoEmpty(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "u")
	if m.status != "nothing to undo" {
		t.Errorf("status = %q, want %q", m.status, "nothing to undo")
	}
	m = press(t, m, "U")
	if m.status != "nothing to redo" {
		t.Errorf("status = %q, want %q", m.status, "nothing to redo")
	}
}

func TestEditorSave(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	doc := session.NewDocument("bench")
	m := newEditorModel(context.Background(), DefaultConfig(), patch.DefaultTheme(), store, doc, newLogger(io.Discard, log.InfoLevel))

	m = press(t, m, "a", "osc", "enter", "s")
	if m.dirty {
		t.Error("save should clear the dirty flag")
	}

	loaded, err := store.Load(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("Load() after save: %v", err)
	}
	if loaded.Patch.NodeCount() != 1 {
		t.Errorf("loaded NodeCount = %d, want 1", loaded.Patch.NodeCount())
	}
}

func TestEditorSaveAs(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	doc := session.NewDocument("")
	m := newEditorModel(context.Background(), DefaultConfig(), patch.DefaultTheme(), store, doc, newLogger(io.Discard, log.InfoLevel))

	m = press(t, m, "s")
	if m.mode != modeName {
		t.Fatalf("mode = %v, want name mode for an unnamed patch", m.mode)
	}

	m = press(t, m, "drone", "enter")
	if doc.Name != "drone" {
		t.Errorf("doc name = %q, want %q", doc.Name, "drone")
	}
	if _, err := store.FindByName(context.Background(), "drone"); err != nil {
		t.Errorf("FindByName after save as: %v", err)
	}
}

func TestEditorSaveWithoutStore(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "s")
	if !m.statusErr {
		t.Error("saving without a store should set an error status")
	}
}

func TestEditorQuitClean(t *testing.T) {
	m := testEditor(t)

	next, cmd := m.Update(key("q"))
	m = next.(editorModel)
	if !m.quitting {
		t.Error("a clean editor should quit immediately")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestEditorQuitDirtyAsks(t *testing.T) {
	m := testEditor(t)
	m = press(t, m, "a", "osc", "enter")

	next, cmd := m.Update(key("q"))
	m = next.(editorModel)
	if m.mode != modeConfirm || cmd != nil {
		t.Fatalf("dirty quit should ask first, got mode %v", m.mode)
	}

	// Declining returns to the editor.
	m = press(t, m, "n")
	if m.mode != modeNormal || m.quitting {
		t.Error("declining the quit prompt should keep editing")
	}

	// Confirming quits.
	next, _ = m.Update(key("q"))
	m = next.(editorModel)
	next, cmd = m.Update(key("y"))
	m = next.(editorModel)
	if !m.quitting || cmd == nil {
		t.Error("confirming the quit prompt should quit")
	}
}

func TestEditorQuitAutosaves(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	doc := session.NewDocument("bench")
	cfg := DefaultConfig()
	cfg.Editor.Autosave = true
	m := newEditorModel(context.Background(), cfg, patch.DefaultTheme(), store, doc, newLogger(io.Discard, log.InfoLevel))

	m = press(t, m, "a", "osc", "enter")
	next, cmd := m.Update(key("q"))
	m = next.(editorModel)

	if !m.quitting || cmd == nil {
		t.Error("autosave quit should not ask")
	}
	if _, err := store.Load(context.Background(), doc.ID); err != nil {
		t.Errorf("document should be saved on quit: %v", err)
	}
}

func TestEditorHelp(t *testing.T) {
	m := testEditor(t)

	m = press(t, m, "?")
	if m.mode != modeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	if v := m.View(); !strings.Contains(v, "press any key to close") {
		t.Error("help view should say how to leave")
	}

	m = press(t, m, "x")
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after any key", m.mode)
	}
}

func TestEditorView(t *testing.T) {
	m := testEditor(t)
	m.doc.Patch.NewNode("osc")

	v := m.View()
	if !strings.Contains(v, "osc") {
		t.Error("view should draw the node header")
	}
	if !strings.Contains(v, "NORMAL") {
		t.Error("view should show the mode tag")
	}
	if !strings.Contains(v, "1 nodes · 0 wires") {
		t.Error("view should show the patch counts")
	}
}

func TestEditorHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetEditorHooks(rec)
	observability.SetGraphHooks(rec)
	defer observability.Reset()

	m := testEditor(t)
	p := m.doc.Patch

	lfo := p.NewNode("lfo")
	lfo.AddOutput("out")
	vca := p.NewNode("vca")
	vca.AddInput("in")
	vca.MoveTo(240, 0)

	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "c")
	m.cursorCol, m.cursorRow = 31, 2
	m = press(t, m, "enter")

	if len(rec.started) != 1 || rec.started[0] != "connect" {
		t.Errorf("started = %v, want one connect gesture", rec.started)
	}
	if len(rec.committed) != 1 {
		t.Errorf("committed = %v, want one commit", rec.committed)
	}
	if len(rec.connects) != 1 || rec.connects[0] != lfo.ID()+">"+vca.ID() {
		t.Errorf("connects = %v, want wire from lfo to vca", rec.connects)
	}

	// A cancelled gesture reports an abort instead.
	m.cursorCol, m.cursorRow = 9, 2
	m = press(t, m, "c", "esc")
	if len(rec.aborted) != 1 {
		t.Errorf("aborted = %v, want one abort", rec.aborted)
	}
}

// recordingHooks captures hook calls for assertions.
type recordingHooks struct {
	observability.NoopEditorHooks
	observability.NoopGraphHooks

	started   []string
	committed []string
	aborted   []string
	connects  []string
}

func (r *recordingHooks) OnActionStarted(ctx context.Context, action string) {
	r.started = append(r.started, action)
}

func (r *recordingHooks) OnActionCommitted(ctx context.Context, action string, d time.Duration) {
	r.committed = append(r.committed, action)
}

func (r *recordingHooks) OnActionAborted(ctx context.Context, action string) {
	r.aborted = append(r.aborted, action)
}

func (r *recordingHooks) OnConnect(ctx context.Context, fromNode, toNode string) {
	r.connects = append(r.connects, fromNode+">"+toNode)
}
