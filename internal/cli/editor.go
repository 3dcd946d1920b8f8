package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/tessvane/patchboard/pkg/history"
	"github.com/tessvane/patchboard/pkg/observability"
	"github.com/tessvane/patchboard/pkg/patch"
	"github.com/tessvane/patchboard/pkg/session"
)

// =============================================================================
// Modes
// =============================================================================

// editorMode is the editor's modal state. Normal mode navigates and
// dispatches commands; each gesture mode holds one staged action open
// until the key that commits or cancels it.
type editorMode int

const (
	modeNormal editorMode = iota
	modeConnect
	modeMove
	modeResize
	modeName
	modeConfirm
	modeHelp
)

func (m editorMode) String() string {
	switch m {
	case modeConnect:
		return "CONNECT"
	case modeMove:
		return "MOVE"
	case modeResize:
		return "RESIZE"
	case modeName:
		return "NAME"
	case modeConfirm:
		return "CONFIRM"
	case modeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// nameTarget says what the text typed in name mode applies to.
type nameTarget int

const (
	nameNewNode nameTarget = iota
	nameRenameNode
	nameSaveAs
)

// confirmKind says what a confirmed prompt fires.
type confirmKind int

const (
	confirmDeleteNode confirmKind = iota
	confirmQuit
)

// =============================================================================
// Model
// =============================================================================

// editorModel is the bubbletea model hosting one patch editing session.
// All patch and history mutation happens inside Update, on bubbletea's
// event goroutine, which satisfies the single-goroutine contract of the
// core types.
type editorModel struct {
	runCtx context.Context
	logger *log.Logger
	cfg    *Config
	theme  *patch.Theme
	store  session.Store

	doc  *session.Document
	hist *history.History

	surface *termSurface
	width   int
	height  int

	cursorCol int
	cursorRow int
	panning   bool

	mode editorMode

	// At most one staged gesture is open at a time; the mode says which.
	connect      *patch.ConnectAction
	moving       *patch.MoveAction
	sizing       *patch.ResizeAction
	gestureStart time.Time

	nameFor  nameTarget
	nameBuf  string
	nameNode string      // node being renamed
	nameAt   patch.Point // where a new node lands

	confirm     confirmKind
	confirmNode string

	dirty     bool
	status    string
	statusErr bool

	quitting bool
}

// newEditorModel assembles an editor over the given document. The store
// may be nil for embedders that handle persistence themselves; the save
// key then reports an error instead of writing.
func newEditorModel(ctx context.Context, cfg *Config, theme *patch.Theme, store session.Store, doc *session.Document, logger *log.Logger) editorModel {
	return editorModel{
		runCtx:  ctx,
		logger:  logger,
		cfg:     cfg,
		theme:   theme,
		store:   store,
		doc:     doc,
		hist:    history.New(cfg.Editor.UndoDepth),
		surface: newTermSurface(80, 24),
		status:  "press ? for help",
	}
}

// ctx returns the context hooks and the store are called with: the
// program context the edit command started with.
func (m *editorModel) ctx() context.Context {
	if m.runCtx != nil {
		return m.runCtx
	}
	return context.Background()
}

func (m editorModel) Init() tea.Cmd { return nil }

// =============================================================================
// Update
// =============================================================================

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Resize(msg.Width, max(msg.Height-1, 1))
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConnect:
			return m.updateConnect(msg)
		case modeMove:
			return m.updateMove(msg)
		case modeResize:
			return m.updateResize(msg)
		case modeName:
			return m.updateName(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeHelp:
			m.mode = modeNormal
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

// keyDelta maps a movement key to a cursor delta in cells. Capitalized
// and shifted keys report fast so holders of the config decide the step.
func keyDelta(key string) (dx, dy int, fast, ok bool) {
	switch key {
	case "h", "left":
		return -1, 0, false, true
	case "j", "down":
		return 0, 1, false, true
	case "k", "up":
		return 0, -1, false, true
	case "l", "right":
		return 1, 0, false, true
	case "H", "shift+left":
		return -1, 0, true, true
	case "J", "shift+down":
		return 0, 1, true, true
	case "K", "shift+up":
		return 0, -1, true, true
	case "L", "shift+right":
		return 1, 0, true, true
	}
	return 0, 0, false, false
}

func (m editorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dx, dy, fast, ok := keyDelta(msg.String()); ok {
		m.moveCursor(dx, dy, fast)
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.requestQuit()

	case "?":
		m.mode = modeHelp

	case "z":
		m.panning = !m.panning
		if m.panning {
			m.setStatus("pan mode on")
		} else {
			m.setStatus("pan mode off")
		}

	case "esc":
		m.panning = false
		m.status = ""
		m.statusErr = false

	case "a":
		m.nameFor = nameNewNode
		m.nameBuf = ""
		x, y := m.cursorCanvas()
		m.nameAt = patch.Point{X: x, Y: y}
		m.mode = modeName

	case "e":
		n, ok := m.nodeUnderCursor()
		if !ok {
			m.setError("no node under cursor")
			break
		}
		m.nameFor = nameRenameNode
		m.nameNode = n.ID()
		m.nameBuf = n.Name()
		m.mode = modeName

	case "d":
		n, ok := m.nodeUnderCursor()
		if !ok {
			m.setError("no node under cursor")
			break
		}
		if m.cfg.Editor.Confirmations {
			m.confirm = confirmDeleteNode
			m.confirmNode = n.ID()
			m.mode = modeConfirm
		} else {
			m.deleteNode(n.ID())
		}

	case "c":
		m.startConnect()

	case "x":
		m.disconnectUnderCursor()

	case "m":
		m.startMove()

	case "r":
		m.startResize()

	case "i":
		m.addKnob(patch.DirectionInput)

	case "o":
		m.addKnob(patch.DirectionOutput)

	case "u":
		m.undo()

	case "U":
		m.redo()

	case "y":
		m.yankNode()

	case "p":
		m.pasteNode()

	case "s":
		if m.doc.Name == "" {
			m.nameFor = nameSaveAs
			m.nameBuf = ""
			m.mode = modeName
			break
		}
		m.save()
	}
	return m, nil
}

// =============================================================================
// Cursor and Panning
// =============================================================================

// moveCursor moves the cursor, or the viewport when panning, by the
// configured step.
func (m *editorModel) moveCursor(dx, dy int, fast bool) {
	step := m.cfg.Editor.CursorStep
	if fast {
		step = m.cfg.Editor.FastStep
	}
	if m.panning {
		ox, oy := m.surface.Origin()
		m.surface.SetOrigin(
			ox+float64(dx*step)*cellWidth,
			oy+float64(dy*step)*cellHeight,
		)
		return
	}
	cols, rows := m.surface.Size()
	m.cursorCol = clamp(m.cursorCol+dx*step, 0, cols-1)
	m.cursorRow = clamp(m.cursorRow+dy*step, 0, rows-1)
}

func (m *editorModel) clampCursor() {
	cols, rows := m.surface.Size()
	m.cursorCol = clamp(m.cursorCol, 0, cols-1)
	m.cursorRow = clamp(m.cursorRow, 0, rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cursorCanvas returns the canvas point under the cursor cell's center.
func (m *editorModel) cursorCanvas() (x, y float64) {
	return m.surface.CellCenter(m.cursorCol, m.cursorRow)
}

func (m *editorModel) nodeUnderCursor() (*patch.Node, bool) {
	x, y := m.cursorCanvas()
	return m.doc.Patch.NodeAt(x, y)
}

func (m *editorModel) knobUnderCursor() *patch.Knob {
	n, ok := m.nodeUnderCursor()
	if !ok {
		return nil
	}
	x, y := m.cursorCanvas()
	return n.KnobAt(x, y)
}

// =============================================================================
// Gestures
// =============================================================================

// beginGesture stamps the gesture start and tells the editor hooks.
func (m *editorModel) beginGesture(name string) {
	m.gestureStart = time.Now()
	observability.Editor().OnActionStarted(m.ctx(), name)
}

// endGesture reports the gesture's outcome to the editor hooks and marks
// the document dirty on commit.
func (m *editorModel) endGesture(name string, committed bool) {
	if committed {
		observability.Editor().OnActionCommitted(m.ctx(), name, time.Since(m.gestureStart))
		m.dirty = true
	} else {
		observability.Editor().OnActionAborted(m.ctx(), name)
	}
}

func (m *editorModel) startConnect() {
	k := m.knobUnderCursor()
	if k == nil {
		m.setError("no knob under cursor")
		return
	}
	m.connect = patch.NewConnectAction(m.doc.Patch, k)
	m.connect.Begin()
	m.beginGesture(m.connect.Name())
	m.mode = modeConnect
	m.setStatus("connecting from %s", knobLabel(m.doc.Patch, k))
}

func (m editorModel) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dx, dy, fast, ok := keyDelta(msg.String()); ok {
		m.moveCursor(dx, dy, fast)
		return m, nil
	}

	switch msg.String() {
	case "enter", "c":
		target := m.knobUnderCursor()
		if target == nil {
			m.setError("no knob under cursor")
			return m, nil
		}
		if err := m.connect.Drop(target); err != nil {
			// The gesture survives a failed drop; pick another target
			// or cancel.
			m.setError("%v", err)
			return m, nil
		}
		out, in := m.connectEnds(target)
		committed := m.hist.Finish(m.connect)
		m.endGesture(m.connect.Name(), committed)
		if committed {
			observability.Graph().OnConnect(m.ctx(), out.NodeID(), in.NodeID())
			m.setStatus("connected %s to %s", knobLabel(m.doc.Patch, out), knobLabel(m.doc.Patch, in))
		}
		m.connect = nil
		m.mode = modeNormal

	case "esc", "q", "ctrl+c":
		m.connect.Cancel()
		m.hist.Finish(m.connect)
		m.endGesture(m.connect.Name(), false)
		m.connect = nil
		m.mode = modeNormal
		m.setStatus("connect cancelled")
	}
	return m, nil
}

// connectEnds resolves which end of the open connect gesture is the
// output and which the input, mirroring how the patch resolves them.
func (m *editorModel) connectEnds(target *patch.Knob) (out, in *patch.Knob) {
	grab, _ := m.doc.Patch.Knob(m.connect.From())
	out, in = grab, target
	if out.Direction() == patch.DirectionInput {
		out, in = in, out
	}
	return out, in
}

func (m *editorModel) startMove() {
	n, ok := m.nodeUnderCursor()
	if !ok {
		m.setError("no node under cursor")
		return
	}
	m.moving = patch.NewMoveAction(m.doc.Patch, n.ID())
	m.moving.Begin()
	m.beginGesture(m.moving.Name())
	m.mode = modeMove
	m.setStatus("moving %s", nodeLabel(n))
}

func (m editorModel) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dx, dy, fast, ok := keyDelta(msg.String()); ok {
		step := m.cfg.Editor.CursorStep
		if fast {
			step = m.cfg.Editor.FastStep
		}
		if n, ok := m.doc.Patch.Node(m.moving.NodeID()); ok {
			r := n.Rect()
			m.moving.MoveTo(
				r.X+float64(dx*step)*cellWidth,
				r.Y+float64(dy*step)*cellHeight,
			)
		}
		m.moveCursor(dx, dy, fast)
		return m, nil
	}

	switch msg.String() {
	case "enter", "m":
		committed := m.hist.Finish(m.moving)
		m.endGesture(m.moving.Name(), committed)
		if committed {
			m.setStatus("node moved")
		} else {
			m.setStatus("node not moved")
		}
		m.moving = nil
		m.mode = modeNormal

	case "esc", "q", "ctrl+c":
		m.moving.Cancel()
		m.hist.Finish(m.moving)
		m.endGesture(m.moving.Name(), false)
		m.moving = nil
		m.mode = modeNormal
		m.setStatus("move cancelled")
	}
	return m, nil
}

func (m *editorModel) startResize() {
	n, ok := m.nodeUnderCursor()
	if !ok {
		m.setError("no node under cursor")
		return
	}
	m.sizing = patch.NewResizeAction(m.doc.Patch, n.ID())
	m.sizing.Begin()
	m.beginGesture(m.sizing.Name())
	m.mode = modeResize
	m.setStatus("resizing %s", nodeLabel(n))
}

func (m editorModel) updateResize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dx, dy, fast, ok := keyDelta(msg.String()); ok {
		step := m.cfg.Editor.CursorStep
		if fast {
			step = m.cfg.Editor.FastStep
		}
		if n, ok := m.doc.Patch.Node(m.sizing.NodeID()); ok {
			r := n.Rect()
			m.sizing.ResizeTo(
				r.Width+float64(dx*step)*cellWidth,
				r.Height+float64(dy*step)*cellHeight,
			)
		}
		return m, nil
	}

	switch msg.String() {
	case "enter", "r":
		committed := m.hist.Finish(m.sizing)
		m.endGesture(m.sizing.Name(), committed)
		if committed {
			m.setStatus("node resized")
		} else {
			m.setStatus("size unchanged")
		}
		m.sizing = nil
		m.mode = modeNormal

	case "esc", "q", "ctrl+c":
		m.sizing.Cancel()
		m.hist.Finish(m.sizing)
		m.endGesture(m.sizing.Name(), false)
		m.sizing = nil
		m.mode = modeNormal
		m.setStatus("resize cancelled")
	}
	return m, nil
}

// =============================================================================
// Name and Confirm Modes
// =============================================================================

func (m editorModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitName()
		return m, nil
	case "esc", "ctrl+c":
		m.mode = modeNormal
		m.setStatus("cancelled")
		return m, nil
	case "backspace":
		if m.nameBuf != "" {
			runes := []rune(m.nameBuf)
			m.nameBuf = string(runes[:len(runes)-1])
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.nameBuf += msg.String()
	}
	return m, nil
}

func (m *editorModel) commitName() {
	name := strings.TrimSpace(m.nameBuf)
	m.mode = modeNormal

	switch m.nameFor {
	case nameNewNode:
		if name == "" {
			m.setError("empty name, no node added")
			return
		}
		act := patch.NewAddNodeAction(m.doc.Patch, name, m.nameAt)
		n := act.Do()
		n.AddInput("in")
		n.AddOutput("out")
		n.FitToKnobs()
		m.hist.Push(act)
		observability.Graph().OnNodeAdded(m.ctx(), n.ID())
		m.dirty = true
		m.setStatus("added %s", nodeLabel(n))

	case nameRenameNode:
		n, ok := m.doc.Patch.Node(m.nameNode)
		if !ok {
			m.setError("node is gone")
			return
		}
		if name == n.Name() {
			m.setStatus("name unchanged")
			return
		}
		act := patch.NewRenameAction(m.doc.Patch, m.nameNode, name)
		if err := act.Do(); err != nil {
			m.setError("rename: %v", err)
			return
		}
		m.hist.Push(act)
		m.dirty = true
		m.setStatus("renamed to %q", name)

	case nameSaveAs:
		if name == "" {
			m.setError("empty name, not saved")
			return
		}
		m.doc.Name = name
		m.save()
	}
}

func (m editorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	switch msg.String() {
	case "y", "enter":
		switch m.confirm {
		case confirmDeleteNode:
			m.deleteNode(m.confirmNode)
		case confirmQuit:
			m.quitting = true
			return m, tea.Quit
		}
	default:
		m.setStatus("cancelled")
	}
	return m, nil
}

// confirmPrompt is the question confirm mode is currently asking.
func (m *editorModel) confirmPrompt() string {
	switch m.confirm {
	case confirmQuit:
		return "discard unsaved changes and quit? (y/n)"
	default:
		name := m.confirmNode
		if n, ok := m.doc.Patch.Node(m.confirmNode); ok {
			name = nodeLabel(n)
		}
		return fmt.Sprintf("delete %s? (y/n)", name)
	}
}

// =============================================================================
// Commands
// =============================================================================

func (m *editorModel) deleteNode(id string) {
	act := patch.NewRemoveNodeAction(m.doc.Patch, id)
	if err := act.Do(); err != nil {
		m.setError("delete: %v", err)
		return
	}
	m.hist.Push(act)
	observability.Graph().OnNodeRemoved(m.ctx(), id)
	m.dirty = true
	m.setStatus("node deleted")
}

func (m *editorModel) disconnectUnderCursor() {
	k := m.knobUnderCursor()
	if k == nil {
		m.setError("no knob under cursor")
		return
	}
	if k.Direction() != patch.DirectionInput {
		m.setError("pick the input end of the wire")
		return
	}
	src := k.Source()
	act := patch.NewDisconnectAction(m.doc.Patch, k)
	if err := act.Do(); err != nil {
		m.setError("%v", err)
		return
	}
	m.hist.Push(act)
	observability.Graph().OnDisconnect(m.ctx(), src.Node, k.NodeID())
	m.dirty = true
	m.setStatus("disconnected %s", knobLabel(m.doc.Patch, k))
}

// addKnob appends a knob to the node under the cursor. Knob creation is
// not undoable; nodes only grow knobs.
func (m *editorModel) addKnob(dir patch.Direction) {
	n, ok := m.nodeUnderCursor()
	if !ok {
		m.setError("no node under cursor")
		return
	}
	var k *patch.Knob
	if dir == patch.DirectionInput {
		k = n.AddInput(fmt.Sprintf("in %d", n.InputCount()))
	} else {
		k = n.AddOutput(fmt.Sprintf("out %d", n.OutputCount()))
	}
	m.dirty = true
	m.setStatus("added %s %s", dir, k.Name())
}

func (m *editorModel) undo() {
	act, err := m.hist.Undo()
	if err != nil {
		observability.Editor().OnUndo(m.ctx(), "", err)
		if errors.Is(err, history.ErrEmptyHistory) {
			m.setStatus("nothing to undo")
		} else {
			m.setError("%v", err)
		}
		return
	}
	observability.Editor().OnUndo(m.ctx(), act.Name(), nil)
	m.dirty = true
	m.setStatus("undid %s", act.Name())
}

func (m *editorModel) redo() {
	act, err := m.hist.Redo()
	if err != nil {
		observability.Editor().OnRedo(m.ctx(), "", err)
		if errors.Is(err, history.ErrEmptyHistory) {
			m.setStatus("nothing to redo")
		} else {
			m.setError("%v", err)
		}
		return
	}
	observability.Editor().OnRedo(m.ctx(), act.Name(), nil)
	m.dirty = true
	m.setStatus("redid %s", act.Name())
}

func (m *editorModel) yankNode() {
	n, ok := m.nodeUnderCursor()
	if !ok {
		m.setError("no node under cursor")
		return
	}
	data, err := session.MarshalNodeSnippet(n)
	if err != nil {
		m.setError("yank: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.setError("clipboard: %v", err)
		return
	}
	m.setStatus("yanked %s", nodeLabel(n))
}

// pasteNode adds a copy of the clipboard snippet at the cursor. The copy
// goes through a regular add action so the paste is undoable and the new
// node gets its own identity.
func (m *editorModel) pasteNode() {
	text, err := clipboard.ReadAll()
	if err != nil {
		m.setError("clipboard: %v", err)
		return
	}
	nj, err := session.UnmarshalNodeSnippet([]byte(text))
	if err != nil {
		m.setError("paste: %v", err)
		return
	}
	x, y := m.cursorCanvas()
	act := patch.NewAddNodeAction(m.doc.Patch, nj.Name, patch.Point{X: x, Y: y})
	n := act.Do()
	if err := session.ConfigureNode(n, nj); err != nil {
		// Knobs and size did not apply; the bare node is still a valid
		// paste result worth keeping.
		m.logger.Debugf("Paste configure: %v", err)
	}
	m.hist.Push(act)
	observability.Graph().OnNodeAdded(m.ctx(), n.ID())
	m.dirty = true
	m.setStatus("pasted %s", nodeLabel(n))
}

func (m *editorModel) save() {
	if m.store == nil {
		m.setError("no store configured")
		return
	}
	if err := m.store.Save(m.ctx(), m.doc); err != nil {
		m.setError("save: %v", err)
		return
	}
	m.dirty = false
	m.logger.Debugf("Saved document %s", m.doc.ID)
	m.setStatus("saved %q", m.doc.DisplayName())
}

// requestQuit quits immediately when nothing would be lost, saves first
// when autosave can, and asks otherwise.
func (m editorModel) requestQuit() (tea.Model, tea.Cmd) {
	if m.dirty && m.cfg.Editor.Autosave && m.doc.Name != "" && m.store != nil {
		m.save()
	}
	if m.dirty && m.cfg.Editor.Confirmations {
		m.confirm = confirmQuit
		m.mode = modeConfirm
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// =============================================================================
// Status
// =============================================================================

func (m *editorModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *editorModel) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = true
}

// nodeLabel names a node for the status line.
func nodeLabel(n *patch.Node) string {
	if n.Name() != "" {
		return fmt.Sprintf("%q", n.Name())
	}
	return "node " + shortID(n.ID())
}

// knobLabel names a knob for the status line, owner included.
func knobLabel(p *patch.Patch, k *patch.Knob) string {
	owner := shortID(k.NodeID())
	if n, ok := p.Node(k.NodeID()); ok && n.Name() != "" {
		owner = n.Name()
	}
	return fmt.Sprintf("%s.%s", owner, k.Name())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeHelp {
		return m.helpView()
	}

	m.drawFrame()

	var b strings.Builder
	b.WriteString(m.surface.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// drawFrame renders the patch into the cell grid: wires below, nodes on
// top so boxes cover the runs beneath them, then the transient overlays.
func (m *editorModel) drawFrame() {
	s := m.surface
	p := m.doc.Patch
	s.Clear()

	for _, c := range p.Connections() {
		from, okFrom := p.Knob(c.From)
		to, okTo := p.Knob(c.To)
		if !okFrom || !okTo {
			continue
		}
		fromNode, _ := p.Node(from.NodeID())
		toNode, _ := p.Node(to.NodeID())
		s.DrawWire(fromNode.KnobAnchor(from), toNode.KnobAnchor(to), m.theme.Wire)
	}

	if m.mode == modeConnect {
		if grab, ok := p.Knob(m.connect.From()); ok {
			if n, ok := p.Node(grab.NodeID()); ok {
				x, y := m.cursorCanvas()
				s.DrawWire(n.KnobAnchor(grab), patch.Point{X: x, Y: y}, m.theme.Selection)
			}
		}
	}

	for _, n := range p.Nodes() {
		if err := n.Render(s, m.theme); err != nil {
			m.logger.Debugf("Render node %s: %v", n.ID(), err)
		}
	}

	if n, ok := m.selectedNode(); ok {
		s.OutlineRect(n.Rect(), m.theme.Selection)
	}

	s.SetCell(m.cursorCol, m.cursorRow, '█', m.theme.Selection)
}

// selectedNode is the node the current mode is acting on, or the node
// under the cursor in normal mode.
func (m *editorModel) selectedNode() (*patch.Node, bool) {
	switch m.mode {
	case modeMove:
		return m.doc.Patch.Node(m.moving.NodeID())
	case modeResize:
		return m.doc.Patch.Node(m.sizing.NodeID())
	default:
		return m.nodeUnderCursor()
	}
}

func (m editorModel) statusLine() string {
	var parts []string
	parts = append(parts, StyleHighlight.Render(" "+m.mode.String()+" "))

	name := m.doc.DisplayName()
	if m.dirty {
		name += "*"
	}
	parts = append(parts, StyleValue.Render(name))

	p := m.doc.Patch
	parts = append(parts, StyleDim.Render(fmt.Sprintf("%d nodes · %d wires", p.NodeCount(), p.ConnectionCount())))

	switch m.mode {
	case modeName:
		parts = append(parts, m.namePrompt()+m.nameBuf+"█")
	case modeConfirm:
		parts = append(parts, StyleWarning.Render(m.confirmPrompt()))
	default:
		if m.status != "" {
			if m.statusErr {
				parts = append(parts, StyleError.Render(m.status))
			} else {
				parts = append(parts, m.status)
			}
		}
		if hint := m.modeHint(); hint != "" {
			parts = append(parts, StyleDim.Render(hint))
		}
	}

	return strings.Join(parts, "  ")
}

func (m editorModel) namePrompt() string {
	switch m.nameFor {
	case nameRenameNode:
		return "rename: "
	case nameSaveAs:
		return "save as: "
	default:
		return "name: "
	}
}

func (m editorModel) modeHint() string {
	switch m.mode {
	case modeConnect:
		return "move to a knob · enter drops the wire · esc cancels"
	case modeMove:
		return "hjkl moves the node · enter drops it · esc cancels"
	case modeResize:
		return "l/j grow · h/k shrink · enter keeps · esc cancels"
	default:
		if m.panning {
			return "hjkl pans · z back to cursor"
		}
		return ""
	}
}

func (m editorModel) helpView() string {
	rows := []struct{ key, what string }{
		{"h j k l", "move the cursor (arrows work too, shift jumps)"},
		{"z", "toggle pan mode"},
		{"a", "add a node at the cursor"},
		{"e", "rename the node under the cursor"},
		{"d", "delete the node under the cursor"},
		{"i / o", "add an input / output knob"},
		{"c", "wire two knobs together"},
		{"x", "unwire the input under the cursor"},
		{"m", "move the node under the cursor"},
		{"r", "resize the node under the cursor"},
		{"y / p", "yank the node / paste it at the cursor"},
		{"u / U", "undo / redo"},
		{"s", "save the patch"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(StyleTitle.Render("Patchboard"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleValue.Render(fmt.Sprintf("%-10s", r.key)), r.what))
	}
	b.WriteString("\n  ")
	b.WriteString(StyleDim.Render("press any key to close"))
	b.WriteString("\n")
	return b.String()
}
