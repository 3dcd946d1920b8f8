package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tessvane/patchboard/pkg/observability"
)

// logHooks forwards observability events to the CLI logger at debug
// level. One type serves all three hook categories; their method sets
// are disjoint.
type logHooks struct {
	logger *log.Logger
}

// registerLogHooks installs debug-logging hooks for the process. Called
// once from the root command before any editing or storage work happens.
func registerLogHooks(logger *log.Logger) {
	h := &logHooks{logger: logger}
	observability.SetEditorHooks(h)
	observability.SetGraphHooks(h)
	observability.SetStoreHooks(h)
}

func (h *logHooks) OnActionStarted(_ context.Context, action string) {
	h.logger.Debugf("Action started: %s", action)
}

func (h *logHooks) OnActionCommitted(_ context.Context, action string, d time.Duration) {
	h.logger.Debugf("Action committed: %s (%s)", action, d.Round(time.Millisecond))
}

func (h *logHooks) OnActionAborted(_ context.Context, action string) {
	h.logger.Debugf("Action aborted: %s", action)
}

func (h *logHooks) OnUndo(_ context.Context, action string, err error) {
	if err != nil {
		h.logger.Debugf("Undo failed: %v", err)
		return
	}
	h.logger.Debugf("Undid %s", action)
}

func (h *logHooks) OnRedo(_ context.Context, action string, err error) {
	if err != nil {
		h.logger.Debugf("Redo failed: %v", err)
		return
	}
	h.logger.Debugf("Redid %s", action)
}

func (h *logHooks) OnConnect(_ context.Context, fromNode, toNode string) {
	h.logger.Debugf("Wired %s → %s", fromNode, toNode)
}

func (h *logHooks) OnDisconnect(_ context.Context, fromNode, toNode string) {
	h.logger.Debugf("Unwired %s → %s", fromNode, toNode)
}

func (h *logHooks) OnNodeAdded(_ context.Context, nodeID string) {
	h.logger.Debugf("Node added: %s", nodeID)
}

func (h *logHooks) OnNodeRemoved(_ context.Context, nodeID string) {
	h.logger.Debugf("Node removed: %s", nodeID)
}

func (h *logHooks) OnSave(_ context.Context, docID string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Save %s failed: %v", docID, err)
		return
	}
	h.logger.Debugf("Saved %s: %d bytes (%s)", docID, size, d.Round(time.Millisecond))
}

func (h *logHooks) OnLoad(_ context.Context, docID string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Load %s failed: %v", docID, err)
		return
	}
	h.logger.Debugf("Loaded %s (%s)", docID, d.Round(time.Millisecond))
}

func (h *logHooks) OnDelete(_ context.Context, docID string, err error) {
	if err != nil {
		h.logger.Debugf("Delete %s failed: %v", docID, err)
		return
	}
	h.logger.Debugf("Deleted %s", docID)
}
