package render

import (
	"strings"
	"testing"

	"github.com/tessvane/patchboard/pkg/patch"
)

func TestRecorder(t *testing.T) {
	p := patch.New()
	n := p.NewNode("osc")
	n.AddOutput("sig")
	n.FitToKnobs()

	var r Recorder
	if err := n.Render(&r, patch.DefaultTheme()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	ops := r.Ops()
	if len(ops) == 0 {
		t.Fatal("no ops recorded")
	}
	if !strings.HasPrefix(ops[0], "box ") {
		t.Errorf("first op = %q, want the frame box", ops[0])
	}
	if !strings.HasPrefix(ops[1], "vgroup ") {
		t.Errorf("second op = %q, want the node group", ops[1])
	}
	if ops[len(ops)-1] != "end" {
		t.Errorf("last op = %q, want the group end", ops[len(ops)-1])
	}

	found := false
	for _, op := range ops {
		if strings.Contains(op, `"osc"`) {
			found = true
		}
	}
	if !found {
		t.Error("header label not recorded")
	}

	if !r.Balanced() {
		t.Error("balanced render left the recorder unbalanced")
	}
}

func TestRecorderBalanced(t *testing.T) {
	var r Recorder
	r.BeginVertical(patch.Rect{})
	if r.Balanced() {
		t.Error("Balanced = true with an open group")
	}
	r.EndVertical()

	r.PushTextColor("#ffffff")
	r.PushLabelWidth(40)
	if r.Balanced() {
		t.Error("Balanced = true with pushed styles")
	}
	r.PopLabelWidth()
	r.PopTextColor()
	if !r.Balanced() {
		t.Error("Balanced = false after everything was matched")
	}
}

func TestRecorderReset(t *testing.T) {
	var r Recorder
	_ = r.LabeledBox(patch.Rect{Width: 10, Height: 10}, "x", patch.BoxStyle{})
	r.BeginHorizontal(patch.Rect{})

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Errorf("ops after Reset = %v", r.Ops())
	}
	if !r.Balanced() {
		t.Error("Reset did not clear open groups")
	}
}
