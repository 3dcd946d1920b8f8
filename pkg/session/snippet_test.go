package session

import (
	"strings"
	"testing"

	"github.com/tessvane/patchboard/pkg/patch"
)

func TestNodeSnippetRoundTrip(t *testing.T) {
	p := patch.New()
	n := p.NewNode("osc")
	n.AddInput("pitch")
	n.AddInput("sync")
	n.AddOutput("sig")
	n.FitToKnobs()
	n.Resize(180, 120)
	n.MoveTo(40, 80)

	data, err := MarshalNodeSnippet(n)
	if err != nil {
		t.Fatalf("MarshalNodeSnippet: %v", err)
	}
	if !strings.Contains(string(data), `"pitch"`) {
		t.Errorf("snippet %s does not carry the input names", data)
	}

	nj, err := UnmarshalNodeSnippet(data)
	if err != nil {
		t.Fatalf("UnmarshalNodeSnippet: %v", err)
	}

	if nj.ID != n.ID() {
		t.Errorf("ID = %q, want %q", nj.ID, n.ID())
	}
	if nj.Name != "osc" {
		t.Errorf("Name = %q, want osc", nj.Name)
	}
	if nj.Rect != n.Rect() {
		t.Errorf("Rect = %+v, want %+v", nj.Rect, n.Rect())
	}
	if len(nj.Inputs) != 2 || nj.Inputs[1].Name != "sync" {
		t.Errorf("Inputs = %+v, want pitch and sync", nj.Inputs)
	}
	if len(nj.Outputs) != 1 || nj.Outputs[0].Name != "sig" {
		t.Errorf("Outputs = %+v, want one port named sig", nj.Outputs)
	}
	if nj.Body != nil {
		t.Errorf("Body = %+v, want nil for a plain node", nj.Body)
	}
}

func TestNodeSnippetPaste(t *testing.T) {
	src := patch.New()
	n := src.NewNode("amp")
	n.AddInput("in")
	n.AddInput("gain")
	n.AddOutput("out")
	n.FitToKnobs()
	n.Resize(180, 120)
	n.MoveTo(200, 300)

	data, err := MarshalNodeSnippet(n)
	if err != nil {
		t.Fatalf("MarshalNodeSnippet: %v", err)
	}
	nj, err := UnmarshalNodeSnippet(data)
	if err != nil {
		t.Fatalf("UnmarshalNodeSnippet: %v", err)
	}

	// The paste gets its own identity and its own position; only knobs,
	// body, and size come from the snippet.
	dst := patch.New()
	pasted := dst.NewNode(nj.Name)
	if err := ConfigureNode(pasted, nj); err != nil {
		t.Fatalf("ConfigureNode: %v", err)
	}

	if pasted.ID() == n.ID() {
		t.Error("pasted node kept the snippet's ID")
	}
	if got := len(pasted.Inputs()); got != 2 {
		t.Fatalf("inputs = %d, want 2", got)
	}
	if k, _ := pasted.Input(1); k.Name() != "gain" {
		t.Errorf("input 1 = %q, want gain", k.Name())
	}
	if got := len(pasted.Outputs()); got != 1 {
		t.Fatalf("outputs = %d, want 1", got)
	}

	r := pasted.Rect()
	if r.Width != 180 || r.Height != 120 {
		t.Errorf("size = %gx%g, want 180x120", r.Width, r.Height)
	}
	if r.X != 0 || r.Y != 0 {
		t.Errorf("position = (%g, %g), want the snippet's position ignored", r.X, r.Y)
	}
}

func TestNodeSnippetEnvelope(t *testing.T) {
	src := patch.New()
	env := patch.NewEnvelopeNode(src, "env")
	body := env.Body().(*patch.EnvelopeBody)
	pts := []patch.Point{{X: 0, Y: 0}, {X: 0.25, Y: 1}, {X: 1, Y: 0.5}}
	if err := body.SetPoints(pts); err != nil {
		t.Fatalf("SetPoints: %v", err)
	}

	data, err := MarshalNodeSnippet(env)
	if err != nil {
		t.Fatalf("MarshalNodeSnippet: %v", err)
	}
	nj, err := UnmarshalNodeSnippet(data)
	if err != nil {
		t.Fatalf("UnmarshalNodeSnippet: %v", err)
	}
	if nj.Body == nil || nj.Body.Kind != BodyEnvelope {
		t.Fatalf("Body = %+v, want an envelope", nj.Body)
	}

	dst := patch.New()
	pasted := dst.NewNode(nj.Name)
	if err := ConfigureNode(pasted, nj); err != nil {
		t.Fatalf("ConfigureNode: %v", err)
	}

	body2, ok := pasted.Body().(*patch.EnvelopeBody)
	if !ok {
		t.Fatal("envelope body lost in paste")
	}
	got := body2.Points()
	if len(got) != 3 || got[1] != (patch.Point{X: 0.25, Y: 1}) {
		t.Errorf("points = %+v, want the saved 3", got)
	}
	if body2.Driven() {
		t.Error("pasted envelope should not be driven, snippets carry no wires")
	}
}

func TestUnmarshalNodeSnippetInvalid(t *testing.T) {
	_, err := UnmarshalNodeSnippet([]byte("{not a snippet"))
	if err == nil {
		t.Error("expected error for malformed snippet")
	}
}
