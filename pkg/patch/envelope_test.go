package patch

import (
	"errors"
	"testing"
)

func TestNewEnvelopeNode(t *testing.T) {
	p := New()
	n := NewEnvelopeNode(p, "env")

	if n.InputCount() != 1 || n.OutputCount() != 1 {
		t.Fatalf("knobs = %d in, %d out, want 1 and 1", n.InputCount(), n.OutputCount())
	}
	in, _ := n.Input(0)
	out, _ := n.Output(0)
	if in.Name() != "gate" || out.Name() != "level" {
		t.Errorf("knob names = %q, %q, want gate and level", in.Name(), out.Name())
	}

	if _, ok := n.Body().(*EnvelopeBody); !ok {
		t.Fatalf("body = %T, want *EnvelopeBody", n.Body())
	}

	// One knob row plus the curve area.
	want := fitHeight(1, EnvelopeBodyHeight)
	if got := n.Rect().Height; got != want {
		t.Errorf("height = %v, want %v", got, want)
	}
}

func TestEnvelopeDefaultRamp(t *testing.T) {
	b := NewEnvelopeBody()

	pts := b.Points()
	if len(pts) != 2 {
		t.Fatalf("points = %d, want 2", len(pts))
	}
	if pts[0] != (Point{X: 0, Y: 0}) || pts[1] != (Point{X: 1, Y: 1}) {
		t.Errorf("default ramp = %v, want identity", pts)
	}
	if got := b.ValueAt(0.5); got != 0.5 {
		t.Errorf("ValueAt(0.5) = %v, want 0.5", got)
	}
}

func TestEnvelopeAddPoint(t *testing.T) {
	b := NewEnvelopeBody()

	if i := b.AddPoint(0.5, 1); i != 1 {
		t.Errorf("insert index = %d, want 1", i)
	}

	// Out-of-range coordinates clamp to the unit square.
	b.AddPoint(1.5, -0.25)
	pts := b.Points()
	last := pts[len(pts)-1]
	if last != (Point{X: 1, Y: 0}) {
		t.Errorf("clamped point = %v, want (1, 0)", last)
	}

	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			t.Fatalf("points out of order: %v", pts)
		}
	}
}

func TestEnvelopeMovePoint(t *testing.T) {
	b := NewEnvelopeBody()
	b.AddPoint(0.5, 0.5)

	// The middle point cannot cross its neighbors.
	if err := b.MovePoint(1, 2, 0.25); err != nil {
		t.Fatalf("MovePoint: %v", err)
	}
	if got := b.Points()[1]; got != (Point{X: 1, Y: 0.25}) {
		t.Errorf("moved point = %v, want clamped to (1, 0.25)", got)
	}

	if err := b.MovePoint(5, 0, 0); !errors.Is(err, ErrPointIndex) {
		t.Errorf("out-of-range error = %v, want ErrPointIndex", err)
	}
	if err := b.MovePoint(-1, 0, 0); !errors.Is(err, ErrPointIndex) {
		t.Errorf("negative index error = %v, want ErrPointIndex", err)
	}
}

func TestEnvelopeRemovePoint(t *testing.T) {
	b := NewEnvelopeBody()
	b.AddPoint(0.5, 0.5)

	if err := b.RemovePoint(1); err != nil {
		t.Fatalf("RemovePoint: %v", err)
	}
	if err := b.RemovePoint(0); !errors.Is(err, ErrEndpointRemoval) {
		t.Errorf("removal below two points = %v, want ErrEndpointRemoval", err)
	}
	if err := b.RemovePoint(9); !errors.Is(err, ErrPointIndex) {
		t.Errorf("out-of-range error = %v, want ErrPointIndex", err)
	}
}

func TestEnvelopeSetPoints(t *testing.T) {
	b := NewEnvelopeBody()

	if err := b.SetPoints([]Point{{X: 0, Y: 0}}); !errors.Is(err, ErrEndpointRemoval) {
		t.Errorf("single point error = %v, want ErrEndpointRemoval", err)
	}

	err := b.SetPoints([]Point{{X: 1, Y: 2}, {X: -1, Y: 0.5}, {X: 0.5, Y: 0.5}})
	if err != nil {
		t.Fatalf("SetPoints: %v", err)
	}
	want := []Point{{X: 0, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}}
	pts := b.Points()
	for i, pt := range want {
		if pts[i] != pt {
			t.Errorf("point %d = %v, want %v", i, pts[i], pt)
		}
	}
}

func TestEnvelopeValueAt(t *testing.T) {
	b := NewEnvelopeBody()
	if err := b.SetPoints([]Point{
		{X: 0, Y: 0},
		{X: 0.5, Y: 0.25},
		{X: 0.5, Y: 0.75},
		{X: 1, Y: 1},
	}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "AtStart", x: 0, want: 0},
		{name: "FirstSegment", x: 0.25, want: 0.125},
		{name: "AtStep", x: 0.5, want: 0.25},
		{name: "SecondSegment", x: 0.75, want: 0.875},
		{name: "AtEnd", x: 1, want: 1},
		{name: "BelowDomain", x: -3, want: 0},
		{name: "AboveDomain", x: 3, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ValueAt(tt.x); got != tt.want {
				t.Errorf("ValueAt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEnvelopeDriven(t *testing.T) {
	p := New()
	n := NewEnvelopeNode(p, "env")
	b := n.Body().(*EnvelopeBody)
	out := p.NewNode("clock").AddOutput("tick")

	if b.Driven() {
		t.Fatal("fresh envelope reports driven")
	}

	gate, _ := n.Input(0)
	if err := p.Connect(out, gate); err != nil {
		t.Fatal(err)
	}
	if !b.Driven() {
		t.Error("wired envelope does not report driven")
	}

	if err := p.Disconnect(gate); err != nil {
		t.Fatal(err)
	}
	if b.Driven() {
		t.Error("unwired envelope still reports driven")
	}
}

func TestEnvelopeRender(t *testing.T) {
	b := NewEnvelopeBody()
	s := &recordingSurface{}

	r := Rect{X: 0, Y: 0, Width: 100, Height: EnvelopeBodyHeight}
	if err := b.Render(s, DefaultTheme(), r); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// The curve area border plus one marker per breakpoint.
	if got := len(s.boxes); got != 3 {
		t.Errorf("boxes = %d, want 3", got)
	}
	for _, box := range s.boxes {
		if !r.Contains(box.r.X, box.r.Y) {
			t.Errorf("box at %v drawn outside the body rect", box.r)
		}
	}
}
