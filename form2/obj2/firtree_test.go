package obj2

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

// scenarioParams is the reference attachment used throughout the tests.
func scenarioParams(stages int) FirtreeParams {
	return FirtreeParams{
		Gamma:       0.3,
		Beta:        0.3,
		LowerFlank:  2.0,
		UpperFlank:  2.0,
		InnerRadius: 1.0,
		OuterRadius: 1.0,
		DoveRadius:  3.0,
		MaxLength:   10.0,
		Stages:      stages,
		DiskRadius:  50.0,
	}
}

func mustFirtree(t *testing.T, k FirtreeParams) *Firtree {
	t.Helper()
	f, err := NewFirtree(k)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFirtreeReference(t *testing.T) {
	ref := mustFirtree(t, scenarioParams(2)).Reference()
	for _, test := range []struct {
		name      string
		got, want r2.Vec
	}{
		{"OuterLowerTangent", ref.OuterLowerTangent, r2.Vec{X: 1.910672978251212, Y: 0.5910404133226791}},
		{"OuterUpperTangent", ref.OuterUpperTangent, r2.Vec{X: 1.910672978251212, Y: 2.501713391573891}},
		{"OuterTangentIntersect", ref.OuterTangentIntersect, r2.Vec{X: 4.9990161334139955, Y: 1.546376902448285}},
		{"OuterCenter", ref.OuterCenter, r2.Vec{X: 1.6151527715898724, Y: 1.546376902448285}},
		{"InnerLowerTangent", ref.InnerLowerTangent, r2.Vec{X: 0, Y: 3.0927538048965704}},
		{"InnerUpperTangent", ref.InnerUpperTangent, r2.Vec{X: 0, Y: 5.003426783147782}},
		{"InnerCenter", ref.InnerCenter, r2.Vec{X: 0.29552020666133955, Y: 4.048090294022177}},
		{"DoveCenter", ref.DoveCenter, r2.Vec{X: 0.8865606199840186, Y: -2.866009467376818}},
		{"DoveLower", ref.DoveLower, r2.Vec{X: 0.8865606199840186, Y: -5.866009467376818}},
	} {
		if r2.Norm(r2.Sub(test.got, test.want)) > tol {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestFirtreeInvalidParams(t *testing.T) {
	for _, test := range []struct {
		name   string
		mutate func(*FirtreeParams)
	}{
		{"LowerFlank", func(k *FirtreeParams) { k.LowerFlank = 0 }},
		{"OuterRadius", func(k *FirtreeParams) { k.OuterRadius = -1 }},
		{"DoveRadius", func(k *FirtreeParams) { k.DoveRadius = math.NaN() }},
		{"Stages", func(k *FirtreeParams) { k.Stages = 0 }},
		{"Gamma", func(k *FirtreeParams) { k.Gamma = 0 }},
		{"Beta", func(k *FirtreeParams) { k.Beta = math.Pi / 2 }},
		{"MaxLength", func(k *FirtreeParams) { k.DiskRadius = 4.9 }},
	} {
		k := scenarioParams(2)
		test.mutate(&k)
		f, err := NewFirtree(k)
		var ipe *turbo2d.InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Errorf("%s: expected InvalidParameterError, got %v", test.name, err)
			continue
		}
		if ipe.Name != test.name {
			t.Errorf("%s: error names parameter %q", test.name, ipe.Name)
		}
		if f != nil {
			t.Errorf("%s: returned attachment on failure", test.name)
		}
	}

	f := mustFirtree(t, scenarioParams(2))
	if _, err := f.Coords(1); err == nil {
		t.Error("expected error for a single point per arc")
	}
}

func TestFirtreeStage(t *testing.T) {
	const n = 20
	f := mustFirtree(t, scenarioParams(2))
	ref := f.Reference()
	stage, err := f.Stage(n, false)
	if err != nil {
		t.Fatal(err)
	}
	// lower flank (2) + outer arc (n) + upper flank (2) + inner arc (n)
	if len(stage) != 2*n+4 {
		t.Fatalf("got %d stage points, want %d", len(stage), 2*n+4)
	}
	if stage[0] != (r2.Vec{}) {
		t.Errorf("stage must start at the origin, got %v", stage[0])
	}
	if r2.Norm(r2.Sub(stage[len(stage)-1], ref.InnerUpperTangent)) > tol {
		t.Errorf("stage must end at the inner upper tangent, got %v", stage[len(stage)-1])
	}
	// outer arc points lie on the outer circle
	for i, p := range stage[2 : 2+n] {
		if d := r2.Norm(r2.Sub(p, ref.OuterCenter)); math.Abs(d-1) > tol {
			t.Errorf("outer arc point %d: radius %g", i, d)
		}
	}
	// the outer arc bulges away from the root, the inner arc towards it.
	if s := must2.Sweep(stage[2:2+n], ref.OuterCenter); s <= 0 {
		t.Errorf("outer arc sweep %g, want positive", s)
	}
	if s := must2.Sweep(stage[n+4:], ref.InnerCenter); s >= 0 {
		t.Errorf("inner arc sweep %g, want negative", s)
	}
	for i, p := range stage[n+4:] {
		if d := r2.Norm(r2.Sub(p, ref.InnerCenter)); math.Abs(d-1) > tol {
			t.Errorf("inner arc point %d: radius %g", i, d)
		}
	}

	end, err := f.Stage(n, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(end) != n+4 {
		t.Fatalf("got %d end stage points, want %d", len(end), n+4)
	}
	for i := range end {
		if end[i] != stage[i] {
			t.Fatalf("end stage diverges from stage at %d", i)
		}
	}
}

func TestFirtreeClosedContour(t *testing.T) {
	const n = 20
	for _, stages := range []int{1, 2, 5} {
		f := mustFirtree(t, scenarioParams(stages))
		c, err := f.Coords(n)
		if err != nil {
			t.Fatal(err)
		}
		if !c.Closed(tol) {
			t.Errorf("stages=%d: contour not closed: %v != %v", stages, c.First(), c.Last())
		}
		side, _ := f.Side(n)
		// left side (dove n-1 + side) twice, top arc n-1, closing point.
		want := 2*(n-1+len(side)) + n - 1
		if len(c) != want {
			t.Errorf("stages=%d: got %d points, want %d", stages, len(c), want)
		}
	}
}

func TestFirtreeStageMonotonicity(t *testing.T) {
	const n = 20
	prev := 0.0
	for _, stages := range []int{1, 2, 3, 5} {
		side, err := mustFirtree(t, scenarioParams(stages)).Side(n)
		if err != nil {
			t.Fatal(err)
		}
		ext := turbo2d.Profile(side).Bounds()
		height := ext.Max.Y - ext.Min.Y
		if height <= prev {
			t.Errorf("stages=%d: vertical extent %g did not grow from %g", stages, height, prev)
		}
		prev = height
	}
}

func TestFirtreeMirrorSymmetry(t *testing.T) {
	const n = 20
	for _, k := range []FirtreeParams{
		scenarioParams(2),
		{Gamma: 0.5, Beta: 0.35, LowerFlank: 1.2, UpperFlank: 1.5, InnerRadius: 0.4, OuterRadius: 0.6, DoveRadius: 2, MaxLength: 6, Stages: 3, DiskRadius: 20},
	} {
		f := mustFirtree(t, k)
		c, err := f.Coords(n)
		if err != nil {
			t.Fatal(err)
		}
		side, _ := f.Side(n)
		nl := n - 1 + len(side)   // points on the left side
		rstart := (nl - 1) + (n - 1) // first right side index
		for i := 1; i < nl; i++ {
			r := c[rstart+i]
			l := c[nl-1-i]
			if math.Abs(r.X+l.X) > tol || math.Abs(r.Y-l.Y) > tol {
				t.Fatalf("right point %d %v is not the mirror of %v", i, r, l)
			}
		}
	}
}

func TestFirtreeScenario(t *testing.T) {
	const n = 20
	k := scenarioParams(2)
	f := mustFirtree(t, k)
	c, err := f.Coords(n)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Closed(tol) {
		t.Fatal("contour not closed")
	}
	ymax := math.Inf(-1)
	for _, p := range c {
		ymax = math.Max(ymax, p.Y)
	}
	if ymax != 0 {
		t.Fatalf("max y got %g, want exactly 0", ymax)
	}

	side, _ := f.Side(n)
	nl := n - 1 + len(side)
	top := c[nl-1 : nl-1+n] // top arc including the right side's first point
	half := k.MaxLength / 2
	for i, p := range top {
		if p.X < -half-tol || p.X > half+tol {
			t.Errorf("top arc point %d x=%g outside [%g, %g]", i, p.X, -half, half)
		}
	}
	if math.Abs(top[0].X+half) > tol || math.Abs(top[len(top)-1].X-half) > tol {
		t.Errorf("top arc endpoints %v %v not at +/-%g", top[0], top[len(top)-1], half)
	}
	if math.Abs(top[0].Y-top[len(top)-1].Y) > tol {
		t.Errorf("top arc endpoints at different heights")
	}
	center := r2.Vec{X: 0, Y: top[0].Y - k.DiskRadius*math.Cos(math.Asin(half/k.DiskRadius))}
	for i, p := range top[:n-1] {
		if d := r2.Norm(r2.Sub(p, center)); math.Abs(d-k.DiskRadius) > tol*k.DiskRadius {
			t.Errorf("top arc point %d off the disk circle: %g", i, d)
		}
	}
}

func TestFirtreeSDF(t *testing.T) {
	f := mustFirtree(t, scenarioParams(2))
	s, err := f.SDF(20)
	if err != nil {
		t.Fatal(err)
	}
	// a point just below the disk contact line on the symmetry axis is inside.
	if !turbo2d.Contains(s, r2.Vec{X: 0, Y: -1}) {
		t.Error("expected point inside attachment")
	}
	if turbo2d.Contains(s, r2.Vec{X: 20, Y: -1}) {
		t.Error("expected point outside attachment")
	}
	bb := s.Bounds()
	if bb.Max.Y != 0 {
		t.Errorf("bounds max y got %g, want 0", bb.Max.Y)
	}
	if math.Abs(bb.Min.X+bb.Max.X) > tol {
		t.Errorf("bounds not symmetric: %v", bb)
	}
}
