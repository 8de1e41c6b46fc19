package geometry

import (
	"errors"
	"math"
	"strings"
	"testing"

	"vector-ops-visualizer/internal/common"
	"vector-ops-visualizer/internal/vecmath"
)

const eps = 1e-9

func TestAnalyzeGeneral(t *testing.T) {
	a, err := Analyze([]float64{2, 3}, []float64{4, 1})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.Scalars.Dot != 11 || a.Scalars.Cross != -10 {
		t.Fatalf("dot=%v cross=%v", a.Scalars.Dot, a.Scalars.Cross)
	}
	d := a.Description
	if d.DotClass != Acute {
		t.Errorf("DotClass: expected %v, got %v", Acute, d.DotClass)
	}
	if d.CrossClass != Clockwise {
		t.Errorf("CrossClass: expected %v, got %v", Clockwise, d.CrossClass)
	}
	if d.Area != 10 {
		t.Errorf("Area: expected 10, got %v", d.Area)
	}
	if math.Abs(math.Abs(a.Parallelogram.Area())-10) > eps {
		t.Errorf("polygon area=%v", a.Parallelogram.Area())
	}
	if a.Centroid != (common.Vec2{X: 3, Y: 2}) {
		t.Errorf("centroid=%v", a.Centroid)
	}
	if !d.AngleDegrees.Specified {
		t.Fatalf("angle unspecified")
	}
	want := math.Acos(11/(math.Sqrt(13)*math.Sqrt(17))) * 180 / math.Pi
	if math.Abs(d.AngleDegrees.Value-want) > 1e-9 {
		t.Errorf("angle=%v want=%v", d.AngleDegrees.Value, want)
	}
}

func TestAnalyzeOrthogonal(t *testing.T) {
	a, err := Analyze([]float64{2, 2}, []float64{-2, 2})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.Scalars.Dot != 0 || a.Description.DotClass != Orthogonal {
		t.Fatalf("dot=%v class=%v", a.Scalars.Dot, a.Description.DotClass)
	}
	if got := a.Description.AngleDegrees.Value; math.Abs(got-90) > 1e-9 {
		t.Errorf("angle=%v", got)
	}
	if a.Description.CrossClass != CounterClockwise {
		t.Errorf("cross class=%v", a.Description.CrossClass)
	}
}

func TestAnalyzeCollinear(t *testing.T) {
	a, err := Analyze([]float64{3, 1}, []float64{6, 2})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.Scalars.Cross != 0 || a.Description.CrossClass != Collinear || a.Description.Area != 0 {
		t.Fatalf("cross=%v class=%v area=%v", a.Scalars.Cross, a.Description.CrossClass, a.Description.Area)
	}
	if got := a.Description.AngleDegrees; !got.Specified || math.IsNaN(got.Value) || got.Value > 1e-4 {
		t.Errorf("angle=%+v", got)
	}
}

func TestAnalyzeZeroVector(t *testing.T) {
	for _, tc := range [][2][]float64{
		{{0, 0}, {2, 3}},
		{{2, 3}, {0, 0}},
		{{0, 0}, {0, 0}},
	} {
		a, err := Analyze(tc[0], tc[1])
		if err != nil {
			t.Fatalf("analyze %v: %v", tc, err)
		}
		if a.Description.AngleDegrees.Specified {
			t.Errorf("%v: angle should be undefined, got %v", tc, a.Description.AngleDegrees.Value)
		}
		b := a.Bounds
		if !(b.MinX < b.MaxX) || !(b.MinY < b.MaxY) {
			t.Errorf("%v: degenerate bounds %+v", tc, b)
		}
		if !strings.Contains(Interpretation(a), "undefined") {
			t.Errorf("%v: interpretation does not flag undefined angle", tc)
		}
	}
}

func TestAnalyzeDimensionError(t *testing.T) {
	_, err := Analyze([]float64{1, 2, 3}, []float64{1, 2})
	var dimErr *vecmath.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("err=%v", err)
	}
	_, err = Analyze([]float64{1, 2}, []float64{1})
	if !errors.Is(err, vecmath.ErrDimension) {
		t.Fatalf("err=%v", err)
	}
}

func TestClassifyExactZero(t *testing.T) {
	if ClassifyDot(1e-300) != Acute || ClassifyDot(-1e-300) != Obtuse || ClassifyDot(0) != Orthogonal {
		t.Errorf("dot classes: %v %v %v", ClassifyDot(1e-300), ClassifyDot(-1e-300), ClassifyDot(0))
	}
	if ClassifyCross(1e-300) != CounterClockwise || ClassifyCross(-1e-300) != Clockwise || ClassifyCross(0) != Collinear {
		t.Errorf("cross classes: %v %v %v", ClassifyCross(1e-300), ClassifyCross(-1e-300), ClassifyCross(0))
	}
	if ClassifyDot(math.Copysign(0, -1)) != Orthogonal {
		t.Errorf("negative zero should be orthogonal")
	}
}

func TestClampCosine(t *testing.T) {
	for _, c := range []float64{1 + 1e-15, -1 - 1e-15, 2, -2, 0.5, 1, -1} {
		got := clampCosine(c)
		if got < -1 || got > 1 {
			t.Errorf("clamp(%v)=%v", c, got)
		}
	}

	// Parallel and anti-parallel pairs whose rounded cosine may fall outside [-1, 1].
	pairs := [][2]common.Vec2{
		{{X: 0.1, Y: 0.3}, {X: 0.2, Y: 0.6}},
		{{X: 1e-7, Y: 3e-7}, {X: -3e-7, Y: -9e-7}},
		{{X: 1.1, Y: 2.2}, {X: 3.3, Y: 6.6}},
		{{X: 7, Y: 1e-9}, {X: 7e8, Y: 1e-1}},
	}
	for _, p := range pairs {
		ang := AngleBetween(p[0], p[1], p[0].Dot(p[1]))
		if !ang.Specified || math.IsNaN(ang.Value) || ang.Value < 0 || ang.Value > 180 {
			t.Errorf("angle(%v,%v)=%+v", p[0], p[1], ang)
		}
	}
}

func TestMagnitude(t *testing.T) {
	if m := Magnitude(common.Vec2{X: 3, Y: -4}); m != 5 {
		t.Errorf("Magnitude: expected 5, got %v", m)
	}
	if m := Magnitude(common.Vec2{}); m != 0 {
		t.Errorf("Magnitude: expected 0, got %v", m)
	}
}

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds(common.Vec2{X: 2, Y: 3}, common.Vec2{X: 4, Y: 1}, DefaultBoundsOptions())
	want := PlotBounds{MinX: -1.5, MaxX: 7.5, MinY: -1.5, MaxY: 5.5}
	if b != want {
		t.Errorf("bounds: expected %+v, got %+v", want, b)
	}

	small := ComputeBounds(common.Vec2{X: 0.01, Y: 0}, common.Vec2{X: 0, Y: 0.02}, DefaultBoundsOptions())
	if math.Abs(small.MinX+0.5) > eps || math.Abs(small.MaxX-0.51) > eps {
		t.Errorf("small margin bounds: %+v", small)
	}

	// One short and one long vector keeps the base margin.
	mixed := ComputeBounds(common.Vec2{X: 0.01, Y: 0}, common.Vec2{X: 5, Y: 0}, DefaultBoundsOptions())
	if mixed.MinX != -1.5 {
		t.Errorf("mixed bounds: %+v", mixed)
	}
}

func TestComputeBoundsWidensDegenerateAxes(t *testing.T) {
	b := ComputeBounds(common.Vec2{}, common.Vec2{}, BoundsOptions{})
	want := PlotBounds{MinX: -0.5, MaxX: 0.5, MinY: -0.5, MaxY: 0.5}
	if b != want {
		t.Errorf("bounds: expected %+v, got %+v", want, b)
	}

	b = ComputeBounds(common.Vec2{X: 3}, common.Vec2{X: -1}, BoundsOptions{})
	if b.MinX != -1 || b.MaxX != 3 || b.MinY != -0.5 || b.MaxY != 0.5 {
		t.Errorf("bounds: %+v", b)
	}
}

func TestComputeBoundsInvariant(t *testing.T) {
	vals := []float64{0, 1e-9, -0.05, 0.09, 1, -3.5, 250}
	for _, x0 := range vals {
		for _, x1 := range vals {
			for _, y0 := range vals {
				x := common.Vec2{X: x0, Y: x1}
				y := common.Vec2{X: y0, Y: -x1}
				b := ComputeBounds(x, y, DefaultBoundsOptions())
				if !(b.MinX < b.MaxX) || !(b.MinY < b.MaxY) {
					t.Fatalf("x=%v y=%v bounds=%+v", x, y, b)
				}
				for _, p := range []common.Vec2{{}, x, y, x.Add(y)} {
					if !b.Contains(p) {
						t.Fatalf("x=%v y=%v bounds=%+v misses %v", x, y, b, p)
					}
				}
			}
		}
	}
}

func TestInterpretation(t *testing.T) {
	a, err := Analyze([]float64{2, 3}, []float64{4, 1})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	text := Interpretation(a)
	for _, want := range []string{
		"X · Y = 11",
		"X × Y (z-comp) = -10",
		"Area = |-10| = 10",
		"Classification: acute",
		"Orientation: cw (Y is clockwise from X)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("interpretation missing %q:\n%s", want, text)
		}
	}
	if got := Title(" (Case 1)"); got != "2D Vector Operations (Case 1)" {
		t.Errorf("title=%q", got)
	}
}
