// Package geometry turns the scalar products of a vector pair into an
// interpretation (magnitudes, angle, sign classes, area) and a drawing frame.
package geometry

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"

	"vector-ops-visualizer/internal/common"
	"vector-ops-visualizer/internal/vecmath"
)

// TitlePrefix heads every diagram title.
const TitlePrefix = "2D Vector Operations"

// Analysis is everything a renderer needs to draw one vector pair.
type Analysis struct {
	X, Y        common.Vec2
	Scalars     ScalarResult
	Description GeometryDescription
	Bounds      PlotBounds
	// Parallelogram is the closed ring origin, X, X+Y, Y.
	Parallelogram *geom.Polygon
	// Centroid anchors the signed area label.
	Centroid common.Vec2
}

// Analyze validates x and y and computes the full bundle with the default
// bounds options. A DimensionError from vecmath is returned unchanged.
func Analyze(x, y []float64) (Analysis, error) {
	return AnalyzeWithOptions(x, y, DefaultBoundsOptions())
}

// AnalyzeWithOptions is Analyze with explicit bounds options.
func AnalyzeWithOptions(x, y []float64, opts BoundsOptions) (Analysis, error) {
	dot, err := vecmath.Dot(x, y)
	if err != nil {
		return Analysis{}, err
	}
	cross, err := vecmath.Cross2D(x, y)
	if err != nil {
		return Analysis{}, err
	}
	vx, vy, err := vecmath.Pair(x, y)
	if err != nil {
		return Analysis{}, err
	}

	s := ScalarResult{Dot: dot, Cross: cross}
	return Analysis{
		X:             vx,
		Y:             vy,
		Scalars:       s,
		Description:   Describe(vx, vy, s),
		Bounds:        ComputeBounds(vx, vy, opts),
		Parallelogram: Parallelogram(vx, vy),
		Centroid:      vx.Add(vy).Scale(0.5),
	}, nil
}

// Parallelogram returns the polygon spanned by x and y.
func Parallelogram(x, y common.Vec2) *geom.Polygon {
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{
		{0, 0},
		x.Coord(),
		x.Add(y).Coord(),
		y.Coord(),
		{0, 0},
	}})
}

// Title returns the diagram title with suffix appended.
func Title(suffix string) string {
	return TitlePrefix + suffix
}

// AngleText formats the angle with two decimals, or "undefined".
func AngleText(d GeometryDescription) string {
	if !d.AngleDegrees.Specified {
		return "undefined (zero-length vector)"
	}
	return fmt.Sprintf("%.2f°", d.AngleDegrees.Value)
}

// Interpretation renders the explanatory text block for a.
func Interpretation(a Analysis) string {
	d := a.Description
	var sb strings.Builder

	fmt.Fprintf(&sb, "X · Y = %g\n", a.Scalars.Dot)
	sb.WriteString("  - Measures how much one vector extends in the direction of the other.\n")
	fmt.Fprintf(&sb, "  - |X| = %.4g, |Y| = %.4g\n", d.MagnitudeX, d.MagnitudeY)
	fmt.Fprintf(&sb, "  - Angle between X and Y: θ ≈ %s\n", AngleText(d))
	fmt.Fprintf(&sb, "  - Classification: %s (%s)\n", d.DotClass, d.DotClass.Meaning())
	for _, c := range []DotClass{Acute, Obtuse, Orthogonal} {
		fmt.Fprintf(&sb, "  - If X·Y %s 0, %s (%s)\n", dotRuleOp(c), c.Meaning(), c)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "X × Y (z-comp) = %g\n", a.Scalars.Cross)
	sb.WriteString("  - Represents the signed area of the parallelogram formed by X and Y.\n")
	fmt.Fprintf(&sb, "  - Area = |%g| = %g\n", a.Scalars.Cross, d.Area)
	fmt.Fprintf(&sb, "  - Orientation: %s (%s)\n", d.CrossClass, d.CrossClass.Meaning())
	sb.WriteString("  - Sign indicates orientation:\n")
	sb.WriteString("    - Positive: " + CounterClockwise.Meaning() + ".\n")
	sb.WriteString("    - Negative: " + Clockwise.Meaning() + ".\n")
	sb.WriteString("    - Zero: " + Collinear.Meaning() + ".")

	return sb.String()
}

func dotRuleOp(c DotClass) string {
	switch c {
	case Acute:
		return ">"
	case Obtuse:
		return "<"
	default:
		return "="
	}
}
