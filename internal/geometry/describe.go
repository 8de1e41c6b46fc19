package geometry

import (
	"math"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"

	"vector-ops-visualizer/internal/common"
)

// DotClass is the angle category implied by the sign of a dot product.
type DotClass string

const (
	Acute      DotClass = "acute"
	Obtuse     DotClass = "obtuse"
	Orthogonal DotClass = "orthogonal"
)

func (c DotClass) String() string { return string(c) }

// Meaning describes the class in terms of the angle between the vectors.
func (c DotClass) Meaning() string {
	switch c {
	case Acute:
		return "angle < 90°"
	case Obtuse:
		return "angle > 90°"
	default:
		return "angle = 90°"
	}
}

// CrossClass is the rotational orientation of Y relative to X.
type CrossClass string

const (
	CounterClockwise CrossClass = "ccw"
	Clockwise        CrossClass = "cw"
	Collinear        CrossClass = "collinear"
)

func (c CrossClass) String() string { return string(c) }

// Meaning describes the orientation of Y relative to X.
func (c CrossClass) Meaning() string {
	switch c {
	case CounterClockwise:
		return "Y is counter-clockwise from X"
	case Clockwise:
		return "Y is clockwise from X"
	default:
		return "X and Y are collinear"
	}
}

// ScalarResult holds the two scalar products of a vector pair.
type ScalarResult struct {
	Dot   float64
	Cross float64
}

// GeometryDescription is the interpretation derived from a ScalarResult.
type GeometryDescription struct {
	MagnitudeX float64
	MagnitudeY float64
	// AngleDegrees is unspecified when either vector has zero length.
	AngleDegrees opt.T[float64]
	DotClass     DotClass
	CrossClass   CrossClass
	Area         float64
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v common.Vec2) float64 {
	return v.Len()
}

// AngleBetween returns the angle between x and y in degrees, in [0, 180].
// The cosine is clamped to [-1, 1] so rounding in dot/(|x||y|) cannot leave
// the domain of acos.
func AngleBetween(x, y common.Vec2, dot float64) opt.T[float64] {
	denom := Magnitude(x) * Magnitude(y)
	if denom == 0 {
		return opt.Unspecified[float64]()
	}
	rad := math.Acos(clampCosine(dot / denom))
	return opt.V(dprec.Radians(rad).Degrees())
}

func clampCosine(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}

// ClassifyDot compares dot against exactly zero. Near-zero values that are
// not exactly zero classify as acute or obtuse.
func ClassifyDot(dot float64) DotClass {
	switch {
	case dot > 0:
		return Acute
	case dot < 0:
		return Obtuse
	default:
		return Orthogonal
	}
}

// ClassifyCross compares cross against exactly zero, like ClassifyDot.
func ClassifyCross(cross float64) CrossClass {
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// Area returns the unsigned area of the parallelogram spanned by the vectors
// whose cross product is cross.
func Area(cross float64) float64 {
	return math.Abs(cross)
}

// Describe derives the full GeometryDescription for x and y.
func Describe(x, y common.Vec2, s ScalarResult) GeometryDescription {
	return GeometryDescription{
		MagnitudeX:   Magnitude(x),
		MagnitudeY:   Magnitude(y),
		AngleDegrees: AngleBetween(x, y, s.Dot),
		DotClass:     ClassifyDot(s.Dot),
		CrossClass:   ClassifyCross(s.Cross),
		Area:         Area(s.Cross),
	}
}
