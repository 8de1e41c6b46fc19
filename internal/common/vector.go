package common

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z-component of the cross product of v and other.
// Positive when other lies counter-clockwise from v.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Coord converts the vector to an XY go-geom coordinate.
func (v Vec2) Coord() geom.Coord {
	return geom.Coord{v.X, v.Y}
}

// Vec2FromCoord reads the first two ordinates of c.
func Vec2FromCoord(c geom.Coord) Vec2 {
	return Vec2{c.X(), c.Y()}
}
