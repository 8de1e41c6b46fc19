// Package vecmath holds the scalar products of two 2D vectors given as raw
// component slices.
package vecmath

import (
	"errors"
	"fmt"

	"vector-ops-visualizer/internal/common"
)

// ErrDimension is matched by every DimensionError.
var ErrDimension = errors.New("vectors must be 2-dimensional")

// DimensionError reports an input vector that does not have exactly two
// components.
type DimensionError struct {
	Arg string // "X" or "Y"
	Len int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: %s has %d components", ErrDimension, e.Arg, e.Len)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

// ToVec2 validates that v has two components and returns it as a Vec2.
// arg names the argument in the error.
func ToVec2(arg string, v []float64) (common.Vec2, error) {
	if len(v) != 2 {
		return common.Vec2{}, &DimensionError{Arg: arg, Len: len(v)}
	}
	return common.Vec2{X: v[0], Y: v[1]}, nil
}

// Pair validates both inputs. X is checked first.
func Pair(x, y []float64) (common.Vec2, common.Vec2, error) {
	vx, err := ToVec2("X", x)
	if err != nil {
		return common.Vec2{}, common.Vec2{}, err
	}
	vy, err := ToVec2("Y", y)
	if err != nil {
		return common.Vec2{}, common.Vec2{}, err
	}
	return vx, vy, nil
}

// Dot returns x[0]*y[0] + x[1]*y[1].
func Dot(x, y []float64) (float64, error) {
	vx, vy, err := Pair(x, y)
	if err != nil {
		return 0, err
	}
	return vx.Dot(vy), nil
}

// Cross2D returns the z-component x[0]*y[1] - x[1]*y[0].
func Cross2D(x, y []float64) (float64, error) {
	vx, vy, err := Pair(x, y)
	if err != nil {
		return 0, err
	}
	return vx.Cross(vy), nil
}
