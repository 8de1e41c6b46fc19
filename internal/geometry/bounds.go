package geometry

import (
	"github.com/twpayne/go-geom"

	"vector-ops-visualizer/internal/common"
)

// degenerateWiden is added to each side of an axis whose extent collapsed to
// a single value.
const degenerateWiden = 0.5

// PlotBounds is the drawing window in world coordinates.
// MinX < MaxX and MinY < MaxY always hold for values built by ComputeBounds.
type PlotBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b PlotBounds) Width() float64  { return b.MaxX - b.MinX }
func (b PlotBounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b, edges included.
func (b PlotBounds) Contains(p common.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// BoundsOptions controls the padding around the plotted points.
type BoundsOptions struct {
	BaseMargin float64
	// SmallMargin replaces BaseMargin when both vectors are shorter than
	// SmallThreshold, so tiny vectors are not lost in padding.
	SmallMargin    float64
	SmallThreshold float64
}

// DefaultBoundsOptions returns the margins used by the diagram.
func DefaultBoundsOptions() BoundsOptions {
	return BoundsOptions{
		BaseMargin:     1.5,
		SmallMargin:    0.5,
		SmallThreshold: 0.1,
	}
}

// ComputeBounds frames the origin, x, y and x+y with a margin.
func ComputeBounds(x, y common.Vec2, opts BoundsOptions) PlotBounds {
	points := geom.NewMultiPoint(geom.XY).MustSetCoords([]geom.Coord{
		{0, 0},
		x.Coord(),
		y.Coord(),
		x.Add(y).Coord(),
	})
	extent := points.Bounds()

	margin := opts.BaseMargin
	if Magnitude(x) < opts.SmallThreshold && Magnitude(y) < opts.SmallThreshold {
		margin = opts.SmallMargin
	}

	b := PlotBounds{
		MinX: extent.Min(0) - margin,
		MaxX: extent.Max(0) + margin,
		MinY: extent.Min(1) - margin,
		MaxY: extent.Max(1) + margin,
	}
	if b.MinX == b.MaxX {
		b.MinX -= degenerateWiden
		b.MaxX += degenerateWiden
	}
	if b.MinY == b.MaxY {
		b.MinY -= degenerateWiden
		b.MaxY += degenerateWiden
	}
	return b
}
