// Package render draws an analysed vector pair: in a window with ebiten, or
// to PNG files with gocv.
package render

import (
	"image"
	"image/color"
	"math"

	"vector-ops-visualizer/internal/common"
	"vector-ops-visualizer/internal/geometry"
)

// Diagram colors
var (
	ColorBackground    = color.RGBA{250, 250, 250, 255}
	ColorAxis          = color.RGBA{0, 0, 0, 255}
	ColorGrid          = color.RGBA{210, 210, 210, 255}
	ColorX             = color.RGBA{30, 60, 220, 255}   // Blue
	ColorY             = color.RGBA{220, 40, 40, 255}   // Red
	ColorParallelogram = color.RGBA{211, 211, 211, 255} // Light gray, drawn at ParallelogramAlpha
	ColorEdge          = color.RGBA{128, 128, 128, 255}
	ColorText          = color.RGBA{0, 0, 0, 255}
	ColorPanel         = color.RGBA{245, 222, 179, 255} // Wheat
	ColorError         = color.RGBA{200, 0, 0, 255}
)

// ParallelogramAlpha is the opacity of the parallelogram fill.
const ParallelogramAlpha = 0.5

// Page is one diagram in a gallery or export batch. Err is set when the
// inputs could not be analysed.
type Page struct {
	Title    string
	Analysis geometry.Analysis
	Err      error
}

// Viewport maps world coordinates inside Bounds onto the pixel rectangle
// Rect with a uniform scale, centered. World +y points up on screen.
type Viewport struct {
	Bounds geometry.PlotBounds
	Rect   image.Rectangle
	Scale  float64
	// Pixel offset of the world point (Bounds.MinX, Bounds.MaxY).
	OffsetX, OffsetY float64
}

// NewViewport fits bounds into rect keeping an equal aspect ratio.
func NewViewport(bounds geometry.PlotBounds, rect image.Rectangle) Viewport {
	w, h := float64(rect.Dx()), float64(rect.Dy())
	scaleW := w / bounds.Width()
	scaleH := h / bounds.Height()

	scale := scaleW
	if scaleH < scaleW {
		scale = scaleH
	}

	return Viewport{
		Bounds:  bounds,
		Rect:    rect,
		Scale:   scale,
		OffsetX: float64(rect.Min.X) + (w-bounds.Width()*scale)/2,
		OffsetY: float64(rect.Min.Y) + (h-bounds.Height()*scale)/2,
	}
}

// ToScreen converts a world point to pixel coordinates.
func (v Viewport) ToScreen(p common.Vec2) (float64, float64) {
	return (p.X-v.Bounds.MinX)*v.Scale + v.OffsetX, (v.Bounds.MaxY-p.Y)*v.Scale + v.OffsetY
}

// ToPoint is ToScreen rounded to an integer pixel.
func (v Viewport) ToPoint(p common.Vec2) image.Point {
	x, y := v.ToScreen(p)
	return image.Pt(int(x+0.5), int(y+0.5))
}

// Arrow is a shaft from From to To with a two-sided head, all in screen pixels.
type Arrow struct {
	FromX, FromY float64
	ToX, ToY     float64
	// Left and right barb endpoints.
	LX, LY, RX, RY float64
}

// Head sizes in world units, matching a plot of a few units across.
const (
	arrowHeadLength = 0.3
	arrowHeadWidth  = 0.2
)

// ArrowFor builds the screen arrow for vector to drawn from the origin. The
// head is shortened for vectors shorter than the head itself; a zero vector
// yields an arrow with coincident endpoints.
func (v Viewport) ArrowFor(to common.Vec2) Arrow {
	fx, fy := v.ToScreen(common.Vec2{})
	tx, ty := v.ToScreen(to)
	a := Arrow{FromX: fx, FromY: fy, ToX: tx, ToY: ty, LX: tx, LY: ty, RX: tx, RY: ty}

	length := to.Len()
	if length == 0 {
		return a
	}
	headLen := arrowHeadLength
	if headLen > length {
		headLen = length
	}
	dir := to.Scale(1 / length)
	normal := common.Vec2{X: -dir.Y, Y: dir.X}
	base := to.Add(dir.Scale(-headLen))
	a.LX, a.LY = v.ToScreen(base.Add(normal.Scale(arrowHeadWidth / 2)))
	a.RX, a.RY = v.ToScreen(base.Add(normal.Scale(-arrowHeadWidth / 2)))
	return a
}

// maxGridLines bounds the number of grid lines drawn per axis.
const maxGridLines = 40

// GridLines returns the world coordinates of grid lines inside the bounds
// along each axis. The spacing is 1 unless that would exceed maxGridLines,
// in which case it grows by powers of ten.
func GridLines(b geometry.PlotBounds) (xs, ys []float64) {
	step := 1.0
	for math.Max(b.Width(), b.Height())/step > maxGridLines {
		step *= 10
	}
	for x := math.Ceil(b.MinX/step) * step; x <= b.MaxX; x += step {
		xs = append(xs, x)
	}
	for y := math.Ceil(b.MinY/step) * step; y <= b.MaxY; y += step {
		ys = append(ys, y)
	}
	return xs, ys
}
