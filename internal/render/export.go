package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"vector-ops-visualizer/internal/common"
)

const (
	exportFont      = gocv.FontHersheySimplex
	exportFontScale = 0.45
	exportLineStep  = 16
)

// Exporter writes diagrams to PNG files with OpenCV.
type Exporter struct {
	Dir    string
	Width  int
	Height int
}

// NewExporter creates dir if needed.
func NewExporter(dir string, width, height int) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &Exporter{Dir: dir, Width: width, Height: height}, nil
}

// PathFor returns the file a page with the given 1-based number is written to.
func (e *Exporter) PathFor(n int) string {
	return filepath.Join(e.Dir, fmt.Sprintf("case-%d.png", n))
}

// Export draws page n and writes it to PathFor(n).
func (e *Exporter) Export(n int, page Page) (string, error) {
	img := gocv.NewMatWithSize(e.Height, e.Width, gocv.MatTypeCV8UC3)
	defer img.Close()
	img.SetTo(gocv.NewScalar(float64(ColorBackground.B), float64(ColorBackground.G), float64(ColorBackground.R), 0))

	drawText(&img, page.Title, image.Pt(10, 18), ColorText)
	if page.Err == nil {
		e.drawDiagram(&img, page)
	}

	panel := image.Rect(0, e.Height-PanelHeight, e.Width, e.Height)
	gocv.Rectangle(&img, panel, ColorPanel, -1)
	drawText(&img, ASCII(PanelText(page)), image.Pt(10, panel.Min.Y+18), ColorText)

	path := e.PathFor(n)
	if ok := gocv.IMWrite(path, img); !ok {
		return "", fmt.Errorf("write %s", path)
	}
	return path, nil
}

func (e *Exporter) drawDiagram(img *gocv.Mat, page Page) {
	a := page.Analysis
	rect := image.Rect(10, TitleHeight, e.Width-LegendWidth, e.Height-PanelHeight)
	vp := NewViewport(a.Bounds, rect)

	line := func(p, q common.Vec2, clr color.RGBA) {
		gocv.Line(img, vp.ToPoint(p), vp.ToPoint(q), clr, 1)
	}

	xs, ys := GridLines(a.Bounds)
	for _, x := range xs {
		line(common.Vec2{X: x, Y: a.Bounds.MinY}, common.Vec2{X: x, Y: a.Bounds.MaxY}, ColorGrid)
	}
	for _, y := range ys {
		line(common.Vec2{X: a.Bounds.MinX, Y: y}, common.Vec2{X: a.Bounds.MaxX, Y: y}, ColorGrid)
	}
	line(common.Vec2{X: a.Bounds.MinX}, common.Vec2{X: a.Bounds.MaxX}, ColorAxis)
	line(common.Vec2{Y: a.Bounds.MinY}, common.Vec2{Y: a.Bounds.MaxY}, ColorAxis)

	// Fill on a copy and blend it back for the translucent parallelogram.
	ring := a.Parallelogram.Coords()[0]
	pts := make([]image.Point, 0, len(ring))
	for _, c := range ring {
		pts = append(pts, vp.ToPoint(common.Vec2FromCoord(c)))
	}
	overlay := img.Clone()
	defer overlay.Close()
	poly := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer poly.Close()
	gocv.FillPoly(&overlay, poly, ColorParallelogram)
	gocv.AddWeighted(overlay, ParallelogramAlpha, *img, 1-ParallelogramAlpha, 0, img)
	for i := 0; i+1 < len(pts); i++ {
		gocv.Line(img, pts[i], pts[i+1], ColorEdge, 1)
	}

	drawArrowMat(img, vp.ArrowFor(a.X), ColorX)
	drawArrowMat(img, vp.ArrowFor(a.Y), ColorY)

	label := AreaLabel(a)
	size := gocv.GetTextSize(label, exportFont, exportFontScale, 1)
	c := vp.ToPoint(a.Centroid)
	drawText(img, label, image.Pt(c.X-size.X/2, c.Y+size.Y/2), ColorText)

	legendX := e.Width - LegendWidth + 10
	gocv.Rectangle(img, image.Rect(legendX, TitleHeight, legendX+10, TitleHeight+10), ColorX, -1)
	drawText(img, VectorLabel("X", a.X), image.Pt(legendX+14, TitleHeight+10), ColorText)
	gocv.Rectangle(img, image.Rect(legendX, TitleHeight+20, legendX+10, TitleHeight+30), ColorY, -1)
	drawText(img, VectorLabel("Y", a.Y), image.Pt(legendX+14, TitleHeight+30), ColorText)
}

func drawArrowMat(img *gocv.Mat, a Arrow, clr color.RGBA) {
	round := func(x, y float64) image.Point { return image.Pt(int(x+0.5), int(y+0.5)) }
	gocv.Line(img, round(a.FromX, a.FromY), round(a.ToX, a.ToY), clr, 2)

	head := gocv.NewPointsVectorFromPoints([][]image.Point{{
		round(a.ToX, a.ToY),
		round(a.LX, a.LY),
		round(a.RX, a.RY),
	}})
	defer head.Close()
	gocv.FillPoly(img, head, clr)
}

// drawText writes s line by line starting at the baseline org.
func drawText(img *gocv.Mat, s string, org image.Point, clr color.RGBA) {
	for i, l := range strings.Split(s, "\n") {
		gocv.PutText(img, l, image.Pt(org.X, org.Y+i*exportLineStep), exportFont, exportFontScale, clr, 1)
	}
}
