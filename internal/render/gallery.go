package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"vector-ops-visualizer/internal/common"
)

// Window layout in pixels.
const (
	TitleHeight = 24
	PanelHeight = 260
	LegendWidth = 160
)

// The debug font is white, so the window uses a dark theme.
var (
	galleryBackground = color.RGBA{40, 40, 40, 255}
	galleryAxis       = color.RGBA{220, 220, 220, 255}
	galleryGrid       = color.RGBA{70, 70, 70, 255}
	galleryPanel      = color.RGBA{0, 0, 0, 180}
)

// Gallery is an ebiten game that shows one Page at a time.
// Right or Space advances, Left goes back, Escape quits.
type Gallery struct {
	Pages  []Page
	Index  int
	Width  int
	Height int
}

// NewGallery creates a gallery window of the given size.
func NewGallery(pages []Page, width, height int) *Gallery {
	return &Gallery{
		Pages:  pages,
		Width:  width,
		Height: height,
	}
}

// Run opens the window and blocks until it is closed.
func (g *Gallery) Run(title string) error {
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}

// Next advances to the next page, wrapping around.
func (g *Gallery) Next() {
	if len(g.Pages) == 0 {
		return
	}
	g.Index = (g.Index + 1) % len(g.Pages)
}

// Prev goes back one page, wrapping around.
func (g *Gallery) Prev() {
	if len(g.Pages) == 0 {
		return
	}
	g.Index = (g.Index - 1 + len(g.Pages)) % len(g.Pages)
}

// DiagramRect is the part of the window used for the plot.
func (g *Gallery) DiagramRect() image.Rectangle {
	return image.Rect(10, TitleHeight, g.Width-LegendWidth, g.Height-PanelHeight)
}

func (g *Gallery) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.Prev()
	}
	return nil
}

func (g *Gallery) Draw(screen *ebiten.Image) {
	screen.Fill(galleryBackground)
	if len(g.Pages) == 0 {
		ebitenutil.DebugPrint(screen, "no cases")
		return
	}
	page := g.Pages[g.Index]

	header := fmt.Sprintf("%s   [%d/%d]  <- / -> to browse, Esc to quit", page.Title, g.Index+1, len(g.Pages))
	ebitenutil.DebugPrintAt(screen, header, 10, 4)

	if page.Err == nil {
		g.drawDiagram(screen, page)
	}

	// Interpretation panel
	panelY := float32(g.Height - PanelHeight)
	vector.FillRect(screen, 0, panelY, float32(g.Width), PanelHeight, galleryPanel, true)
	ebitenutil.DebugPrintAt(screen, ASCII(PanelText(page)), 10, int(panelY)+6)
}

func (g *Gallery) drawDiagram(screen *ebiten.Image, page Page) {
	a := page.Analysis
	vp := NewViewport(a.Bounds, g.DiagramRect())

	line := func(p, q common.Vec2, width float32, clr color.Color) {
		x0, y0 := vp.ToScreen(p)
		x1, y1 := vp.ToScreen(q)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}

	// Grid and axes through the origin
	xs, ys := GridLines(a.Bounds)
	for _, x := range xs {
		line(common.Vec2{X: x, Y: a.Bounds.MinY}, common.Vec2{X: x, Y: a.Bounds.MaxY}, 1, galleryGrid)
	}
	for _, y := range ys {
		line(common.Vec2{X: a.Bounds.MinX, Y: y}, common.Vec2{X: a.Bounds.MaxX, Y: y}, 1, galleryGrid)
	}
	line(common.Vec2{X: a.Bounds.MinX}, common.Vec2{X: a.Bounds.MaxX}, 1, galleryAxis)
	line(common.Vec2{Y: a.Bounds.MinY}, common.Vec2{Y: a.Bounds.MaxY}, 1, galleryAxis)

	// Parallelogram
	ring := a.Parallelogram.Coords()[0]
	var path vector.Path
	for i, c := range ring {
		sx, sy := vp.ToScreen(common.Vec2FromCoord(c))
		if i == 0 {
			path.MoveTo(float32(sx), float32(sy))
		} else {
			path.LineTo(float32(sx), float32(sy))
		}
	}
	path.Close()
	fillPath(screen, &path, ColorParallelogram, ParallelogramAlpha)
	for i := 0; i+1 < len(ring); i++ {
		line(common.Vec2FromCoord(ring[i]), common.Vec2FromCoord(ring[i+1]), 1, ColorEdge)
	}

	// Vectors
	drawArrow(screen, vp.ArrowFor(a.X), ColorX)
	drawArrow(screen, vp.ArrowFor(a.Y), ColorY)

	// Area label at the centroid
	label := AreaLabel(a)
	cx, cy := vp.ToScreen(a.Centroid)
	ebitenutil.DebugPrintAt(screen, label, int(cx)-len(label)*3, int(cy)-8)

	// Legend
	legendX := g.Width - LegendWidth + 10
	vector.FillRect(screen, float32(legendX), TitleHeight, 10, 10, ColorX, false)
	ebitenutil.DebugPrintAt(screen, VectorLabel("X", a.X), legendX+14, TitleHeight-3)
	vector.FillRect(screen, float32(legendX), TitleHeight+20, 10, 10, ColorY, false)
	ebitenutil.DebugPrintAt(screen, VectorLabel("Y", a.Y), legendX+14, TitleHeight+17)
}

func (g *Gallery) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.Width, g.Height
}

func drawArrow(screen *ebiten.Image, a Arrow, clr color.RGBA) {
	vector.StrokeLine(screen, float32(a.FromX), float32(a.FromY), float32(a.ToX), float32(a.ToY), 2, clr, true)

	var head vector.Path
	head.MoveTo(float32(a.ToX), float32(a.ToY))
	head.LineTo(float32(a.LX), float32(a.LY))
	head.LineTo(float32(a.RX), float32(a.RY))
	head.Close()
	fillPath(screen, &head, clr, 1)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color, alpha float32) {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(clr)
	cs.ScaleAlpha(alpha)
	vector.FillPath(screen, path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}
