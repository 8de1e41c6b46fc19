package render

import (
	"fmt"
	"strings"

	"vector-ops-visualizer/internal/common"
	"vector-ops-visualizer/internal/geometry"
)

// AreaLabel is the text drawn at the parallelogram centroid.
func AreaLabel(a geometry.Analysis) string {
	return fmt.Sprintf("Area = %g", a.Scalars.Cross)
}

// VectorLabel is the legend entry for a named vector.
func VectorLabel(name string, v common.Vec2) string {
	return fmt.Sprintf("%s = [%g, %g]", name, v.X, v.Y)
}

// PanelText is the interpretation block shown under a diagram, or the error
// for a page that failed.
func PanelText(p Page) string {
	if p.Err != nil {
		return "Error: " + p.Err.Error()
	}
	return geometry.Interpretation(p.Analysis)
}

// The debug font and Hershey fonts only cover ASCII.
var asciiReplacer = strings.NewReplacer(
	"·", ".",
	"×", "x",
	"θ", "theta",
	"≈", "~",
	"°", " deg",
)

// ASCII rewrites the math symbols used in the interpretation text.
func ASCII(s string) string {
	return asciiReplacer.Replace(s)
}
