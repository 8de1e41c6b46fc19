package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"vector-ops-visualizer/internal/demo"
	"vector-ops-visualizer/internal/render"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the output
// ============================================================================

// Render window / exported image dimensions
const (
	WindowWidth  = 1000
	WindowHeight = 900
)

const (
	WindowTitle      = "2D Vector Operations"
	DefaultExportDir = "" // Empty disables PNG export
	CustomCaseTitle  = " (Custom Vectors)"
)

// ============================================================================

func main() {
	window := flag.Bool("window", false, "show the diagrams in a window")
	outDir := flag.String("out", DefaultExportDir, "directory to write case-<n>.png diagrams to")
	xFlag := flag.String("x", "", "comma separated components of X; with -y replaces the demo cases")
	yFlag := flag.String("y", "", "comma separated components of Y")
	flag.Parse()

	cases := demo.DefaultCases()
	if *xFlag != "" || *yFlag != "" {
		x, err := parseVector(*xFlag)
		if err != nil {
			log.Fatalf("-x: %v", err)
		}
		y, err := parseVector(*yFlag)
		if err != nil {
			log.Fatalf("-y: %v", err)
		}
		cases = []demo.Case{{X: x, Y: y, Title: CustomCaseTitle}}
	}

	var sink demo.Sink
	if *outDir != "" {
		exporter, err := render.NewExporter(*outDir, WindowWidth, WindowHeight)
		if err != nil {
			log.Fatal(err)
		}
		sink = func(n int, page render.Page) error {
			path, err := exporter.Export(n, page)
			if err != nil {
				return err
			}
			log.Printf("wrote %s", path)
			return nil
		}
	}

	report := demo.Run(os.Stdout, cases, sink)

	if *window {
		gallery := render.NewGallery(report.Pages(), WindowWidth, WindowHeight)
		if err := gallery.Run(WindowTitle); err != nil {
			log.Fatal(err)
		}
	}

	if report.Failed > 0 && len(cases) == 1 {
		os.Exit(1)
	}
}

// parseVector reads "1, 2.5" style input. Any number of components is
// accepted here; dimensionality is checked by the analysis.
func parseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	v := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", f, err)
		}
		v = append(v, n)
	}
	return v, nil
}
