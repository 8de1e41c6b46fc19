// Package demo runs a fixed batch of named vector pairs and reports each one.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"vector-ops-visualizer/internal/geometry"
	"vector-ops-visualizer/internal/render"
)

// Case is one named vector pair.
type Case struct {
	X, Y  []float64
	Title string // Appended to the diagram title
}

// DefaultCases returns the demo batch. The last case is malformed on purpose.
func DefaultCases() []Case {
	return []Case{
		{X: []float64{2, 3}, Y: []float64{4, 1}, Title: " (Case 1: General Vectors)"},
		{X: []float64{4, 1}, Y: []float64{2, 3}, Title: " (Case 2: Swapped Vectors - Negative Area)"},
		{X: []float64{2, 2}, Y: []float64{-2, 2}, Title: " (Case 3: Orthogonal Vectors)"},
		{X: []float64{3, 1}, Y: []float64{6, 2}, Title: " (Case 4: Collinear Vectors)"},
		{X: []float64{-1, -2}, Y: []float64{-3, 1}, Title: " (Case 5: Negative Components)"},
		{X: []float64{0, 0}, Y: []float64{2, 3}, Title: " (Case 6: Zero Vector X)"},
		{X: []float64{2, 3}, Y: []float64{0, 0}, Title: " (Case 7: Zero Vector Y)"},
		{X: []float64{1, 2, 3}, Y: []float64{1, 2}, Title: " (Case 8: Three-Component X)"},
	}
}

// Sink receives every successfully analysed page, numbered from 1.
type Sink func(n int, page render.Page) error

// Result is the outcome of one case.
type Result struct {
	Case Case
	Page render.Page
	// SinkErr is set when the page was analysed but the sink failed.
	SinkErr error
}

// OK reports whether the case was analysed and delivered.
func (r Result) OK() bool {
	return r.Page.Err == nil && r.SinkErr == nil
}

// Report summarises a batch.
type Report struct {
	RunID   uuid.UUID
	Passed  int
	Failed  int
	Results []Result
}

// Pages returns the page of every case in order, failed ones included.
func (r Report) Pages() []render.Page {
	pages := make([]render.Page, 0, len(r.Results))
	for _, res := range r.Results {
		pages = append(pages, res.Page)
	}
	return pages
}

const separator = "------------------------------"

// Run analyses every case, writes a console report to w and passes each
// analysed page to sink, which may be nil. A failing case is reported and
// the batch continues.
func Run(w io.Writer, cases []Case, sink Sink) Report {
	report := Report{RunID: uuid.New()}
	fmt.Fprintf(w, "Run %s: %d cases\n\n", report.RunID, len(cases))

	for i, c := range cases {
		n := i + 1
		fmt.Fprintf(w, "--- Running Test Case %d ---\n", n)
		fmt.Fprintf(w, "Input Vector X: %s\n", formatVector(c.X))
		fmt.Fprintf(w, "Input Vector Y: %s\n", formatVector(c.Y))

		res := runCase(n, c, sink)
		switch {
		case res.Page.Err != nil:
			fmt.Fprintf(w, "Error: %v\n", res.Page.Err)
		case res.SinkErr != nil:
			fmt.Fprintln(w, geometry.Interpretation(res.Page.Analysis))
			fmt.Fprintf(w, "Error: render: %v\n", res.SinkErr)
		default:
			fmt.Fprintln(w, res.Page.Title)
			fmt.Fprintln(w, geometry.Interpretation(res.Page.Analysis))
		}
		fmt.Fprintf(w, "%s\n\n", separator)

		if res.OK() {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}

	fmt.Fprintf(w, "Done: %d passed, %d failed\n", report.Passed, report.Failed)
	return report
}

func runCase(n int, c Case, sink Sink) Result {
	page := render.Page{Title: geometry.Title(c.Title)}
	a, err := geometry.Analyze(c.X, c.Y)
	if err != nil {
		page.Err = err
		return Result{Case: c, Page: page}
	}
	page.Analysis = a

	res := Result{Case: c, Page: page}
	if sink != nil {
		res.SinkErr = sink(n, page)
	}
	return res
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
