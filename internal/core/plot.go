package core

import "fmt"

// CurveVocabulary lists the standard log curves the plotter looks for, in
// the order traces are drawn. Configuration data, not logic: adjust here
// without touching the plotting algorithm.
var CurveVocabulary = []string{"GR", "RHOB", "NPHI", "RT", "DT", "CALI", "SP"}

// TracePalette is the fixed color cycle for traces, assigned by trace
// position modulo palette length.
var TracePalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2",
}

const (
	chartTitle  = "Well Log Profiles"
	chartHeight = 800
	gridColor   = "rgba(128, 128, 128, 0.2)"
)

// ChartSpec is a declarative, Plotly-figure-shaped chart object. It is
// handed to the browser-side renderer as JSON and never persisted.
type ChartSpec struct {
	Traces []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one line series: curve values on X, depth on the shared Y.
// Nil points are gaps (empty or non-numeric cells).
type Trace struct {
	Name string     `json:"name"`
	X    []*float64 `json:"x"`
	Y    []*float64 `json:"y"`
	Mode string     `json:"mode"`
	Line LineStyle  `json:"line"`
}

// LineStyle holds per-trace line styling.
type LineStyle struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Layout carries the chart's presentation defaults. These are styling, not
// behavioral contracts; only the reversed depth axis is load-bearing.
type Layout struct {
	Title       Title  `json:"title"`
	Height      int    `json:"height"`
	ShowLegend  bool   `json:"showlegend"`
	Legend      Legend `json:"legend"`
	YAxis       Axis   `json:"yaxis"`
	XAxis       Axis   `json:"xaxis"`
	PlotBGColor string `json:"plot_bgcolor"`
}

// Title is a chart title block.
type Title struct {
	Text string `json:"text"`
}

// Legend styles the trace legend.
type Legend struct {
	YAnchor     string  `json:"yanchor"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor"`
	X           float64 `json:"x"`
	BGColor     string  `json:"bgcolor"`
	BorderColor string  `json:"bordercolor"`
	BorderWidth int     `json:"borderwidth"`
}

// Axis styles one chart axis. Autorange "reversed" flips the depth axis so
// depth increases downward.
type Axis struct {
	Title     Title  `json:"title"`
	Autorange string `json:"autorange,omitempty"`
	ShowGrid  bool   `json:"showgrid"`
	GridWidth int    `json:"gridwidth"`
	GridColor string `json:"gridcolor"`
	ZeroLine  bool   `json:"zeroline"`
}

// PlotCurves builds a depth-indexed multi-curve chart from the dataset.
// Curves are the vocabulary intersection in vocabulary order; when none
// match, every non-depth column is plotted instead. When nothing remains,
// an EmptyPlot error signals "no plottable data" — the caller surfaces it
// as a notice, not a failure.
//
// Calling twice on identical inputs yields identical trace ordering and
// color assignments.
func PlotCurves(ds *Dataset, depthCol string) (*ChartSpec, error) {
	var curves []string
	for _, name := range CurveVocabulary {
		if ds.Has(name) {
			curves = append(curves, name)
		}
	}

	if len(curves) == 0 {
		for _, c := range ds.Columns {
			if c.Name != depthCol {
				curves = append(curves, c.Name)
			}
		}
	}

	if len(curves) == 0 {
		return nil, convErr(EmptyPlot, "no curves to plot")
	}

	depth, ok := ds.Column(depthCol)
	if !ok {
		return nil, convErr(EmptyPlot, "depth column %q not found", depthCol)
	}
	depthValues := depth.LooseFloats()

	traces := make([]Trace, len(curves))
	for i, name := range curves {
		col, _ := ds.Column(name)
		traces[i] = Trace{
			Name: name,
			X:    col.LooseFloats(),
			Y:    depthValues,
			Mode: "lines",
			Line: LineStyle{
				Color: TracePalette[i%len(TracePalette)],
				Width: 1.5,
			},
		}
	}

	return &ChartSpec{
		Traces: traces,
		Layout: Layout{
			Title:      Title{Text: chartTitle},
			Height:     chartHeight,
			ShowLegend: true,
			Legend: Legend{
				YAnchor:     "top",
				Y:           0.99,
				XAnchor:     "right",
				X:           0.99,
				BGColor:     "rgba(255, 255, 255, 0.8)",
				BorderColor: "rgba(0, 0, 0, 0.2)",
				BorderWidth: 1,
			},
			YAxis: Axis{
				Title:     Title{Text: fmt.Sprintf("Depth (%s)", depthCol)},
				Autorange: "reversed",
				ShowGrid:  true,
				GridWidth: 1,
				GridColor: gridColor,
			},
			XAxis: Axis{
				ShowGrid:  true,
				GridWidth: 1,
				GridColor: gridColor,
			},
			PlotBGColor: "white",
		},
	}, nil
}
