// Package chart holds the plotly-compatible figure model sent to clients.
package chart

// Figure is serialised as a plotly figure ({data, layout}) so the page can
// pass it straight to Plotly.react.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scatter series
type Trace struct {
	Type          string    `json:"type"`
	X             []int     `json:"x"`
	Y             []float64 `json:"y"`
	Name          string    `json:"name"`
	Mode          string    `json:"mode"`
	Marker        Marker    `json:"marker"`
	HoverTemplate string    `json:"hovertemplate"`
}

// Marker sets the trace colour
type Marker struct {
	Color string `json:"color"`
}

// Layout mirrors the subset of plotly layout options the page uses
type Layout struct {
	Margin   Margin `json:"margin"`
	Height   int    `json:"height"`
	Font     Font   `json:"font"`
	XAxis    Axis   `json:"xaxis"`
	YAxis    Axis   `json:"yaxis"`
	DragMode bool   `json:"dragmode"`
}

// Margin in pixels
type Margin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

// Font settings
type Font struct {
	Size int `json:"size"`
}

// Axis is an axis with a fixed range
type Axis struct {
	Title AxisTitle  `json:"title"`
	Range [2]float64 `json:"range"`
}

// AxisTitle is the axis label
type AxisTitle struct {
	Text string `json:"text"`
}

// NewLayout returns the shared layout with the given axis ranges
func NewLayout(xRange, yRange [2]float64) Layout {
	return Layout{
		Margin: Margin{T: MarginTop, B: MarginBottom, L: MarginLeft, R: MarginRight},
		Height: Height,
		Font:   Font{Size: FontSize},
		XAxis:  Axis{Title: AxisTitle{Text: XAxisTitle}, Range: xRange},
		YAxis:  Axis{Title: AxisTitle{Text: YAxisTitle}, Range: yRange},
	}
}

// BlankFigure is shown before the first simulation
func BlankFigure() Figure {
	return Figure{
		Data:   []Trace{},
		Layout: NewLayout(BlankXRange, BlankYRange),
	}
}

// ObservedTrace builds the observed-wins line
func ObservedTrace(x []int, y []float64) Trace {
	return Trace{
		Type:          TraceTypeScatter,
		X:             x,
		Y:             y,
		Name:          TraceNameObserved,
		Mode:          ModeLines,
		Marker:        Marker{Color: ColorObserved},
		HoverTemplate: HoverObserved,
	}
}

// ExpectedTrace builds the expected-wins series. markers switches it from a line
// to discrete points so it stays visible on top of an identical observed line.
func ExpectedTrace(x []int, y []float64, markers bool) Trace {
	mode := ModeLines
	if markers {
		mode = ModeMarkers
	}
	return Trace{
		Type:          TraceTypeScatter,
		X:             x,
		Y:             y,
		Name:          TraceNameExpected,
		Mode:          mode,
		Marker:        Marker{Color: ColorExpected},
		HoverTemplate: HoverExpected,
	}
}
