package chart

// Trace styling
const (
	TraceTypeScatter  = "scatter"
	TraceNameObserved = "Observed wins"
	TraceNameExpected = "Expected wins"
	ModeLines         = "lines"
	ModeMarkers       = "markers"
	ColorObserved     = "#9eab05"
	ColorExpected     = "#d10373"
	HoverObserved     = "Number of observed wins: %{y}<br>Number of draws: %{x}<extra></extra>"
	HoverExpected     = "Number of expected wins: %{y}<br>Number of draws: %{x}<extra></extra>"
)

// Layout values
const (
	MarginTop    = 20
	MarginBottom = 10
	MarginLeft   = 20
	MarginRight  = 20
	Height       = 375
	FontSize     = 14
	XAxisTitle   = "Number of draws"
	YAxisTitle   = "Wins"

	// AxisPadding keeps the first and last points off the plot edges
	AxisPadding = 0.1
)

// Ranges of the empty chart
var (
	BlankXRange = [2]float64{0, 5}
	BlankYRange = [2]float64{0, 3}
)
