package chart

// Frame is everything a client needs to draw one reveal step: the figure, the
// three result texts and the screen-reader announcement.
type Frame struct {
	RunID   string `json:"run_id"`
	Tick    int    `json:"tick"`
	MaxTick int    `json:"max_tick"`
	Final   bool   `json:"final"`
	Figure  Figure `json:"figure"`

	Probability  string `json:"probability"`
	WinRate      string `json:"win_rate"`
	Draws        string `json:"draws"`
	Announcement string `json:"announcement"`

	ProbabilityValue float64 `json:"probability_value"`
	WinRateValue     float64 `json:"win_rate_value"`
	DrawsShown       int     `json:"draws_shown"`
}

// BlankFrame is served before any run has rendered
func BlankFrame() Frame {
	return Frame{Figure: BlankFigure()}
}

// Empty reports whether the frame belongs to no run
func (f Frame) Empty() bool {
	return f.RunID == ""
}
