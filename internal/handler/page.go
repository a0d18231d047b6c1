package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/presets"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
	"github.com/osse101/RaffleRate_Go/internal/sse"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageData is everything the page template renders
type PageData struct {
	Title        string
	Instructions []string
	Presets      []presets.Preset

	TicketsBought int
	TotalTickets  int
	NumDraws      int
	Speed         float64
	Speeds        []float64

	Limits PageLimits
	Labels PageLabels

	InvalidTickets string
	Frame          chart.Frame
	EventTypes     string
}

// PageLimits are the input bounds rendered into the form
type PageLimits struct {
	MinTickets int
	MaxTickets int
	MinDraws   int
	MaxDraws   int
}

// PageLabels are the catalog texts used by the page
type PageLabels struct {
	TicketsBought    string
	TotalTickets     string
	NumDraws         string
	Speed            string
	Draw             string
	Results          string
	Expected         string
	Observed         string
	Draws            string
	Presets          string
	ChartPlaceholder string
}

// HandlePage serves the single HTML page with the controls, results and chart
// GET /
func HandlePage(svc reveal.Service, source PresetSource, printer *reveal.Printer) http.HandlerFunc {
	if printer == nil {
		printer = reveal.DefaultPrinter()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := buildPageData(svc, source, printer)

		buf := getBuffer()
		defer putBuffer(buf)

		if err := pageTemplate.Execute(buf, data); err != nil {
			slog.Error(LogMsgPageRenderFailed, "error", err)
			http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func buildPageData(svc reveal.Service, source PresetSource, printer *reveal.Printer) PageData {
	snap := svc.State()

	data := PageData{
		Title:         printer.Text(reveal.MsgKeyTitle),
		TicketsBought: raffle.DefaultTicketsBought,
		TotalTickets:  raffle.DefaultTotalTickets,
		NumDraws:      raffle.DefaultNumDraws,
		Speed:         snap.State.Speed,
		Speeds:        speedOptions(),
		Limits: PageLimits{
			MinTickets: raffle.MinTicketsBought,
			MaxTickets: raffle.MaxTotalTickets,
			MinDraws:   raffle.MinNumDraws,
			MaxDraws:   raffle.MaxNumDraws,
		},
		Labels: PageLabels{
			TicketsBought:    printer.Text(reveal.MsgKeyTicketsBought),
			TotalTickets:     printer.Text(reveal.MsgKeyTotalTickets),
			NumDraws:         printer.Text(reveal.MsgKeyNumDraws),
			Speed:            printer.Text(reveal.MsgKeySpeed),
			Draw:             printer.Text(reveal.MsgKeyDrawButton),
			Results:          printer.Text(reveal.MsgKeyResultsHeading),
			Expected:         printer.Text(reveal.MsgKeyLabelExpected),
			Observed:         printer.Text(reveal.MsgKeyLabelObserved),
			Draws:            printer.Text(reveal.MsgKeyLabelDraws),
			Presets:          printer.Text(reveal.MsgKeyPresetsHeading),
			ChartPlaceholder: printer.Text(reveal.MsgKeyChartPlaceholder),
		},
		Frame:      svc.Frame(),
		EventTypes: sse.EventTypeFrame + "," + sse.EventTypeRunRejected,
	}

	// The form shows the last run's inputs
	if snap.Run != nil {
		data.TicketsBought = snap.Run.Input.TicketsBought
		data.TotalTickets = snap.Run.Input.TotalTickets
		data.NumDraws = snap.Run.Input.NumDraws
	}
	if msg, ok := snap.InvalidFields[raffle.FieldTicketsBought]; ok {
		data.InvalidTickets = msg
	}

	if source != nil {
		data.Instructions = source.Instructions()
		data.Presets = source.All()
	}
	if len(data.Instructions) == 0 {
		data.Instructions = []string{
			printer.Text(reveal.MsgKeyInstructionsP1),
			printer.Text(reveal.MsgKeyInstructionsP2),
		}
	}

	return data
}

func speedOptions() []float64 {
	var speeds []float64
	for s := ticker.MinSpeed; s <= ticker.MaxSpeed; s += ticker.SpeedStep {
		speeds = append(speeds, s)
	}
	return speeds
}
