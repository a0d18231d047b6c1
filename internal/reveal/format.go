package reveal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// Percent formats a fraction as a percentage with two decimals, e.g. 0.3 -> "30.00%".
// Ties round to even: 0.00125 -> "0.12%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Mul(hundred).RoundBank(percentPlaces).StringFixed(percentPlaces) + "%"
}

// Printer renders catalog messages for one language
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a printer for tag. Unknown tags fall back to English.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

// DefaultPrinter prints English catalog strings
func DefaultPrinter() *Printer {
	return NewPrinter(language.English)
}

// Announcement is the screen-reader sentence for a frame
func (p *Printer) Announcement(observed, expected float64, draws int) string {
	return p.p.Sprintf(MsgKeyAnnouncement, Percent(observed), Percent(expected), draws)
}

// Text returns the catalog string for key
func (p *Printer) Text(key string) string {
	return p.p.Sprintf(key)
}
