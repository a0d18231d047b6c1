package presets

import "github.com/osse101/RaffleRate_Go/internal/raffle"

// Preset is a named set of draw inputs offered next to the controls
type Preset struct {
	Name          string `yaml:"name" json:"name"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	TicketsBought int    `yaml:"tickets_bought" json:"tickets_bought"`
	TotalTickets  int    `yaml:"total_tickets" json:"total_tickets"`
	NumDraws      int    `yaml:"num_draws" json:"num_draws"`
}

// Input converts the preset to simulation input
func (p Preset) Input() raffle.Input {
	return raffle.Input{
		TicketsBought: p.TicketsBought,
		TotalTickets:  p.TotalTickets,
		NumDraws:      p.NumDraws,
	}
}

// Catalog is the parsed presets file
type Catalog struct {
	Version      int      `yaml:"version" json:"version"`
	Instructions []string `yaml:"instructions" json:"instructions"`
	Presets      []Preset `yaml:"presets" json:"presets"`
}
