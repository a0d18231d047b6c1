package reveal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	MsgKeyAnnouncement     = "reveal.announcement"
	MsgKeyLabelExpected    = "label.expected_win_rate"
	MsgKeyLabelObserved    = "label.observed_win_rate"
	MsgKeyLabelDraws       = "label.draws"
	MsgKeyInstructionsP1   = "instructions.probability"
	MsgKeyInstructionsP2   = "instructions.try_it"
	MsgKeyTicketsBought    = "input.tickets_bought"
	MsgKeyTotalTickets     = "input.total_tickets"
	MsgKeyNumDraws         = "input.num_draws"
	MsgKeySpeed            = "input.speed"
	MsgKeyDrawButton       = "input.draw"
	MsgKeyTitle            = "page.title"
	MsgKeyResultsHeading   = "results.heading"
	MsgKeyInvalidTickets   = "input.tickets_bought.invalid"
	MsgKeyPresetsHeading   = "presets.heading"
	MsgKeyChartPlaceholder = "chart.placeholder"
)

func init() {
	lang := language.English

	message.SetString(lang, MsgKeyAnnouncement, "Line chart showing the observed win rate %s and expected win rate %s after %d draws")

	// Result labels
	message.SetString(lang, MsgKeyLabelExpected, "Expected win rate: ")
	message.SetString(lang, MsgKeyLabelObserved, "Observed win rate: ")
	message.SetString(lang, MsgKeyLabelDraws, "Draws: ")
	message.SetString(lang, MsgKeyResultsHeading, "Results")

	// Instructions
	message.SetString(lang, MsgKeyInstructionsP1, "The probability of winning a raffle with n tickets, where you buy x tickets, and one winning ticket is drawn, is x/n.")
	message.SetString(lang, MsgKeyInstructionsP2, "Enter the number of tickets bought (x) and the total number of tickets (n), and set the number of draws as 10. Is the observed win rate the same as the expected win rate? What about if you draw 20 times? 50 times?")

	// Controls
	message.SetString(lang, MsgKeyTitle, "Raffle draws")
	message.SetString(lang, MsgKeyTicketsBought, "Number of tickets bought (x)")
	message.SetString(lang, MsgKeyTotalTickets, "Total number of tickets (n)")
	message.SetString(lang, MsgKeyNumDraws, "Number of draws")
	message.SetString(lang, MsgKeySpeed, "Draw speed (draws per second)")
	message.SetString(lang, MsgKeyDrawButton, "Draw")
	message.SetString(lang, MsgKeyInvalidTickets, "Number of tickets bought must be less than total tickets")
	message.SetString(lang, MsgKeyPresetsHeading, "Try these")
	message.SetString(lang, MsgKeyChartPlaceholder, "Chart of observed and expected wins")
}
