package flightsearch

import (
	"fmt"
	"strings"

	"tazaticket/models"
)

// NoResultsMessage is the reply when the provider finds nothing.
const NoResultsMessage = "No flights found for your search criteria."

// FormatResults renders reduced search results as a WhatsApp message:
// outbound/return journey lines, stop counts, price, and a follow-up
// question.
func FormatResults(results *models.SearchResults) string {
	if results == nil || len(results.Journeys) == 0 {
		return NoResultsMessage
	}

	var b strings.Builder
	b.WriteString("✈️ Here are the best flights I found:\n\n")

	for i, journey := range results.Journeys {
		if i >= 2 {
			break
		}
		if len(journey.Segments) == 0 {
			continue
		}
		label := "Outbound"
		if i == 1 {
			label = "Return"
		}
		first := journey.Segments[0]
		last := journey.Segments[len(journey.Segments)-1]

		fmt.Fprintf(&b, "%s: %s → %s\n", label, first.From, last.To)
		fmt.Fprintf(&b, "Departure: %s\n", strings.Replace(first.Departure, "T", " ", 1))
		fmt.Fprintf(&b, "Arrival: %s\n", strings.Replace(last.Arrival, "T", " ", 1))
		if stops := journey.Stops(); stops > 0 {
			fmt.Fprintf(&b, "Stops: %d\n", stops)
		} else {
			b.WriteString("Direct flight\n")
		}
		b.WriteString("\n")
	}

	if results.Price > 0 {
		fmt.Fprintf(&b, "💰 Price: %.2f %s\n", results.Price, results.Currency)
	}
	b.WriteString("\nWould you like to see more options or book this flight?")
	return b.String()
}

// Summarize is the compact one-line form archived with a search record.
func Summarize(results *models.SearchResults) string {
	if results == nil || len(results.Journeys) == 0 {
		return "no flights found"
	}
	return fmt.Sprintf("%d journey(s), best price %.2f %s",
		len(results.Journeys), results.Price, results.Currency)
}
