package flightsearch

import (
	"fmt"

	"tazaticket/models"
)

// catalogResponse mirrors the slice of the provider response the bot reads:
// the first offering's journeys and its total price. Everything else is
// ignored on purpose.
type catalogResponse struct {
	CatalogProductOfferingsResponse struct {
		CatalogProductOfferings []struct {
			Product struct {
				Journey []struct {
					Segment []struct {
						DepartureAirport  airportValue `json:"DepartureAirport"`
						ArrivalAirport    airportValue `json:"ArrivalAirport"`
						DepartureDateTime string       `json:"DepartureDateTime"`
						ArrivalDateTime   string       `json:"ArrivalDateTime"`
					} `json:"Segment"`
				} `json:"Journey"`
			} `json:"Product"`
			Pricing struct {
				TotalPrice struct {
					Value        float64 `json:"value"`
					CurrencyCode string  `json:"currencyCode"`
				} `json:"TotalPrice"`
			} `json:"Pricing"`
		} `json:"CatalogProductOfferings"`
	} `json:"CatalogProductOfferingsResponse"`
}

// reduce picks the best (first) offering out of the decoded response. A
// response with no offerings reduces to nil results, not an error: "no
// flights" is a normal outcome.
func (r *catalogResponse) reduce() (*models.SearchResults, error) {
	offerings := r.CatalogProductOfferingsResponse.CatalogProductOfferings
	if len(offerings) == 0 {
		return nil, nil
	}
	best := offerings[0]
	if len(best.Product.Journey) == 0 {
		return nil, fmt.Errorf("offering carries no journey details")
	}

	results := &models.SearchResults{
		Price:    best.Pricing.TotalPrice.Value,
		Currency: best.Pricing.TotalPrice.CurrencyCode,
	}
	if results.Currency == "" {
		results.Currency = "USD"
	}

	for _, journey := range best.Product.Journey {
		var summary models.JourneySummary
		for _, seg := range journey.Segment {
			summary.Segments = append(summary.Segments, models.JourneySegment{
				From:      seg.DepartureAirport.Value,
				To:        seg.ArrivalAirport.Value,
				Departure: clipMinute(seg.DepartureDateTime),
				Arrival:   clipMinute(seg.ArrivalDateTime),
			})
		}
		results.Journeys = append(results.Journeys, summary)
	}
	return results, nil
}

// clipMinute trims provider timestamps to YYYY-MM-DDTHH:MM.
func clipMinute(ts string) string {
	if len(ts) > 16 {
		return ts[:16]
	}
	return ts
}
