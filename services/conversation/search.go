package conversation

import (
	"fmt"

	"tazaticket/models"
)

// MultiCityNote is surfaced to the user whenever a multi-city request is
// degraded to its first leg. Known limitation, kept deliberate and visible.
const MultiCityNote = "Multi-city trips are currently searched as a one-way using the first leg."

// MissingSlots returns the required slots the state still lacks, in the fixed
// priority order they are asked for: origin, destination, departure date,
// return date (round trips only), then passengers and trip type. The order is
// a contract; tests assert on which slot is asked for first.
func MissingSlots(s *models.ConversationState) []string {
	var missing []string
	if s.Origin == "" {
		missing = append(missing, models.MissingOrigin)
	}
	if s.Destination == "" {
		missing = append(missing, models.MissingDestination)
	}
	if s.Dates.Depart == "" {
		missing = append(missing, models.MissingDepartureDate)
	}
	if s.TripType == models.TripTypeReturn && s.Dates.Return == "" {
		missing = append(missing, models.MissingReturnDate)
	}
	if s.Passengers <= 0 {
		missing = append(missing, models.MissingPassengers)
	}
	if s.TripType == "" {
		missing = append(missing, models.MissingTripType)
	}
	return missing
}

// BuildSearchRequest derives the search from a complete state. One-way gives
// one leg; round trips add a second leg with origin/destination swapped;
// multi-city degrades to the first leg and returns MultiCityNote. Idempotent:
// the same state always yields the same request.
func BuildSearchRequest(s *models.ConversationState) (*models.SearchRequest, string, error) {
	if s.Origin == "" || s.Destination == "" || s.Dates.Depart == "" || s.Passengers <= 0 {
		return nil, "", fmt.Errorf("state is not complete enough to search")
	}

	req := &models.SearchRequest{
		Passengers: s.Passengers,
		Legs: []models.FlightLeg{{
			Origin:        s.Origin,
			Destination:   s.Destination,
			DepartureDate: s.Dates.Depart,
		}},
	}

	switch s.TripType {
	case models.TripTypeReturn:
		if s.Dates.Return == "" {
			return nil, "", fmt.Errorf("round trip without a return date")
		}
		req.Legs = append(req.Legs, models.FlightLeg{
			Origin:        s.Destination,
			Destination:   s.Origin,
			DepartureDate: s.Dates.Return,
		})
		return req, "", nil
	case models.TripTypeMultiCity:
		return req, MultiCityNote, nil
	default:
		return req, "", nil
	}
}
