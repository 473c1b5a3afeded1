package models

import "time"

// FlightLeg is one directional segment of a search: where from, where to, when.
type FlightLeg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"` // YYYY-MM-DD
}

// SearchRequest is the normalized provider-agnostic search derived from a complete
// conversation state. One leg for one-way, two for round trips (second leg has
// origin/destination swapped). Building it is idempotent: same state, same request.
type SearchRequest struct {
	Legs       []FlightLeg `json:"legs"`
	Passengers int         `json:"passengers"`
}

// JourneySegment is one flown segment inside a provider journey.
type JourneySegment struct {
	From      string // departure airport code
	To        string // arrival airport code
	Departure string // YYYY-MM-DDTHH:MM
	Arrival   string // YYYY-MM-DDTHH:MM
}

// JourneySummary is one bound (outbound or return) of a priced offer.
type JourneySummary struct {
	Segments []JourneySegment
}

// Stops is the number of connections in the journey.
func (j JourneySummary) Stops() int {
	if len(j.Segments) == 0 {
		return 0
	}
	return len(j.Segments) - 1
}

// SearchResults is the reduced view of a provider response: the best offer's
// journeys plus its total price. Only what drives the reply is modeled here.
type SearchResults struct {
	Journeys []JourneySummary
	Price    float64
	Currency string
}

// SearchRecord is the archived trace of one executed search.
type SearchRecord struct {
	ID         string      `bson:"id" json:"id"`
	UserID     string      `bson:"userId" json:"userId"`
	Legs       []FlightLeg `bson:"legs" json:"legs"`
	Passengers int         `bson:"passengers" json:"passengers"`
	TripType   string      `bson:"tripType" json:"tripType"`
	Success    bool        `bson:"success" json:"success"`
	Summary    string      `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
}
