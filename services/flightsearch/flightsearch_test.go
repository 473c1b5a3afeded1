package flightsearch

import (
	"encoding/json"
	"testing"

	"tazaticket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadOneWay(t *testing.T) {
	req := &models.SearchRequest{
		Passengers: 2,
		Legs: []models.FlightLeg{
			{Origin: "NYC", Destination: "LON", DepartureDate: "2025-09-10"},
		},
	}

	p := BuildPayload(req)

	assert.Equal(t, "CatalogProductOfferingsQueryRequest", p.Type)
	r := p.CatalogProductOfferingsRequest
	assert.Equal(t, "CatalogProductOfferingsRequestAir", r.Type)
	assert.Equal(t, 1, r.MaxNumberOfUpsellsToReturn)
	assert.Equal(t, []string{"GDS"}, r.ContentSourceList)
	require.Len(t, r.PassengerCriteria, 1)
	assert.Equal(t, 2, r.PassengerCriteria[0].Number)
	assert.Equal(t, 25, r.PassengerCriteria[0].Age)
	assert.Equal(t, "ADT", r.PassengerCriteria[0].PassengerTypeCode)
	require.Len(t, r.SearchCriteriaFlight, 1)
	assert.Equal(t, "NYC", r.SearchCriteriaFlight[0].From.Value)
	assert.Equal(t, "LON", r.SearchCriteriaFlight[0].To.Value)
	assert.Equal(t, "2025-09-10", r.SearchCriteriaFlight[0].DepartureDate)
	assert.Equal(t, "Journey", r.CustomResponseModifiersAir.SearchRepresentation)
	assert.Equal(t, DefaultPreferredCarriers, r.SearchModifiersAir.CarrierPreference[0].Carriers)
}

func TestBuildPayloadRoundTrip(t *testing.T) {
	req := &models.SearchRequest{
		Passengers: 1,
		Legs: []models.FlightLeg{
			{Origin: "NYC", Destination: "LON", DepartureDate: "2025-09-10"},
			{Origin: "LON", Destination: "NYC", DepartureDate: "2025-09-17"},
		},
	}

	r := BuildPayload(req).CatalogProductOfferingsRequest
	require.Len(t, r.SearchCriteriaFlight, 2)
	assert.Equal(t, "LON", r.SearchCriteriaFlight[1].From.Value)
	assert.Equal(t, "NYC", r.SearchCriteriaFlight[1].To.Value)
	assert.Equal(t, "2025-09-17", r.SearchCriteriaFlight[1].DepartureDate)
}

func TestBuildPayloadDefaultsPassengerCount(t *testing.T) {
	req := &models.SearchRequest{
		Legs: []models.FlightLeg{{Origin: "NYC", Destination: "LON", DepartureDate: "2025-09-10"}},
	}
	r := BuildPayload(req).CatalogProductOfferingsRequest
	assert.Equal(t, 1, r.PassengerCriteria[0].Number)
}

const sampleResponse = `{
  "CatalogProductOfferingsResponse": {
    "CatalogProductOfferings": [
      {
        "Product": {
          "Journey": [
            {
              "Segment": [
                {
                  "DepartureAirport": {"value": "JFK"},
                  "ArrivalAirport": {"value": "CDG"},
                  "DepartureDateTime": "2025-09-10T18:30:00.000+01:00",
                  "ArrivalDateTime": "2025-09-11T07:45:00.000+01:00"
                },
                {
                  "DepartureAirport": {"value": "CDG"},
                  "ArrivalAirport": {"value": "LHR"},
                  "DepartureDateTime": "2025-09-11T09:30:00.000+01:00",
                  "ArrivalDateTime": "2025-09-11T10:05:00.000+01:00"
                }
              ]
            },
            {
              "Segment": [
                {
                  "DepartureAirport": {"value": "LHR"},
                  "ArrivalAirport": {"value": "JFK"},
                  "DepartureDateTime": "2025-09-17T11:00:00.000+01:00",
                  "ArrivalDateTime": "2025-09-17T14:10:00.000-04:00"
                }
              ]
            }
          ]
        },
        "Pricing": {
          "TotalPrice": {"value": 624.40, "currencyCode": "USD"}
        }
      }
    ]
  }
}`

func TestReduceResponse(t *testing.T) {
	var decoded catalogResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &decoded))

	results, err := decoded.reduce()
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Len(t, results.Journeys, 2)
	assert.Equal(t, 1, results.Journeys[0].Stops())
	assert.Equal(t, 0, results.Journeys[1].Stops())
	assert.Equal(t, "JFK", results.Journeys[0].Segments[0].From)
	assert.Equal(t, "2025-09-10T18:30", results.Journeys[0].Segments[0].Departure)
	assert.Equal(t, 624.40, results.Price)
	assert.Equal(t, "USD", results.Currency)
}

func TestReduceEmptyResponse(t *testing.T) {
	var decoded catalogResponse
	require.NoError(t, json.Unmarshal([]byte(`{"CatalogProductOfferingsResponse":{"CatalogProductOfferings":[]}}`), &decoded))

	results, err := decoded.reduce()
	require.NoError(t, err)
	assert.Nil(t, results, "no offerings is a normal outcome, not an error")
}

func TestFormatResults(t *testing.T) {
	results := &models.SearchResults{
		Price:    624.40,
		Currency: "USD",
		Journeys: []models.JourneySummary{
			{Segments: []models.JourneySegment{
				{From: "JFK", To: "CDG", Departure: "2025-09-10T18:30", Arrival: "2025-09-11T07:45"},
				{From: "CDG", To: "LHR", Departure: "2025-09-11T09:30", Arrival: "2025-09-11T10:05"},
			}},
			{Segments: []models.JourneySegment{
				{From: "LHR", To: "JFK", Departure: "2025-09-17T11:00", Arrival: "2025-09-17T14:10"},
			}},
		},
	}

	got := FormatResults(results)
	assert.Contains(t, got, "Outbound: JFK → LHR")
	assert.Contains(t, got, "Return: LHR → JFK")
	assert.Contains(t, got, "Stops: 1")
	assert.Contains(t, got, "Direct flight")
	assert.Contains(t, got, "Departure: 2025-09-10 18:30")
	assert.Contains(t, got, "💰 Price: 624.40 USD")
	assert.Contains(t, got, "more options")
}

func TestFormatResultsEmpty(t *testing.T) {
	assert.Equal(t, NoResultsMessage, FormatResults(nil))
	assert.Equal(t, NoResultsMessage, FormatResults(&models.SearchResults{}))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "no flights found", Summarize(nil))
	got := Summarize(&models.SearchResults{
		Price: 120.5, Currency: "EUR",
		Journeys: []models.JourneySummary{{}},
	})
	assert.Equal(t, "1 journey(s), best price 120.50 EUR", got)
}
