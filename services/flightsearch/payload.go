// Package flightsearch talks to the Travelport-style catalog search API:
// password-grant OAuth, CatalogProductOfferings payloads, and reduction of the
// provider response to the handful of fields that drive replies.
package flightsearch

import "tazaticket/models"

const defaultPassengerAge = 25

// DefaultPreferredCarriers is the fixed carrier preference attached to every
// search.
var DefaultPreferredCarriers = []string{
	"AA", "DL", "UA", "LH", "BA", "AF", "KL", "EK", "QR", "SQ",
	"CX", "TK", "AC", "NH", "JL", "AZ", "LX", "OS", "SN", "SK",
	"EY", "GF", "SV", "MS", "RJ", "WY", "TG", "CI", "BR", "PR",
	"FR", "U2", "WN", "B6", "NK", "F9", "G4", "SY", "PC", "XY",
	"IB", "AY", "KE", "ZH", "MU", "CA", "CZ", "FM", "HU", "9W",
}

type airportValue struct {
	Value string `json:"value"`
}

type searchCriteriaFlight struct {
	Type          string       `json:"@type"`
	DepartureDate string       `json:"departureDate"`
	From          airportValue `json:"From"`
	To            airportValue `json:"To"`
}

type passengerCriteria struct {
	Type              string `json:"@type"`
	Number            int    `json:"number"`
	Age               int    `json:"age"`
	PassengerTypeCode string `json:"passengerTypeCode"`
}

type carrierPreference struct {
	Type           string   `json:"@type"`
	PreferenceType string   `json:"preferenceType"`
	Carriers       []string `json:"carriers"`
}

type searchModifiersAir struct {
	Type              string              `json:"@type"`
	CarrierPreference []carrierPreference `json:"CarrierPreference"`
}

type customResponseModifiersAir struct {
	Type                 string `json:"@type"`
	SearchRepresentation string `json:"SearchRepresentation"`
}

type offeringsRequest struct {
	Type                       string                     `json:"@type"`
	MaxNumberOfUpsellsToReturn int                        `json:"maxNumberOfUpsellsToReturn"`
	ContentSourceList          []string                   `json:"contentSourceList"`
	PassengerCriteria          []passengerCriteria        `json:"PassengerCriteria"`
	SearchCriteriaFlight       []searchCriteriaFlight     `json:"SearchCriteriaFlight"`
	SearchModifiersAir         searchModifiersAir         `json:"SearchModifiersAir"`
	CustomResponseModifiersAir customResponseModifiersAir `json:"CustomResponseModifiersAir"`
}

// Payload is the full catalog search request body.
type Payload struct {
	Type                           string           `json:"@type"`
	CatalogProductOfferingsRequest offeringsRequest `json:"CatalogProductOfferingsRequest"`
}

// BuildPayload maps a normalized SearchRequest onto the provider's wire shape:
// one SearchCriteriaFlight per leg, a single adult passenger criteria carrying
// the count, preferred carriers and the Journey search representation.
func BuildPayload(req *models.SearchRequest) *Payload {
	criteria := make([]searchCriteriaFlight, 0, len(req.Legs))
	for _, leg := range req.Legs {
		criteria = append(criteria, searchCriteriaFlight{
			Type:          "SearchCriteriaFlight",
			DepartureDate: leg.DepartureDate,
			From:          airportValue{Value: leg.Origin},
			To:            airportValue{Value: leg.Destination},
		})
	}

	passengers := req.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	return &Payload{
		Type: "CatalogProductOfferingsQueryRequest",
		CatalogProductOfferingsRequest: offeringsRequest{
			Type:                       "CatalogProductOfferingsRequestAir",
			MaxNumberOfUpsellsToReturn: 1,
			ContentSourceList:          []string{"GDS"},
			PassengerCriteria: []passengerCriteria{{
				Type:              "PassengerCriteria",
				Number:            passengers,
				Age:               defaultPassengerAge,
				PassengerTypeCode: "ADT",
			}},
			SearchCriteriaFlight: criteria,
			SearchModifiersAir: searchModifiersAir{
				Type: "SearchModifiersAir",
				CarrierPreference: []carrierPreference{{
					Type:           "CarrierPreference",
					PreferenceType: "Preferred",
					Carriers:       DefaultPreferredCarriers,
				}},
			},
			CustomResponseModifiersAir: customResponseModifiersAir{
				Type:                 "CustomResponseModifiersAir",
				SearchRepresentation: "Journey",
			},
		},
	}
}
