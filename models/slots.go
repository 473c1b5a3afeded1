package models

// SlotPatch is the best-effort partial slot set extracted from one utterance.
// Every field is optional: empty string / zero means "not mentioned this turn".
// Origin, destination and the two dates carry the user's free-text mention, not
// canonical values; resolution and normalization happen in the conversation
// service before anything is merged.
type SlotPatch struct {
	Origin        string   `json:"origin,omitempty"`
	Destination   string   `json:"destination,omitempty"`
	DepartureDate string   `json:"departure_date,omitempty"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Passengers    int      `json:"passengers,omitempty"`
	TripType      string   `json:"trip_type,omitempty"`
	Language      string   `json:"language,omitempty"`      // BCP-47 guess for the utterance
	ResponseMode  string   `json:"response_mode,omitempty"` // set when the user asked for text/voice replies
	Ambiguous     []string `json:"clarification_needed,omitempty"`
}

// Empty reports whether the patch carries no information at all.
func (p *SlotPatch) Empty() bool {
	if p == nil {
		return true
	}
	return p.Origin == "" && p.Destination == "" && p.DepartureDate == "" &&
		p.ReturnDate == "" && p.Passengers == 0 && p.TripType == "" &&
		p.Language == "" && p.ResponseMode == "" && len(p.Ambiguous) == 0
}

// Action is the decision the conversation state machine hands back for a turn.
type Action string

const (
	ActionClarify    Action = "CLARIFY"
	ActionAskMissing Action = "ASK_MISSING"
	ActionSearch     Action = "SEARCH"
	ActionSmallTalk  Action = "SMALL_TALK"
	ActionOther      Action = "OTHER"
)

// Missing-slot names, in the fixed priority order they are asked for.
const (
	MissingOrigin        = "origin"
	MissingDestination   = "destination"
	MissingDepartureDate = "departure date"
	MissingReturnDate    = "return date"
	MissingPassengers    = "number of passengers"
	MissingTripType      = "trip type (one-way or return)"
)

// TurnResult is everything a single turn of the state machine produced.
type TurnResult struct {
	Action        Action             `json:"action"`
	Reply         string             `json:"reply"`
	MissingSlots  []string           `json:"missing_slots,omitempty"`
	Note          string             `json:"note,omitempty"` // clarification reason or limitation note
	SearchRequest *SearchRequest     `json:"search_request,omitempty"`
	State         *ConversationState `json:"state,omitempty"`
}
