package models

import (
	"fmt"
	"strings"
	"time"
)

// TripType enumerates the supported itinerary shapes.
type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeReturn    TripType = "return"
	TripTypeMultiCity TripType = "multi_city"
)

// ResponseMode selects how replies are delivered back to the user.
type ResponseMode string

const (
	ResponseModeText   ResponseMode = "text"
	ResponseModeSpeech ResponseMode = "speech"
)

const (
	// DefaultLanguage is used whenever detection fails or nothing was detected yet.
	DefaultLanguage = "en-US"

	// MaxHistoryExchanges bounds conversation history (one exchange = user + assistant).
	MaxHistoryExchanges = 10

	// ActiveConversationWindow is how long a started collection counts as live.
	ActiveConversationWindow = time.Hour
)

// Exchange is one message in the bounded conversation history.
type Exchange struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TripDates holds calendar dates (YYYY-MM-DD, no time component).
type TripDates struct {
	Depart string `json:"depart,omitempty"`
	Return string `json:"return,omitempty"`
}

// ConversationState is the per-user slot-filling state persisted in the slot store.
// It is read at the start of a turn, transitioned by the conversation service and
// written back before the turn returns. One state per user; concurrent turns for
// the same user resolve last-write-wins at the store.
type ConversationState struct {
	UserID       string       `json:"user_id"`
	Origin       string       `json:"origin,omitempty"`      // canonical IATA metro/airport code
	Destination  string       `json:"destination,omitempty"` // canonical IATA metro/airport code
	Dates        TripDates    `json:"dates"`
	Passengers   int          `json:"passengers,omitempty"`
	TripType     TripType     `json:"trip_type,omitempty"`
	Language     string       `json:"language"`
	ResponseMode ResponseMode `json:"response_mode"`
	SearchStale  bool         `json:"search_stale"`
	History      []Exchange   `json:"conversation_history,omitempty"`
	LastUpdated  time.Time    `json:"last_updated"`
}

// NewConversationState returns the default empty state for a user. The slot store
// hands this out for unknown or expired users, so the core never sees "not found".
func NewConversationState(userID string) *ConversationState {
	return &ConversationState{
		UserID:       userID,
		Language:     DefaultLanguage,
		ResponseMode: ResponseModeText,
	}
}

// HasTripSlots reports whether any trip slot has been collected.
func (s *ConversationState) HasTripSlots() bool {
	return s.Origin != "" || s.Destination != "" || s.Dates.Depart != "" ||
		s.Dates.Return != "" || s.Passengers > 0 || s.TripType != ""
}

// HasActiveConversation reports whether the user is mid-collection: at least one
// trip slot set and the state touched within the activity window.
func (s *ConversationState) HasActiveConversation(now time.Time) bool {
	if !s.HasTripSlots() {
		return false
	}
	if s.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(s.LastUpdated) <= ActiveConversationWindow
}

// Summary renders the currently known slots as a compact human-readable line for
// prompt context, so generated replies never re-ask what is already known.
func (s *ConversationState) Summary() string {
	var parts []string
	if s.Origin != "" {
		parts = append(parts, fmt.Sprintf("Origin: %s", s.Origin))
	}
	if s.Destination != "" {
		parts = append(parts, fmt.Sprintf("Destination: %s", s.Destination))
	}
	if s.Dates.Depart != "" {
		parts = append(parts, fmt.Sprintf("Departure: %s", s.Dates.Depart))
	}
	if s.Dates.Return != "" {
		parts = append(parts, fmt.Sprintf("Return: %s", s.Dates.Return))
	}
	if s.Passengers > 0 {
		parts = append(parts, fmt.Sprintf("Passengers: %d", s.Passengers))
	}
	if s.TripType != "" {
		parts = append(parts, fmt.Sprintf("Trip type: %s", s.TripType))
	}
	if len(parts) == 0 {
		return "No previous information"
	}
	return strings.Join(parts, "; ")
}

// AppendExchange records one user/assistant exchange, evicting the oldest
// messages once the history bound is exceeded.
func (s *ConversationState) AppendExchange(userText, assistantText string, at time.Time) {
	s.History = append(s.History,
		Exchange{Role: "user", Content: userText, Timestamp: at},
		Exchange{Role: "assistant", Content: assistantText, Timestamp: at},
	)
	if max := MaxHistoryExchanges * 2; len(s.History) > max {
		s.History = s.History[len(s.History)-max:]
	}
}

// RecentHistory returns up to n most recent messages, oldest first.
func (s *ConversationState) RecentHistory(n int) []Exchange {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// Clone returns a deep copy so a turn can stage changes without aliasing the
// loaded state.
func (s *ConversationState) Clone() *ConversationState {
	cp := *s
	if s.History != nil {
		cp.History = make([]Exchange, len(s.History))
		copy(cp.History, s.History)
	}
	return &cp
}
