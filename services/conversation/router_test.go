package conversation

import (
	"testing"
	"time"

	"tazaticket/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	empty := models.NewConversationState("u1")

	active := models.NewConversationState("u1")
	active.Destination = "LON"
	active.LastUpdated = now.Add(-10 * time.Minute)

	idle := models.NewConversationState("u1")
	idle.Destination = "LON"
	idle.LastUpdated = now.Add(-2 * time.Hour)

	tests := []struct {
		name      string
		utterance string
		state     *models.ConversationState
		want      Intent
	}{
		{name: "bare greeting", utterance: "hi", state: empty, want: IntentSmallTalk},
		{name: "greeting with punctuation", utterance: "Hello!", state: empty, want: IntentSmallTalk},
		{name: "pleasantry", utterance: "how are you?", state: empty, want: IntentSmallTalk},
		{name: "greeting even mid-collection", utterance: "hello", state: active, want: IntentSmallTalk},
		{name: "explicit flight word", utterance: "I need a flight", state: empty, want: IntentFlightBooking},
		{name: "flight action phrase", utterance: "I want to fly to London", state: empty, want: IntentFlightBooking},
		{name: "search trigger", utterance: "search flights for me", state: empty, want: IntentFlightBooking},
		{name: "city with direction", utterance: "to london next week", state: empty, want: IntentFlightBooking},
		{name: "active conversation keeps collecting", utterance: "2 passengers", state: active, want: IntentFlightBooking},
		{name: "stale conversation does not", utterance: "2 passengers", state: idle, want: IntentOther},
		{name: "general question", utterance: "what's the weather in June?", state: empty, want: IntentSmallTalk},
		{name: "unclassifiable", utterance: "purple monkey dishwasher", state: empty, want: IntentOther},
		{name: "empty message", utterance: "   ", state: empty, want: IntentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance, tt.state, now))
		})
	}
}
