// File: service/ai/extractor_test.go
package ai

import (
	"context"
	"errors"
	"testing"

	"tazaticket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capabilityFunc func(ctx context.Context, prompt string) (string, error)

func (f capabilityFunc) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestExtractParsesStrictJSON(t *testing.T) {
	client := capabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		return "```json\n{\"origin\": \"New York\", \"destination\": \"London\", \"passengers\": 2}\n```", nil
	})
	e := &DefaultSlotExtractor{Client: client}

	patch, err := e.Extract(context.Background(), "NYC to London for 2", models.NewConversationState("u1"))
	require.NoError(t, err)
	assert.Equal(t, "New York", patch.Origin)
	assert.Equal(t, "London", patch.Destination)
	assert.Equal(t, 2, patch.Passengers)
	assert.Empty(t, patch.DepartureDate)
}

func TestExtractSanitizesNullStrings(t *testing.T) {
	client := capabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"origin": "null", "destination": "Paris", "trip_type": "None"}`, nil
	})
	e := &DefaultSlotExtractor{Client: client}

	patch, err := e.Extract(context.Background(), "to Paris", models.NewConversationState("u1"))
	require.NoError(t, err)
	assert.Empty(t, patch.Origin)
	assert.Equal(t, "Paris", patch.Destination)
	assert.Empty(t, patch.TripType)
}

func TestExtractFallsBackOnCapabilityFailure(t *testing.T) {
	tests := []struct {
		name   string
		client Capability
	}{
		{name: "capability error", client: capabilityFunc(func(context.Context, string) (string, error) {
			return "", errors.New("deadline exceeded")
		})},
		{name: "malformed output", client: capabilityFunc(func(context.Context, string) (string, error) {
			return "sure! here are the slots you asked for", nil
		})},
		{name: "no client configured", client: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &DefaultSlotExtractor{Client: tt.client}
			patch, err := e.Extract(context.Background(), "flight from london to dubai", models.NewConversationState("u1"))
			require.NoError(t, err, "extraction failure must degrade, never surface")
			assert.Equal(t, "london", patch.Origin)
			assert.Equal(t, "dubai", patch.Destination)
		})
	}
}

func TestKeywordExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.SlotPatch
	}{
		{
			name:  "from and to markers",
			input: "I need a flight from New York to London",
			want:  models.SlotPatch{Origin: "new york", Destination: "london"},
		},
		{
			name:  "destination only",
			input: "flight to dubai please",
			want:  models.SlotPatch{Destination: "dubai"},
		},
		{
			name:  "positional fill without markers",
			input: "flight london dubai",
			want:  models.SlotPatch{Origin: "london", Destination: "dubai"},
		},
		{
			name:  "verbatim iso date and passengers",
			input: "fly from paris to rome 2025-10-01 for 3 passengers",
			want:  models.SlotPatch{Origin: "paris", Destination: "rome", DepartureDate: "2025-10-01", Passengers: 3},
		},
		{
			name:  "never invents dates",
			input: "flight to tokyo next friday",
			want:  models.SlotPatch{Destination: "tokyo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordExtract(tt.input)
			assert.Equal(t, tt.want.Origin, got.Origin)
			assert.Equal(t, tt.want.Destination, got.Destination)
			assert.Equal(t, tt.want.DepartureDate, got.DepartureDate)
			assert.Equal(t, tt.want.Passengers, got.Passengers)
		})
	}
}

func TestKeywordExtractNoIntent(t *testing.T) {
	got := KeywordExtract("what's the weather like today")
	assert.NotEmpty(t, got.Ambiguous, "no travel intent and no slots should flag for clarification")
	assert.Empty(t, got.Origin)
	assert.Empty(t, got.Destination)
}

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripJSONFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripJSONFences(`{"a":1}`))
}
