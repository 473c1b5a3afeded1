package speech

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "meaningful emoji become words",
			input: "✈️ Here are the best flights I found:",
			want:  "flight Here are the best flights I found:",
		},
		{
			name:  "decorative emoji vanish",
			input: "Great choice! 🎉😊",
			want:  "Great choice!",
		},
		{
			name:  "currency codes spoken out",
			input: "💰 Price: 624.40 USD",
			want:  "price Price: 624.40 US Dollars",
		},
		{
			name:  "arrows read as to",
			input: "Outbound: JFK → LHR",
			want:  "Outbound: JFK to LHR",
		},
		{
			name:  "unknown currency codes untouched",
			input: "Price: 100 XYZ",
			want:  "Price: 100 XYZ",
		},
		{
			name:  "iata codes survive",
			input: "Flying NYC to LON",
			want:  "Flying NYC to LON",
		},
		{
			name:  "whitespace collapsed",
			input: "hello    there\n\n  friend",
			want:  "hello there friend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanForSpeech(tt.input))
		})
	}
}

func TestCleanForSpeechCapsLength(t *testing.T) {
	long := strings.Repeat("a", 5000)
	got := CleanForSpeech(long)
	assert.LessOrEqual(t, len([]rune(got)), maxSpeechRunes+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}
