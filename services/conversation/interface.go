// Package conversation implements the per-user slot-filling state machine:
// one transition per inbound utterance, merging newly extracted trip details
// into persisted state and deciding whether to clarify, ask for more, or
// search. All failure paths resolve into a reply; no error ever crosses the
// turn boundary.
package conversation

import (
	"context"

	"tazaticket/models"
)

// LanguageDetector is the best-effort utterance language guesser. ok=false
// keeps the previous language.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// Service runs one conversation turn. modeHint forces the response mode for
// this turn (voice notes reply as speech); empty keeps the persisted mode.
type Service interface {
	ProcessTurn(ctx context.Context, userID, utterance string, modeHint models.ResponseMode) *models.TurnResult
}
