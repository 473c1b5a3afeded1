// Offline conversation walkthrough: drives the slot-filling state machine
// with the keyword extractor and the in-process store, no network required.
// Run with: go run ./tests
package main

import (
	"context"
	"fmt"
	"time"

	"tazaticket/models"
	"tazaticket/services/conversation"
	"tazaticket/services/dates"
	ai "tazaticket/services/intelligence"
	"tazaticket/services/language"
	"tazaticket/services/memory"
)

// keywordExtractor runs the offline fallback extractor directly.
type keywordExtractor struct{}

func (keywordExtractor) Extract(ctx context.Context, utterance string, state *models.ConversationState) (*models.SlotPatch, error) {
	return ai.KeywordExtract(utterance), nil
}

func main() {
	svc := &conversation.DefaultConversationService{
		Store:     memory.NewInProcStore(memory.DefaultTTL),
		Extractor: keywordExtractor{},
		Composer:  &ai.DefaultResponseComposer{},
		Dates:     &dates.Normalizer{},
		Detector:  language.NewDetector(),
		Now:       func() time.Time { return time.Now() },
	}

	userID := "whatsapp:+10000000001"
	script := []string{
		"hello",
		"I want to fly to London",
		"from New York",
		"2026-03-10",
		"round trip, coming back 2026-03-20",
		"2 passengers",
	}

	ctx := context.Background()
	for i, utterance := range script {
		res := svc.ProcessTurn(ctx, userID, utterance, "")
		fmt.Printf("--- turn %d ---\n", i+1)
		fmt.Printf("user:   %s\n", utterance)
		fmt.Printf("action: %s\n", res.Action)
		fmt.Printf("bot:    %s\n", res.Reply)
		if len(res.MissingSlots) > 0 {
			fmt.Printf("missing: %v\n", res.MissingSlots)
		}
		if res.SearchRequest != nil {
			fmt.Printf("search: %+v\n", *res.SearchRequest)
		}
		fmt.Printf("state:  %s\n\n", res.State.Summary())
	}
}
