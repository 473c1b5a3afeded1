// Package messaging orchestrates one full inbound WhatsApp turn: voice notes
// are transcribed first, the utterance runs through the conversation state
// machine, SEARCH actions execute against the flight provider, and speech-mode
// replies get a synthesized voice note attached. Every failure along the way
// degrades into a usable reply; handlers never see an error.
package messaging

import (
	"context"

	"tazaticket/models"
)

// MessageService processes one inbound message end to end.
type MessageService interface {
	ProcessTurn(ctx context.Context, msg *models.InboundMessage) models.Reply
}
