// File: service/ai/interface.go
package ai

import (
	"context"

	"tazaticket/models"
)

// Capability is the minimal text-generation dependency every NLU-backed
// component talks to. GeminiClient satisfies it in production; tests inject
// canned functions.
type Capability interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SlotExtractor pulls a best-effort partial slot set out of one utterance.
// Implementations must degrade internally: a turn never fails because
// extraction did.
type SlotExtractor interface {
	Extract(ctx context.Context, utterance string, state *models.ConversationState) (*models.SlotPatch, error)
}

// ComposeInput parameterizes reply generation.
type ComposeInput struct {
	Action       models.Action
	Language     string // BCP-47
	ResponseMode models.ResponseMode
	Summary      string // known-slots summary, so replies never re-ask
	MissingSlots []string
	Note         string // clarification reason or limitation note
}

// ResponseComposer renders the user-facing utterance for a turn. Composing
// never fails: implementations fall back to fixed templates.
type ResponseComposer interface {
	Compose(ctx context.Context, in ComposeInput) string
}
