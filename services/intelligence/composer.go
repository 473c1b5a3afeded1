// File: service/ai/composer.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tazaticket/models"
	"tazaticket/utils"

	"go.uber.org/zap"
)

const defaultComposeTimeout = 15 * time.Second

// DefaultResponseComposer phrases replies through Gemini, parameterized by
// language and response mode. It always returns something: capability failure
// falls back to fixed per-action templates, so composing never fails a turn.
type DefaultResponseComposer struct {
	Client  Capability
	Timeout time.Duration
}

func (c *DefaultResponseComposer) Compose(ctx context.Context, in ComposeInput) string {
	if c.Client == nil {
		return fallbackUtterance(in)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultComposeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := c.Client.GenerateContent(ctx, composePrompt(in))
	if err != nil {
		utils.GetLogger().Warn("response composition fell back to template",
			zap.String("action", string(in.Action)), zap.Error(err))
		return fallbackUtterance(in)
	}
	utterance := strings.TrimSpace(StripJSONFences(raw))
	if utterance == "" {
		return fallbackUtterance(in)
	}
	return utterance
}

var actionContexts = map[models.Action]string{
	models.ActionAskMissing: "Politely ask for the missing flight information. Be conversational and helpful.",
	models.ActionSearch:     "Confirm that you're searching for flights with the provided details.",
	models.ActionClarify:    "Ask for clarification about the problem described in the notes, in a friendly way.",
	models.ActionSmallTalk:  "Respond to general conversation in a helpful, friendly manner, and mention you can help with flights.",
	models.ActionOther:      "Provide a helpful response and explain you are a flight booking assistant.",
}

func composePrompt(in ComposeInput) string {
	mode := "text"
	if in.ResponseMode == models.ResponseModeSpeech {
		mode = "speech (no emojis, no symbols, natural spoken phrasing)"
	}
	missing := "none"
	if len(in.MissingSlots) > 0 {
		missing = strings.Join(in.MissingSlots, ", ")
	}
	note := in.Note
	if note == "" {
		note = "none"
	}
	return fmt.Sprintf(`Generate a natural, conversational reply in %s for a WhatsApp flight booking assistant.
Action: %s
Context: %s
Known trip details (do NOT re-ask for any of these): %s
Missing information: %s
Notes: %s

Make the reply:
- Natural, concise and friendly
- Appropriate for %s mode
- In the language %s

Return only the reply text, no explanations.`,
		in.Language, in.Action, actionContexts[in.Action], in.Summary, missing, note, mode, in.Language)
}

func fallbackUtterance(in ComposeInput) string {
	switch in.Action {
	case models.ActionAskMissing:
		return fmt.Sprintf("I need a bit more information. Could you please provide: %s?",
			strings.Join(in.MissingSlots, ", "))
	case models.ActionSearch:
		return "Let me search for flights with your details."
	case models.ActionClarify:
		if in.Note != "" {
			return in.Note
		}
		return "Could you clarify that for me?"
	case models.ActionSmallTalk:
		return "How can I help you with your travel plans?"
	default:
		return "I'm here to help with your flight booking."
	}
}
