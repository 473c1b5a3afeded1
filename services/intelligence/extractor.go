// File: service/ai/extractor.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"tazaticket/models"
	"tazaticket/services/iata"

	"go.uber.org/zap"

	"tazaticket/utils"
)

const defaultExtractTimeout = 15 * time.Second

// DefaultSlotExtractor asks Gemini for a strict-JSON slot patch and degrades
// to keyword extraction when the capability fails. Extract never returns an
// error in practice; the signature keeps the contract explicit for callers.
type DefaultSlotExtractor struct {
	Client  Capability
	Timeout time.Duration
}

func (e *DefaultSlotExtractor) Extract(ctx context.Context, utterance string, state *models.ConversationState) (*models.SlotPatch, error) {
	patch, err := e.llmExtract(ctx, utterance, state)
	if err != nil {
		utils.GetLogger().Warn("slot extraction fell back to keywords", zap.Error(err))
		return KeywordExtract(utterance), nil
	}
	return patch, nil
}

func (e *DefaultSlotExtractor) llmExtract(ctx context.Context, utterance string, state *models.ConversationState) (*models.SlotPatch, error) {
	if e.Client == nil {
		return nil, fmt.Errorf("no capability client configured")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := e.Client.GenerateContent(ctx, extractionPrompt(utterance, state))
	if err != nil {
		return nil, fmt.Errorf("failed to extract slots: %w", err)
	}

	cleaned := StripJSONFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var patch models.SlotPatch
	if err := json.Unmarshal([]byte(cleaned), &patch); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}
	sanitizePatch(&patch)
	return &patch, nil
}

func extractionPrompt(utterance string, state *models.ConversationState) string {
	var history strings.Builder
	for _, ex := range state.RecentHistory(6) {
		fmt.Fprintf(&history, "%s: %s\n", ex.Role, ex.Content)
	}
	if history.Len() == 0 {
		history.WriteString("(none)\n")
	}

	return fmt.Sprintf(`Extract flight booking information from this user message: %q

Known so far: %s

Recent conversation:
%s
ONLY extract information that is explicitly mentioned or being changed in this message.
DO NOT fill in information that is not clearly stated.

For cities/airports: extract the actual place names (e.g. "London", "New York", "Heathrow"); do not convert to IATA codes.
For dates: extract the natural date expressions as-is; keep departure and return separate.
For trip_type: "one_way" for one-way trips, "return" for round trips, "multi_city" for complex itineraries.
If the user asks for voice or text replies, set response_mode to "speech" or "text".
Set language to a BCP-47 guess of the message language.

Return ONLY a JSON object with the fields that were mentioned:
{
  "origin": "place name",
  "destination": "place name",
  "departure_date": "natural date expression",
  "return_date": "natural date expression",
  "passengers": number,
  "trip_type": "one_way|return|multi_city",
  "language": "BCP-47 tag",
  "response_mode": "text|speech",
  "clarification_needed": ["ambiguous items that need clarification"]
}`, utterance, state.Summary(), history.String())
}

// StripJSONFences removes the ```json fences models like to wrap output in.
func StripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func sanitizePatch(p *models.SlotPatch) {
	clean := func(s string) string {
		s = strings.TrimSpace(s)
		if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
			return ""
		}
		return s
	}
	p.Origin = clean(p.Origin)
	p.Destination = clean(p.Destination)
	p.DepartureDate = clean(p.DepartureDate)
	p.ReturnDate = clean(p.ReturnDate)
	p.TripType = clean(p.TripType)
	p.Language = clean(p.Language)
	p.ResponseMode = clean(p.ResponseMode)
	if p.Passengers < 0 {
		p.Passengers = 0
	}
}

var travelKeywords = []string{
	"flight", "fly", "ticket", "travel", "trip",
	"lahore", "dubai", "لاہور", "دبئی", "جانا", "سفر",
}

var (
	isoDateInText = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	passengerUnit = regexp.MustCompile(`\b(\d+)\s*(?:passengers?|people|persons?|adults?)\b`)
)

type placeMention struct {
	name string
	pos  int
}

// KeywordExtract is the conservative fallback when the NLU capability is down:
// known place names scanned out of the utterance, "from"/"to" markers deciding
// direction, verbatim ISO dates, and explicit passenger counts. It never
// invents anything the message does not literally contain.
func KeywordExtract(utterance string) *models.SlotPatch {
	lower := strings.ToLower(utterance)

	hasIntent := false
	for _, kw := range travelKeywords {
		if strings.Contains(lower, kw) {
			hasIntent = true
			break
		}
	}

	patch := &models.SlotPatch{}

	var mentions []placeMention
	for _, name := range iata.KnownPlaceNames() {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if loc := re.FindStringIndex(lower); loc != nil {
			mentions = append(mentions, placeMention{name: name, pos: loc[0]})
		}
	}
	sort.Slice(mentions, func(i, j int) bool { return mentions[i].pos < mentions[j].pos })

	// Marked mentions first, positional fill for the rest.
	var unmarked []string
	for _, m := range mentions {
		if m.name == patch.Origin || m.name == patch.Destination {
			continue
		}
		switch directionMarker(lower, m.pos) {
		case "from":
			if patch.Origin == "" {
				patch.Origin = m.name
			}
		case "to":
			if patch.Destination == "" {
				patch.Destination = m.name
			}
		default:
			unmarked = append(unmarked, m.name)
		}
	}
	for _, name := range unmarked {
		if patch.Origin == "" && name != patch.Destination {
			patch.Origin = name
		} else if patch.Destination == "" && name != patch.Origin {
			patch.Destination = name
		}
	}

	if m := isoDateInText.FindString(utterance); m != "" {
		patch.DepartureDate = m
	}
	if m := passengerUnit.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			patch.Passengers = n
		}
	}

	if !hasIntent && patch.Empty() {
		return &models.SlotPatch{Ambiguous: []string{"Could not understand the request"}}
	}
	return patch
}

// directionMarker looks just before a place mention for "from"/"to".
func directionMarker(lower string, pos int) string {
	start := pos - 10
	if start < 0 {
		start = 0
	}
	window := lower[start:pos]
	fromIdx := strings.LastIndex(window, "from ")
	toIdx := strings.LastIndex(window, "to ")
	if fromIdx < 0 && toIdx < 0 {
		return ""
	}
	if fromIdx > toIdx {
		return "from"
	}
	return "to"
}
