package conversation

import (
	"context"
	"strings"
	"time"

	"tazaticket/models"
	"tazaticket/services/dates"
	"tazaticket/services/iata"
	ai "tazaticket/services/intelligence"
	"tazaticket/services/language"
	"tazaticket/services/memory"
	"tazaticket/utils"

	"go.uber.org/zap"
)

// DefaultConversationService is the production Service. Every collaborator is
// injected; tests swap in fakes for the extractor, composer and store.
type DefaultConversationService struct {
	Store     memory.Store
	Extractor ai.SlotExtractor
	Composer  ai.ResponseComposer
	Dates     *dates.Normalizer
	Detector  LanguageDetector

	// Now is the turn's reference clock; defaults to time.Now. Injected so
	// date validation is deterministic under test.
	Now func() time.Time
}

func (s *DefaultConversationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ProcessTurn runs one turn of the state machine. Slot processing is strictly
// ordered (origin, destination, departure date, return date, passengers, trip
// type) and the first unresolved item wins the clarification: nothing after it
// is processed that turn. The merged state, including partial updates from an
// early-terminated turn, is persisted unconditionally before returning.
func (s *DefaultConversationService) ProcessTurn(ctx context.Context, userID, utterance string, modeHint models.ResponseMode) *models.TurnResult {
	logger := utils.GetLogger()
	now := s.now()

	state, err := s.Store.Get(ctx, userID)
	if err != nil {
		// Degraded turn over a fresh in-memory state beats no turn at all.
		logger.Error("conversation state read failed",
			zap.String("code", CodePersistenceFailure),
			zap.String("userID", userID), zap.Error(err))
		state = models.NewConversationState(userID)
	}
	staged := state.Clone()

	if modeHint != "" {
		staged.ResponseMode = modeHint
	}
	if s.Detector != nil {
		if tag, ok := s.Detector.Detect(utterance); ok {
			staged.Language = tag
		}
	}

	switch Classify(utterance, state, now) {
	case IntentSmallTalk:
		return s.finish(ctx, staged, &models.TurnResult{Action: models.ActionSmallTalk}, now)
	case IntentOther:
		return s.finish(ctx, staged, &models.TurnResult{Action: models.ActionOther}, now)
	}

	patch, err := s.Extractor.Extract(ctx, utterance, staged)
	if err != nil || patch == nil {
		// The extractor degrades internally; this is a second safety net.
		logger.Warn("slot extraction failed, using keyword fallback",
			zap.String("code", CodeCapabilityFailure), zap.Error(err))
		patch = ai.KeywordExtract(utterance)
	}

	if patch.Language != "" {
		staged.Language = language.ToBCP47(patch.Language)
	}
	if modeHint == "" && patch.ResponseMode != "" {
		switch models.ResponseMode(patch.ResponseMode) {
		case models.ResponseModeText, models.ResponseModeSpeech:
			staged.ResponseMode = models.ResponseMode(patch.ResponseMode)
		}
	}

	dirty := false

	// Origin, then destination. First unresolved place terminates the turn.
	if patch.Origin != "" {
		code, ok := iata.Resolve(patch.Origin)
		if !ok {
			return s.clarify(ctx, staged, &TurnError{
				Code:    CodeUnresolvedPlace,
				Message: "Unknown city/airport: " + patch.Origin,
			}, now)
		}
		if code != staged.Origin {
			staged.Origin = code
			dirty = true
		}
	}
	if patch.Destination != "" {
		code, ok := iata.Resolve(patch.Destination)
		if !ok {
			return s.clarify(ctx, staged, &TurnError{
				Code:    CodeUnresolvedPlace,
				Message: "Unknown city/airport: " + patch.Destination,
			}, now)
		}
		if code != staged.Destination {
			staged.Destination = code
			dirty = true
		}
	}

	// Departure date, then return date, same short-circuit rule.
	if patch.DepartureDate != "" {
		iso, ok := s.Dates.Normalize(ctx, patch.DepartureDate, now)
		if !ok {
			return s.clarify(ctx, staged, &TurnError{
				Code:    CodeUnresolvedDate,
				Message: "Could not understand the date",
			}, now)
		}
		if iso != staged.Dates.Depart {
			staged.Dates.Depart = iso
			dirty = true
		}
	}
	if patch.ReturnDate != "" {
		iso, ok := s.Dates.Normalize(ctx, patch.ReturnDate, now)
		if !ok {
			return s.clarify(ctx, staged, &TurnError{
				Code:    CodeUnresolvedDate,
				Message: "Could not understand the return date",
			}, now)
		}
		if iso != staged.Dates.Return {
			staged.Dates.Return = iso
			dirty = true
		}
		// Mentioning a return date is as good as saying "round trip".
		if staged.TripType == "" {
			staged.TripType = models.TripTypeReturn
			dirty = true
		}
	}

	if patch.Passengers > 0 && patch.Passengers != staged.Passengers {
		staged.Passengers = patch.Passengers
		dirty = true
	}
	if patch.TripType != "" {
		switch tt := models.TripType(patch.TripType); tt {
		case models.TripTypeOneWay, models.TripTypeReturn, models.TripTypeMultiCity:
			if tt != staged.TripType {
				staged.TripType = tt
				dirty = true
			}
		}
	}

	if dirty {
		staged.SearchStale = true
	}

	// Validation changes only the action, never the committed state: an
	// invalid-looking date stays in the staged patch and is persisted.
	if staged.Dates.Depart != "" {
		if err := dates.ValidateDates(staged.Dates.Depart, staged.Dates.Return, now); err != nil {
			return s.clarify(ctx, staged, &TurnError{
				Code:    CodeInvalidDateRange,
				Message: err.Error(),
			}, now)
		}
	}

	// Items the extractor flagged as ambiguous need the user's word before
	// anything depending on them; concrete slots from the same utterance are
	// already merged and persisted.
	if len(patch.Ambiguous) > 0 {
		return s.clarify(ctx, staged, &TurnError{
			Code:    CodeAmbiguousInput,
			Message: "I need clarification on: " + strings.Join(patch.Ambiguous, ", "),
		}, now)
	}

	if missing := MissingSlots(staged); len(missing) > 0 {
		return s.finish(ctx, staged, &models.TurnResult{
			Action:       models.ActionAskMissing,
			MissingSlots: missing,
		}, now)
	}

	req, note, err := BuildSearchRequest(staged)
	if err != nil {
		logger.Error("search request build failed", zap.Error(err))
		return s.clarify(ctx, staged, &TurnError{
			Code:    CodeCapabilityFailure,
			Message: "Something went wrong putting your search together. Could you restate your trip?",
		}, now)
	}
	return s.finish(ctx, staged, &models.TurnResult{
		Action:        models.ActionSearch,
		Note:          note,
		SearchRequest: req,
	}, now)
}

func (s *DefaultConversationService) clarify(ctx context.Context, staged *models.ConversationState, terr *TurnError, now time.Time) *models.TurnResult {
	utils.GetLogger().Info("turn needs clarification",
		zap.String("code", terr.Code), zap.String("reason", terr.Message),
		zap.String("userID", staged.UserID))
	return s.finish(ctx, staged, &models.TurnResult{
		Action: models.ActionClarify,
		Note:   terr.Message,
	}, now)
}

// finish persists the staged state, composes the reply and returns the
// result. Persistence failure is logged for operators; the user still gets a
// response from the in-memory state.
func (s *DefaultConversationService) finish(ctx context.Context, staged *models.ConversationState, res *models.TurnResult, now time.Time) *models.TurnResult {
	staged.LastUpdated = now
	if err := s.Store.Put(ctx, staged); err != nil {
		utils.GetLogger().Error("conversation state write failed",
			zap.String("code", CodePersistenceFailure),
			zap.String("userID", staged.UserID), zap.Error(err))
	}

	res.State = staged
	if s.Composer != nil {
		res.Reply = s.Composer.Compose(ctx, ai.ComposeInput{
			Action:       res.Action,
			Language:     staged.Language,
			ResponseMode: staged.ResponseMode,
			Summary:      staged.Summary(),
			MissingSlots: res.MissingSlots,
			Note:         res.Note,
		})
	}
	return res
}
