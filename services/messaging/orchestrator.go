package messaging

import (
	"context"
	"time"

	"go.uber.org/zap"

	searchlogRepo "tazaticket/database/repository/searchlog"
	"tazaticket/models"
	"tazaticket/services/conversation"
	"tazaticket/services/flightsearch"
	"tazaticket/services/memory"
	"tazaticket/services/speech"
	"tazaticket/services/storage"
	"tazaticket/services/whatsapp"
	"tazaticket/utils"
)

const (
	voiceFailurePrompt = "Sorry, I couldn't understand your voice message. Could you please try again, or type your request instead?"
	emptyMessagePrompt = "I didn't catch anything in that message. Where would you like to fly?"
	searchFailureNote  = "I encountered an issue searching for flights. Please try again."
)

// DefaultMessageService is the production MessageService. Speech, search and
// archival collaborators may be nil; the corresponding step degrades to text.
type DefaultMessageService struct {
	Conversation conversation.Service
	Store        memory.Store
	Searcher     flightsearch.Searcher
	Transcriber  speech.Transcriber
	Synthesizer  speech.Synthesizer
	VoiceStore   storage.VoiceStore
	Downloader   whatsapp.MediaDownloader
	Archive      searchlogRepo.SearchLogRepository

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultMessageService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ProcessTurn runs one inbound message through the whole pipeline and always
// produces a reply.
func (s *DefaultMessageService) ProcessTurn(ctx context.Context, msg *models.InboundMessage) models.Reply {
	logger := utils.GetLogger().With(zap.String("userId", msg.UserID))

	utterance := msg.Text
	var modeHint models.ResponseMode

	if msg.IsVoice() {
		modeHint = models.ResponseModeSpeech
		text, ok := s.transcribeVoiceNote(ctx, msg, logger)
		if !ok {
			// Transcription failed: prompt for a retry without touching state.
			return models.Reply{Text: voiceFailurePrompt}
		}
		utterance = text
	}

	if utterance == "" {
		return models.Reply{Text: emptyMessagePrompt}
	}

	res := s.Conversation.ProcessTurn(ctx, msg.UserID, utterance, modeHint)
	state := res.State

	replyText := res.Reply
	if res.Action == models.ActionSearch && res.SearchRequest != nil {
		replyText = s.runSearch(ctx, msg.UserID, res, state, logger)
	}

	state.AppendExchange(utterance, replyText, s.now())
	if err := s.Store.Put(ctx, state); err != nil {
		logger.Warn("⚠️ Failed to persist conversation history", zap.Error(err))
	}

	reply := models.Reply{Text: replyText}
	if state.ResponseMode == models.ResponseModeSpeech {
		if audioURL := s.synthesizeReply(ctx, msg.UserID, replyText, state.Language, logger); audioURL != "" {
			reply.AudioURL = audioURL
		}
	}
	return reply
}

// transcribeVoiceNote downloads and transcribes an inbound voice note. The
// language hint comes from the persisted state so repeat callers are
// recognized in their own language.
func (s *DefaultMessageService) transcribeVoiceNote(ctx context.Context, msg *models.InboundMessage, logger *zap.Logger) (string, bool) {
	if s.Downloader == nil || s.Transcriber == nil {
		logger.Warn("⚠️ Voice note received but speech input is not configured")
		return "", false
	}

	audio, err := s.Downloader.Download(ctx, msg.MediaURL)
	if err != nil {
		logger.Error("❌ Failed to download voice note", zap.Error(err))
		return "", false
	}

	languageCode := models.DefaultLanguage
	if state, err := s.Store.Get(ctx, msg.UserID); err == nil && state.Language != "" {
		languageCode = state.Language
	}

	text, err := s.Transcriber.Transcribe(ctx, audio, languageCode)
	if err != nil {
		logger.Error("❌ Failed to transcribe voice note", zap.Error(err))
		return "", false
	}
	logger.Info("🎙️ Transcribed voice note", zap.Int("chars", len(text)))
	return text, true
}

// runSearch executes the provider search for a completed slot set. Success
// clears the stale flag and archives the search; failure keeps the state
// stale so the next turn can retry.
func (s *DefaultMessageService) runSearch(ctx context.Context, userID string, res *models.TurnResult, state *models.ConversationState, logger *zap.Logger) string {
	if s.Searcher == nil {
		logger.Warn("⚠️ Search requested but no flight provider is configured")
		return res.Reply + "\n\n" + searchFailureNote
	}

	results, err := s.Searcher.Search(ctx, res.SearchRequest)
	if err != nil {
		logger.Error("❌ Flight search failed", zap.Error(err))
		return res.Reply + "\n\n" + searchFailureNote
	}

	state.SearchStale = false
	logger.Info("✅ Flight search completed",
		zap.Int("legs", len(res.SearchRequest.Legs)),
		zap.Bool("found", results != nil))

	s.archiveSearch(ctx, userID, res.SearchRequest, state, results, logger)
	return flightsearch.FormatResults(results)
}

func (s *DefaultMessageService) archiveSearch(ctx context.Context, userID string, req *models.SearchRequest, state *models.ConversationState, results *models.SearchResults, logger *zap.Logger) {
	if s.Archive == nil {
		return
	}
	record := models.SearchRecord{
		UserID:     userID,
		Legs:       req.Legs,
		Passengers: req.Passengers,
		TripType:   string(state.TripType),
		Success:    results != nil,
		CreatedAt:  s.now(),
	}
	if results != nil {
		record.Summary = flightsearch.Summarize(results)
	}
	if _, err := s.Archive.Save(ctx, record); err != nil {
		logger.Warn("⚠️ Failed to archive search record", zap.Error(err))
	}
}

// synthesizeReply renders the reply text as a hosted voice note. Any failure
// returns "" and the turn degrades to a plain text reply.
func (s *DefaultMessageService) synthesizeReply(ctx context.Context, userID, text, languageCode string, logger *zap.Logger) string {
	if s.Synthesizer == nil || s.VoiceStore == nil {
		return ""
	}

	audio, err := s.Synthesizer.Synthesize(ctx, text, languageCode)
	if err != nil {
		logger.Warn("⚠️ Speech synthesis failed, replying as text", zap.Error(err))
		return ""
	}
	audioURL, err := s.VoiceStore.UploadVoiceNote(ctx, audio, userID)
	if err != nil {
		logger.Warn("⚠️ Voice note upload failed, replying as text", zap.Error(err))
		return ""
	}
	return audioURL
}
