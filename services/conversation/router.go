package conversation

import (
	"regexp"
	"strings"
	"time"

	"tazaticket/models"
	"tazaticket/services/iata"
)

// Intent is the coarse routing decision made before any extraction happens.
type Intent string

const (
	IntentFlightBooking Intent = "flight_booking"
	IntentSmallTalk     Intent = "small_talk"
	IntentOther         Intent = "other"
)

// Bare greetings and pleasantries never start slot collection, no matter how
// chatty the extractor would be about them.
var greetingGuards = map[string]bool{
	"hi": true, "hello": true, "hey": true, "salam": true, "assalam o alaikum": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"how are you": true, "how are you?": true,
	"what's up": true, "what's up?": true,
	"how's it going": true, "how's it going?": true,
	"thanks": true, "thank you": true, "ok": true, "okay": true, "bye": true,
}

var strongFlightIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\bflights?\b`),
	regexp.MustCompile(`\bfly\b`),
	regexp.MustCompile(`\bairlines?\b`),
	regexp.MustCompile(`\bairports?\b`),
	regexp.MustCompile(`\btickets?\b`),
	regexp.MustCompile(`\bitinerary\b`),
	regexp.MustCompile(`\breservation\b`),
}

var flightActionPhrases = []string{
	"fly to", "fly from", "flight to", "flight from",
	"book flight", "book a flight", "search flight", "find flight",
	"need flight", "want to fly", "going to", "travelling to", "traveling to", "trip to",
}

var cityWithDirection = regexp.MustCompile(`\b(?:to|from)\s+[a-z]`)

// Classify routes one utterance: greeting guards first, then an active
// collection (any slot set, touched within the hour) keeps the user on the
// slot-filling path, then explicit flight language. Everything else is chat.
func Classify(utterance string, state *models.ConversationState, now time.Time) Intent {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	if lower == "" {
		return IntentOther
	}
	if greetingGuards[strings.TrimRight(lower, "!. ")] || greetingGuards[lower] {
		return IntentSmallTalk
	}
	if state != nil && state.HasActiveConversation(now) {
		return IntentFlightBooking
	}
	for _, re := range strongFlightIndicators {
		if re.MatchString(lower) {
			return IntentFlightBooking
		}
	}
	for _, phrase := range flightActionPhrases {
		if strings.Contains(lower, phrase) {
			return IntentFlightBooking
		}
	}
	if hasKnownPlace(lower) && cityWithDirection.MatchString(lower) {
		return IntentFlightBooking
	}
	if isQuestionOrChat(lower) {
		return IntentSmallTalk
	}
	return IntentOther
}

func hasKnownPlace(lower string) bool {
	for _, name := range iata.KnownPlaceNames() {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

func isQuestionOrChat(lower string) bool {
	if strings.HasSuffix(lower, "?") {
		return true
	}
	for _, w := range []string{"who", "what", "when", "where", "why", "how", "can you", "tell me"} {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}
