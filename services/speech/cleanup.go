package speech

import (
	"regexp"
	"strings"
)

// maxSpeechRunes caps synthesized utterance length.
const maxSpeechRunes = 4000

// emojiWords rewrites the emojis the bot itself emits into spoken words;
// decorative ones are dropped.
var emojiWords = map[string]string{
	"✈️": "flight",
	"🛫": "departure",
	"🛬": "arrival",
	"💰": "price",
	"📅": "date",
	"🎯": "destination",
	"👥": "passengers",
	"🔍": "searching",
	"⚠️": "warning",
	"🎤": "", "😊": "", "👋": "", "❓": "", "💡": "",
	"📊": "", "✅": "", "❌": "", "🎉": "", "🧳": "",
}

// currencyWords expands currency codes the formatter emits, so the voice says
// "US Dollars" rather than spelling letters.
var currencyWords = map[string]string{
	"USD": "US Dollars",
	"EUR": "Euros",
	"GBP": "British Pounds",
	"PKR": "Pakistani Rupees",
	"AED": "UAE Dirhams",
	"SAR": "Saudi Riyals",
	"INR": "Indian Rupees",
	"TRY": "Turkish Lira",
}

var (
	residualEmoji = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{FE0F}]`)
	runsOfSpace   = regexp.MustCompile(`\s+`)
	currencyCode  = regexp.MustCompile(`\b[A-Z]{3}\b`)
)

// CleanForSpeech rewrites message text for synthesis: emoji become words or
// vanish, currency codes are spoken out, arrows read as "to", and the result
// is length-capped. Pure string transformation, safe on any input.
func CleanForSpeech(text string) string {
	cleaned := text
	for emoji, word := range emojiWords {
		if word != "" {
			word = " " + word + " "
		}
		cleaned = strings.ReplaceAll(cleaned, emoji, word)
	}
	cleaned = strings.ReplaceAll(cleaned, "→", " to ")
	cleaned = strings.ReplaceAll(cleaned, "->", " to ")
	cleaned = currencyCode.ReplaceAllStringFunc(cleaned, func(code string) string {
		if word, ok := currencyWords[code]; ok {
			return word
		}
		return code
	})
	cleaned = residualEmoji.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(runsOfSpace.ReplaceAllString(cleaned, " "))

	runes := []rune(cleaned)
	if len(runes) > maxSpeechRunes {
		cleaned = string(runes[:maxSpeechRunes]) + "..."
	}
	return cleaned
}
