// Package language guesses the language of an utterance so replies and speech
// synthesis can follow the user. Detection is best-effort and never blocks a
// turn: callers keep the previous language when detection comes back empty.
package language

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// bcp47 maps lowercase ISO 639-1 codes to the locale tags the speech stack
// understands.
var bcp47 = map[string]string{
	"en": "en-US",
	"ur": "ur-PK",
	"ar": "ar-SA",
	"fr": "fr-FR",
	"de": "de-DE",
	"es": "es-ES",
	"it": "it-IT",
	"nl": "nl-NL",
	"sv": "sv-SE",
	"tr": "tr-TR",
	"ru": "ru-RU",
	"zh": "zh-CN",
	"ja": "ja-JP",
	"ko": "ko-KR",
	"hi": "hi-IN",
	"th": "th-TH",
}

// Detector wraps a lingua detector restricted to the languages the assistant
// actually serves. Building the model is expensive; construct once and share.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English, lingua.Urdu, lingua.Arabic, lingua.French,
		lingua.German, lingua.Spanish, lingua.Italian, lingua.Dutch,
		lingua.Swedish, lingua.Turkish, lingua.Russian, lingua.Chinese,
		lingua.Japanese, lingua.Korean, lingua.Hindi, lingua.Thai,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the BCP-47 tag for the utterance. ok is false when the text
// is too short or the detector has no confident answer.
func (d *Detector) Detect(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < 2 {
		return "", false
	}
	lang, exists := d.detector.DetectLanguageOf(trimmed)
	if !exists {
		return "", false
	}
	iso := strings.ToLower(lang.IsoCode639_1().String())
	tag, ok := bcp47[iso]
	if !ok {
		return "", false
	}
	return tag, true
}

// ToBCP47 widens a bare ISO 639-1 code ("en") to its locale tag ("en-US"),
// passing through anything already tagged. Unknown codes fall back to en-US.
func ToBCP47(code string) string {
	if code == "" {
		return "en-US"
	}
	if strings.Contains(code, "-") {
		return code
	}
	if tag, ok := bcp47[strings.ToLower(code)]; ok {
		return tag
	}
	return "en-US"
}

// Primary returns the bare language subtag of a BCP-47 tag ("en-US" → "en").
func Primary(tag string) string {
	if i := strings.Index(tag, "-"); i > 0 {
		return strings.ToLower(tag[:i])
	}
	return strings.ToLower(tag)
}
