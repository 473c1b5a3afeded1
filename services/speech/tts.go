package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"tazaticket/services/language"
)

// Synthesizer renders reply text as a voice note.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// voiceNames picks a concrete voice per primary language; English gets the
// Neural2 voice, the rest use regional standard voices.
var voiceNames = map[string]struct {
	locale string
	name   string
}{
	"en": {"en-US", "en-US-Neural2-F"},
	"ur": {"ur-PK", "ur-PK-Standard-A"},
	"hi": {"hi-IN", "hi-IN-Standard-A"},
	"ar": {"ar-XA", "ar-XA-Standard-A"},
	"es": {"es-ES", "es-ES-Standard-A"},
	"fr": {"fr-FR", "fr-FR-Standard-A"},
	"de": {"de-DE", "de-DE-Standard-A"},
	"it": {"it-IT", "it-IT-Standard-A"},
	"ru": {"ru-RU", "ru-RU-Standard-A"},
	"ja": {"ja-JP", "ja-JP-Standard-A"},
	"ko": {"ko-KR", "ko-KR-Standard-A"},
	"zh": {"cmn-CN", "cmn-CN-Standard-A"},
	"tr": {"tr-TR", "tr-TR-Standard-A"},
}

// GoogleSynthesizer is the production Synthesizer, emitting OGG-Opus audio
// WhatsApp can play natively.
type GoogleSynthesizer struct {
	CredentialsFile string
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	voice, ok := voiceNames[language.Primary(languageCode)]
	if !ok {
		voice = voiceNames["en"]
	}

	var opts []option.ClientOption
	if s.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(s.CredentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text-to-speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: CleanForSpeech(text)},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice.locale,
			Name:         voice.name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_OGG_OPUS,
			SampleRateHertz: voiceNoteSampleRate,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	return resp.AudioContent, nil
}
