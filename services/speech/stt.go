// Package speech wraps Google Cloud Speech-to-Text and Text-to-Speech for
// WhatsApp voice notes: OGG-Opus in, OGG-Opus out, language driven by the
// conversation state.
package speech

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// voiceNoteSampleRate matches WhatsApp OGG-Opus voice notes.
const voiceNoteSampleRate = 16000

// Transcriber turns inbound voice notes into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error)
}

// GoogleTranscriber is the production Transcriber.
type GoogleTranscriber struct {
	CredentialsFile string
}

func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}
	if languageCode == "" {
		languageCode = "en-US"
	}

	var opts []option.ClientOption
	if t.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(t.CredentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_OGG_OPUS,
			SampleRateHertz:   voiceNoteSampleRate,
			LanguageCode:      languageCode,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	transcript := strings.TrimSpace(strings.Join(parts, " "))
	if transcript == "" {
		return "", fmt.Errorf("no speech recognized")
	}
	return transcript, nil
}
