// Package storage hosts synthesized voice notes somewhere the WhatsApp
// provider can fetch them from.
package storage

import "context"

// VoiceStore uploads an OGG-Opus voice note and returns its public URL.
type VoiceStore interface {
	UploadVoiceNote(ctx context.Context, audio []byte, userID string) (string, error)
}
