package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const voiceFolder = "voice_responses"

// CloudinaryVoiceStore uploads voice notes to Cloudinary. Audio rides the
// "video" resource type; the returned secure URL is handed straight to the
// WhatsApp provider as message media.
type CloudinaryVoiceStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryVoiceStore(cld *cloudinary.Cloudinary) *CloudinaryVoiceStore {
	return &CloudinaryVoiceStore{cld: cld}
}

func (s *CloudinaryVoiceStore) UploadVoiceNote(ctx context.Context, audio []byte, userID string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	// Content-addressed public ID: the same reply for the same user maps to
	// the same asset.
	sum := sha1.Sum(append([]byte(userID+":"), audio...))
	publicID := "voice_" + hex.EncodeToString(sum[:10])

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(audio), uploader.UploadParams{
		Folder:       voiceFolder,
		PublicID:     publicID,
		ResourceType: "video",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload voice note: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}
	return result.SecureURL, nil
}
