// Package whatsapp normalizes the two inbound webhook formats (Twilio form
// posts and Meta Cloud-API JSON) into one InboundMessage, renders TwiML
// replies, validates Twilio signatures and performs outbound REST sends.
package whatsapp

import (
	"encoding/json"
	"net/url"

	"tazaticket/models"
)

// ParseTwilioForm reads a Twilio WhatsApp webhook form post. ok is false when
// the post carries neither text nor media.
func ParseTwilioForm(form url.Values) (*models.InboundMessage, bool) {
	msg := &models.InboundMessage{
		UserID:      form.Get("From"),
		Text:        form.Get("Body"),
		ProfileName: form.Get("ProfileName"),
		Channel:     models.ChannelTwilio,
	}
	if form.Get("NumMedia") != "" && form.Get("NumMedia") != "0" {
		msg.MediaURL = form.Get("MediaUrl0")
		msg.MediaContentType = form.Get("MediaContentType0")
	}
	if msg.UserID == "" || (msg.Text == "" && msg.MediaURL == "") {
		return nil, false
	}
	return msg, true
}

// ParseMetaPayload reads a Meta WhatsApp Cloud-API webhook body and returns
// the first text or audio message in it. Status-only deliveries parse to
// ok=false.
func ParseMetaPayload(body []byte) (*models.InboundMessage, bool) {
	var payload models.MetaWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			profile := ""
			if len(change.Value.Contacts) > 0 {
				profile = change.Value.Contacts[0].Profile.Name
			}
			for _, m := range change.Value.Messages {
				msg := &models.InboundMessage{
					UserID:      "whatsapp:+" + m.From,
					ProfileName: profile,
					Channel:     models.ChannelMeta,
				}
				switch m.Type {
				case "text":
					if m.Text.Body == "" {
						continue
					}
					msg.Text = m.Text.Body
				case "audio":
					if m.Audio.ID == "" {
						continue
					}
					// Meta media needs a Graph API lookup; the media ID is
					// carried as the URL reference.
					msg.MediaURL = m.Audio.ID
					msg.MediaContentType = m.Audio.MimeType
				default:
					continue
				}
				return msg, true
			}
		}
	}
	return nil, false
}
