package models

// Channel identifies which WhatsApp integration delivered a message.
type Channel string

const (
	ChannelTwilio Channel = "twilio"
	ChannelMeta   Channel = "meta"
)

// InboundMessage is one normalized inbound WhatsApp message, whichever provider
// format it arrived in.
type InboundMessage struct {
	UserID           string  `json:"user_id"` // phone/channel id, e.g. "whatsapp:+4479..."
	Text             string  `json:"text"`
	MediaURL         string  `json:"media_url,omitempty"`
	MediaContentType string  `json:"media_content_type,omitempty"`
	Channel          Channel `json:"channel"`
	ProfileName      string  `json:"profile_name,omitempty"`
}

// IsVoice reports whether the message carries a voice note to transcribe.
func (m *InboundMessage) IsVoice() bool {
	return m.MediaURL != "" && (m.MediaContentType == "" ||
		len(m.MediaContentType) >= 5 && m.MediaContentType[:5] == "audio")
}

// Reply is what one processed turn hands back to the transport.
type Reply struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

// OutboundMessage is the payload for a queued REST delivery (media replies and
// Meta-format replies, which cannot ride the synchronous webhook response).
type OutboundMessage struct {
	To       string  `json:"to"`
	Body     string  `json:"body,omitempty"`
	MediaURL string  `json:"media_url,omitempty"`
	Channel  Channel `json:"channel"`
}

// MetaWebhookPayload mirrors the Meta WhatsApp Cloud API webhook envelope, down
// to the fields the bot reads.
type MetaWebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []MetaMessage `json:"messages"`
				Contacts []struct {
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
					WaID string `json:"wa_id"`
				} `json:"contacts"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// MetaMessage is one message object inside a Meta webhook delivery.
type MetaMessage struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
	Audio struct {
		ID       string `json:"id"`
		MimeType string `json:"mime_type"`
	} `json:"audio"`
}
