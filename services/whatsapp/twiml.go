package whatsapp

import (
	"github.com/twilio/twilio-go/twiml"
)

// RenderTwiML builds the synchronous webhook reply Twilio expects. Both
// arguments empty renders the empty <Response/>, used when the real reply
// rides the delivery queue instead.
func RenderTwiML(body, mediaURL string) string {
	var verbs []twiml.Element
	if body != "" || mediaURL != "" {
		message := &twiml.MessagingMessage{}
		if body != "" {
			message.InnerElements = append(message.InnerElements, twiml.MessagingBody{Message: body})
		}
		if mediaURL != "" {
			message.InnerElements = append(message.InnerElements, twiml.MessagingMedia{Url: mediaURL})
		}
		verbs = []twiml.Element{message}
	}

	out, err := twiml.Messages(verbs)
	if err != nil {
		// The generator cannot realistically fail; keep the webhook contract.
		return `<?xml version="1.0" encoding="UTF-8"?><Response/>`
	}
	return out
}
