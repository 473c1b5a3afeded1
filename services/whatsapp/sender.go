package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tazaticket/models"
	"tazaticket/utils"

	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Sender delivers one outbound message over the channel it came in on.
type Sender interface {
	Send(ctx context.Context, msg models.OutboundMessage) error
}

// TwilioSender sends via the Twilio REST API: media replies and anything that
// cannot ride the synchronous TwiML response.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *TwilioSender) Send(ctx context.Context, msg models.OutboundMessage) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.from)
	if msg.Body != "" {
		params.SetBody(msg.Body)
	}
	if msg.MediaURL != "" {
		params.SetMediaUrl([]string{msg.MediaURL})
	}
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s failed: %w", msg.To, err)
	}
	return nil
}

// MetaSender sends through the Meta WhatsApp Cloud API Graph endpoint.
type MetaSender struct {
	AccessToken   string
	PhoneNumberID string
	HTTPClient    *http.Client
}

func (s *MetaSender) Send(ctx context.Context, msg models.OutboundMessage) error {
	to := msg.To
	if len(to) > 10 && to[:10] == "whatsapp:+" {
		to = to[10:]
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
	}
	if msg.MediaURL != "" {
		payload["type"] = "audio"
		payload["audio"] = map[string]string{"link": msg.MediaURL}
	} else {
		payload["type"] = "text"
		payload["text"] = map[string]string{"body": msg.Body}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal meta send payload: %w", err)
	}

	endpoint := fmt.Sprintf("https://graph.facebook.com/v19.0/%s/messages", s.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build meta send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)

	client := s.HTTPClient
	if client == nil {
		client = mediaHTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("meta send failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("meta send returned status %d", resp.StatusCode)
	}
	return nil
}

// ChannelSender routes an outbound message to the provider it belongs to.
type ChannelSender struct {
	Twilio Sender
	Meta   Sender
}

func (s *ChannelSender) Send(ctx context.Context, msg models.OutboundMessage) error {
	switch msg.Channel {
	case models.ChannelMeta:
		if s.Meta == nil {
			return fmt.Errorf("meta channel not configured")
		}
		return s.Meta.Send(ctx, msg)
	default:
		if s.Twilio == nil {
			return fmt.Errorf("twilio channel not configured")
		}
		utils.GetLogger().Debug("sending via twilio", zap.String("to", msg.To))
		return s.Twilio.Send(ctx, msg)
	}
}
