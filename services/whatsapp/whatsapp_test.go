package whatsapp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"testing"

	"tazaticket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwilioForm(t *testing.T) {
	form := url.Values{}
	form.Set("From", "whatsapp:+447700900123")
	form.Set("Body", "flight to London")
	form.Set("ProfileName", "Asad")
	form.Set("NumMedia", "0")

	msg, ok := ParseTwilioForm(form)
	require.True(t, ok)
	assert.Equal(t, "whatsapp:+447700900123", msg.UserID)
	assert.Equal(t, "flight to London", msg.Text)
	assert.Equal(t, "Asad", msg.ProfileName)
	assert.Equal(t, models.ChannelTwilio, msg.Channel)
	assert.False(t, msg.IsVoice())
}

func TestParseTwilioFormVoiceNote(t *testing.T) {
	form := url.Values{}
	form.Set("From", "whatsapp:+447700900123")
	form.Set("NumMedia", "1")
	form.Set("MediaUrl0", "https://api.twilio.com/media/ME123")
	form.Set("MediaContentType0", "audio/ogg")

	msg, ok := ParseTwilioForm(form)
	require.True(t, ok)
	assert.True(t, msg.IsVoice())
	assert.Equal(t, "https://api.twilio.com/media/ME123", msg.MediaURL)
}

func TestParseTwilioFormEmpty(t *testing.T) {
	_, ok := ParseTwilioForm(url.Values{})
	assert.False(t, ok)

	form := url.Values{}
	form.Set("From", "whatsapp:+447700900123")
	_, ok = ParseTwilioForm(form)
	assert.False(t, ok, "no text and no media is not a message")
}

func TestParseMetaPayloadText(t *testing.T) {
	body := []byte(`{
	  "entry": [{"changes": [{"value": {
	    "contacts": [{"profile": {"name": "Sara"}, "wa_id": "923001234567"}],
	    "messages": [{"from": "923001234567", "type": "text", "text": {"body": "salam"}}]
	  }}]}]
	}`)

	msg, ok := ParseMetaPayload(body)
	require.True(t, ok)
	assert.Equal(t, "whatsapp:+923001234567", msg.UserID)
	assert.Equal(t, "salam", msg.Text)
	assert.Equal(t, "Sara", msg.ProfileName)
	assert.Equal(t, models.ChannelMeta, msg.Channel)
}

func TestParseMetaPayloadAudio(t *testing.T) {
	body := []byte(`{
	  "entry": [{"changes": [{"value": {
	    "messages": [{"from": "923001234567", "type": "audio", "audio": {"id": "MEDIA123", "mime_type": "audio/ogg"}}]
	  }}]}]
	}`)

	msg, ok := ParseMetaPayload(body)
	require.True(t, ok)
	assert.True(t, msg.IsVoice())
	assert.Equal(t, "MEDIA123", msg.MediaURL)
}

func TestParseMetaPayloadStatusOnly(t *testing.T) {
	_, ok := ParseMetaPayload([]byte(`{"entry": [{"changes": [{"value": {"statuses": [{}]}}]}]}`))
	assert.False(t, ok)

	_, ok = ParseMetaPayload([]byte(`not json`))
	assert.False(t, ok)
}

func TestRenderTwiML(t *testing.T) {
	got := RenderTwiML("Hello & welcome", "")
	assert.Contains(t, got, "<Body>Hello &amp; welcome</Body>")
	assert.Contains(t, got, "<Message>")
	assert.NotContains(t, got, "<Media>")

	got = RenderTwiML("voice reply", "https://cdn.example/v.ogg")
	assert.Contains(t, got, "<Body>voice reply</Body>")
	assert.Contains(t, got, "<Media>https://cdn.example/v.ogg</Media>")

	got = RenderTwiML("", "")
	assert.Contains(t, got, "<Response/>")
	assert.NotContains(t, got, "<Message")
}

func TestValidateTwilioSignature(t *testing.T) {
	authToken := "12345"
	requestURL := "https://bot.example.com/webhook"
	form := url.Values{}
	form.Set("Body", "hi")
	form.Set("From", "whatsapp:+447700900123")

	// Compute the expected signature the way Twilio documents it.
	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(requestURL))
	mac.Write([]byte("Body" + "hi"))
	mac.Write([]byte("From" + "whatsapp:+447700900123"))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.True(t, ValidateTwilioSignature(authToken, requestURL, form, signature))
	assert.False(t, ValidateTwilioSignature(authToken, requestURL, form, "bogus"))
	assert.False(t, ValidateTwilioSignature("other-token", requestURL, form, signature))
	assert.False(t, ValidateTwilioSignature(authToken, requestURL, form, ""))
}
