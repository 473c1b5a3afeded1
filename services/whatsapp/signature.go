package whatsapp

import (
	"net/url"

	twilioclient "github.com/twilio/twilio-go/client"
)

// ValidateTwilioSignature checks the X-Twilio-Signature header on a webhook
// post against the account auth token: Twilio signs the full request URL with
// the form parameters appended in lexical order.
func ValidateTwilioSignature(authToken, requestURL string, form url.Values, signature string) bool {
	if authToken == "" || signature == "" {
		return false
	}

	// Twilio signs only the first value of repeated parameters.
	params := make(map[string]string, len(form))
	for key := range form {
		params[key] = form.Get(key)
	}

	validator := twilioclient.NewRequestValidator(authToken)
	return validator.Validate(requestURL, params, signature)
}
