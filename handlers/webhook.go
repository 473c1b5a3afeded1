package handlers

import (
	"io"
	"net/http"
	"strings"

	"tazaticket/models"
	"tazaticket/services/messaging"
	"tazaticket/services/tasks"
	"tazaticket/services/whatsapp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBody bounds Meta webhook payloads.
const maxWebhookBody = 1 << 20

// VerifyWebhookHandler answers the Meta webhook subscription handshake:
// GET /webhook?hub.mode=subscribe&hub.verify_token=...&hub.challenge=...
func VerifyWebhookHandler(verifyToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && verifyToken != "" && token == verifyToken {
			c.String(http.StatusOK, challenge)
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Webhook verification failed"})
	}
}

// InboundWebhookHandler receives inbound WhatsApp messages from either
// provider. Twilio form posts get a synchronous TwiML reply; Meta JSON posts
// and voice replies go out through the delivery queue. twilioAuthToken, when
// set, enables X-Twilio-Signature validation.
func InboundWebhookHandler(svc messaging.MessageService, queue *tasks.Queue, twilioAuthToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "application/json") {
			handleMetaWebhook(c, svc, queue)
			return
		}
		handleTwilioWebhook(c, svc, queue, twilioAuthToken)
	}
}

func handleTwilioWebhook(c *gin.Context, svc messaging.MessageService, queue *tasks.Queue, authToken string) {
	logger := getLogger(c)

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed form payload"})
		return
	}
	form := c.Request.PostForm

	if authToken != "" {
		requestURL := "https://" + c.Request.Host + c.Request.URL.RequestURI()
		signature := c.GetHeader("X-Twilio-Signature")
		if !whatsapp.ValidateTwilioSignature(authToken, requestURL, form, signature) {
			logger.Warn("⚠️ Rejected webhook with invalid Twilio signature",
				zap.String("url", requestURL))
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
			return
		}
	}

	msg, ok := whatsapp.ParseTwilioForm(form)
	if !ok {
		// Status callbacks and empty posts still expect valid TwiML.
		c.Data(http.StatusOK, "application/xml", []byte(whatsapp.RenderTwiML("", "")))
		return
	}

	reply := svc.ProcessTurn(c.Request.Context(), msg)

	// Voice replies ride the REST queue; plain text rides the webhook response.
	if reply.AudioURL != "" && queue != nil {
		out := models.OutboundMessage{
			To:       msg.UserID,
			Body:     reply.Text,
			MediaURL: reply.AudioURL,
			Channel:  models.ChannelTwilio,
		}
		if err := queue.Enqueue(out); err == nil {
			c.Data(http.StatusOK, "application/xml", []byte(whatsapp.RenderTwiML("", "")))
			return
		}
		logger.Error("❌ Failed to enqueue voice reply, falling back to TwiML media")
		c.Data(http.StatusOK, "application/xml", []byte(whatsapp.RenderTwiML(reply.Text, reply.AudioURL)))
		return
	}

	c.Data(http.StatusOK, "application/xml", []byte(whatsapp.RenderTwiML(reply.Text, reply.AudioURL)))
}

func handleMetaWebhook(c *gin.Context, svc messaging.MessageService, queue *tasks.Queue) {
	logger := getLogger(c)

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}

	msg, ok := whatsapp.ParseMetaPayload(body)
	if !ok {
		// Delivery/status notifications; acknowledge and move on.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	reply := svc.ProcessTurn(c.Request.Context(), msg)

	// Meta has no synchronous reply channel; everything goes out via REST.
	if queue == nil {
		logger.Error("❌ No delivery queue configured, dropping Meta reply",
			zap.String("userId", msg.UserID))
		c.JSON(http.StatusOK, gin.H{"status": "undeliverable"})
		return
	}
	out := models.OutboundMessage{
		To:       msg.UserID,
		Body:     reply.Text,
		MediaURL: reply.AudioURL,
		Channel:  models.ChannelMeta,
	}
	if err := queue.Enqueue(out); err != nil {
		logger.Error("❌ Failed to enqueue Meta reply", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "queued"})
}
