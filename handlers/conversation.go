package handlers

import (
	"net/http"

	"tazaticket/models"
	"tazaticket/services/messaging"

	"github.com/gin-gonic/gin"
)

// conversationRequest is the operator test-drive payload: one message, as if
// it came in over WhatsApp.
type conversationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ConversationHandler handles POST /api/conversation, running a text turn
// through the same pipeline the webhook uses. Meant for smoke-testing the
// bot without a WhatsApp round trip.
func ConversationHandler(svc messaging.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req conversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
			return
		}

		reply := svc.ProcessTurn(c.Request.Context(), &models.InboundMessage{
			UserID:  req.UserID,
			Text:    req.Message,
			Channel: models.ChannelTwilio,
		})
		c.JSON(http.StatusOK, reply)
	}
}
