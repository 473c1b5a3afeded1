package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Webhook endpoints
	VerifyWebhookHandler  gin.HandlerFunc
	InboundWebhookHandler gin.HandlerFunc

	// Operator endpoints
	MemoryStatsHandler    gin.HandlerFunc
	GetMemoryHandler      gin.HandlerFunc
	DeleteMemoryHandler   gin.HandlerFunc
	CleanupMemoryHandler  gin.HandlerFunc
	RecentSearchesHandler gin.HandlerFunc

	// Diagnostics
	ConversationHandler gin.HandlerFunc
}
