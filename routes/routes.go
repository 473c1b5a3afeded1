package routes

import (
	"net/http"
	"time"

	"tazaticket/handlers"
	"tazaticket/middleware"
	"tazaticket/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the WhatsApp webhook endpoints.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/webhook", hb.VerifyWebhookHandler)
	r.POST("/webhook", middleware.RateLimitMiddleware(), hb.InboundWebhookHandler)
}

// RegisterOperatorRoutes registers the admin-protected operator API.
func RegisterOperatorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/memory/stats", hb.MemoryStatsHandler)
		api.GET("/memory/:userId", hb.GetMemoryHandler)
		api.DELETE("/memory/:userId", hb.DeleteMemoryHandler)
		api.POST("/memory/cleanup", hb.CleanupMemoryHandler)
		api.GET("/searches/:userId", hb.RecentSearchesHandler)
		api.POST("/conversation", hb.ConversationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm TazaTicket",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterWebhookRoutes(r, hb)
	RegisterOperatorRoutes(r, hb)
	RegisterHealthRoute(r)
}
