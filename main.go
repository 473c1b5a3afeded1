// File: tazaticket/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tazaticket/config"
	"tazaticket/cron"
	"tazaticket/database"
	searchlogRepo "tazaticket/database/repository/searchlog"
	"tazaticket/handlers"
	"tazaticket/routes"
	"tazaticket/services/conversation"
	"tazaticket/services/dates"
	"tazaticket/services/flightsearch"
	ai "tazaticket/services/intelligence"
	"tazaticket/services/language"
	"tazaticket/services/memory"
	"tazaticket/services/messaging"
	"tazaticket/services/speech"
	"tazaticket/services/storage"
	"tazaticket/services/tasks"
	"tazaticket/services/whatsapp"
	"tazaticket/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitMemoryCache()
	utils.InitQueueCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	searchArchive := searchlogRepo.NewMongoSearchLogRepo()

	// NLU capability and its consumers.
	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	extractor := &ai.DefaultSlotExtractor{Client: geminiClient}
	composer := &ai.DefaultResponseComposer{Client: geminiClient}
	normalizer := &dates.Normalizer{Delegate: &ai.GeminiDateDelegate{Client: geminiClient}}

	// conversation state store.
	memoryTTL := memory.DefaultTTL
	if config.AppConfig.MemoryTTLHours > 0 {
		memoryTTL = time.Duration(config.AppConfig.MemoryTTLHours) * time.Hour
	}
	slotStore := memory.NewRedisStore(utils.GetMemoryCacheClient(), memoryTTL)

	conversationService := &conversation.DefaultConversationService{
		Store:     slotStore,
		Extractor: extractor,
		Composer:  composer,
		Dates:     normalizer,
		Detector:  language.NewDetector(),
	}

	// flight search provider.
	flightClient := flightsearch.NewClient(flightsearch.Config{
		OAuthURL:     config.AppConfig.TravelportOAuthURL,
		CatalogURL:   config.AppConfig.TravelportBaseURL + "/search/catalogproductofferings",
		ClientID:     config.AppConfig.TravelportClientID,
		ClientSecret: config.AppConfig.TravelportSecret,
		Username:     config.AppConfig.TravelportUsername,
		Password:     config.AppConfig.TravelportPassword,
		AccessGroup:  config.AppConfig.TravelportAccessGroup,
	})

	// voice pipeline; a missing piece degrades that direction to text.
	var voiceStore storage.VoiceStore
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: voice note hosting disabled: %v", err)
	} else {
		voiceStore = storage.NewCloudinaryVoiceStore(cld)
	}

	messageService := &messaging.DefaultMessageService{
		Conversation: conversationService,
		Store:        slotStore,
		Searcher:     flightClient,
		Transcriber:  &speech.GoogleTranscriber{CredentialsFile: config.AppConfig.GoogleCredentialsFile},
		Synthesizer:  &speech.GoogleSynthesizer{CredentialsFile: config.AppConfig.GoogleCredentialsFile},
		VoiceStore:   voiceStore,
		Downloader: &whatsapp.ChannelMediaDownloader{
			Twilio: &whatsapp.TwilioMediaDownloader{
				AccountSID: config.AppConfig.TwilioAccountSID,
				AuthToken:  config.AppConfig.TwilioAuthToken,
			},
			Meta: &whatsapp.MetaMediaDownloader{
				AccessToken: config.AppConfig.MetaAccessToken,
			},
		},
		Archive: searchArchive,
	}

	// outbound delivery: the queue plus the worker draining it.
	deliveryQueue := tasks.NewQueue()
	sender := &whatsapp.ChannelSender{
		Twilio: whatsapp.NewTwilioSender(
			config.AppConfig.TwilioAccountSID,
			config.AppConfig.TwilioAuthToken,
			config.AppConfig.TwilioWhatsAppNumber,
		),
		Meta: &whatsapp.MetaSender{
			AccessToken:   config.AppConfig.MetaAccessToken,
			PhoneNumberID: config.AppConfig.MetaPhoneNumberID,
		},
	}
	go cron.InitDeliveryWorker(sender)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		VerifyWebhookHandler:  handlers.VerifyWebhookHandler(config.AppConfig.MetaVerifyToken),
		InboundWebhookHandler: handlers.InboundWebhookHandler(messageService, deliveryQueue, config.AppConfig.TwilioAuthToken),

		MemoryStatsHandler:    handlers.MemoryStatsHandler(slotStore),
		GetMemoryHandler:      handlers.GetMemoryHandler(slotStore),
		DeleteMemoryHandler:   handlers.DeleteMemoryHandler(slotStore, searchArchive),
		CleanupMemoryHandler:  handlers.CleanupMemoryHandler(slotStore),
		RecentSearchesHandler: handlers.RecentSearchesHandler(searchArchive),

		ConversationHandler: handlers.ConversationHandler(messageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"memory": utils.GetMemoryCacheClient(),
		"queue":  utils.GetQueueCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := deliveryQueue.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close delivery queue: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
