package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisMemoryDB    int    `mapstructure:"REDIS_MEMORY_DB"`
	RedisQueueDB     int    `mapstructure:"REDIS_QUEUE_DB"`
	MemoryTTLHours   int    `mapstructure:"MEMORY_TTL_HOURS"`
	SearchLogTTLDays int    `mapstructure:"SEARCH_LOG_TTL_DAYS"`

	// Gemini (slot extraction, response composition, date parsing).
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Travelport GDS credentials.
	TravelportBaseURL     string `mapstructure:"TRAVELPORT_BASE_URL"`
	TravelportOAuthURL    string `mapstructure:"TRAVELPORT_OAUTH_URL"`
	TravelportClientID    string `mapstructure:"TRAVELPORT_CLIENT_ID"`
	TravelportSecret      string `mapstructure:"TRAVELPORT_CLIENT_SECRET"`
	TravelportUsername    string `mapstructure:"TRAVELPORT_USERNAME"`
	TravelportPassword    string `mapstructure:"TRAVELPORT_PASSWORD"`
	TravelportAccessGroup string `mapstructure:"TRAVELPORT_ACCESS_GROUP"`

	// WhatsApp providers.
	TwilioAccountSID     string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppNumber string `mapstructure:"TWILIO_WHATSAPP_NUMBER"`
	MetaVerifyToken      string `mapstructure:"META_VERIFY_TOKEN"`
	MetaAccessToken      string `mapstructure:"META_ACCESS_TOKEN"`
	MetaPhoneNumberID    string `mapstructure:"META_PHONE_NUMBER_ID"`

	// Google Cloud (speech-to-text, text-to-speech).
	GoogleCredentialsFile string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Cloudinary (voice note hosting).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_MEMORY_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("MEMORY_TTL_HOURS", 24)
	viper.SetDefault("SEARCH_LOG_TTL_DAYS", 30)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tazaticket")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("TRAVELPORT_BASE_URL", "https://api.pp.travelport.com/11/air")
	viper.SetDefault("TRAVELPORT_OAUTH_URL", "https://oauth.pp.travelport.com/oauth/oauth20/token")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
