package searchlogRepo

import (
	"context"
	"log"
	"time"

	"tazaticket/config"
	"tazaticket/database"
	"tazaticket/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// defaultRetentionDays is the archive TTL applied when SEARCH_LOG_TTL_DAYS is
// not configured.
const defaultRetentionDays = 30

// recordRetention resolves the configured TTL on archived searches.
func recordRetention() time.Duration {
	days := config.AppConfig.SearchLogTTLDays
	if days <= 0 {
		days = defaultRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// SearchLogRepository archives executed flight searches for the operator API.
type SearchLogRepository interface {
	Save(ctx context.Context, record models.SearchRecord) (string, error)
	RecentByUser(ctx context.Context, userID string, limit int64) ([]models.SearchRecord, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type mongoSearchLogRepo struct {
	coll *mongo.Collection
}

// NewMongoSearchLogRepo returns a SearchLogRepository backed by MongoDB.
func NewMongoSearchLogRepo() SearchLogRepository {
	repo := &mongoSearchLogRepo{
		coll: database.Database().Collection("search_records"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("searchlog: failed to ensure indexes: %v", err)
	}
	return repo
}
