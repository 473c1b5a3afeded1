package handlers

import (
	"net/http"
	"strconv"
	"time"

	searchlogRepo "tazaticket/database/repository/searchlog"
	"tazaticket/services/memory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemoryStatsHandler handles GET /api/memory/stats.
func MemoryStatsHandler(store memory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			getLogger(c).Error("Failed to read memory stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read memory stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetMemoryHandler handles GET /api/memory/:userId. Unknown users come back
// as the default empty state, mirroring what the bot itself would see.
func GetMemoryHandler(store memory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		state, err := store.Get(c.Request.Context(), userID)
		if err != nil {
			getLogger(c).Error("Failed to load conversation state",
				zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation state"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// DeleteMemoryHandler handles DELETE /api/memory/:userId, wiping a user's
// conversation state and archived searches.
func DeleteMemoryHandler(store memory.Store, archive searchlogRepo.SearchLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if err := store.Delete(c.Request.Context(), userID); err != nil {
			getLogger(c).Error("Failed to delete conversation state",
				zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation state"})
			return
		}
		if archive != nil {
			if err := archive.DeleteByUser(c.Request.Context(), userID); err != nil {
				getLogger(c).Warn("Failed to delete archived searches",
					zap.String("userId", userID), zap.Error(err))
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conversation memory deleted", "userId": userID})
	}
}

// CleanupMemoryHandler handles POST /api/memory/cleanup, sweeping expired
// conversation state out of the store.
func CleanupMemoryHandler(store memory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, err := store.Sweep(c.Request.Context(), time.Now())
		if err != nil {
			getLogger(c).Error("Memory sweep failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Memory sweep failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	}
}

// RecentSearchesHandler handles GET /api/searches/:userId.
func RecentSearchesHandler(archive searchlogRepo.SearchLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search archive is not configured"})
			return
		}
		userID := c.Param("userId")
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

		records, err := archive.RecentByUser(c.Request.Context(), userID, limit)
		if err != nil {
			getLogger(c).Error("Failed to load search history",
				zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID, "searches": records})
	}
}
