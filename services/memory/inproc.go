package memory

import (
	"context"
	"sync"
	"time"

	"tazaticket/models"
)

type inprocEntry struct {
	state     *models.ConversationState
	expiresAt time.Time
}

// InProcStore is the map-backed Store used in tests and when Redis is not
// configured. States are cloned on the way in and out so no caller ever
// aliases stored data.
type InProcStore struct {
	mu      sync.RWMutex
	entries map[string]inprocEntry
	ttl     time.Duration
}

func NewInProcStore(ttl time.Duration) *InProcStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InProcStore{
		entries: make(map[string]inprocEntry),
		ttl:     ttl,
	}
}

func (s *InProcStore) Get(ctx context.Context, userID string) (*models.ConversationState, error) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return models.NewConversationState(userID), nil
	}
	return entry.state.Clone(), nil
}

func (s *InProcStore) Put(ctx context.Context, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state.UserID] = inprocEntry{
		state:     state.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *InProcStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

func (s *InProcStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := Stats{Entries: len(s.entries)}
	for userID := range s.entries {
		if len(stats.SampleKeys) >= 10 {
			break
		}
		stats.SampleKeys = append(stats.SampleKeys, userID)
	}
	return stats, nil
}

func (s *InProcStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for userID, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, userID)
			removed++
		}
	}
	return removed, nil
}
