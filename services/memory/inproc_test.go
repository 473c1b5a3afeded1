package memory

import (
	"context"
	"testing"
	"time"

	"tazaticket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcStoreDefaultState(t *testing.T) {
	store := NewInProcStore(time.Hour)

	state, err := store.Get(context.Background(), "whatsapp:+447000000001")
	require.NoError(t, err)
	assert.Equal(t, "whatsapp:+447000000001", state.UserID)
	assert.Equal(t, models.DefaultLanguage, state.Language)
	assert.Equal(t, models.ResponseModeText, state.ResponseMode)
	assert.Empty(t, state.Origin)
	assert.False(t, state.SearchStale)
}

func TestInProcStoreRoundTrip(t *testing.T) {
	store := NewInProcStore(time.Hour)
	ctx := context.Background()

	state := models.NewConversationState("u1")
	state.Origin = "NYC"
	state.Destination = "LON"
	state.SearchStale = true
	require.NoError(t, store.Put(ctx, state))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "NYC", got.Origin)
	assert.Equal(t, "LON", got.Destination)
	assert.True(t, got.SearchStale)
}

func TestInProcStoreNoAliasing(t *testing.T) {
	store := NewInProcStore(time.Hour)
	ctx := context.Background()

	state := models.NewConversationState("u1")
	state.Origin = "NYC"
	require.NoError(t, store.Put(ctx, state))

	// Mutating the caller's copy after Put must not leak into the store.
	state.Origin = "PAR"
	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "NYC", got.Origin)

	// Mutating a Get result must not leak either.
	got.Destination = "DXB"
	again, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, again.Destination)
}

func TestInProcStoreDelete(t *testing.T) {
	store := NewInProcStore(time.Hour)
	ctx := context.Background()

	state := models.NewConversationState("u1")
	state.Origin = "NYC"
	require.NoError(t, store.Put(ctx, state))
	require.NoError(t, store.Delete(ctx, "u1"))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Origin)
}

func TestInProcStoreExpiry(t *testing.T) {
	store := NewInProcStore(time.Millisecond)
	ctx := context.Background()

	state := models.NewConversationState("u1")
	state.Origin = "NYC"
	require.NoError(t, store.Put(ctx, state))

	time.Sleep(5 * time.Millisecond)

	// Expired entries read back as the default state.
	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Origin)

	removed, err := store.Sweep(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
}
