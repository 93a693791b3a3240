package repo

import (
	"context"
	"testing"
	"time"

	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRoundtrip(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository(0, 0)

	sess := model.NewSession("alice")
	require.NoError(t, r.Save(ctx, sess))

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.UserID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryRepoMissingIsNilNil(t *testing.T) {
	r := NewMemorySessionRepository(0, 0)

	got, err := r.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRepoDelete(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository(0, 0)

	require.NoError(t, r.Save(ctx, model.NewSession("alice")))
	require.NoError(t, r.Delete(ctx, "alice"))
	require.NoError(t, r.Delete(ctx, "alice")) // no-op on missing

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRepoIsolatesStoredSessions(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository(0, 0)

	sess := model.NewSession("alice")
	sess.AddItem(model.MenuItem{ID: 1, Name: "Margherita Pizza", Price: 12.99}, 1)
	require.NoError(t, r.Save(ctx, sess))

	// Mutating the caller's session after Save must not reach the store.
	sess.Cart[0].Quantity = 99
	sess.State = model.StateCancelled

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Cart[0].Quantity)
	assert.Equal(t, model.StateIdle, got.State)

	// Nor must mutating one Get result leak into the next.
	got.Cart[0].Quantity = 42
	again, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Cart[0].Quantity)
}

func TestMemoryRepoEvictIdle(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository(30*time.Minute, time.Minute)

	now := time.Now().UTC()

	stale := model.NewSession("stale")
	stale.UpdatedAt = now.Add(-time.Hour)
	require.NoError(t, r.Save(ctx, stale))

	fresh := model.NewSession("fresh")
	fresh.UpdatedAt = now.Add(-time.Minute)
	require.NoError(t, r.Save(ctx, fresh))

	assert.Equal(t, 1, r.EvictIdle(now))

	got, err := r.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = r.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryRepoZeroTTLNeverEvicts(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository(0, 0)

	ancient := model.NewSession("ancient")
	ancient.UpdatedAt = time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, r.Save(ctx, ancient))

	assert.Equal(t, 0, r.EvictIdle(time.Now().UTC()))

	got, err := r.Get(ctx, "ancient")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryRepoExactTTLBoundaryStays(t *testing.T) {
	ctx := context.Background()
	ttl := 30 * time.Minute
	r := NewMemorySessionRepository(ttl, time.Minute)

	now := time.Now().UTC()
	edge := model.NewSession("edge")
	edge.UpdatedAt = now.Add(-ttl)
	require.NoError(t, r.Save(ctx, edge))

	// Eviction requires strictly older than the ttl.
	assert.Equal(t, 0, r.EvictIdle(now))
}
