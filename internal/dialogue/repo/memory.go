// Package repo provides session repository implementations.
package repo

import (
	"context"
	"sync"
	"time"

	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	"github.com/ai-pizza-palace/server/internal/metrics"
	logx "github.com/ai-pizza-palace/server/pkg/logger"
)

var _ model.SessionRepository = (*MemorySessionRepository)(nil)

// MemorySessionRepository keeps sessions in a mutex-guarded map. Sessions
// idle longer than ttl are dropped by the sweeper. The map holds the
// repository's own clones: Save stores a copy and Get hands one out, so
// callers and the sweeper never touch the same session memory.
type MemorySessionRepository struct {
	mu         sync.RWMutex
	sessions   map[string]*model.Session
	ttl        time.Duration
	sweepEvery time.Duration
}

// NewMemorySessionRepository creates an empty in-memory repository. A ttl of
// zero disables eviction entirely.
func NewMemorySessionRepository(ttl, sweepEvery time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions:   make(map[string]*model.Session),
		ttl:        ttl,
		sweepEvery: sweepEvery,
	}
}

// Get retrieves a copy of the session. Missing sessions are (nil, nil).
func (r *MemorySessionRepository) Get(ctx context.Context, userID string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[userID].Clone(), nil
}

// Save stores a copy of the session under its UserID.
func (r *MemorySessionRepository) Save(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = session.Clone()
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return nil
}

// Delete removes a session. Missing sessions are a no-op.
func (r *MemorySessionRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return nil
}

// Count returns the number of stored sessions.
func (r *MemorySessionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}

// EvictIdle drops every session whose UpdatedAt is older than the ttl as of
// now, returning how many were dropped. With a zero ttl nothing is evicted.
func (r *MemorySessionRepository) EvictIdle(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, sess := range r.sessions {
		if now.Sub(sess.UpdatedAt) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.SessionsEvicted.Add(float64(evicted))
		metrics.ActiveSessions.Set(float64(len(r.sessions)))
		logx.Debug().Int("evicted", evicted).Int("remaining", len(r.sessions)).Msg("swept idle sessions")
	}
	return evicted
}

// StartSweeper runs the idle eviction loop until ctx is cancelled. It is a
// no-op when eviction or sweeping is disabled.
func (r *MemorySessionRepository) StartSweeper(ctx context.Context) {
	if r.ttl <= 0 || r.sweepEvery <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(r.sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r.EvictIdle(now)
			}
		}
	}()
}
