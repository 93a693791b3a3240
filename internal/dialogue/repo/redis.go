package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	errx "github.com/ai-pizza-palace/server/internal/core/error"
	"github.com/ai-pizza-palace/server/internal/dialogue/model"
	logx "github.com/ai-pizza-palace/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var _ model.SessionRepository = (*RedisSessionRepository)(nil)

// RedisSessionRepository stores each session as a JSON value with a TTL that
// refreshes on every save, so idle sessions expire without a sweeper.
type RedisSessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSessionRepository(rdb redis.Cmdable, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionRepository) sessionKey(userID string) string {
	return fmt.Sprintf("session:%s:state", userID)
}

// Get loads and decodes the session for userID. A missing key is (nil, nil).
func (r *RedisSessionRepository) Get(ctx context.Context, userID string) (*model.Session, error) {
	key := r.sessionKey(userID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session from redis")
		return nil, errx.WrapRedis(err)
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		logx.Error().Err(err).Str("userID", userID).Msg("failed to unmarshal session")
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save encodes the session and writes it with the repository TTL, extending
// the key's lifetime on every touch.
func (r *RedisSessionRepository) Save(ctx context.Context, session *model.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		logx.Error().Err(err).Str("userID", session.UserID).Msg("failed to marshal session")
		return fmt.Errorf("marshal session: %w", err)
	}
	key := r.sessionKey(session.UserID)

	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write session to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

// Delete removes the session key. Missing keys are a no-op.
func (r *RedisSessionRepository) Delete(ctx context.Context, userID string) error {
	key := r.sessionKey(userID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

// Count scans for session keys. Used for gauges and diagnostics, not hot paths.
func (r *RedisSessionRepository) Count(ctx context.Context) (int, error) {
	var cursor uint64
	count := 0
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, "session:*:state", 100).Result()
		if err != nil {
			logx.Error().Err(err).Msg("failed to scan session keys")
			return 0, errx.WrapRedis(err)
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}
