package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/telegram-avia-bot/internal/domain/constants"
	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
	"github.com/yourusername/telegram-avia-bot/pkg/logger"
)

const keyPrefix = "flight_bot:"

// RedisStore keeps search snapshots and price watches in Redis. A store
// built from an empty URL (or a failed connection) runs disabled: reads
// miss, writes are no-ops. The bot stays usable without Redis, only cached
// buttons and price tracking stop working.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the given Redis URL. Connection problems are
// logged and produce a disabled store rather than an error.
func NewRedisStore(ctx context.Context, redisURL string) *RedisStore {
	if redisURL == "" {
		logger.InfoLogger.Println("⚠️ REDIS_URL is not set, caching and price watches are disabled")
		return &RedisStore{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.ErrorLogger.Printf("❌ Bad Redis URL: %v", err)
		return &RedisStore{}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.ErrorLogger.Printf("❌ Redis connection failed: %v", err)
		return &RedisStore{}
	}

	logger.InfoLogger.Println("✅ Redis connected")
	return &RedisStore{client: client}
}

// NewRedisStoreWithClient wraps an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Enabled reports whether a real Redis connection is behind the store.
func (s *RedisStore) Enabled() bool {
	return s.client != nil
}

// Close releases the connection. Safe on a disabled store.
func (s *RedisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func searchKey(id string) string {
	return keyPrefix + "search:" + id
}

func userWatchesKey(userID int64) string {
	return fmt.Sprintf("%suser:watches:%d", keyPrefix, userID)
}

// WatchKey derives the store key for a watch. One watch per user and exact
// route/date combination; saving again overwrites.
func WatchKey(w entity.PriceWatch) string {
	key := fmt.Sprintf("%swatch:%d:%s:%s:%s", keyPrefix, w.UserID, w.Origin, w.Dest, w.DepartDate)
	if w.ReturnDate != "" {
		key += ":" + w.ReturnDate
	}
	return key
}

// SaveSearch stores a snapshot for one hour.
func (s *RedisStore) SaveSearch(ctx context.Context, id string, snap entity.SearchSnapshot) error {
	if s.client == nil {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal search %s: %w", id, err)
	}
	if err := s.client.Set(ctx, searchKey(id), payload, constants.SearchCacheTTL).Err(); err != nil {
		return fmt.Errorf("save search %s: %w", id, err)
	}
	return nil
}

// GetSearch loads a snapshot; (nil, nil) when missing or expired.
func (s *RedisStore) GetSearch(ctx context.Context, id string) (*entity.SearchSnapshot, error) {
	if s.client == nil {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, searchKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get search %s: %w", id, err)
	}
	var snap entity.SearchSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal search %s: %w", id, err)
	}
	return &snap, nil
}

// DeleteSearch drops a snapshot.
func (s *RedisStore) DeleteSearch(ctx context.Context, id string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, searchKey(id)).Err()
}

// IsFirstTimeUser reports whether the user has never started the bot
// before, marking them as seen in the same call. Without Redis every start
// looks like the first one.
func (s *RedisStore) IsFirstTimeUser(ctx context.Context, userID int64) bool {
	if s.client == nil {
		return true
	}
	key := keyPrefix + "first_time_users"
	member := fmt.Sprint(userID)
	seen, err := s.client.SIsMember(ctx, key, member).Result()
	if err != nil {
		logger.ErrorLogger.Printf("❌ first_time check for %d: %v", userID, err)
		return true
	}
	if !seen {
		if err := s.client.SAdd(ctx, key, member).Err(); err != nil {
			logger.ErrorLogger.Printf("❌ first_time mark for %d: %v", userID, err)
		}
	}
	return !seen
}

// SaveWatch stores a price watch for thirty days and indexes it in the
// user's watch set. Returns the store key, or "" when disabled.
func (s *RedisStore) SaveWatch(ctx context.Context, w entity.PriceWatch) (string, error) {
	if s.client == nil {
		logger.InfoLogger.Println("⚠️ Redis is disabled, price watch not saved")
		return "", nil
	}
	key := WatchKey(w)
	payload, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("marshal watch %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, payload, constants.PriceWatchTTL).Err(); err != nil {
		return "", fmt.Errorf("save watch %s: %w", key, err)
	}
	if err := s.client.SAdd(ctx, userWatchesKey(w.UserID), key).Err(); err != nil {
		return "", fmt.Errorf("index watch %s: %w", key, err)
	}
	logger.InfoLogger.Printf("👀 Price watch saved: %d | %s→%s | %s | threshold %d₽",
		w.UserID, w.Origin, w.Dest, w.DepartDate, w.Threshold)
	return key, nil
}

// UpdateWatch rewrites a watch in place, refreshing its TTL.
func (s *RedisStore) UpdateWatch(ctx context.Context, key string, w entity.PriceWatch) error {
	if s.client == nil {
		return nil
	}
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal watch %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, payload, constants.PriceWatchTTL).Err(); err != nil {
		return fmt.Errorf("update watch %s: %w", key, err)
	}
	return nil
}

// GetWatch loads one watch; (nil, nil) when missing or expired.
func (s *RedisStore) GetWatch(ctx context.Context, key string) (*entity.PriceWatch, error) {
	if s.client == nil {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get watch %s: %w", key, err)
	}
	var w entity.PriceWatch
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, fmt.Errorf("unmarshal watch %s: %w", key, err)
	}
	return &w, nil
}

// UserWatches lists active watches for one user, skipping index entries
// whose watch already expired.
func (s *RedisStore) UserWatches(ctx context.Context, userID int64) ([]entity.PriceWatch, error) {
	if s.client == nil {
		return nil, nil
	}
	keys, err := s.client.SMembers(ctx, userWatchesKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list watches for %d: %w", userID, err)
	}
	var watches []entity.PriceWatch
	for _, key := range keys {
		w, err := s.GetWatch(ctx, key)
		if err != nil {
			return nil, err
		}
		if w != nil {
			watches = append(watches, *w)
		}
	}
	return watches, nil
}

// RemoveWatch deletes a watch and its user-index entry.
func (s *RedisStore) RemoveWatch(ctx context.Context, userID int64, key string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("remove watch %s: %w", key, err)
	}
	if err := s.client.SRem(ctx, userWatchesKey(userID), key).Err(); err != nil {
		return fmt.Errorf("unindex watch %s: %w", key, err)
	}
	return nil
}

// AllWatchKeys scans for every active watch key. Used by the background
// price checker.
func (s *RedisStore) AllWatchKeys(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, nil
	}
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, keyPrefix+"watch:*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan watch keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
