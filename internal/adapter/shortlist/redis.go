package shortlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/jubilant/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.ShortlistStore = (*RedisStore)(nil)

const keyPrefix = "shortlist:"

// A RedisStore keeps each shortlist in a sorted set scored by a
// per-user sequence, so member order is insertion order.
//
// ZADD NX makes the add a single atomic command.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	const op = "NewRedisStore"

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid url: %w", op, err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}

	slog.Info("redis is available", "op", op)
	return &RedisStore{rdb}, nil
}

func NewRedisStoreWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb}
}

// Seed fills shortlists of users who have none yet.
func (s *RedisStore) Seed(ctx context.Context, seed map[string][]string) error {
	const op = "RedisStore.Seed"

	for userID, ids := range seed {
		n, err := s.rdb.Exists(ctx, listKey(userID)).Result()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if n != 0 {
			continue
		}
		for _, id := range ids {
			if _, err := s.Add(ctx, userID, id); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) ([]string, error) {
	const op = "RedisStore.Get"

	ids, err := s.rdb.ZRange(ctx, listKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (s *RedisStore) Add(ctx context.Context, userID, productID string) (bool, error) {
	const op = "RedisStore.Add"

	seq, err := s.rdb.Incr(ctx, seqKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	n, err := s.rdb.ZAddNX(ctx, listKey(userID), redis.Z{
		Score:  float64(seq),
		Member: productID,
	}).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n == 1, nil
}

func (s *RedisStore) Remove(ctx context.Context, userID, productID string) (bool, error) {
	const op = "RedisStore.Remove"

	n, err := s.rdb.ZRem(ctx, listKey(userID), productID).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n == 1, nil
}

func (s *RedisStore) Close() {
	const op = "RedisStore.Close"
	log := slog.With("op", op)

	log.Info("closing redis client...")
	if err := s.rdb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("redis client is closed")
}

func listKey(userID string) string {
	return keyPrefix + userID
}

func seqKey(userID string) string {
	return keyPrefix + userID + ":seq"
}
