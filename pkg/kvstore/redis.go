package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "honeyshop:snapshot:"

// RedisStore persists snapshots in Redis, one envelope per slot. The
// compare-and-swap runs inside an optimistic WATCH transaction so two
// writers racing on the same slot cannot both win.
type RedisStore struct {
	client *redislib.Client
}

func NewRedis(client *redislib.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("kvstore: redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) redisKey(key string) string {
	return redisKeyPrefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (Snapshot, error) {
	raw, err := r.client.Get(ctx, r.redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("kvstore: redis get %s: %w", key, err)
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Snapshot{}, fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return Snapshot{Version: env.Version, Data: env.Data}, nil
}

func (r *RedisStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	storageKey := r.redisKey(key)
	next := envelope{Version: expectedVersion + 1, Data: data}
	encoded, err := json.Marshal(next)
	if err != nil {
		return 0, fmt.Errorf("kvstore: encode %s: %w", key, err)
	}

	txn := func(tx *redislib.Tx) error {
		current, err := tx.Get(ctx, storageKey).Result()
		switch {
		case errors.Is(err, redislib.Nil):
			if expectedVersion != 0 {
				return ErrVersionConflict
			}
		case err != nil:
			return fmt.Errorf("kvstore: redis get %s: %w", key, err)
		default:
			var env envelope
			if err := json.Unmarshal([]byte(current), &env); err != nil {
				return fmt.Errorf("kvstore: decode %s: %w", key, err)
			}
			if env.Version != expectedVersion {
				return ErrVersionConflict
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redislib.Pipeliner) error {
			pipe.Set(ctx, storageKey, encoded, 0)
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txn, storageKey); err != nil {
		if errors.Is(err, redislib.TxFailedErr) {
			return 0, ErrVersionConflict
		}
		return 0, err
	}
	return next.Version, nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("kvstore: redis delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
