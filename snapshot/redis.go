package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// RedisStore keeps snapshots as plain string values in redis.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// DialRedis creates a store connected to the redis server at addr and checks the connection.
func DialRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrapf(err, "connect to redis at %q", addr)
	}

	return NewRedisStore(client), nil
}

func redisSnapshotKey(name string) string {
	return "basita:snapshot:" + name
}

func (s *RedisStore) Save(ctx context.Context, name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}

	key := redisSnapshotKey(name)

	err := s.client.Set(ctx, key, data, 0).Err()
	return eris.Wrapf(err, "set snapshot key %q", key)
}

func (s *RedisStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	key := redisSnapshotKey(name)

	bz, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, eris.Wrapf(ErrNotFound, "key %q", key)
	}

	if err != nil {
		return nil, eris.Wrapf(err, "get snapshot key %q", key)
	}

	return bz, nil
}

func (s *RedisStore) Close() error {
	return eris.Wrap(s.client.Close(), "close redis client")
}
