package snapshot

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client *goRedis.Client
	otel   otel.Otel
	prefix string
}

// NewRedisStore keeps each table under "<prefix>:snapshot:<key>" without expiry.
func NewRedisStore(client *goRedis.Client, prefix string, otl otel.Otel) Store {
	return &redisStore{client: client, otel: otl, prefix: prefix}
}

func (r *redisStore) redisKey(key string) string {
	return r.prefix + ":snapshot:" + key
}

func (r *redisStore) Save(ctx context.Context, key string, data []byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".redis.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Set(ctx, r.redisKey(key), data, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save snapshot to redis")

		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

func (r *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".redis.Load")
	defer scope.End()

	data, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return nil, ErrNotFound
		}

		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return data, nil
}
