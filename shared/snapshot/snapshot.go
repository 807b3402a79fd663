// Package snapshot persists whole-table images for the in-memory repositories.
// Every backend stores an opaque byte payload under a table key and returns
// ErrNotFound from Load when nothing was saved yet.
package snapshot

//go:generate go run go.uber.org/mock/mockgen -source=./snapshot.go -destination=./mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/s3"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

var (
	ErrNotFound       = errors.New("snapshot not found")
	ErrUnknownBackend = errors.New("unknown snapshot backend")
)

type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// New selects the backend named by SNAPSHOT_BACKEND.
func New(cfg *config.Config, redisClient *goRedis.Client, otl otel.Otel) (Store, error) {
	backend := strings.ToLower(cfg.Snapshot.Backend)

	log.Info().Str("backend", backend).Msg("Initializing snapshot store")

	switch backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				return nil, fmt.Errorf("failed to migrate snapshot database: %w", err)
			}
		}

		conn, err := postgres.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot database: %w", err)
		}

		return NewPostgresStore(conn, cfg.Snapshot.Table, otl), nil
	case BackendRedis:
		return NewRedisStore(redisClient, cfg.Snapshot.KeyPrefix, otl), nil
	case BackendS3:
		return NewS3Store(s3.New(cfg, otl), cfg.External.S3.BucketName, cfg.Snapshot.Directory, otl), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
}
