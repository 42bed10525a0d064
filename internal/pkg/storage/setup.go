package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/foxalbum/foxalbum/internal/pkg/config"
)

// NewStore builds the object store selected by STORAGE_DRIVER.
func NewStore(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		return NewS3Store(ctx, cfg.S3, log)
	case config.StorageDriverMinio:
		return NewMinioStore(ctx, cfg.Minio, log)
	case config.StorageDriverMemory:
		log.Warn().Msg("using in-memory object store, uploads are lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
