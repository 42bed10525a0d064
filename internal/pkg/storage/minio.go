package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/foxalbum/foxalbum/internal/pkg/config"
)

const minioNoSuchKey = "NoSuchKey"

// MinioStore stores blobs in a MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	log    zerolog.Logger
}

// NewMinioStore creates the client and checks that the bucket exists.
func NewMinioStore(ctx context.Context, cfg config.MinioConfig, log zerolog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	store := &MinioStore{
		client: client,
		bucket: cfg.BucketName,
		log:    log.With().Str("component", "minio").Str("bucket", cfg.BucketName).Logger(),
	}

	if err := store.Ping(ctx); err != nil {
		return nil, err
	}

	store.log.Info().Str("endpoint", cfg.Endpoint).Msg("initialized minio object store")
	return store, nil
}

func (m *MinioStore) PutRandom(ctx context.Context, r io.Reader, size int64, ext string) (string, error) {
	key := NewKey(ext)

	if _, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{}); err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	m.log.Debug().Str("key", key).Int64("size", size).Msg("uploaded object")
	return key, nil
}

// Get stats the object first because minio's GetObject is lazy and would only
// report a missing key on the first Read.
func (m *MinioStore) Get(ctx context.Context, key string) (*Object, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from minio: %w", err)
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat object in minio: %w", err)
	}

	return &Object{Key: key, Body: obj, Size: info.Size}, nil
}

func (m *MinioStore) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object from minio: %w", err)
	}

	m.log.Debug().Str("key", key).Msg("deleted object")
	return nil
}

func (m *MinioStore) Ping(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", m.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}
