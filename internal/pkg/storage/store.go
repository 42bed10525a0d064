package storage

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned by Get when no blob exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored blob. Body must be closed by the caller.
type Object struct {
	Key  string
	Body io.ReadCloser
	// Size is -1 when the driver does not know it.
	Size int64
}

// Store is a random-key blob store.
type Store interface {
	// PutRandom writes r under a fresh random key ending in "."+ext (no suffix
	// when ext is empty) and returns that key. size may be -1 when unknown.
	PutRandom(ctx context.Context, r io.Reader, size int64, ext string) (string, error)
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// NewKey generates a random object key with an optional extension.
func NewKey(ext string) string {
	key := uuid.New().String()
	if ext == "" {
		return key
	}
	return key + "." + ext
}
