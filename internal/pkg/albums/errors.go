package albums

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/internal/pkg/storage"
)

var (
	// ErrUnauthenticated means the request carries no logged-in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound covers absent entities and entities owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when deleting an image owned by another user.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest is returned for unsupported image action intents.
	ErrBadRequest = errors.New("bad request")
	// ErrInvalidInput wraps validation failures of user supplied fields.
	ErrInvalidInput = errors.New("invalid input")
)

// collaboratorErr maps "absent" answers of the database and the object store to
// ErrNotFound and wraps everything else, so an unavailable collaborator is never
// reported as a missing entity.
func collaboratorErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, storage.ErrObjectNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
