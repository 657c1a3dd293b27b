package repository

import (
	"context"
	"errors"

	"github.com/codesumanr/portfolio-api/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrConflict reports a uniqueness violation (duplicate skill name,
// duplicate admin username).
var ErrConflict = errors.New("duplicate key")

// ErrInvalidID reports a malformed document identifier.
var ErrInvalidID = errors.New("invalid document id")

// AdminRepo persists the admin credential. Lookups return (nil, nil) when
// the username is absent.
type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) error
	GetAdmin(ctx context.Context, username string) (*models.Admin, error)
}

// Collection is the shared CRUD contract over one resource kind. All three
// portfolio resources are served by the same implementation, specialized by
// collection name, unique-field declaration and sort order.
//
// Update applies only the fields present in patch; Get and Update return
// (nil, nil) when no document matches id, and Delete reports whether a
// document was removed. Malformed ids yield ErrInvalidID.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc T) (*T, error)
	Update(ctx context.Context, id string, patch map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context, docs []T) error
}
