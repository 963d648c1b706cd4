package category

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("category not found")
var ErrDuplicateID = errors.New("duplicate category id")

// Store is the persistence collaborator for categories. Save performs
// an atomic check-and-insert on the client-supplied id. Update never
// touches creation_date.
type Store interface {
	Get(ctx context.Context, id int) (Category, error)
	GetAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, c Category) (Category, error)
	Delete(ctx context.Context, id int) error
}
