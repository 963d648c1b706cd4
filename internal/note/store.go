package note

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("note not found")
var ErrDuplicateID = errors.New("duplicate note id")

// Store is the persistence collaborator for notes. Save must perform an
// atomic check-and-insert; the lifecycle service holds no lock of its
// own across the check and the write. Update touches the mutable
// columns only, never created_at.
type Store interface {
	Get(ctx context.Context, id int) (Note, error)
	GetAll(ctx context.Context) ([]Note, error)
	Save(ctx context.Context, n Note) (Note, error)
	Update(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id int) error
}
