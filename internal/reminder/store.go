package reminder

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("reminder not found")
var ErrDuplicateID = errors.New("duplicate reminder id")

// Store is the persistence collaborator for reminders.
type Store interface {
	Get(ctx context.Context, id string) (Reminder, error)
	GetAll(ctx context.Context) ([]Reminder, error)
	Save(ctx context.Context, r Reminder) (Reminder, error)
	Update(ctx context.Context, r Reminder) (Reminder, error)
	Delete(ctx context.Context, id string) error
}
