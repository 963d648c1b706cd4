package note

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"keepnote/internal/lifecycle"
)

// Service is the note lifecycle engine. Unexpected store faults fold to
// the negative status of the operation category: Conflict for
// create/update, NotFound for read/delete. The cause is logged, never
// returned.
type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

func valid(n Note) bool {
	return strings.TrimSpace(n.Title) != "" &&
		strings.TrimSpace(n.Content) != "" &&
		strings.TrimSpace(n.Status) != ""
}

// Create persists a new note. Title, content and status must all be
// non-empty; empty fields never reach the store. The created timestamp
// is never taken from the caller.
func (s *Service) Create(ctx context.Context, n Note) lifecycle.Result[Note] {
	if !valid(n) {
		s.log.Debug().Msg("note create rejected: empty required field")
		return lifecycle.ValidationFailed[Note]()
	}

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	n.Tags = pq.StringArray(ExtractTags(n.Content))

	stored, err := s.store.Save(ctx, n)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			s.log.Info().Int("note_id", n.ID).Msg("note create conflict")
			return lifecycle.Conflict[Note]()
		}
		s.log.Error().Err(err).Msg("note create failed")
		return lifecycle.Conflict[Note]()
	}

	s.log.Info().Int("note_id", stored.ID).Msg("created note")
	return lifecycle.OK(stored)
}

func (s *Service) Get(ctx context.Context, id int) lifecycle.Result[Note] {
	n, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Int("note_id", id).Msg("note read failed")
		}
		return lifecycle.NotFound[Note]()
	}
	return lifecycle.OK(n)
}

func (s *Service) List(ctx context.Context) lifecycle.Result[[]Note] {
	rows, err := s.store.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("note list failed")
		return lifecycle.NotFound[[]Note]()
	}
	return lifecycle.OK(rows)
}

// Update replaces every mutable field of an existing note. The original
// creation time is preserved; UpdatedAt records the modification.
func (s *Service) Update(ctx context.Context, id int, n Note) lifecycle.Result[Note] {
	if !valid(n) {
		s.log.Debug().Int("note_id", id).Msg("note update rejected: empty required field")
		return lifecycle.ValidationFailed[Note]()
	}

	n.ID = id
	n.UpdatedAt = time.Now()
	n.Tags = pq.StringArray(ExtractTags(n.Content))

	stored, err := s.store.Update(ctx, n)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Info().Int("note_id", id).Msg("note update: not found")
			return lifecycle.NotFound[Note]()
		}
		s.log.Error().Err(err).Int("note_id", id).Msg("note update failed")
		return lifecycle.Conflict[Note]()
	}

	s.log.Info().Int("note_id", id).Msg("updated note")
	return lifecycle.OK(stored)
}

func (s *Service) Delete(ctx context.Context, id int) lifecycle.Result[struct{}] {
	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Int("note_id", id).Msg("note delete failed")
		}
		return lifecycle.NotFound[struct{}]()
	}
	s.log.Info().Int("note_id", id).Msg("deleted note")
	return lifecycle.OK(struct{}{})
}
