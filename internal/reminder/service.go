package reminder

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"keepnote/internal/auth"
	"keepnote/internal/lifecycle"
)

// Service is the reminder lifecycle engine. Whether mutating operations
// are gated on a caller identity is a deployment policy: the upstream
// category service always gates, the original reminder service never
// did, and the asymmetry looked accidental, so both behaviors are kept
// reachable through requireAuth.
type Service struct {
	store       Store
	log         zerolog.Logger
	requireAuth bool
}

func NewService(store Store, log zerolog.Logger, requireAuth bool) *Service {
	return &Service{store: store, log: log, requireAuth: requireAuth}
}

func (s *Service) admitted(ac auth.Context) bool {
	if !s.requireAuth {
		return true
	}
	_, ok := ac.Identity()
	return ok
}

// Create persists a reminder. A blank id gets a store-side uuid; a
// supplied id must be unused or the create is a Conflict.
func (s *Service) Create(ctx context.Context, ac auth.Context, r Reminder) lifecycle.Result[Reminder] {
	if !s.admitted(ac) {
		s.log.Info().Msg("reminder create unauthorized")
		return lifecycle.Unauthorized[Reminder]()
	}

	if strings.TrimSpace(r.ID) == "" {
		r.ID = uuid.NewString()
	}
	r.CreationDate = time.Now()

	stored, err := s.store.Save(ctx, r)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			s.log.Info().Str("reminder_id", r.ID).Msg("reminder create conflict")
			return lifecycle.Conflict[Reminder]()
		}
		s.log.Error().Err(err).Str("reminder_id", r.ID).Msg("reminder create failed")
		return lifecycle.Conflict[Reminder]()
	}

	s.log.Info().Str("reminder_id", stored.ID).Msg("created reminder")
	return lifecycle.OK(stored)
}

func (s *Service) Get(ctx context.Context, id string) lifecycle.Result[Reminder] {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Str("reminder_id", id).Msg("reminder read failed")
		}
		return lifecycle.NotFound[Reminder]()
	}
	return lifecycle.OK(r)
}

func (s *Service) List(ctx context.Context) lifecycle.Result[[]Reminder] {
	rows, err := s.store.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reminder list failed")
		return lifecycle.NotFound[[]Reminder]()
	}
	return lifecycle.OK(rows)
}

// Update replaces the mutable fields of an existing reminder; the
// creation date stays as first stamped.
func (s *Service) Update(ctx context.Context, ac auth.Context, id string, r Reminder) lifecycle.Result[Reminder] {
	if !s.admitted(ac) {
		s.log.Info().Str("reminder_id", id).Msg("reminder update unauthorized")
		return lifecycle.Unauthorized[Reminder]()
	}

	r.ID = id

	stored, err := s.store.Update(ctx, r)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Info().Str("reminder_id", id).Msg("reminder update: not found")
			return lifecycle.NotFound[Reminder]()
		}
		s.log.Error().Err(err).Str("reminder_id", id).Msg("reminder update failed")
		return lifecycle.Conflict[Reminder]()
	}

	s.log.Info().Str("reminder_id", id).Msg("updated reminder")
	return lifecycle.OK(stored)
}

func (s *Service) Delete(ctx context.Context, ac auth.Context, id string) lifecycle.Result[struct{}] {
	if !s.admitted(ac) {
		s.log.Info().Str("reminder_id", id).Msg("reminder delete unauthorized")
		return lifecycle.Unauthorized[struct{}]()
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Str("reminder_id", id).Msg("reminder delete failed")
		}
		return lifecycle.NotFound[struct{}]()
	}

	s.log.Info().Str("reminder_id", id).Msg("deleted reminder")
	return lifecycle.OK(struct{}{})
}
