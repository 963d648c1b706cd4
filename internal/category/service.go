package category

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"keepnote/internal/auth"
	"keepnote/internal/lifecycle"
)

// Service is the category lifecycle engine. Every operation checks the
// authorization gate before any validation or store access; an
// anonymous caller never causes a side effect.
type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Create stamps ownership and creation time from the server side and
// persists the category under its client-supplied id. A duplicate id is
// a Conflict; the store's atomic insert is the only uniqueness check.
func (s *Service) Create(ctx context.Context, ac auth.Context, c Category) lifecycle.Result[Category] {
	caller, ok := ac.Identity()
	if !ok {
		s.log.Info().Msg("category create unauthorized")
		return lifecycle.Unauthorized[Category]()
	}

	c.CreatedBy = caller
	c.CreationDate = time.Now()

	stored, err := s.store.Save(ctx, c)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			s.log.Info().Int("category_id", c.ID).Msg("category create conflict")
			return lifecycle.Conflict[Category]()
		}
		s.log.Error().Err(err).Int("category_id", c.ID).Msg("category create failed")
		return lifecycle.Conflict[Category]()
	}

	s.log.Info().Int("category_id", stored.ID).Str("created_by", caller).Msg("created category")
	return lifecycle.OK(stored)
}

func (s *Service) Get(ctx context.Context, id int) lifecycle.Result[Category] {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Int("category_id", id).Msg("category read failed")
		}
		return lifecycle.NotFound[Category]()
	}
	return lifecycle.OK(c)
}

// List returns the categories created by the authenticated caller.
func (s *Service) List(ctx context.Context, ac auth.Context) lifecycle.Result[[]Category] {
	caller, ok := ac.Identity()
	if !ok {
		s.log.Info().Msg("category list unauthorized")
		return lifecycle.Unauthorized[[]Category]()
	}

	rows, err := s.store.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("category list failed")
		return lifecycle.NotFound[[]Category]()
	}

	out := make([]Category, 0, len(rows))
	for _, c := range rows {
		if c.CreatedBy == caller {
			out = append(out, c)
		}
	}
	return lifecycle.OK(out)
}

// Update replaces the mutable fields of an existing category. Ownership
// is re-asserted from the caller identity, not taken from the payload;
// the original creation date is untouched.
func (s *Service) Update(ctx context.Context, ac auth.Context, id int, c Category) lifecycle.Result[Category] {
	caller, ok := ac.Identity()
	if !ok {
		s.log.Info().Int("category_id", id).Msg("category update unauthorized")
		return lifecycle.Unauthorized[Category]()
	}

	c.ID = id
	c.CreatedBy = caller

	stored, err := s.store.Update(ctx, c)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Info().Int("category_id", id).Msg("category update: not found")
			return lifecycle.NotFound[Category]()
		}
		s.log.Error().Err(err).Int("category_id", id).Msg("category update failed")
		return lifecycle.Conflict[Category]()
	}

	s.log.Info().Int("category_id", id).Msg("updated category")
	return lifecycle.OK(stored)
}

func (s *Service) Delete(ctx context.Context, ac auth.Context, id int) lifecycle.Result[struct{}] {
	if _, ok := ac.Identity(); !ok {
		s.log.Info().Int("category_id", id).Msg("category delete unauthorized")
		return lifecycle.Unauthorized[struct{}]()
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Int("category_id", id).Msg("category delete failed")
		}
		return lifecycle.NotFound[struct{}]()
	}

	s.log.Info().Int("category_id", id).Msg("deleted category")
	return lifecycle.OK(struct{}{})
}
