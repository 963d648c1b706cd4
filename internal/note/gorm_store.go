package note

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormStore persists notes in Postgres. It expects the connection to be
// opened with TranslateError so duplicate inserts surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Get(ctx context.Context, id int) (Note, error) {
	var n Note
	if err := s.DB.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Note{}, ErrNotFound
		}
		return Note{}, err
	}
	return n, nil
}

func (s *GormStore) GetAll(ctx context.Context) ([]Note, error) {
	var rows []Note
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Save(ctx context.Context, n Note) (Note, error) {
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Note{}, ErrDuplicateID
		}
		return Note{}, err
	}
	return n, nil
}

func (s *GormStore) Update(ctx context.Context, n Note) (Note, error) {
	res := s.DB.WithContext(ctx).Model(&Note{}).Where("id = ?", n.ID).
		Updates(map[string]any{
			"title":      n.Title,
			"content":    n.Content,
			"status":     n.Status,
			"tags":       n.Tags,
			"updated_at": n.UpdatedAt,
		})
	if res.Error != nil {
		return Note{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Note{}, ErrNotFound
	}
	return s.Get(ctx, n.ID)
}

func (s *GormStore) Delete(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&Note{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
