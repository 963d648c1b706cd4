package category

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormStore persists categories in Postgres.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Get(ctx context.Context, id int) (Category, error) {
	var c Category
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (s *GormStore) GetAll(ctx context.Context) ([]Category, error) {
	var rows []Category
	if err := s.DB.WithContext(ctx).Order("creation_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Save(ctx context.Context, c Category) (Category, error) {
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Category{}, ErrDuplicateID
		}
		return Category{}, err
	}
	return c, nil
}

func (s *GormStore) Update(ctx context.Context, c Category) (Category, error) {
	res := s.DB.WithContext(ctx).Model(&Category{}).Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"created_by":  c.CreatedBy,
		})
	if res.Error != nil {
		return Category{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Category{}, ErrNotFound
	}
	return s.Get(ctx, c.ID)
}

func (s *GormStore) Delete(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
