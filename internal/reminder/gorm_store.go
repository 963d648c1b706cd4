package reminder

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormStore persists reminders in Postgres.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Get(ctx context.Context, id string) (Reminder, error) {
	var r Reminder
	if err := s.DB.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Reminder{}, ErrNotFound
		}
		return Reminder{}, err
	}
	return r, nil
}

func (s *GormStore) GetAll(ctx context.Context) ([]Reminder, error) {
	var rows []Reminder
	if err := s.DB.WithContext(ctx).Order("creation_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Save(ctx context.Context, r Reminder) (Reminder, error) {
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Reminder{}, ErrDuplicateID
		}
		return Reminder{}, err
	}
	return r, nil
}

func (s *GormStore) Update(ctx context.Context, r Reminder) (Reminder, error) {
	res := s.DB.WithContext(ctx).Model(&Reminder{}).Where("id = ?", r.ID).
		Updates(map[string]any{
			"name":        r.Name,
			"description": r.Description,
			"type":        r.Type,
		})
	if res.Error != nil {
		return Reminder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Reminder{}, ErrNotFound
	}
	return s.Get(ctx, r.ID)
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&Reminder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
