package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type SavedSearchRepo interface {
	CreateSavedSearch(ctx context.Context, search *model.SavedSearch) error
	ListByUser(ctx context.Context, userID uint64) ([]*model.SavedSearch, error)
	GetById(ctx context.Context, id uint64) (*model.SavedSearch, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
	Exists(ctx context.Context, userID uint64, query string, category *string) (bool, error)
	DeleteSavedSearch(ctx context.Context, id uint64) error
}

type SavedSearchRepoImpl struct {
	db *gorm.DB
}

func NewSavedSearchRepo(db *gorm.DB) SavedSearchRepo {
	return &SavedSearchRepoImpl{db: db}
}

func (s *SavedSearchRepoImpl) CreateSavedSearch(ctx context.Context, search *model.SavedSearch) error {
	return s.db.WithContext(ctx).Create(search).Error
}

func (s *SavedSearchRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.SavedSearch, error) {
	searches := make([]*model.SavedSearch, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&searches).Error
	if err != nil {
		return nil, err
	}
	return searches, nil
}

func (s *SavedSearchRepoImpl) GetById(ctx context.Context, id uint64) (*model.SavedSearch, error) {
	search := &model.SavedSearch{}
	result := s.db.WithContext(ctx).First(search, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return search, nil
}

func (s *SavedSearchRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.SavedSearch{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *SavedSearchRepoImpl) Exists(ctx context.Context, userID uint64, query string, category *string) (bool, error) {
	db := s.db.WithContext(ctx).
		Model(&model.SavedSearch{}).
		Where("user_id = ? AND query = ?", userID, query)
	if category != nil {
		db = db.Where("category = ?", *category)
	} else {
		db = db.Where("category IS NULL")
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SavedSearchRepoImpl) DeleteSavedSearch(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.SavedSearch{}, id).Error
}
