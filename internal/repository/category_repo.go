package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type CategoryRepo interface {
	GetCategoryById(ctx context.Context, id uint64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
	CountProductsInCategory(ctx context.Context, id uint64) (int64, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) GetCategoryById(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).First(category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return category, nil
}

func (s *CategoryRepoImpl) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).Where("name = ?", name).First(category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return category, nil
}

func (s *CategoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryRepoImpl) UpdateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Save(category).Error
}

func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (s *CategoryRepoImpl) CountProductsInCategory(ctx context.Context, id uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}
