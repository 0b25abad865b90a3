package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

// ProductFilter narrows the browse query. Zero values mean "no constraint".
type ProductFilter struct {
	Search      string
	CategoryID  uint64
	ListingType string
	Condition   string
	MinPrice    float64
	MaxPrice    float64
	SchoolID    uint64
	UserID      uint64
	Sort        string
	Offset      int
	Limit       int
}

type ProductRepo interface {
	GetProductById(ctx context.Context, id uint64) (*model.Product, error)
	ListProducts(ctx context.Context, filter *ProductFilter) ([]*model.Product, int64, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	UpdateProductFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeleteProduct(ctx context.Context, id uint64) error
	IncrementViews(ctx context.Context, id uint64) error
	IncrementBookmarks(ctx context.Context, id uint64) error
	ExpirePromotions(ctx context.Context, now time.Time) (int64, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
	SellerStats(ctx context.Context, userID uint64) (views, bookmarks int64, err error)
	CountProducts(ctx context.Context) (int64, error)
}

type ProductRepoImpl struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &ProductRepoImpl{db: db}
}

func (s *ProductRepoImpl) GetProductById(ctx context.Context, id uint64) (*model.Product, error) {
	product := &model.Product{}
	result := s.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		First(product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return product, nil
}

func (s *ProductRepoImpl) ListProducts(ctx context.Context, filter *ProductFilter) ([]*model.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Product{}).Where("products.is_active = ?", true)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("products.title LIKE ? OR products.description LIKE ?", like, like)
	}
	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.ListingType != "" {
		query = query.Where("products.listing_type = ?", filter.ListingType)
	}
	if filter.Condition != "" {
		query = query.Where("products.condition = ?", filter.Condition)
	}
	if filter.MinPrice > 0 {
		query = query.Where("products.price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("products.price <= ?", filter.MaxPrice)
	}
	if filter.SchoolID != 0 {
		query = query.
			Joins("JOIN users ON users.id = products.user_id").
			Where("users.school_id = ?", filter.SchoolID)
	}
	if filter.UserID != 0 {
		query = query.Where("products.user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Promoted listings always rank first within the chosen sort.
	order := "products.is_promoted DESC, "
	switch filter.Sort {
	case "price_asc":
		order += "products.price ASC"
	case "price_desc":
		order += "products.price DESC"
	case "popular":
		order += "products.views DESC"
	default:
		order += "products.created_at DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	products := make([]*model.Product, 0)
	result := query.
		Preload("Category").
		Preload("User").
		Order(order).
		Offset(filter.Offset).
		Limit(limit).
		Find(&products)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return products, total, nil
}

func (s *ProductRepoImpl) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductRepoImpl) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *ProductRepoImpl) UpdateProductFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *ProductRepoImpl) DeleteProduct(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (s *ProductRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *ProductRepoImpl) IncrementBookmarks(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("bookmarks", gorm.Expr("bookmarks + 1")).Error
}

// ExpirePromotions clears the promoted flag on listings whose window passed.
func (s *ProductRepoImpl) ExpirePromotions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("is_promoted = ? AND promoted_until IS NOT NULL AND promoted_until < ?", true, now).
		Updates(map[string]interface{}{
			"is_promoted":    false,
			"promoted_until": nil,
		})
	return result.RowsAffected, result.Error
}

func (s *ProductRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (s *ProductRepoImpl) SellerStats(ctx context.Context, userID uint64) (int64, int64, error) {
	var stats struct {
		Views     int64
		Bookmarks int64
	}
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(bookmarks), 0) AS bookmarks").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	return stats.Views, stats.Bookmarks, err
}

func (s *ProductRepoImpl) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}
