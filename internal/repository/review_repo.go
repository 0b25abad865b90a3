package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review *model.Review) error
	ListByReviewee(ctx context.Context, revieweeID uint64) ([]*model.Review, error)
	RatingSummary(ctx context.Context, revieweeID uint64) (avg float64, count int64, err error)
}

type ReviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &ReviewRepoImpl{db: db}
}

func (s *ReviewRepoImpl) CreateReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *ReviewRepoImpl) ListByReviewee(ctx context.Context, revieweeID uint64) ([]*model.Review, error) {
	reviews := make([]*model.Review, 0)
	err := s.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewRepoImpl) RatingSummary(ctx context.Context, revieweeID uint64) (float64, int64, error) {
	var summary struct {
		Avg   float64
		Count int64
	}
	err := s.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("reviewee_id = ?", revieweeID).
		Scan(&summary).Error
	return summary.Avg, summary.Count, err
}
