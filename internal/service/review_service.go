package service

import (
	"context"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type ReviewService interface {
	Create(ctx context.Context, reviewerID, revieweeID uint64, createDTO *dto.CreateReviewDTO) (*dto.ReviewDTO, error)
	ListForUser(ctx context.Context, revieweeID uint64) ([]*dto.ReviewDTO, error)
}

type ReviewServiceImpl struct {
	reviewRepo      repository.ReviewRepo
	userRepo        repository.UserRepo
	notificationSvc NotificationService
}

func NewReviewService(reviewRepo repository.ReviewRepo, userRepo repository.UserRepo, notificationSvc NotificationService) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:      reviewRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, reviewerID, revieweeID uint64, createDTO *dto.CreateReviewDTO) (*dto.ReviewDTO, error) {
	if reviewerID == revieweeID {
		return nil, ErrSelfReview
	}
	if createDTO.Rating < 1 || createDTO.Rating > 5 {
		return nil, ErrRatingInvalid
	}

	reviewee, err := s.userRepo.GetUserById(ctx, revieweeID)
	if err != nil {
		return nil, err
	}
	if reviewee == nil {
		return nil, ErrUserNotFound
	}

	review := &model.Review{
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     createDTO.Rating,
		Comment:    createDTO.Comment,
	}
	if err = s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	reviewer, err := s.userRepo.GetUserById(ctx, reviewerID)
	if err == nil && reviewer != nil {
		s.notificationSvc.Notify(ctx, revieweeID, "REVIEW", "New review",
			displayName(reviewer)+" left you a review", nil)
		review.Reviewer = *reviewer
	}
	return toReviewDTO(review), nil
}

func (s *ReviewServiceImpl) ListForUser(ctx context.Context, revieweeID uint64) ([]*dto.ReviewDTO, error) {
	reviews, err := s.reviewRepo.ListByReviewee(ctx, revieweeID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toReviewDTO(review))
	}
	return result, nil
}

func toReviewDTO(review *model.Review) *dto.ReviewDTO {
	return &dto.ReviewDTO{
		ID:            review.ID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		ReviewerID:    review.ReviewerID,
		ReviewerName:  displayName(&review.Reviewer),
		ReviewerPhoto: review.Reviewer.ProfilePhotoURL,
		CreatedAt:     review.CreatedAt,
	}
}
