package service

import (
	"context"

	"github.com/jinzhu/copier"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

const maxSavedSearches = 20

type UserService interface {
	GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	GetProfile(ctx context.Context, userID, viewerID uint64) (*dto.UserDTO, *dto.ProfileStatsDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	UpdatePushToken(ctx context.Context, userID uint64, token string) error
	UpdateProfilePhoto(ctx context.Context, userID uint64, photoURL string) error
	SubmitIDVerification(ctx context.Context, userID uint64, idCardURL string) error
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	GetAnalytics(ctx context.Context, userID uint64) (*dto.SellerAnalyticsDTO, error)
	CreateSavedSearch(ctx context.Context, userID uint64, createDTO *dto.CreateSavedSearchDTO) (*dto.SavedSearchDTO, error)
	ListSavedSearches(ctx context.Context, userID uint64) ([]*dto.SavedSearchDTO, error)
	DeleteSavedSearch(ctx context.Context, userID, searchID uint64) error
	CreateReport(ctx context.Context, reporterID uint64, reportDTO *dto.CreateReportDTO) error
}

type UserServiceImpl struct {
	userRepo        repository.UserRepo
	followRepo      repository.FollowRepo
	productRepo     repository.ProductRepo
	reviewRepo      repository.ReviewRepo
	savedSearchRepo repository.SavedSearchRepo
	reportRepo      repository.ReportRepo
	notificationSvc NotificationService
}

func NewUserService(
	userRepo repository.UserRepo,
	followRepo repository.FollowRepo,
	productRepo repository.ProductRepo,
	reviewRepo repository.ReviewRepo,
	savedSearchRepo repository.SavedSearchRepo,
	reportRepo repository.ReportRepo,
	notificationSvc NotificationService,
) UserService {
	return &UserServiceImpl{
		userRepo:        userRepo,
		followRepo:      followRepo,
		productRepo:     productRepo,
		reviewRepo:      reviewRepo,
		savedSearchRepo: savedSearchRepo,
		reportRepo:      reportRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *UserServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user, true), nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID, viewerID uint64) (*dto.UserDTO, *dto.ProfileStatsDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil, ErrUserNotFound
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	listings, err := s.productRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	avg, reviewCount, err := s.reviewRepo.RatingSummary(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != userID {
		isFollowing, err = s.followRepo.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, nil, err
		}
	}

	stats := &dto.ProfileStatsDTO{
		Followers:     followers,
		Following:     following,
		Listings:      listings,
		AverageRating: avg,
		ReviewCount:   reviewCount,
		IsFollowing:   isFollowing,
	}
	return toUserDTO(user, viewerID == userID), stats, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = copier.CopyWithOption(user, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user, true), nil
}

func (s *UserServiceImpl) UpdatePushToken(ctx context.Context, userID uint64, token string) error {
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"expo_push_token": token})
}

func (s *UserServiceImpl) UpdateProfilePhoto(ctx context.Context, userID uint64, photoURL string) error {
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"profile_photo_url": photoURL})
}

func (s *UserServiceImpl) SubmitIDVerification(ctx context.Context, userID uint64, idCardURL string) error {
	if idCardURL == "" {
		return ErrIDCardRequired
	}
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"id_card_url": idCardURL})
}

func (s *UserServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	target, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	exists, err := s.followRepo.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	follow := &model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err = s.followRepo.CreateFollow(ctx, follow); err != nil {
		return err
	}

	follower, err := s.userRepo.GetUserById(ctx, followerID)
	if err == nil && follower != nil {
		s.notificationSvc.Notify(ctx, followingID, "FOLLOW", "New follower",
			displayName(follower)+" started following you", nil)
	}
	return nil
}

func (s *UserServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	return s.followRepo.DeleteFollow(ctx, followerID, followingID)
}

func (s *UserServiceImpl) GetAnalytics(ctx context.Context, userID uint64) (*dto.SellerAnalyticsDTO, error) {
	listings, err := s.productRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views, bookmarks, err := s.productRepo.SellerStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.SellerAnalyticsDTO{
		ActiveListings: listings,
		TotalViews:     views,
		TotalBookmarks: bookmarks,
		Followers:      followers,
	}, nil
}

func (s *UserServiceImpl) CreateSavedSearch(ctx context.Context, userID uint64, createDTO *dto.CreateSavedSearchDTO) (*dto.SavedSearchDTO, error) {
	count, err := s.savedSearchRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= maxSavedSearches {
		return nil, ErrSavedSearchLimit
	}

	exists, err := s.savedSearchRepo.Exists(ctx, userID, createDTO.Query, createDTO.Category)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSavedSearchExists
	}

	search := &model.SavedSearch{
		UserID:   userID,
		Query:    createDTO.Query,
		Category: createDTO.Category,
	}
	if err = s.savedSearchRepo.CreateSavedSearch(ctx, search); err != nil {
		return nil, err
	}
	return toSavedSearchDTO(search), nil
}

func (s *UserServiceImpl) ListSavedSearches(ctx context.Context, userID uint64) ([]*dto.SavedSearchDTO, error) {
	searches, err := s.savedSearchRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SavedSearchDTO, 0, len(searches))
	for _, search := range searches {
		result = append(result, toSavedSearchDTO(search))
	}
	return result, nil
}

func (s *UserServiceImpl) DeleteSavedSearch(ctx context.Context, userID, searchID uint64) error {
	search, err := s.savedSearchRepo.GetById(ctx, searchID)
	if err != nil {
		return err
	}
	if search == nil {
		return ErrSavedSearchNotFound
	}
	if search.UserID != userID {
		return ErrAccessDenied
	}
	return s.savedSearchRepo.DeleteSavedSearch(ctx, searchID)
}

func (s *UserServiceImpl) CreateReport(ctx context.Context, reporterID uint64, reportDTO *dto.CreateReportDTO) error {
	reported, err := s.userRepo.GetUserById(ctx, reportDTO.ReportedUserID)
	if err != nil {
		return err
	}
	if reported == nil {
		return ErrUserNotFound
	}

	report := &model.Report{
		ReporterID:     reporterID,
		ReportedUserID: reportDTO.ReportedUserID,
		Reason:         reportDTO.Reason,
		Status:         model.ReportPending,
	}
	return s.reportRepo.CreateReport(ctx, report)
}

func toSavedSearchDTO(search *model.SavedSearch) *dto.SavedSearchDTO {
	return &dto.SavedSearchDTO{
		ID:        search.ID,
		Query:     search.Query,
		Category:  search.Category,
		CreatedAt: search.CreatedAt,
	}
}

// displayName prefers first+last name, falling back to store name then email.
func displayName(user *model.User) string {
	name := ""
	if user.FirstName != nil {
		name = *user.FirstName
	}
	if user.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *user.LastName
	}
	if name == "" && user.StoreName != nil {
		name = *user.StoreName
	}
	if name == "" {
		name = user.Email
	}
	return name
}
