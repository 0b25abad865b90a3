package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type ForumRepo interface {
	GetPostById(ctx context.Context, id uint64) (*model.ForumPost, error)
	ListPosts(ctx context.Context, category string, offset, limit int) ([]*model.ForumPost, int64, error)
	CreatePost(ctx context.Context, post *model.ForumPost) error
	DeletePost(ctx context.Context, id uint64) error
	CreateComment(ctx context.Context, comment *model.ForumComment) error
	ListComments(ctx context.Context, postID uint64) ([]*model.ForumComment, error)
	CountComments(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type ForumRepoImpl struct {
	db *gorm.DB
}

func NewForumRepo(db *gorm.DB) ForumRepo {
	return &ForumRepoImpl{db: db}
}

func (s *ForumRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.ForumPost, error) {
	post := &model.ForumPost{}
	result := s.db.WithContext(ctx).Preload("User").First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *ForumRepoImpl) ListPosts(ctx context.Context, category string, offset, limit int) ([]*model.ForumPost, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.ForumPost{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	posts := make([]*model.ForumPost, 0)
	result := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return posts, total, nil
}

func (s *ForumRepoImpl) CreatePost(ctx context.Context, post *model.ForumPost) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *ForumRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.ForumComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ForumPost{}, id).Error
	})
}

func (s *ForumRepoImpl) CreateComment(ctx context.Context, comment *model.ForumComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *ForumRepoImpl) ListComments(ctx context.Context, postID uint64) ([]*model.ForumComment, error) {
	comments := make([]*model.ForumComment, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *ForumRepoImpl) CountComments(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	rows := make([]struct {
		PostID uint64
		Count  int64
	}, 0)
	err := s.db.WithContext(ctx).
		Model(&model.ForumComment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
