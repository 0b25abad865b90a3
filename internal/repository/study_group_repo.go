package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type StudyGroupRepo interface {
	GetGroupById(ctx context.Context, id uint64) (*model.StudyGroup, error)
	ListGroups(ctx context.Context, search string) ([]*model.StudyGroup, error)
	CreateGroup(ctx context.Context, group *model.StudyGroup, creatorID uint64) error
	AddMember(ctx context.Context, member *model.StudyGroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uint64) error
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)
	ListGroupIDsByMember(ctx context.Context, userID uint64) ([]uint64, error)
	CountMembers(ctx context.Context, groupIDs []uint64) (map[uint64]int64, error)
	CreateGroupMessage(ctx context.Context, msg *model.StudyGroupMessage) error
	ListGroupMessages(ctx context.Context, groupID uint64, offset, limit int) ([]*model.StudyGroupMessage, error)
}

type StudyGroupRepoImpl struct {
	db *gorm.DB
}

func NewStudyGroupRepo(db *gorm.DB) StudyGroupRepo {
	return &StudyGroupRepoImpl{db: db}
}

func (s *StudyGroupRepoImpl) GetGroupById(ctx context.Context, id uint64) (*model.StudyGroup, error) {
	group := &model.StudyGroup{}
	result := s.db.WithContext(ctx).Preload("Creator").First(group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return group, nil
}

func (s *StudyGroupRepoImpl) ListGroups(ctx context.Context, search string) ([]*model.StudyGroup, error) {
	query := s.db.WithContext(ctx).Preload("Creator")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR course_code LIKE ?", like, like)
	}

	groups := make([]*model.StudyGroup, 0)
	if err := query.Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateGroup inserts the group and enrolls the creator as its first member.
func (s *StudyGroupRepoImpl) CreateGroup(ctx context.Context, group *model.StudyGroup, creatorID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &model.StudyGroupMember{
			GroupID: group.ID,
			UserID:  creatorID,
		}
		return tx.Create(member).Error
	})
}

func (s *StudyGroupRepoImpl) AddMember(ctx context.Context, member *model.StudyGroupMember) error {
	return s.db.WithContext(ctx).Create(member).Error
}

func (s *StudyGroupRepoImpl) RemoveMember(ctx context.Context, groupID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.StudyGroupMember{}).Error
}

func (s *StudyGroupRepoImpl) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.StudyGroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *StudyGroupRepoImpl) ListGroupIDsByMember(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.StudyGroupMember{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *StudyGroupRepoImpl) CountMembers(ctx context.Context, groupIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64)
	if len(groupIDs) == 0 {
		return counts, nil
	}

	rows := make([]struct {
		GroupID uint64
		Count   int64
	}, 0)
	err := s.db.WithContext(ctx).
		Model(&model.StudyGroupMember{}).
		Select("group_id, COUNT(*) AS count").
		Where("group_id IN ?", groupIDs).
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.GroupID] = row.Count
	}
	return counts, nil
}

func (s *StudyGroupRepoImpl) CreateGroupMessage(ctx context.Context, msg *model.StudyGroupMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *StudyGroupRepoImpl) ListGroupMessages(ctx context.Context, groupID uint64, offset, limit int) ([]*model.StudyGroupMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	messages := make([]*model.StudyGroupMessage, 0)
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
