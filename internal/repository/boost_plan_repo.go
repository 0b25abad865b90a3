package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type BoostPlanRepo interface {
	GetPlanById(ctx context.Context, id uint64) (*model.BoostPlan, error)
	ListActivePlans(ctx context.Context) ([]*model.BoostPlan, error)
	CreatePlan(ctx context.Context, plan *model.BoostPlan) error
	UpdatePlan(ctx context.Context, plan *model.BoostPlan) error
	CountPlans(ctx context.Context) (int64, error)
}

type BoostPlanRepoImpl struct {
	db *gorm.DB
}

func NewBoostPlanRepo(db *gorm.DB) BoostPlanRepo {
	return &BoostPlanRepoImpl{db: db}
}

func (s *BoostPlanRepoImpl) GetPlanById(ctx context.Context, id uint64) (*model.BoostPlan, error) {
	plan := &model.BoostPlan{}
	result := s.db.WithContext(ctx).First(plan, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return plan, nil
}

func (s *BoostPlanRepoImpl) ListActivePlans(ctx context.Context) ([]*model.BoostPlan, error) {
	plans := make([]*model.BoostPlan, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *BoostPlanRepoImpl) CreatePlan(ctx context.Context, plan *model.BoostPlan) error {
	return s.db.WithContext(ctx).Create(plan).Error
}

func (s *BoostPlanRepoImpl) UpdatePlan(ctx context.Context, plan *model.BoostPlan) error {
	return s.db.WithContext(ctx).Save(plan).Error
}

func (s *BoostPlanRepoImpl) CountPlans(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.BoostPlan{}).Count(&count).Error
	return count, err
}
