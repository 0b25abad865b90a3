package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type SchoolFilter struct {
	ApprovedOnly bool
	Search       string
	State        string
	Type         string
}

type SchoolRepo interface {
	GetSchoolById(ctx context.Context, id uint64) (*model.School, error)
	ListSchools(ctx context.Context, filter *SchoolFilter) ([]*model.School, error)
	CreateSchool(ctx context.Context, school *model.School) error
	UpdateSchool(ctx context.Context, school *model.School) error
	DeleteSchool(ctx context.Context, id uint64) error
}

type SchoolRepoImpl struct {
	db *gorm.DB
}

func NewSchoolRepo(db *gorm.DB) SchoolRepo {
	return &SchoolRepoImpl{db: db}
}

func (s *SchoolRepoImpl) GetSchoolById(ctx context.Context, id uint64) (*model.School, error) {
	school := &model.School{}
	result := s.db.WithContext(ctx).First(school, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return school, nil
}

func (s *SchoolRepoImpl) ListSchools(ctx context.Context, filter *SchoolFilter) ([]*model.School, error) {
	schools := make([]*model.School, 0)
	query := s.db.WithContext(ctx).Order("name ASC")
	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if err := query.Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

func (s *SchoolRepoImpl) CreateSchool(ctx context.Context, school *model.School) error {
	return s.db.WithContext(ctx).Create(school).Error
}

func (s *SchoolRepoImpl) UpdateSchool(ctx context.Context, school *model.School) error {
	return s.db.WithContext(ctx).Save(school).Error
}

func (s *SchoolRepoImpl) DeleteSchool(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.School{}, id).Error
}
