package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type ServiceRepo interface {
	GetServiceById(ctx context.Context, id uint64) (*model.Service, error)
	ListServices(ctx context.Context, search string, userID uint64, offset, limit int) ([]*model.Service, int64, error)
	CreateService(ctx context.Context, svc *model.Service) error
	UpdateService(ctx context.Context, svc *model.Service) error
	DeleteService(ctx context.Context, id uint64) error
}

type ServiceRepoImpl struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) ServiceRepo {
	return &ServiceRepoImpl{db: db}
}

func (s *ServiceRepoImpl) GetServiceById(ctx context.Context, id uint64) (*model.Service, error) {
	svc := &model.Service{}
	result := s.db.WithContext(ctx).Preload("User").First(svc, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return svc, nil
}

func (s *ServiceRepoImpl) ListServices(ctx context.Context, search string, userID uint64, offset, limit int) ([]*model.Service, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Service{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	services := make([]*model.Service, 0)
	result := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&services)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return services, total, nil
}

func (s *ServiceRepoImpl) CreateService(ctx context.Context, svc *model.Service) error {
	return s.db.WithContext(ctx).Create(svc).Error
}

func (s *ServiceRepoImpl) UpdateService(ctx context.Context, svc *model.Service) error {
	return s.db.WithContext(ctx).Save(svc).Error
}

func (s *ServiceRepoImpl) DeleteService(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Service{}, id).Error
}

type RequestRepo interface {
	GetRequestById(ctx context.Context, id uint64) (*model.Request, error)
	ListRequests(ctx context.Context, search string, userID uint64, offset, limit int) ([]*model.Request, int64, error)
	CreateRequest(ctx context.Context, req *model.Request) error
	UpdateRequest(ctx context.Context, req *model.Request) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestRepoImpl struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepo {
	return &RequestRepoImpl{db: db}
}

func (s *RequestRepoImpl) GetRequestById(ctx context.Context, id uint64) (*model.Request, error) {
	req := &model.Request{}
	result := s.db.WithContext(ctx).Preload("User").First(req, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return req, nil
}

func (s *RequestRepoImpl) ListRequests(ctx context.Context, search string, userID uint64, offset, limit int) ([]*model.Request, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Request{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	requests := make([]*model.Request, 0)
	result := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return requests, total, nil
}

func (s *RequestRepoImpl) CreateRequest(ctx context.Context, req *model.Request) error {
	return s.db.WithContext(ctx).Create(req).Error
}

func (s *RequestRepoImpl) UpdateRequest(ctx context.Context, req *model.Request) error {
	return s.db.WithContext(ctx).Save(req).Error
}

func (s *RequestRepoImpl) DeleteRequest(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Request{}, id).Error
}
