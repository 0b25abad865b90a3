package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report) error
	GetReportById(ctx context.Context, id uint64) (*model.Report, error)
	ListReports(ctx context.Context, status string, offset, limit int) ([]*model.Report, int64, error)
	UpdateReportStatus(ctx context.Context, id uint64, status string) error
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db: db}
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *ReportRepoImpl) GetReportById(ctx context.Context, id uint64) (*model.Report, error) {
	report := &model.Report{}
	result := s.db.WithContext(ctx).
		Preload("Reporter").
		Preload("ReportedUser").
		First(report, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return report, nil
}

func (s *ReportRepoImpl) ListReports(ctx context.Context, status string, offset, limit int) ([]*model.Report, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	reports := make([]*model.Report, 0)
	result := query.
		Preload("Reporter").
		Preload("ReportedUser").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return reports, total, nil
}

func (s *ReportRepoImpl) UpdateReportStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("id = ?", id).
		Update("status", status).Error
}
