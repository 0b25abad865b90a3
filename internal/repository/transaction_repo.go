package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/model"
)

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	GetByReference(ctx context.Context, reference string) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Transaction, error)
	ListAll(ctx context.Context, offset, limit int) ([]*model.Transaction, int64, error)
	// CreditBoost flips the pending transaction to successful and promotes
	// the product atomically. Returns false when the reference was already
	// credited, so concurrent verifies credit at most once.
	CreditBoost(ctx context.Context, reference string, productID uint64, promotedUntil time.Time) (bool, error)
}

type TransactionRepoImpl struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return &TransactionRepoImpl{db: db}
}

func (s *TransactionRepoImpl) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

func (s *TransactionRepoImpl) GetByReference(ctx context.Context, reference string) (*model.Transaction, error) {
	tx := &model.Transaction{}
	result := s.db.WithContext(ctx).Where("reference = ?", reference).First(tx)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tx, nil
}

func (s *TransactionRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Transaction, error) {
	txs := make([]*model.Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *TransactionRepoImpl) ListAll(ctx context.Context, offset, limit int) ([]*model.Transaction, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*model.Transaction, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (s *TransactionRepoImpl) CreditBoost(ctx context.Context, reference string, productID uint64, promotedUntil time.Time) (bool, error) {
	credited := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Transaction{}).
			Where("reference = ? AND status = ?", reference, model.TransactionPending).
			Update("status", model.TransactionSuccessful)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		credited = true
		return tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Updates(map[string]interface{}{
				"is_promoted":    true,
				"promoted_until": promotedUntil,
			}).Error
	})
	if err != nil {
		return false, err
	}
	return credited, nil
}
