package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joeljosepholawale/campustng/internal/pkg/logger"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

// PromotionExpiryJob demotes products whose paid boost window has lapsed.
type PromotionExpiryJob struct {
	productRepo repository.ProductRepo
}

func NewPromotionExpiryJob(productRepo repository.ProductRepo) *PromotionExpiryJob {
	return &PromotionExpiryJob{productRepo: productRepo}
}

func (s *PromotionExpiryJob) Run() {
	traceID := "job-promo-expiry-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	expired, err := s.productRepo.ExpirePromotions(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "expire promotions failed", "err", err)
		return
	}
	if expired > 0 {
		log.InfoContext(ctx, "expired product promotions", "count", expired)
	}
}
