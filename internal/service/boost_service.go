package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/api/config"
	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/payment"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type BoostService interface {
	ListPlans(ctx context.Context) ([]*dto.BoostPlanDTO, error)
	Initialize(ctx context.Context, userID uint64, initDTO *dto.InitializeBoostDTO) (*dto.BoostInitResultDTO, error)
	Verify(ctx context.Context, userID uint64, verifyDTO *dto.VerifyBoostDTO) (*dto.BoostVerifyResultDTO, error)
	ListTransactions(ctx context.Context, userID uint64) ([]*dto.TransactionDTO, error)
}

type BoostServiceImpl struct {
	transactionRepo repository.TransactionRepo
	boostPlanRepo   repository.BoostPlanRepo
	productRepo     repository.ProductRepo
	userRepo        repository.UserRepo
	gateway         payment.Gateway
	notificationSvc NotificationService
}

func NewBoostService(
	transactionRepo repository.TransactionRepo,
	boostPlanRepo repository.BoostPlanRepo,
	productRepo repository.ProductRepo,
	userRepo repository.UserRepo,
	gateway payment.Gateway,
	notificationSvc NotificationService,
) BoostService {
	return &BoostServiceImpl{
		transactionRepo: transactionRepo,
		boostPlanRepo:   boostPlanRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		gateway:         gateway,
		notificationSvc: notificationSvc,
	}
}

func (s *BoostServiceImpl) ListPlans(ctx context.Context) ([]*dto.BoostPlanDTO, error) {
	cached, err := redis.GetValue(ctx, consts.BoostPlansKey)
	if err == nil && cached != "" {
		plans := make([]*dto.BoostPlanDTO, 0)
		if err = json.Unmarshal([]byte(cached), &plans); err == nil {
			return plans, nil
		}
	}

	plans, err := s.boostPlanRepo.ListActivePlans(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BoostPlanDTO, 0, len(plans))
	for _, plan := range plans {
		result = append(result, &dto.BoostPlanDTO{
			ID:           plan.ID,
			Name:         plan.Name,
			Price:        plan.Price,
			DurationDays: plan.DurationDays,
		})
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.BoostPlansKey, payload, consts.BoostPlansTTL)
	}
	return result, nil
}

func (s *BoostServiceImpl) Initialize(ctx context.Context, userID uint64, initDTO *dto.InitializeBoostDTO) (*dto.BoostInitResultDTO, error) {
	product, err := s.productRepo.GetProductById(ctx, initDTO.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	if product.UserID != userID {
		return nil, ErrNotOwner
	}

	plan, err := s.boostPlanRepo.GetPlanById(ctx, initDTO.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reference := fmt.Sprintf("boost-%d-%d-%d", product.ID, plan.ID, time.Now().UnixMilli())
	record := &model.Transaction{
		Reference: reference,
		Amount:    plan.Price,
		Status:    model.TransactionPending,
		Type:      model.TransactionTypeBoost,
		UserID:    userID,
		ProductID: product.ID,
	}
	if err = s.transactionRepo.CreateTransaction(ctx, record); err != nil {
		return nil, err
	}

	link, err := s.gateway.InitializePayment(ctx, &payment.InitializeRequest{
		TxRef:       reference,
		Amount:      plan.Price,
		RedirectURL: config.Cfg.Server.FrontendURL + "payment/callback",
		Email:       user.Email,
		Name:        displayName(user),
		Title:       "Listing Boost",
		Description: fmt.Sprintf("%s boost for \"%s\"", plan.Name, product.Title),
	})
	if err != nil {
		log.ErrorContext(ctx, "boost initialize", "reference", reference, "err", err)
		return nil, ErrGatewayUnavailable
	}

	return &dto.BoostInitResultDTO{
		PaymentLink: link,
		Reference:   reference,
	}, nil
}

func (s *BoostServiceImpl) Verify(ctx context.Context, userID uint64, verifyDTO *dto.VerifyBoostDTO) (*dto.BoostVerifyResultDTO, error) {
	record, err := s.transactionRepo.GetByReference(ctx, verifyDTO.TxRef)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrPaymentVerification
	}
	// Replay guard: a reference is credited at most once.
	if record.Status == model.TransactionSuccessful {
		return nil, ErrAlreadyProcessed
	}

	verified, err := s.gateway.VerifyTransaction(ctx, verifyDTO.TransactionID)
	if err != nil {
		log.ErrorContext(ctx, "boost verify", "reference", verifyDTO.TxRef, "err", err)
		return nil, ErrPaymentVerification
	}
	if verified.Status != "successful" || verified.TxRef != verifyDTO.TxRef {
		return nil, ErrPaymentVerification
	}
	if verified.Amount < record.Amount || verified.Currency != config.Cfg.Flutterwave.Currency {
		return nil, ErrAmountMismatch
	}

	product, err := s.productRepo.GetProductById(ctx, record.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.UserID != userID {
		return nil, ErrNotOwner
	}

	plan, err := s.planFromReference(ctx, record.Reference)
	if err != nil {
		return nil, err
	}

	promotedUntil := time.Now().AddDate(0, 0, plan.DurationDays)
	credited, err := s.transactionRepo.CreditBoost(ctx, record.Reference, product.ID, promotedUntil)
	if err != nil {
		return nil, err
	}
	if !credited {
		// Another verify won the race for this reference.
		return nil, ErrAlreadyProcessed
	}

	s.notificationSvc.Notify(ctx, userID, "BOOST", "Listing boosted",
		fmt.Sprintf("\"%s\" is now promoted for %d days", product.Title, plan.DurationDays),
		map[string]string{"productId": strconv.FormatUint(product.ID, 10)})

	return &dto.BoostVerifyResultDTO{
		Reference:     record.Reference,
		PromotedUntil: promotedUntil,
	}, nil
}

func (s *BoostServiceImpl) ListTransactions(ctx context.Context, userID uint64) ([]*dto.TransactionDTO, error) {
	records, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionDTO, 0, len(records))
	for _, record := range records {
		result = append(result, &dto.TransactionDTO{
			ID:        record.ID,
			Reference: record.Reference,
			Amount:    record.Amount,
			Status:    record.Status,
			Type:      record.Type,
			ProductID: record.ProductID,
			CreatedAt: record.CreatedAt,
		})
	}
	return result, nil
}

// planFromReference recovers the plan from a "boost-{product}-{plan}-{ts}"
// reference.
func (s *BoostServiceImpl) planFromReference(ctx context.Context, reference string) (*model.BoostPlan, error) {
	parts := strings.Split(reference, "-")
	if len(parts) != 4 {
		return nil, ErrPaymentVerification
	}
	planID, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return nil, ErrPaymentVerification
	}

	plan, err := s.boostPlanRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}
