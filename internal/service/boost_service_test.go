package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/payment"
)

func newBoostFixture() (*fakeTransactionRepo, *fakeBoostPlanRepo, *fakeProductRepo, *fakeUserRepo, *fakeGateway, *recordingNotifier, BoostService) {
	txRepo := newFakeTransactionRepo()
	planRepo := newFakeBoostPlanRepo(
		&model.BoostPlan{ID: 2, Name: "7-Day Boost", Price: 1000, DurationDays: 7, IsActive: true},
	)
	productRepo := newFakeProductRepo(
		&model.Product{ID: 5, UserID: 10, Title: "Calculus Textbook", IsActive: true},
	)
	userRepo := newFakeUserRepo(
		&model.User{ID: 10, Email: "seller@uni.edu.ng", FirstName: ptrStr("Ada")},
	)
	gateway := &fakeGateway{initLink: "https://checkout.flutterwave.com/pay/abc"}
	notifier := &recordingNotifier{}
	svc := NewBoostService(txRepo, planRepo, productRepo, userRepo, gateway, notifier)
	return txRepo, planRepo, productRepo, userRepo, gateway, notifier, svc
}

func TestBoostInitializeCreatesPendingTransaction(t *testing.T) {
	txRepo, _, _, _, gateway, _, svc := newBoostFixture()

	result, err := svc.Initialize(context.Background(), 10, &dto.InitializeBoostDTO{ProductID: 5, PlanID: 2})
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if result.PaymentLink != gateway.initLink {
		t.Fatalf("PaymentLink = %q", result.PaymentLink)
	}
	if !strings.HasPrefix(result.Reference, "boost-5-2-") {
		t.Fatalf("Reference = %q, want boost-5-2-* prefix", result.Reference)
	}

	if len(txRepo.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(txRepo.created))
	}
	record := txRepo.created[0]
	if record.Status != model.TransactionPending {
		t.Fatalf("Status = %q, want pending", record.Status)
	}
	if record.Amount != 1000 {
		t.Fatalf("Amount = %v, want 1000", record.Amount)
	}
	if record.UserID != 10 || record.ProductID != 5 {
		t.Fatalf("ownership = user %d product %d", record.UserID, record.ProductID)
	}

	if len(gateway.initReqs) != 1 {
		t.Fatalf("gateway called %d times", len(gateway.initReqs))
	}
	if gateway.initReqs[0].TxRef != record.Reference {
		t.Fatalf("gateway TxRef = %q, record %q", gateway.initReqs[0].TxRef, record.Reference)
	}
}

func TestBoostInitializeRejectsNonOwner(t *testing.T) {
	_, _, _, _, _, _, svc := newBoostFixture()

	_, err := svc.Initialize(context.Background(), 99, &dto.InitializeBoostDTO{ProductID: 5, PlanID: 2})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestBoostInitializeGatewayFailure(t *testing.T) {
	_, _, _, _, gateway, _, svc := newBoostFixture()
	gateway.initErr = errors.New("upstream down")

	_, err := svc.Initialize(context.Background(), 10, &dto.InitializeBoostDTO{ProductID: 5, PlanID: 2})
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("err = %v, want ErrGatewayUnavailable", err)
	}
}

func TestBoostVerifyReplayGuard(t *testing.T) {
	txRepo, _, _, _, _, _, svc := newBoostFixture()
	txRepo.byRef["boost-5-2-111"] = &model.Transaction{
		Reference: "boost-5-2-111",
		Status:    model.TransactionSuccessful,
		Amount:    1000,
		UserID:    10,
		ProductID: 5,
	}

	_, err := svc.Verify(context.Background(), 10, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-5-2-111"})
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("err = %v, want ErrAlreadyProcessed", err)
	}
	if len(txRepo.credited) != 0 {
		t.Fatalf("credited %d times on replay, want 0", len(txRepo.credited))
	}
}

func TestBoostVerifyChecksGatewayResult(t *testing.T) {
	pending := func() *model.Transaction {
		return &model.Transaction{
			Reference: "boost-5-2-111",
			Status:    model.TransactionPending,
			Amount:    1000,
			UserID:    10,
			ProductID: 5,
		}
	}

	tests := []struct {
		name    string
		data    *payment.VerifyData
		wantErr error
	}{
		{
			name:    "status not successful",
			data:    &payment.VerifyData{Status: "failed", Amount: 1000, Currency: "NGN", TxRef: "boost-5-2-111"},
			wantErr: ErrPaymentVerification,
		},
		{
			name:    "reference mismatch",
			data:    &payment.VerifyData{Status: "successful", Amount: 1000, Currency: "NGN", TxRef: "boost-9-9-999"},
			wantErr: ErrPaymentVerification,
		},
		{
			name:    "amount too low",
			data:    &payment.VerifyData{Status: "successful", Amount: 999, Currency: "NGN", TxRef: "boost-5-2-111"},
			wantErr: ErrAmountMismatch,
		},
		{
			name:    "wrong currency",
			data:    &payment.VerifyData{Status: "successful", Amount: 1000, Currency: "USD", TxRef: "boost-5-2-111"},
			wantErr: ErrAmountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo, _, _, _, gateway, _, svc := newBoostFixture()
			txRepo.byRef["boost-5-2-111"] = pending()
			gateway.verifyData = tt.data

			_, err := svc.Verify(context.Background(), 10, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-5-2-111"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(txRepo.credited) != 0 {
				t.Fatalf("credited on a rejected verification")
			}
		})
	}
}

func TestBoostVerifyRejectsNonOwner(t *testing.T) {
	txRepo, _, _, _, gateway, _, svc := newBoostFixture()
	txRepo.byRef["boost-5-2-111"] = &model.Transaction{
		Reference: "boost-5-2-111",
		Status:    model.TransactionPending,
		Amount:    1000,
		UserID:    10,
		ProductID: 5,
	}
	gateway.verifyData = &payment.VerifyData{Status: "successful", Amount: 1000, Currency: "NGN", TxRef: "boost-5-2-111"}

	_, err := svc.Verify(context.Background(), 99, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-5-2-111"})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestBoostVerifyCreditsAndNotifies(t *testing.T) {
	txRepo, _, _, _, gateway, notifier, svc := newBoostFixture()
	txRepo.byRef["boost-5-2-111"] = &model.Transaction{
		Reference: "boost-5-2-111",
		Status:    model.TransactionPending,
		Amount:    1000,
		UserID:    10,
		ProductID: 5,
	}
	gateway.verifyData = &payment.VerifyData{Status: "successful", Amount: 1000, Currency: "NGN", TxRef: "boost-5-2-111"}

	before := time.Now()
	result, err := svc.Verify(context.Background(), 10, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-5-2-111"})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if len(txRepo.credited) != 1 {
		t.Fatalf("credited %d times, want 1", len(txRepo.credited))
	}
	call := txRepo.credited[0]
	if call.reference != "boost-5-2-111" || call.productID != 5 {
		t.Fatalf("credit call = %+v", call)
	}

	wantUntil := before.AddDate(0, 0, 7)
	if call.promotedUntil.Before(wantUntil.Add(-time.Minute)) || call.promotedUntil.After(wantUntil.Add(time.Minute)) {
		t.Fatalf("promotedUntil = %v, want ~%v", call.promotedUntil, wantUntil)
	}
	if !result.PromotedUntil.Equal(call.promotedUntil) {
		t.Fatalf("result PromotedUntil %v != credited %v", result.PromotedUntil, call.promotedUntil)
	}

	if len(notifier.calls) != 1 || notifier.calls[0].notifType != "BOOST" {
		t.Fatalf("notifications = %+v", notifier.calls)
	}
}

type racingGateway struct {
	*fakeGateway
	onVerify func()
}

func (g *racingGateway) VerifyTransaction(ctx context.Context, transactionID string) (*payment.VerifyData, error) {
	if g.onVerify != nil {
		g.onVerify()
	}
	return g.fakeGateway.VerifyTransaction(ctx, transactionID)
}

func TestBoostVerifyConcurrentCreditsOnce(t *testing.T) {
	txRepo, planRepo, productRepo, userRepo, gateway, notifier, _ := newBoostFixture()
	txRepo.byRef["boost-5-2-111"] = &model.Transaction{
		Reference: "boost-5-2-111",
		Status:    model.TransactionPending,
		Amount:    1000,
		UserID:    10,
		ProductID: 5,
	}
	gateway.verifyData = &payment.VerifyData{Status: "successful", Amount: 1000, Currency: "NGN", TxRef: "boost-5-2-111"}

	// A rival verify commits between our pending check and the credit.
	rival := &racingGateway{fakeGateway: gateway, onVerify: func() {
		txRepo.byRef["boost-5-2-111"].Status = model.TransactionSuccessful
	}}
	svc := NewBoostService(txRepo, planRepo, productRepo, userRepo, rival, notifier)

	_, err := svc.Verify(context.Background(), 10, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-5-2-111"})
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("err = %v, want ErrAlreadyProcessed", err)
	}
	if len(txRepo.credited) != 0 {
		t.Fatalf("credited %d times for one reference, want 0 for the loser", len(txRepo.credited))
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("loser sent notifications: %+v", notifier.calls)
	}
}

func TestBoostVerifyUnknownReference(t *testing.T) {
	_, _, _, _, _, _, svc := newBoostFixture()

	_, err := svc.Verify(context.Background(), 10, &dto.VerifyBoostDTO{TransactionID: "901", TxRef: "boost-0-0-0"})
	if !errors.Is(err, ErrPaymentVerification) {
		t.Fatalf("err = %v, want ErrPaymentVerification", err)
	}
}
