package payment

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joeljosepholawale/campustng/internal/api/config"
)

// Gateway talks to the hosted payment provider.
type Gateway interface {
	InitializePayment(ctx context.Context, req *InitializeRequest) (string, error)
	VerifyTransaction(ctx context.Context, transactionID string) (*VerifyData, error)
}

// InitializeRequest describes a hosted checkout session.
type InitializeRequest struct {
	TxRef       string
	Amount      float64
	RedirectURL string
	Email       string
	Name        string
	Title       string
	Description string
}

// VerifyData is the subset of the verification response we act on.
type VerifyData struct {
	Status   string
	Amount   float64
	Currency string
	TxRef    string
}

type initializePayload struct {
	TxRef          string                 `json:"tx_ref"`
	Amount         string                 `json:"amount"`
	Currency       string                 `json:"currency"`
	RedirectURL    string                 `json:"redirect_url"`
	Customer       map[string]string      `json:"customer"`
	Customizations map[string]interface{} `json:"customizations"`
}

type initializeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		TxRef    string  `json:"tx_ref"`
	} `json:"data"`
}

// FlutterwaveGateway implements Gateway against the Flutterwave v3 API.
type FlutterwaveGateway struct {
	client   *resty.Client
	currency string
	logoURL  string
}

func NewFlutterwaveGateway() *FlutterwaveGateway {
	cfg := config.Cfg.Flutterwave
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30*time.Second).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Content-Type", "application/json")

	return &FlutterwaveGateway{
		client:   client,
		currency: cfg.Currency,
		logoURL:  cfg.LogoURL,
	}
}

func (g *FlutterwaveGateway) InitializePayment(ctx context.Context, req *InitializeRequest) (string, error) {
	payload := initializePayload{
		TxRef:       req.TxRef,
		Amount:      fmt.Sprintf("%.2f", req.Amount),
		Currency:    g.currency,
		RedirectURL: req.RedirectURL,
		Customer: map[string]string{
			"email": req.Email,
			"name":  req.Name,
		},
		Customizations: map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"logo":        g.logoURL,
		},
	}

	var result initializeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/payments")
	if err != nil {
		return "", fmt.Errorf("payment initialize request: %w", err)
	}
	if resp.IsError() || result.Status != "success" {
		log.ErrorContext(ctx, "payment initialize failed", "status", resp.StatusCode(), "message", result.Message)
		return "", fmt.Errorf("payment initialize failed: %s", result.Message)
	}
	return result.Data.Link, nil
}

func (g *FlutterwaveGateway) VerifyTransaction(ctx context.Context, transactionID string) (*VerifyData, error) {
	var result verifyResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/transactions/%s/verify", transactionID))
	if err != nil {
		return nil, fmt.Errorf("payment verify request: %w", err)
	}
	if resp.IsError() || result.Status != "success" {
		log.ErrorContext(ctx, "payment verify failed", "status", resp.StatusCode(), "message", result.Message)
		return nil, fmt.Errorf("payment verify failed: %s", result.Message)
	}
	return &VerifyData{
		Status:   result.Data.Status,
		Amount:   result.Data.Amount,
		Currency: result.Data.Currency,
		TxRef:    result.Data.TxRef,
	}, nil
}
