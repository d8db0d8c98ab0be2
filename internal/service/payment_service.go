package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/payment/razorpay"
	"github.com/vastra-store/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService drives the online payment flow: open a gateway order
// for the cart, then verify the signed payment and place the order.
type PaymentService struct {
	orderRepo repository.OrderRepository
	orderSvc  *OrderService
	rzpCfg    config.RazorpayConfig
}

// NewPaymentService creates the payment service.
func NewPaymentService(orderRepo repository.OrderRepository, orderSvc *OrderService, rzpCfg config.RazorpayConfig) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		orderSvc:  orderSvc,
		rzpCfg:    rzpCfg,
	}
}

// GatewayOrderResult is what the storefront needs to open the
// Razorpay checkout widget.
type GatewayOrderResult struct {
	GatewayOrderID string       `json:"gateway_order_id"`
	AmountMinor    int64        `json:"amount"`
	Currency       string       `json:"currency"`
	KeyID          string       `json:"key_id"`
	Total          models.Money `json:"total"`
}

// VerifyPaymentInput is the signed payment handoff from the client.
type VerifyPaymentInput struct {
	UserID            uint
	AddressID         uint
	RazorpayOrderID   string
	RazorpayPaymentID string
	Signature         string
}

// CreateGatewayOrder prices the cart and opens a gateway order for the
// grand total. Nothing is written locally at this step.
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, userID, addressID uint) (*GatewayOrderResult, error) {
	plan, err := s.orderSvc.buildCheckout(userID, addressID)
	if err != nil {
		return nil, err
	}

	amountMinor := plan.Totals.Total.Decimal.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if amountMinor <= 0 {
		return nil, ErrPaymentAmountInvalid
	}

	gatewayCfg := s.gatewayConfig()
	receipt := fmt.Sprintf("rcpt_%d_%d", userID, time.Now().UnixNano())
	created, err := razorpay.CreateOrder(ctx, gatewayCfg, razorpay.CreateInput{
		AmountMinor: amountMinor,
		Currency:    constants.SiteCurrencyDefault,
		Receipt:     receipt,
	})
	if err != nil {
		paymentLogger(
			"user_id", userID,
			"amount_minor", amountMinor,
		).Errorw("payment_gateway_order_create_failed", "error", err)
		return nil, ErrGatewayUnavailable
	}

	paymentLogger(
		"user_id", userID,
		"gateway_order_id", created.ID,
		"amount_minor", created.AmountMinor,
	).Infow("payment_gateway_order_created")

	return &GatewayOrderResult{
		GatewayOrderID: created.ID,
		AmountMinor:    created.AmountMinor,
		Currency:       created.Currency,
		KeyID:          gatewayCfg.KeyID,
		Total:          plan.Totals.Total,
	}, nil
}

// VerifyAndPlace checks the payment signature and, only on success,
// places the order from the cart. A forged signature never creates an
// order. Replays of an already-consumed gateway order return the
// existing order.
func (s *PaymentService) VerifyAndPlace(ctx context.Context, input VerifyPaymentInput) (*models.Order, error) {
	gatewayOrderID := strings.TrimSpace(input.RazorpayOrderID)
	paymentID := strings.TrimSpace(input.RazorpayPaymentID)
	log := paymentLogger(
		"user_id", input.UserID,
		"gateway_order_id", gatewayOrderID,
		"gateway_payment_id", paymentID,
	)

	if err := razorpay.VerifySignature(gatewayOrderID, paymentID, input.Signature, s.rzpCfg.KeySecret); err != nil {
		log.Warnw("payment_signature_rejected", "error", err)
		return nil, ErrPaymentVerificationFailed
	}

	existing, err := s.orderRepo.GetByRazorpayOrderID(gatewayOrderID)
	if err != nil {
		log.Errorw("payment_idempotency_lookup_failed", "error", err)
		return nil, ErrOrderFetchFailed
	}
	if existing != nil {
		if existing.UserID != input.UserID {
			log.Warnw("payment_gateway_order_owned_by_other_user", "order_id", existing.ID)
			return nil, ErrPaymentAlreadyProcessed
		}
		log.Infow("payment_verify_idempotent_replay", "order_id", existing.ID)
		return existing, nil
	}

	now := time.Now()
	order, err := s.orderSvc.placeFromCart(placeOrderParams{
		UserID:            input.UserID,
		AddressID:         input.AddressID,
		PaymentMethod:     constants.PaymentMethodRazorpay,
		PaymentStatus:     constants.PaymentStatusCompleted,
		Status:            constants.OrderStatusConfirmed,
		RazorpayOrderID:   gatewayOrderID,
		RazorpayPaymentID: paymentID,
		PaidAt:            &now,
	})
	if err != nil {
		log.Errorw("payment_verified_order_place_failed", "error", err)
		return nil, err
	}

	log.Infow("payment_verified_order_placed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"total", order.Total.String(),
	)
	return order, nil
}

func (s *PaymentService) gatewayConfig() *razorpay.Config {
	cfg := razorpay.NewConfig(s.rzpCfg.KeyID, s.rzpCfg.KeySecret, s.rzpCfg.BaseURL)
	if err := razorpay.ValidateConfig(cfg); err != nil {
		logger.Warnw("payment_gateway_config_invalid", "error", err)
	}
	return cfg
}

func paymentLogger(kv ...interface{}) *zap.SugaredLogger {
	if len(kv) == 0 {
		return logger.S()
	}
	return logger.SW(kv...)
}
