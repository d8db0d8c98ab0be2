package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/payment/razorpay"
	"github.com/vastra-store/internal/repository"
)

const testRazorpaySecret = "test_secret_k9"

func newPaymentFixture(t *testing.T, name string, baseURL string) (*checkoutFixture, *PaymentService) {
	t.Helper()
	f := newCheckoutFixture(t, name)
	svc := NewPaymentService(
		repository.NewOrderRepository(f.db),
		f.orderSvc,
		config.RazorpayConfig{
			KeyID:     "rzp_test_key",
			KeySecret: testRazorpaySecret,
			BaseURL:   baseURL,
		},
	)
	return f, svc
}

func TestVerifyAndPlaceRejectsForgedSignature(t *testing.T) {
	f, svc := newPaymentFixture(t, "payment_forged", "")
	saree := f.createProduct(t, "forged-saree", 1400, 3)
	f.addToCart(t, saree.ID, 1)

	_, err := svc.VerifyAndPlace(context.Background(), VerifyPaymentInput{
		UserID:            f.user.ID,
		AddressID:         f.address.ID,
		RazorpayOrderID:   "order_forged1",
		RazorpayPaymentID: "pay_forged1",
		Signature:         "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	})
	if !errors.Is(err, ErrPaymentVerificationFailed) {
		t.Fatalf("expected ErrPaymentVerificationFailed, got %v", err)
	}

	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("forged signature must not create orders, got %d", count)
	}
	items, err := f.cartRepo.ListByUser(f.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cart intact after rejection, got %d lines", len(items))
	}
}

func TestVerifyAndPlaceCreatesConfirmedOrder(t *testing.T) {
	f, svc := newPaymentFixture(t, "payment_verified", "")
	saree := f.createProduct(t, "verified-saree", 1400, 3)
	f.addToCart(t, saree.ID, 1)

	signature := razorpay.Sign("order_ok1", "pay_ok1", testRazorpaySecret)
	order, err := svc.VerifyAndPlace(context.Background(), VerifyPaymentInput{
		UserID:            f.user.ID,
		AddressID:         f.address.ID,
		RazorpayOrderID:   "order_ok1",
		RazorpayPaymentID: "pay_ok1",
		Signature:         signature,
	})
	if err != nil {
		t.Fatalf("VerifyAndPlace error: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", order.Status)
	}
	if order.PaymentStatus != constants.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", order.PaymentStatus)
	}
	if order.PaymentMethod != constants.PaymentMethodRazorpay {
		t.Fatalf("expected razorpay method, got %s", order.PaymentMethod)
	}
	if order.PaidAt == nil {
		t.Fatalf("expected paid_at to be set")
	}
	if order.RazorpayOrderID != "order_ok1" || order.RazorpayPaymentID != "pay_ok1" {
		t.Fatalf("gateway ids not recorded: %+v", order)
	}

	var stocked models.Product
	if err := f.db.First(&stocked, saree.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stocked.StockQuantity != 2 {
		t.Fatalf("expected stock decremented to 2, got %d", stocked.StockQuantity)
	}
	items, err := f.cartRepo.ListByUser(f.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cleared cart, got %d lines", len(items))
	}
}

func TestVerifyAndPlaceIdempotentReplay(t *testing.T) {
	f, svc := newPaymentFixture(t, "payment_replay", "")
	saree := f.createProduct(t, "replay-saree", 1400, 3)
	f.addToCart(t, saree.ID, 1)

	input := VerifyPaymentInput{
		UserID:            f.user.ID,
		AddressID:         f.address.ID,
		RazorpayOrderID:   "order_replay1",
		RazorpayPaymentID: "pay_replay1",
		Signature:         razorpay.Sign("order_replay1", "pay_replay1", testRazorpaySecret),
	}
	first, err := svc.VerifyAndPlace(context.Background(), input)
	if err != nil {
		t.Fatalf("first VerifyAndPlace error: %v", err)
	}
	second, err := svc.VerifyAndPlace(context.Background(), input)
	if err != nil {
		t.Fatalf("replay VerifyAndPlace error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("replay created a new order: %d vs %d", second.ID, first.ID)
	}

	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one order, got %d", count)
	}
}

func TestVerifyAndPlaceRejectsReplayFromOtherUser(t *testing.T) {
	f, svc := newPaymentFixture(t, "payment_cross_user", "")
	saree := f.createProduct(t, "cross-saree", 1400, 3)
	f.addToCart(t, saree.ID, 1)

	input := VerifyPaymentInput{
		UserID:            f.user.ID,
		AddressID:         f.address.ID,
		RazorpayOrderID:   "order_cross1",
		RazorpayPaymentID: "pay_cross1",
		Signature:         razorpay.Sign("order_cross1", "pay_cross1", testRazorpaySecret),
	}
	if _, err := svc.VerifyAndPlace(context.Background(), input); err != nil {
		t.Fatalf("first VerifyAndPlace error: %v", err)
	}

	input.UserID = f.user.ID + 100
	if _, err := svc.VerifyAndPlace(context.Background(), input); !errors.Is(err, ErrPaymentAlreadyProcessed) {
		t.Fatalf("expected ErrPaymentAlreadyProcessed, got %v", err)
	}
}

func TestCreateGatewayOrderSendsPaiseAmount(t *testing.T) {
	var gotAmount int64
	var gotCurrency string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request failed: %v", err)
		}
		if amount, ok := req["amount"].(float64); ok {
			gotAmount = int64(amount)
		}
		gotCurrency, _ = req["currency"].(string)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_gw1",
			"entity":   "order",
			"amount":   req["amount"],
			"currency": req["currency"],
			"status":   "created",
		})
	}))
	defer gateway.Close()

	f, svc := newPaymentFixture(t, "payment_gateway_order", gateway.URL)
	saree := f.createProduct(t, "gateway-saree", 1200, 5)
	kurta := f.createProduct(t, "gateway-kurta", 600, 5)
	f.addToCart(t, saree.ID, 1)
	f.addToCart(t, kurta.ID, 2)

	result, err := svc.CreateGatewayOrder(context.Background(), f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("CreateGatewayOrder error: %v", err)
	}
	// subtotal 2400, free shipping, 120 tax -> 2520 rupees -> 252000 paise
	if gotAmount != 252000 {
		t.Fatalf("expected 252000 paise sent to gateway, got %d", gotAmount)
	}
	if gotCurrency != "INR" {
		t.Fatalf("expected INR, got %s", gotCurrency)
	}
	if result.GatewayOrderID != "order_gw1" {
		t.Fatalf("unexpected gateway order id %s", result.GatewayOrderID)
	}
	if result.AmountMinor != 252000 {
		t.Fatalf("expected result amount 252000, got %d", result.AmountMinor)
	}
	if result.KeyID != "rzp_test_key" {
		t.Fatalf("expected key id to surface, got %s", result.KeyID)
	}

	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("gateway order step must not create local orders, got %d", count)
	}
}

func TestCreateGatewayOrderUnreachableGateway(t *testing.T) {
	f, svc := newPaymentFixture(t, "payment_gateway_down", "http://127.0.0.1:1")
	saree := f.createProduct(t, "down-saree", 1200, 5)
	f.addToCart(t, saree.ID, 1)

	if _, err := svc.CreateGatewayOrder(context.Background(), f.user.ID, f.address.ID); !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}
