package razorpay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignMatchesKnownVector(t *testing.T) {
	// hmac-sha256("secret", "order_abc|pay_xyz")
	got := Sign("order_abc", "pay_xyz", "secret")
	if len(got) != 64 {
		t.Fatalf("signature length want 64 got %d", len(got))
	}
	if got != Sign("order_abc", "pay_xyz", "secret") {
		t.Fatalf("signature should be deterministic")
	}
	if got == Sign("order_abc", "pay_xyz", "other-secret") {
		t.Fatalf("different secrets should not collide")
	}
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	sig := Sign("order_abc", "pay_xyz", "secret")
	if err := VerifySignature("order_abc", "pay_xyz", sig, "secret"); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if err := VerifySignature("order_abc", "pay_xyz", strings.ToUpper(sig), "secret"); err != nil {
		t.Fatalf("uppercase hex should still verify: %v", err)
	}
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	sig := Sign("order_abc", "pay_xyz", "secret")

	if err := VerifySignature("order_abc", "pay_other", sig, "secret"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("tampered payment id should fail, got %v", err)
	}
	if err := VerifySignature("order_other", "pay_xyz", sig, "secret"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("tampered order id should fail, got %v", err)
	}
	if err := VerifySignature("order_abc", "pay_xyz", "deadbeef", "secret"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("forged signature should fail, got %v", err)
	}
	if err := VerifySignature("", "pay_xyz", sig, "secret"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("blank order id should fail, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("nil config should fail, got %v", err)
	}
	if err := ValidateConfig(&Config{KeyID: "rzp_test_k"}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("missing secret should fail, got %v", err)
	}
	if err := ValidateConfig(&Config{KeyID: "rzp_test_k", KeySecret: "s"}); err != nil {
		t.Fatalf("complete config should pass, got %v", err)
	}
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig(map[string]interface{}{
		"key_id":     " rzp_test_k ",
		"key_secret": "s",
	})
	if err != nil {
		t.Fatalf("parse config failed: %v", err)
	}
	if cfg.KeyID != "rzp_test_k" {
		t.Fatalf("key_id not trimmed: %q", cfg.KeyID)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("base_url default want %s got %s", defaultBaseURL, cfg.BaseURL)
	}
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_k" || pass != "s" {
			t.Fatalf("basic auth not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_MkW1","entity":"order","amount":252000,"currency":"INR","receipt":"VS20260828","status":"created"}`))
	}))
	defer server.Close()

	cfg := &Config{KeyID: "rzp_test_k", KeySecret: "s", BaseURL: server.URL}
	result, err := CreateOrder(context.Background(), cfg, CreateInput{
		AmountMinor: 252000,
		Currency:    "INR",
		Receipt:     "VS20260828",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if result.ID != "order_MkW1" {
		t.Fatalf("order id want order_MkW1 got %s", result.ID)
	}
	if result.AmountMinor != 252000 {
		t.Fatalf("amount want 252000 got %d", result.AmountMinor)
	}
	if result.Status != OrderStatusCreated {
		t.Fatalf("status want created got %s", result.Status)
	}
}

func TestCreateOrderSurfacesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least INR 1.00"}}`))
	}))
	defer server.Close()

	cfg := &Config{KeyID: "rzp_test_k", KeySecret: "s", BaseURL: server.URL}
	_, err := CreateOrder(context.Background(), cfg, CreateInput{AmountMinor: 1})
	if !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("gateway error should map to ErrResponseInvalid, got %v", err)
	}
}
