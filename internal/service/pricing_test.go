package service

import (
	"testing"

	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/models"

	"github.com/shopspring/decimal"
)

func defaultOrderConfig() config.OrderConfig {
	return config.OrderConfig{
		FreeShippingThreshold: 999,
		ShippingFee:           99,
		TaxRate:               0.05,
	}
}

// assertMoney compares by decimal value, Money renders as "99.00".
func assertMoney(t *testing.T, label string, got models.Money, want int64) {
	t.Helper()
	if !got.Decimal.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s want %d got %s", label, want, got.String())
	}
}

func TestComputeTotalsChargesShippingBelowThreshold(t *testing.T) {
	totals := computeTotals(decimal.NewFromInt(500), defaultOrderConfig())
	assertMoney(t, "shipping", totals.ShippingFee, 99)
	assertMoney(t, "tax", totals.Tax, 25)
	assertMoney(t, "total", totals.Total, 624)
}

func TestComputeTotalsFreeShippingAtThreshold(t *testing.T) {
	totals := computeTotals(decimal.NewFromInt(999), defaultOrderConfig())
	if !totals.ShippingFee.Decimal.IsZero() {
		t.Fatalf("expected free shipping at 999, got %s", totals.ShippingFee.String())
	}

	totals = computeTotals(decimal.NewFromInt(998), defaultOrderConfig())
	assertMoney(t, "shipping at 998", totals.ShippingFee, 99)
}

func TestComputeTotalsLargeCart(t *testing.T) {
	totals := computeTotals(decimal.NewFromInt(2400), defaultOrderConfig())
	if !totals.ShippingFee.Decimal.IsZero() {
		t.Fatalf("expected free shipping, got %s", totals.ShippingFee.String())
	}
	assertMoney(t, "tax", totals.Tax, 120)
	assertMoney(t, "total", totals.Total, 2520)
}

func TestComputeTotalsRoundsTaxToWholeRupees(t *testing.T) {
	// 5% of 849 is 42.45, rounded to 42.
	totals := computeTotals(decimal.NewFromInt(849), defaultOrderConfig())
	assertMoney(t, "tax", totals.Tax, 42)
	assertMoney(t, "total", totals.Total, 990)
}

func TestComputeTotalsFallsBackOnBadConfig(t *testing.T) {
	totals := computeTotals(decimal.NewFromInt(100), config.OrderConfig{TaxRate: 2.5})
	assertMoney(t, "default tax", totals.Tax, 5)
}

func TestMoneyStringRendersTwoDecimals(t *testing.T) {
	if got := models.NewMoneyFromInt(99).String(); got != "99.00" {
		t.Fatalf("money string want 99.00 got %s", got)
	}
	if got := models.NewMoneyFromDecimal(decimal.NewFromFloat(2520.5)).String(); got != "2520.50" {
		t.Fatalf("money string want 2520.50 got %s", got)
	}
}
