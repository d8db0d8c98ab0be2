package service

import (
	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/models"

	"github.com/shopspring/decimal"
)

// CartTotals is the priced breakdown of a cart or order.
type CartTotals struct {
	Subtotal    models.Money `json:"subtotal"`
	ShippingFee models.Money `json:"shipping_fee"`
	Tax         models.Money `json:"tax"`
	Total       models.Money `json:"total"`
}

// computeTotals prices a subtotal. Shipping is waived at or above the
// free threshold, tax is rounded to whole rupees.
func computeTotals(subtotal decimal.Decimal, cfg config.OrderConfig) CartTotals {
	subtotal = subtotal.Round(2)

	threshold := decimal.NewFromInt(int64(resolveFreeShippingThreshold(cfg)))
	shipping := decimal.Zero
	if subtotal.LessThan(threshold) {
		shipping = decimal.NewFromInt(int64(resolveShippingFee(cfg)))
	}

	tax := subtotal.Mul(decimal.NewFromFloat(resolveTaxRate(cfg))).Round(0)
	total := subtotal.Add(shipping).Add(tax).Round(2)

	return CartTotals{
		Subtotal:    models.NewMoneyFromDecimal(subtotal),
		ShippingFee: models.NewMoneyFromDecimal(shipping),
		Tax:         models.NewMoneyFromDecimal(tax),
		Total:       models.NewMoneyFromDecimal(total),
	}
}

func resolveFreeShippingThreshold(cfg config.OrderConfig) int {
	if cfg.FreeShippingThreshold <= 0 {
		return 999
	}
	return cfg.FreeShippingThreshold
}

func resolveShippingFee(cfg config.OrderConfig) int {
	if cfg.ShippingFee < 0 {
		return 99
	}
	return cfg.ShippingFee
}

func resolveTaxRate(cfg config.OrderConfig) float64 {
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return 0.05
	}
	return cfg.TaxRate
}
