package service

import (
	"errors"
	"testing"

	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"
)

func newCartFixture(t *testing.T, name string) (*checkoutFixture, *CartService) {
	t.Helper()
	f := newCheckoutFixture(t, name)
	svc := NewCartService(
		f.cartRepo,
		repository.NewProductRepository(f.db),
		defaultOrderConfig(),
	)
	return f, svc
}

func TestCartAddItemAccumulatesQuantity(t *testing.T) {
	f, svc := newCartFixture(t, "cart_add")
	saree := f.createProduct(t, "cart-saree", 1200, 10)

	if err := svc.AddItem(f.user.ID, saree.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.AddItem(f.user.ID, saree.ID, 2); err != nil {
		t.Fatalf("second AddItem error: %v", err)
	}

	summary, err := svc.GetSummary(f.user.ID)
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(summary.Items))
	}
	if summary.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", summary.Items[0].Quantity)
	}
	assertMoney(t, "line total", summary.Items[0].LineTotal, 3600)
}

func TestCartAddItemRejectsInactiveProduct(t *testing.T) {
	f, svc := newCartFixture(t, "cart_add_inactive")
	saree := f.createProduct(t, "inactive-saree", 900, 5)
	if err := f.db.Model(&models.Product{}).Where("id = ?", saree.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	if err := svc.AddItem(f.user.ID, saree.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	f, svc := newCartFixture(t, "cart_set_zero")
	saree := f.createProduct(t, "setzero-saree", 700, 5)
	if err := svc.AddItem(f.user.ID, saree.ID, 2); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	if err := svc.SetQuantity(f.user.ID, saree.ID, 0); err != nil {
		t.Fatalf("SetQuantity error: %v", err)
	}
	summary, err := svc.GetSummary(f.user.ID)
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(summary.Items))
	}
}

func TestCartSetQuantityMissingLine(t *testing.T) {
	f, svc := newCartFixture(t, "cart_set_missing")
	saree := f.createProduct(t, "missing-saree", 700, 5)

	if err := svc.SetQuantity(f.user.ID, saree.ID, 2); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid, got %v", err)
	}
}

func TestCartSummaryPrunesInactiveProducts(t *testing.T) {
	f, svc := newCartFixture(t, "cart_prune")
	saree := f.createProduct(t, "prune-saree", 1200, 5)
	kurta := f.createProduct(t, "prune-kurta", 600, 5)
	if err := svc.AddItem(f.user.ID, saree.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.AddItem(f.user.ID, kurta.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	if err := f.db.Model(&models.Product{}).Where("id = ?", kurta.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	summary, err := svc.GetSummary(f.user.ID)
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected inactive line pruned, got %d lines", len(summary.Items))
	}
	if summary.Items[0].ProductID != saree.ID {
		t.Fatalf("wrong surviving line: %d", summary.Items[0].ProductID)
	}

	lines, err := f.cartRepo.ListByUser(f.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected stored cart pruned, got %d lines", len(lines))
	}
}

func TestCartSummaryTotals(t *testing.T) {
	f, svc := newCartFixture(t, "cart_totals")
	saree := f.createProduct(t, "totals-saree", 500, 5)
	if err := svc.AddItem(f.user.ID, saree.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	summary, err := svc.GetSummary(f.user.ID)
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	// 500 subtotal, 99 shipping, 25 tax
	assertMoney(t, "shipping", summary.Totals.ShippingFee, 99)
	assertMoney(t, "total", summary.Totals.Total, 624)
}
