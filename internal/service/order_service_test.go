package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newServiceTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return db
}

type checkoutFixture struct {
	db       *gorm.DB
	orderSvc *OrderService
	cartRepo repository.CartRepository
	user     models.User
	address  models.Address
}

func newCheckoutFixture(t *testing.T, name string) *checkoutFixture {
	t.Helper()
	db := newServiceTestDB(t, name)

	user := models.User{Email: name + "@example.com", PasswordHash: "x", Name: "Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	address := models.Address{
		UserID:  user.ID,
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	orderSvc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		cartRepo,
		repository.NewAddressRepository(db),
		nil,
		defaultOrderConfig(),
	)
	return &checkoutFixture{
		db:       db,
		orderSvc: orderSvc,
		cartRepo: cartRepo,
		user:     user,
		address:  address,
	}
}

func (f *checkoutFixture) createProduct(t *testing.T, slug string, price int64, stock int) models.Product {
	t.Helper()
	category := models.Category{Slug: slug + "-cat", Name: "Sarees"}
	if err := f.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID:    category.ID,
		Slug:          slug,
		Name:          "Kanjivaram Saree",
		Price:         models.NewMoneyFromInt(price),
		MRP:           models.NewMoneyFromInt(price + 500),
		Fabric:        "Silk",
		Images:        models.StringArray{"/images/" + slug + ".jpg"},
		StockQuantity: stock,
		IsActive:      true,
	}
	if err := f.db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *checkoutFixture) addToCart(t *testing.T, productID uint, quantity int) {
	t.Helper()
	if err := f.cartRepo.AddQuantity(f.user.ID, productID, quantity); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
}

func TestPlaceCODOrderFromCart(t *testing.T) {
	f := newCheckoutFixture(t, "order_place_cod")
	saree := f.createProduct(t, "place-saree", 1200, 5)
	kurta := f.createProduct(t, "place-kurta", 600, 5)
	f.addToCart(t, saree.ID, 1)
	f.addToCart(t, kurta.ID, 2)

	order, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("PlaceCODOrder error: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("expected pending payment, got %s", order.PaymentStatus)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("expected cod method, got %s", order.PaymentMethod)
	}
	// 1200 + 1200 = 2400, free shipping, 5% tax = 120
	assertMoney(t, "subtotal", order.Subtotal, 2400)
	if !order.ShippingFee.Decimal.IsZero() {
		t.Fatalf("expected free shipping, got %s", order.ShippingFee.String())
	}
	assertMoney(t, "total", order.Total, 2520)
	if order.ShipPincode != "560001" || order.ShipName != "Asha Rao" {
		t.Fatalf("address snapshot missing: %+v", order)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}

	var stocked models.Product
	if err := f.db.First(&stocked, saree.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stocked.StockQuantity != 4 {
		t.Fatalf("expected stock 4 after placement, got %d", stocked.StockQuantity)
	}

	items, err := f.cartRepo.ListByUser(f.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cleared cart, got %d lines", len(items))
	}
}

func TestPlacedOrderFreezesUnitPrice(t *testing.T) {
	f := newCheckoutFixture(t, "order_freeze_price")
	saree := f.createProduct(t, "freeze-saree", 1500, 3)
	f.addToCart(t, saree.ID, 1)

	order, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("PlaceCODOrder error: %v", err)
	}

	if err := f.db.Model(&models.Product{}).Where("id = ?", saree.ID).
		Update("price", models.NewMoneyFromInt(1900)).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	reloaded, err := f.orderSvc.GetOrderByUser(order.ID, f.user.ID)
	if err != nil {
		t.Fatalf("GetOrderByUser error: %v", err)
	}
	assertMoney(t, "frozen unit price", reloaded.Items[0].UnitPrice, 1500)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, "order_empty_cart")
	if _, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestPlaceOrderRejectsForeignAddress(t *testing.T) {
	f := newCheckoutFixture(t, "order_foreign_address")
	saree := f.createProduct(t, "foreign-saree", 800, 3)
	f.addToCart(t, saree.ID, 1)

	other := models.User{Email: "other@example.com", PasswordHash: "x"}
	if err := f.db.Create(&other).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	foreign := models.Address{
		UserID: other.ID, Name: "O", Phone: "9876543210",
		Line1: "1 Lane", City: "Pune", State: "Maharashtra", Pincode: "411001",
	}
	if err := f.db.Create(&foreign).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	if _, err := f.orderSvc.PlaceCODOrder(f.user.ID, foreign.ID); !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("expected ErrAddressRequired, got %v", err)
	}
}

func TestPlaceOrderInsufficientStockLeavesStateUntouched(t *testing.T) {
	f := newCheckoutFixture(t, "order_no_stock")
	saree := f.createProduct(t, "nostock-saree", 700, 1)
	f.addToCart(t, saree.ID, 2)

	if _, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}

	var stocked models.Product
	if err := f.db.First(&stocked, saree.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stocked.StockQuantity != 1 {
		t.Fatalf("expected untouched stock 1, got %d", stocked.StockQuantity)
	}
	items, err := f.cartRepo.ListByUser(f.user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cart intact, got %d lines", len(items))
	}
	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orders, got %d", count)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	f := newCheckoutFixture(t, "order_cancel")
	saree := f.createProduct(t, "cancel-saree", 1100, 4)
	f.addToCart(t, saree.ID, 3)

	order, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("PlaceCODOrder error: %v", err)
	}

	cancelled, err := f.orderSvc.CancelOrder(order.ID, f.user.ID)
	if err != nil {
		t.Fatalf("CancelOrder error: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}

	var stocked models.Product
	if err := f.db.First(&stocked, saree.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stocked.StockQuantity != 4 {
		t.Fatalf("expected stock restored to 4, got %d", stocked.StockQuantity)
	}

	if _, err := f.orderSvc.CancelOrder(order.ID, f.user.ID); !errors.Is(err, ErrOrderCancelNotAllowed) {
		t.Fatalf("expected ErrOrderCancelNotAllowed on second cancel, got %v", err)
	}
}

func TestUpdateOrderStatusFollowsChain(t *testing.T) {
	f := newCheckoutFixture(t, "order_chain")
	saree := f.createProduct(t, "chain-saree", 2000, 2)
	f.addToCart(t, saree.ID, 1)

	order, err := f.orderSvc.PlaceCODOrder(f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("PlaceCODOrder error: %v", err)
	}

	if _, err := f.orderSvc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected pending->shipped to be rejected, got %v", err)
	}

	for _, target := range []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusProcessing,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
	} {
		updated, err := f.orderSvc.UpdateOrderStatus(order.ID, target)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
		if updated.Status != target {
			t.Fatalf("expected status %s, got %s", target, updated.Status)
		}
	}

	delivered, err := f.orderSvc.GetOrderByUser(order.ID, f.user.ID)
	if err != nil {
		t.Fatalf("GetOrderByUser error: %v", err)
	}
	if delivered.DeliveredAt == nil || delivered.ShippedAt == nil {
		t.Fatalf("expected shipped_at and delivered_at to be set")
	}
	// COD settles on handover.
	if delivered.PaymentStatus != constants.PaymentStatusCompleted {
		t.Fatalf("expected cod payment completed on delivery, got %s", delivered.PaymentStatus)
	}
	if delivered.PaidAt == nil {
		t.Fatalf("expected paid_at on cod delivery")
	}

	if _, err := f.orderSvc.UpdateOrderStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected delivered->cancelled to be rejected, got %v", err)
	}
}

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusProcessing, true},
		{constants.OrderStatusProcessing, constants.OrderStatusShipped, true},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled, true},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusConfirmed, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusConfirmed, true},
	}
	for _, tc := range cases {
		if got := isTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("isTransitionAllowed(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		name   string
		method string
		want   string
		err    error
	}{
		{name: "empty_defaults_to_cod", method: "", want: constants.PaymentMethodCOD},
		{name: "cod", method: "cod", want: constants.PaymentMethodCOD},
		{name: "cod_mixed_case", method: " COD ", want: constants.PaymentMethodCOD},
		{name: "razorpay_goes_through_gateway", method: "razorpay", err: ErrPaymentMethodInvalid},
		{name: "unknown", method: "upi", err: ErrPaymentMethodInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePaymentMethod(tc.method)
			if !errors.Is(err, tc.err) {
				t.Fatalf("error want %v got %v", tc.err, err)
			}
			if got != tc.want {
				t.Fatalf("method want %q got %q", tc.want, got)
			}
		})
	}
}

func TestPreviewCheckoutDoesNotTouchStock(t *testing.T) {
	f := newCheckoutFixture(t, "order_preview")
	saree := f.createProduct(t, "preview-saree", 500, 2)
	f.addToCart(t, saree.ID, 1)

	totals, err := f.orderSvc.PreviewCheckout(f.user.ID, f.address.ID)
	if err != nil {
		t.Fatalf("PreviewCheckout error: %v", err)
	}
	assertMoney(t, "preview total", totals.Total, 624)

	var stocked models.Product
	if err := f.db.First(&stocked, saree.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stocked.StockQuantity != 2 {
		t.Fatalf("expected untouched stock, got %d", stocked.StockQuantity)
	}
	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("preview should not create orders, got %d", count)
	}
}
