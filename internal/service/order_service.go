package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/queue"
	"github.com/vastra-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService orchestrates checkout and the order lifecycle.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	queueClient *queue.Client
	orderCfg    config.OrderConfig
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, addressRepo repository.AddressRepository, queueClient *queue.Client, orderCfg config.OrderConfig) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		queueClient: queueClient,
		orderCfg:    orderCfg,
	}
}

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

// checkoutPlan is the priced cart ready to become an order.
type checkoutPlan struct {
	Address *models.Address
	Items   []models.OrderItem
	Totals  CartTotals
}

// placeOrderParams carries the payment outcome into placement.
type placeOrderParams struct {
	UserID            uint
	AddressID         uint
	PaymentMethod     string
	PaymentStatus     string
	Status            string
	RazorpayOrderID   string
	RazorpayPaymentID string
	PaidAt            *time.Time
}

// buildCheckout validates the address and prices the current cart.
func (s *OrderService) buildCheckout(userID, addressID uint) (*checkoutPlan, error) {
	if userID == 0 {
		return nil, ErrOrderCreateFailed
	}
	address, err := s.addressRepo.GetByIDAndUser(addressID, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressRequired
	}

	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	now := time.Now()
	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		if item.Quantity <= 0 {
			return nil, ErrCartItemInvalid
		}
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		if product.StockQuantity < item.Quantity {
			return nil, ErrOutOfStock
		}

		lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal).Round(2)
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Image:       image,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return &checkoutPlan{
		Address: address,
		Items:   orderItems,
		Totals:  computeTotals(subtotal, s.orderCfg),
	}, nil
}

// PreviewCheckout prices the cart against an address without placing.
func (s *OrderService) PreviewCheckout(userID, addressID uint) (*CartTotals, error) {
	plan, err := s.buildCheckout(userID, addressID)
	if err != nil {
		return nil, err
	}
	totals := plan.Totals
	return &totals, nil
}

// NormalizePaymentMethod resolves the checkout payment method. Only
// cash on delivery places directly; online payments go through the
// gateway verification flow instead.
func NormalizePaymentMethod(method string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", constants.PaymentMethodCOD:
		return constants.PaymentMethodCOD, nil
	default:
		return "", ErrPaymentMethodInvalid
	}
}

// PlaceCODOrder places a cash-on-delivery order from the cart.
func (s *OrderService) PlaceCODOrder(userID, addressID uint) (*models.Order, error) {
	return s.placeFromCart(placeOrderParams{
		UserID:        userID,
		AddressID:     addressID,
		PaymentMethod: constants.PaymentMethodCOD,
		PaymentStatus: constants.PaymentStatusPending,
		Status:        constants.OrderStatusPending,
	})
}

// placeFromCart turns the cart into an order inside one transaction.
// Stock is decremented line by line with a guard, items are frozen at
// the current catalog price and the cart is cleared before commit.
func (s *OrderService) placeFromCart(params placeOrderParams) (*models.Order, error) {
	plan, err := s.buildCheckout(params.UserID, params.AddressID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:           generateOrderNo(),
		UserID:            params.UserID,
		Status:            params.Status,
		Currency:          constants.SiteCurrencyDefault,
		PaymentMethod:     params.PaymentMethod,
		PaymentStatus:     params.PaymentStatus,
		RazorpayOrderID:   strings.TrimSpace(params.RazorpayOrderID),
		RazorpayPaymentID: strings.TrimSpace(params.RazorpayPaymentID),
		Subtotal:          plan.Totals.Subtotal,
		ShippingFee:       plan.Totals.ShippingFee,
		Tax:               plan.Totals.Tax,
		Total:             plan.Totals.Total,
		ShipName:          plan.Address.Name,
		ShipPhone:         plan.Address.Phone,
		ShipLine1:         plan.Address.Line1,
		ShipLine2:         plan.Address.Line2,
		ShipCity:          plan.Address.City,
		ShipState:         plan.Address.State,
		ShipPincode:       plan.Address.Pincode,
		PaidAt:            params.PaidAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		for _, item := range plan.Items {
			affected, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrOutOfStock
			}
		}

		if err := orderRepo.Create(order, plan.Items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(params.UserID)
	})
	if err != nil {
		if errors.Is(err, ErrOutOfStock) {
			return nil, ErrOutOfStock
		}
		logger.Errorw("order_place_failed",
			"user_id", params.UserID,
			"payment_method", params.PaymentMethod,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}
	order.Items = plan.Items

	s.enqueueStatusEmail(order.ID, order.Status)

	logger.Infow("order_placed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"payment_method", order.PaymentMethod,
		"total", order.Total.String(),
	)
	return order, nil
}

// CancelOrder cancels an owned order and restores stock. Delivered
// orders can no longer be cancelled.
func (s *OrderService) CancelOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusDelivered || order.Status == constants.OrderStatusCancelled {
		return nil, ErrOrderCancelNotAllowed
	}
	if err := s.cancelOrder(order); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	s.enqueueStatusEmail(order.ID, constants.OrderStatusCancelled)
	return order, nil
}

func (s *OrderService) cancelOrder(order *models.Order) error {
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		updates := map[string]interface{}{
			"cancelled_at": now,
			"updated_at":   now,
		}
		if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
			return err
		}
		for _, item := range order.Items {
			if _, err := productRepo.RestoreStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	order.Status = constants.OrderStatusCancelled
	order.CancelledAt = &now
	order.UpdatedAt = now
	return nil
}

// UpdateOrderStatus moves an order along the fulfilment chain.
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := strings.ToLower(strings.TrimSpace(targetStatus))
	if target == "" {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}

	if target == constants.OrderStatusCancelled {
		if err := s.cancelOrder(order); err != nil {
			return nil, ErrOrderUpdateFailed
		}
		s.enqueueStatusEmail(order.ID, target)
		return order, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	switch target {
	case constants.OrderStatusShipped:
		updates["shipped_at"] = now
	case constants.OrderStatusDelivered:
		updates["delivered_at"] = now
		// COD settles on handover.
		if order.PaymentMethod == constants.PaymentMethodCOD && order.PaymentStatus == constants.PaymentStatusPending {
			updates["payment_status"] = constants.PaymentStatusCompleted
			updates["paid_at"] = now
		}
	}

	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	order.Status = target
	order.UpdatedAt = now
	if v, ok := updates["shipped_at"]; ok {
		if t, ok := v.(time.Time); ok {
			order.ShippedAt = &t
		}
	}
	if v, ok := updates["delivered_at"]; ok {
		if t, ok := v.(time.Time); ok {
			order.DeliveredAt = &t
		}
	}
	if v, ok := updates["payment_status"]; ok {
		if ps, ok := v.(string); ok {
			order.PaymentStatus = ps
		}
	}
	if v, ok := updates["paid_at"]; ok {
		if t, ok := v.(time.Time); ok {
			order.PaidAt = &t
		}
	}

	s.enqueueStatusEmail(order.ID, target)
	return order, nil
}

// GetOrderByUser fetches one owned order.
func (s *OrderService) GetOrderByUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersByUser lists the user's order history.
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrOrderFetchFailed
	}
	orders, total, err := s.orderRepo.ListByUser(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

func (s *OrderService) enqueueStatusEmail(orderID uint, status string) {
	if _, err := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, orderID, status); err != nil {
		logger.Warnw("order_enqueue_status_email_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("VS%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
